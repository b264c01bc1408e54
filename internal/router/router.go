package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	CheckAvailability(c *ginext.Context)
	CheckBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	VoiceCreateBooking(c *ginext.Context)
	VoiceCheckAvailability(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Bookings
		api.POST("/create-booking", h.CreateBooking)
		api.POST("/check-availability", h.CheckAvailability)
		api.GET("/check-booking", h.CheckBooking)
		api.POST("/cancel-booking", h.CancelBooking)

		// Voice assistant tool calls
		voice := api.Group("/voice")
		voice.POST("/create-booking", h.VoiceCreateBooking)
		voice.POST("/check-availability", h.VoiceCheckAvailability)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
