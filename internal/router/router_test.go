package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

type stubHandler struct {
	hit string
}

func (s *stubHandler) record(c *ginext.Context, name string) {
	s.hit = name
	c.Status(http.StatusOK)
}

func (s *stubHandler) CreateBooking(c *ginext.Context)          { s.record(c, "create") }
func (s *stubHandler) CheckAvailability(c *ginext.Context)      { s.record(c, "check") }
func (s *stubHandler) CheckBooking(c *ginext.Context)           { s.record(c, "lookup") }
func (s *stubHandler) CancelBooking(c *ginext.Context)          { s.record(c, "cancel") }
func (s *stubHandler) VoiceCreateBooking(c *ginext.Context)     { s.record(c, "voice-create") }
func (s *stubHandler) VoiceCheckAvailability(c *ginext.Context) { s.record(c, "voice-check") }

func TestInitRouter_Routes(t *testing.T) {
	cases := []struct {
		method, path, want string
	}{
		{http.MethodPost, "/api/create-booking", "create"},
		{http.MethodPost, "/api/check-availability", "check"},
		{http.MethodGet, "/api/check-booking?identifier=1&restaurantId=r1", "lookup"},
		{http.MethodPost, "/api/cancel-booking", "cancel"},
		{http.MethodPost, "/api/voice/create-booking", "voice-create"},
		{http.MethodPost, "/api/voice/check-availability", "voice-check"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			h := &stubHandler{}
			r := InitRouter("test", h)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.want, h.hit)
		})
	}
}

func TestInitRouter_Health(t *testing.T) {
	r := InitRouter("test", &stubHandler{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
