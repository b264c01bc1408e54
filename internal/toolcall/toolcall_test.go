package toolcall

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type availabilityArgs struct {
	PartySize         int    `json:"partySize" binding:"required,gt=0"`
	Date              string `json:"date" binding:"required"`
	Time              string `json:"time" binding:"required"`
	SeatingPreference string `json:"seatingPreference"`
	RestaurantID      string `json:"restaurantId" binding:"required"`
}

func TestDecode_PayloadShapes(t *testing.T) {
	cases := map[string]string{
		"toolCalls with string arguments": `{"message":{"toolCalls":[{"id":"c1","function":{"name":"checkAvailability",
			"arguments":"{\"partySize\":4,\"date\":\"2024-01-01\",\"time\":\"18:00\",\"restaurantId\":\"r1\"}"}}]}}`,
		"toolCallList with object arguments": `{"message":{"toolCallList":[{"function":{
			"arguments":{"partySize":4,"date":"2024-01-01","time":"18:00","restaurantId":"r1"}}}]}}`,
		"snake case tool_calls": `{"message":{"tool_calls":[{"function":{
			"arguments":{"party_size":"4","date":"2024-01-01","time":"18:00","restaurant_id":"r1"}}}]}}`,
		"single toolCall": `{"toolCall":{"arguments":{"partySize":4,"date":"2024-01-01","time":"18:00","restaurantId":"r1"}}}`,
		"flat object":     `{"partySize":4,"date":"2024-01-01","time":"18:00","restaurantId":"r1"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			var got availabilityArgs
			require.NoError(t, Decode([]byte(body), &got))

			assert.Equal(t, availabilityArgs{
				PartySize:    4,
				Date:         "2024-01-01",
				Time:         "18:00",
				RestaurantID: "r1",
			}, got)
		})
	}
}

func TestDecode_MissingToolCalls(t *testing.T) {
	cases := map[string]string{
		"message without calls": `{"message":{"type":"tool-calls"}}`,
		"empty call list":       `{"message":{"toolCalls":[]}}`,
		"call without args":     `{"message":{"toolCalls":[{"function":{"name":"x"}}]}}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			var got availabilityArgs
			err := Decode([]byte(body), &got)
			assert.ErrorIs(t, err, ErrMissingToolCall)
		})
	}
}

func TestDecode_BadArguments(t *testing.T) {
	var got availabilityArgs
	err := Decode([]byte(`{"message":{"toolCalls":[{"function":{"arguments":"not json"}}]}}`), &got)
	assert.ErrorIs(t, err, ErrBadArguments)

	err = Decode([]byte(`{"message":{"toolCalls":[{"function":{"arguments":42}}]}}`), &got)
	assert.ErrorIs(t, err, ErrBadArguments)
}

func TestDecode_ValidationErrors(t *testing.T) {
	var got availabilityArgs
	err := Decode([]byte(`{"partySize":0,"date":"2024-01-01"}`), &got)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	assert.ElementsMatch(t, []string{"PartySize", "Time", "RestaurantID"}, fields)
}

func TestDecode_MalformedBody(t *testing.T) {
	var got availabilityArgs
	assert.Error(t, Decode([]byte(`{`), &got))
}

func TestNormalize(t *testing.T) {
	got := Normalize(map[string]any{
		"customer_name":      "Bob",
		"seating_preference": "patio",
		"partySize":          " 6 ",
		"restaurant_id":      "snake",
		"restaurantId":       "camel",
	})

	assert.Equal(t, map[string]any{
		"customerName":      "Bob",
		"seatingPreference": "patio",
		"partySize":         6,
		"restaurantId":      "camel",
	}, got)
}

func TestNormalize_NonNumericPartySizeKept(t *testing.T) {
	got := Normalize(map[string]any{"partySize": "four"})
	assert.Equal(t, "four", got["partySize"])
}

func TestCamel(t *testing.T) {
	assert.Equal(t, "partySize", camel("party_size"))
	assert.Equal(t, "specialRequests", camel("special_requests"))
	assert.Equal(t, "date", camel("date"))
	assert.Equal(t, "aB", camel("a__b"))
}
