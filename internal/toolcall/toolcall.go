// Package toolcall decodes the webhook bodies a voice assistant sends when it
// invokes one of the booking tools.
//
// Assistants have posted the arguments in several envelopes over time:
//
//	{"message": {"toolCalls":    [{"function": {"arguments": "{...}"}}]}}
//	{"message": {"toolCallList": [{"function": {"arguments": {...}}}]}}
//	{"message": {"tool_calls":   [...]}}
//	{"toolCall": {"function": {"arguments": ...}}}
//	{...arguments...}
//
// Decode accepts all of them, normalises snake_case keys to camelCase and
// validates the result against the same binding tags the plain endpoints use.
package toolcall

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingToolCall = errors.New("toolCalls missing")
	ErrBadArguments    = errors.New("tool call arguments are not a JSON object")
)

var listKeys = []string{"toolCalls", "toolCallList", "tool_calls", "tool_call_list"}

var singleKeys = []string{"toolCall", "tool_call"}

// integer-valued arguments assistants sometimes send as strings
var numericKeys = map[string]bool{
	"partySize": true,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	return v
}

// Decode extracts the first tool call's arguments from body, decodes them
// into dst and validates dst. Validation failures are returned as
// validator.ValidationErrors.
func Decode(body []byte, dst any) error {
	args, err := Arguments(body)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(Normalize(args))
	if err != nil {
		return fmt.Errorf("encode arguments: %w", err)
	}
	if err = json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode arguments: %w", err)
	}

	return validate.Struct(dst)
}

// Arguments returns the raw argument object of the first tool call in body.
func Arguments(body []byte) (map[string]any, error) {
	var root map[string]any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	container := root
	if msg, ok := root["message"].(map[string]any); ok {
		container = msg
	}

	call, present := firstCall(container)
	switch {
	case present && call == nil:
		return nil, ErrMissingToolCall
	case !present:
		if _, hasMessage := root["message"]; hasMessage {
			return nil, ErrMissingToolCall
		}
		return root, nil
	}

	return callArguments(call)
}

// firstCall reports whether container carries a tool-call key at all and
// returns the first call object when there is one.
func firstCall(container map[string]any) (map[string]any, bool) {
	for _, key := range listKeys {
		raw, ok := container[key]
		if !ok {
			continue
		}
		list, _ := raw.([]any)
		if len(list) == 0 {
			return nil, true
		}
		call, _ := list[0].(map[string]any)
		return call, true
	}
	for _, key := range singleKeys {
		raw, ok := container[key]
		if !ok {
			continue
		}
		call, _ := raw.(map[string]any)
		return call, true
	}
	return nil, false
}

func callArguments(call map[string]any) (map[string]any, error) {
	var args any
	if fn, ok := call["function"].(map[string]any); ok {
		args = fn["arguments"]
	}
	if args == nil {
		args = call["arguments"]
	}

	switch v := args.(type) {
	case map[string]any:
		return v, nil
	case string:
		var m map[string]any
		dec := json.NewDecoder(strings.NewReader(v))
		dec.UseNumber()
		if err := dec.Decode(&m); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadArguments, err)
		}
		return m, nil
	case nil:
		return nil, ErrMissingToolCall
	default:
		return nil, ErrBadArguments
	}
}

// Normalize rewrites snake_case keys to camelCase and turns numeric strings
// into numbers for integer arguments. Keys already in camelCase win over
// their snake_case spelling.
func Normalize(args map[string]any) map[string]any {
	out := make(map[string]any, len(args))
	for k, v := range args {
		if strings.Contains(k, "_") {
			continue
		}
		out[k] = v
	}
	for k, v := range args {
		if !strings.Contains(k, "_") {
			continue
		}
		ck := camel(k)
		if _, ok := out[ck]; !ok {
			out[ck] = v
		}
	}

	for k := range numericKeys {
		s, ok := out[k].(string)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			out[k] = n
		}
	}

	return out
}

func camel(key string) string {
	parts := strings.Split(key, "_")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
