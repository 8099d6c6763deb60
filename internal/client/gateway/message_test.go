package gateway

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type customMessage struct{ msg string }

func (c customMessage) Message() string { return c.msg }

type messageErr struct{}

func (messageErr) Error() string   { return "raw text" }
func (messageErr) Message() string { return "friendly text" }

func TestMessageOf(t *testing.T) {
	const fallback = "Failed to create subscription"

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "y", "y"},
		{"empty string", "", fallback},
		{"map message", map[string]any{"message": "x"}, "x"},
		{"map empty", map[string]any{}, fallback},
		{"map description before details", map[string]any{"error_description": "desc", "details": "det"}, "desc"},
		{"map details", map[string]any{"details": "det"}, "det"},
		{"map message wins", map[string]any{"details": "det", "message": "msg"}, "msg"},
		{"map non-string message ignored", map[string]any{"message": 42, "details": "det"}, "det"},
		{"gateway error message", &Error{Message: "m", Description: "d"}, "m"},
		{"gateway error description", &Error{Description: "d", Details: "x"}, "d"},
		{"gateway error details", &Error{Details: "x"}, "x"},
		{"gateway error empty", &Error{Kind: KindNetwork}, fallback},
		{"nil gateway error", (*Error)(nil), fallback},
		{"wrapped gateway error", fmt.Errorf("insert: %w", &Error{Message: "inner"}), "inner"},
		{"plain error", errors.New("boom"), "boom"},
		{"messager", customMessage{"hello"}, "hello"},
		{"error with Message method", messageErr{}, "friendly text"},
		{"nil", nil, fallback},
		{"unsupported type", 123, fallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MessageOf(tt.in, fallback))
		})
	}
}
