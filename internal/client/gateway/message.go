package gateway

import "errors"

type messager interface {
	Message() string
}

// MessageOf extracts one human-readable message from v. It checks, in
// order: v is a non-empty string; a message; an error_description; a
// details value; otherwise it returns fallback.
//
// v may be a string, an *Error (anywhere in an error chain), any other
// error, a map[string]any decoded from a JSON error body, or a value with a
// Message() string method.
func MessageOf(v any, fallback string) string {
	switch e := v.(type) {
	case nil:
		return fallback
	case string:
		return firstNonEmpty(fallback, e)
	case *Error:
		if e == nil {
			return fallback
		}
		return firstNonEmpty(fallback, e.Message, e.Description, e.Details)
	case map[string]any:
		return firstNonEmpty(fallback, str(e["message"]), str(e["error_description"]), str(e["details"]))
	case messager:
		return firstNonEmpty(fallback, e.Message())
	case error:
		var ge *Error
		if errors.As(e, &ge) {
			return MessageOf(ge, fallback)
		}
		var m messager
		if errors.As(e, &m) {
			return firstNonEmpty(fallback, m.Message())
		}
		return firstNonEmpty(fallback, e.Error())
	default:
		return fallback
	}
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func firstNonEmpty(fallback string, vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return fallback
}
