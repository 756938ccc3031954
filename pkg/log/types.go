package log

import (
	"fmt"
	"strings"
)

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// RequestIDKey is the context key under which the HTTP middleware stores the request id.
type RequestIDKey struct{}

// msgAndFields splits variadic args into a message and key/value pairs.
//
// Two call styles are supported:
//
//	l.Info(ctx, "LLM generation successful", "provider", "gemini")  // message + fields
//	l.Error(ctx, "Failed to run server: ", err)                      // concatenated message
func msgAndFields(arg []any) (string, []any) {
	if len(arg) == 0 {
		return "", nil
	}
	msg, ok := arg[0].(string)
	if !ok {
		return fmt.Sprint(arg...), nil
	}
	rest := arg[1:]
	if len(rest)%2 == 0 && keysAreStrings(rest) && !strings.HasSuffix(msg, " ") {
		return msg, rest
	}
	return fmt.Sprint(arg...), nil
}

func keysAreStrings(kv []any) bool {
	for i := 0; i < len(kv); i += 2 {
		if _, ok := kv[i].(string); !ok {
			return false
		}
	}
	return true
}
