package response

// Resp is the standard JSON response body.
//
// Error mirrors Message on failures so browser clients that only read the
// "error" key keep working.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Error     string `json:"error,omitempty"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
