package dto

// Response is the envelope every endpoint replies with.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// Fail wraps an error message in a failure envelope.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}
