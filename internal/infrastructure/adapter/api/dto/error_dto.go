package dto

// ErrorResponse is the JSON body for failed requests. Code carries the
// domain error code, not the HTTP status.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
