package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// errorBody is the envelope shared by all 404/405/500 responses.
type errorBody struct {
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path,omitempty"`
	Method    string `json:"method,omitempty"`
	Timestamp string `json:"timestamp"`
}

// newResponse creates a new JSON response.
func newResponse(status int, body []byte) Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")

	return Response{
		StatusCode: status,
		Header:     header,
		Body:       body,
	}
}

// newErrorResponse stamps and serializes an error envelope.
func newErrorResponse(body errorBody) Response {
	body.Timestamp = time.Now().UTC().Format(time.RFC3339)

	data, err := json.Marshal(body)
	if err != nil {
		return Response{StatusCode: http.StatusInternalServerError}
	}

	return newResponse(body.Status, data)
}

func newNotFoundResponse(req Request) Response {
	return newErrorResponse(errorBody{
		Status:  http.StatusNotFound,
		Error:   "Not Found",
		Message: "The requested resource was not found",
		Path:    req.Path,
		Method:  req.Method,
	})
}

func newMethodNotAllowedResponse(req Request) Response {
	return newErrorResponse(errorBody{
		Status:  http.StatusMethodNotAllowed,
		Error:   "Method Not Allowed",
		Message: fmt.Sprintf("The %s method is not allowed for this endpoint", req.Method),
		Path:    req.Path,
		Method:  req.Method,
	})
}

// newInternalErrorResponse builds the 500 envelope. The failure detail
// is only included in debug mode, the default message never exposes
// internal state.
func newInternalErrorResponse(err error, debug bool) Response {
	message := "An internal server error occurred"
	if debug {
		message = err.Error()
	}

	return newErrorResponse(errorBody{
		Status:  http.StatusInternalServerError,
		Error:   "Internal Server Error",
		Message: message,
	})
}
