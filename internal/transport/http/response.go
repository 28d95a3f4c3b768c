package http

import "net/http"

// Envelope is the wire format every endpoint returns: the HTTP status
// mirrored in the body, a human-readable message on failure, and the
// payload (null when there is none).
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func ok(data any) Envelope {
	return Envelope{Status: http.StatusOK, Data: data}
}

func fail(status int, message string) Envelope {
	return Envelope{Status: status, Message: message}
}
