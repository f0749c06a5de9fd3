package result

import (
	"encoding/json"
	"net/http"
)

// Codes used by the uniform response envelope.
const (
	CodeSuccess = 1
	CodeFailure = 0
)

// Envelope is the uniform response wrapper: code 1 on success with the
// payload in Data, code 0 on failure with a human-readable Message.
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK writes a success envelope with the given payload.
func OK(w http.ResponseWriter, data any) {
	write(w, http.StatusOK, Envelope{Code: CodeSuccess, Data: data})
}

// Fail writes a failure envelope. Business failures stay HTTP 200; the
// envelope code carries the outcome.
func Fail(w http.ResponseWriter, msg string) {
	write(w, http.StatusOK, Envelope{Code: CodeFailure, Message: msg})
}

// FailStatus writes a failure envelope with an explicit HTTP status, used
// by middleware rejections.
func FailStatus(w http.ResponseWriter, status int, msg string) {
	write(w, status, Envelope{Code: CodeFailure, Message: msg})
}

func write(w http.ResponseWriter, status int, e Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(e)
}
