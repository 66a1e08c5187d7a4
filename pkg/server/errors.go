package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	pferrors "github.com/plateforge/plateforge/pkg/errors"
	"github.com/plateforge/plateforge/pkg/serializer"
)

// ErrorResponse is the wire shape for every error the API returns.
type ErrorResponse struct {
	Code      string         `json:"code" yaml:"code"`
	Message   string         `json:"message" yaml:"message"`
	Details   map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
	RequestID string         `json:"requestId" yaml:"requestId"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
	Retryable bool           `json:"retryable" yaml:"retryable"`
}

// WriteError writes an error response with the given status and code.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code pferrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteStructuredError maps a structured error onto an HTTP error
// response, deriving status and retryability from its code.
func WriteStructuredError(w http.ResponseWriter, r *http.Request, err error) {
	code := pferrors.CodeOf(err)
	message := err.Error()
	var details map[string]any

	var se *pferrors.StructuredError
	if errors.As(err, &se) {
		message = se.Message
		details = mergeDetails(se.Details, nil)
	}

	WriteError(w, r, HTTPStatusFromCode(code), code, message, retryableFromCode(code), details)
}

// HTTPStatusFromCode maps error codes onto HTTP status codes. Unknown
// codes map to 500.
func HTTPStatusFromCode(code pferrors.ErrorCode) int {
	switch code {
	case pferrors.ErrCodeInvalidRequest, pferrors.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case pferrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case pferrors.ErrCodeNotFound:
		return http.StatusNotFound
	case pferrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case pferrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case pferrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case pferrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// retryableFromCode reports whether clients should retry requests
// failing with this code.
func retryableFromCode(code pferrors.ErrorCode) bool {
	switch code {
	case pferrors.ErrCodeRateLimitExceeded, pferrors.ErrCodeTimeout,
		pferrors.ErrCodeUnavailable, pferrors.ErrCodeInternal:
		return true
	}
	return false
}

// mergeDetails merges two detail maps; the second wins on key
// collisions. Returns nil when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
