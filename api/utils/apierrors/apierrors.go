package apierrors

import (
	"fmt"
	"net/http"
)

const (
	badRequestCode    = "bad_request"
	internalCode      = "internal_server_error"
	upstreamCode      = "upstream_error"
	partialCode       = "partial_failure"
	configurationCode = "configuration_error"
)

// CauseList holds the per-item detail attached to an error
type CauseList []interface{}

// ApiError is the error type returned by every client, service and controller of the api
type ApiError interface {
	Message() string
	Code() string
	Status() int
	Cause() CauseList
	Error() string
}

type apiErr struct {
	ErrorMessage string    `json:"error"`
	ErrorCode    string    `json:"code"`
	ErrorStatus  int       `json:"status"`
	ErrorCause   CauseList `json:"details,omitempty"`
}

func (e apiErr) Code() string {
	return e.ErrorCode
}

func (e apiErr) Error() string {
	return fmt.Sprintf("Message: %s;Error Code: %s;Status: %d;Cause: %v", e.ErrorMessage, e.ErrorCode, e.ErrorStatus, e.ErrorCause)
}

func (e apiErr) Status() int {
	return e.ErrorStatus
}

func (e apiErr) Cause() CauseList {
	return e.ErrorCause
}

func (e apiErr) Message() string {
	return e.ErrorMessage
}

func NewApiError(message string, error string, status int, cause CauseList) ApiError {
	return apiErr{message, error, status, cause}
}

// NewBadRequestApiError is a caller input error. No upstream call has been made when it is returned.
func NewBadRequestApiError(message string) ApiError {
	return apiErr{message, badRequestCode, http.StatusBadRequest, CauseList{}}
}

func NewInternalServerApiError(message string, err error) ApiError {
	cause := CauseList{}
	if err != nil {
		cause = append(cause, err.Error())
	}
	return apiErr{message, internalCode, http.StatusInternalServerError, cause}
}

// NewUpstreamApiError reports a non success answer from the build platform
func NewUpstreamApiError(message string) ApiError {
	return apiErr{message, upstreamCode, http.StatusInternalServerError, CauseList{}}
}

// NewPartialFailureApiError reports a multi item operation where some items failed.
// Every failed item is listed in the causes.
func NewPartialFailureApiError(message string, failures []string) ApiError {
	cause := CauseList{}
	for _, f := range failures {
		cause = append(cause, f)
	}
	return apiErr{message, partialCode, http.StatusInternalServerError, cause}
}

func NewConfigurationApiError(message string) ApiError {
	return apiErr{message, configurationCode, http.StatusInternalServerError, CauseList{}}
}
