package models

import (
	"encoding/json"
	"net/http"
)

// Problem represents an RFC7807 error response, served with
// Content-Type: application/problem+json.
type Problem struct {
	// Type is a URI reference that identifies the problem type.
	Type string `json:"type"`

	// Title is a short, human-readable summary of the problem type.
	Title string `json:"title"`

	// Status is the HTTP status code for this occurrence of the problem.
	Status int `json:"status"`

	// Detail is a human-readable explanation specific to this occurrence.
	Detail string `json:"detail,omitempty"`

	// Message duplicates Detail for clients that predate the problem+json
	// migration and still read a flat message field.
	Message string `json:"message,omitempty"`

	// Instance is a URI reference that identifies the specific occurrence.
	Instance string `json:"instance,omitempty"`

	// TraceID is the request trace identifier for debugging.
	TraceID string `json:"traceId"`
}

// ProblemType constants for standard error types.
const (
	ProblemTypeValidation      = "https://api.stationfinder.nz/problems/validation-error"
	ProblemTypeNotFound        = "https://api.stationfinder.nz/problems/not-found"
	ProblemTypeTooManyRequests = "https://api.stationfinder.nz/problems/too-many-requests"
	ProblemTypeInternal        = "https://api.stationfinder.nz/problems/internal-error"
	ProblemTypeUnavailable     = "https://api.stationfinder.nz/problems/service-unavailable"
)

// NewProblem creates a new Problem with the given parameters.
func NewProblem(problemType, title string, status int, traceID string) *Problem {
	return &Problem{
		Type:    problemType,
		Title:   title,
		Status:  status,
		TraceID: traceID,
	}
}

// WithDetail sets the detail message (and its legacy mirror) on the Problem.
func (p *Problem) WithDetail(detail string) *Problem {
	p.Detail = detail
	p.Message = detail
	return p
}

// NewBadRequest creates a 400 Bad Request problem.
func NewBadRequest(traceID, detail string) *Problem {
	return NewProblem(ProblemTypeValidation, "Bad Request", http.StatusBadRequest, traceID).WithDetail(detail)
}

// NewNotFound creates a 404 Not Found problem.
func NewNotFound(traceID, detail string) *Problem {
	return NewProblem(ProblemTypeNotFound, "Not Found", http.StatusNotFound, traceID).WithDetail(detail)
}

// NewTooManyRequests creates a 429 Too Many Requests problem.
func NewTooManyRequests(traceID, detail string) *Problem {
	return NewProblem(ProblemTypeTooManyRequests, "Too Many Requests", http.StatusTooManyRequests, traceID).WithDetail(detail)
}

// NewInternalError creates a 500 Internal Server Error problem.
func NewInternalError(traceID, detail string) *Problem {
	return NewProblem(ProblemTypeInternal, "Internal Server Error", http.StatusInternalServerError, traceID).WithDetail(detail)
}

// NewServiceUnavailable creates a 503 Service Unavailable problem.
func NewServiceUnavailable(traceID, detail string) *Problem {
	return NewProblem(ProblemTypeUnavailable, "Service Unavailable", http.StatusServiceUnavailable, traceID).WithDetail(detail)
}

// Write writes the Problem as JSON to the ResponseWriter.
func (p *Problem) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.Header().Set("X-Request-Id", p.TraceID)
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}
