package domain

import "net/http"

// Check describes a single HTTP call and the status it must answer with
type Check struct {
	Name           string
	Method         string
	Endpoint       string // Relative to the base URL
	ExpectedStatus int
	Payload        any // JSON request body, POST only
}

// SupportedMethod reports whether the runner can issue the check's method
func (c Check) SupportedMethod() bool {
	return c.Method == http.MethodGet || c.Method == http.MethodPost
}
