package api

import "github.com/rpupo63/portfolio-site/forms"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	pageHandler    pageHandler
	contactHandler contactHandler
	adminHandler   adminHandler
	authHandler    authHandler
	mediaHandler   mediaHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}

// ValidationErrorResponse lists every field that failed validation.
type ValidationErrorResponse struct {
	Error  string             `json:"error"`
	Status string             `json:"status"`
	Fields []forms.FieldError `json:"fields"`
}

// ListResponse is the envelope for admin listings.
type ListResponse[T any] struct {
	Items []*T `json:"items"`
	Total int  `json:"total"`
}

func newListResponse[T any](items []*T) ListResponse[T] {
	if items == nil {
		items = []*T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse carries a bearer token for /admin/api.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// FeaturedRequest toggles a project's featured flag.
type FeaturedRequest struct {
	Featured *bool `json:"featured"`
}
