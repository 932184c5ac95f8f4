// Package model holds the request and response types shared by the
// course APIs. Each domain lives in its own sub-package.
package model

// PaginationQuery is the ?limit=&offset= pair accepted by list endpoints.
type PaginationQuery struct {
	Limit  *int `query:"limit" validate:"omitempty,min=1"`
	Offset *int `query:"offset" validate:"omitempty,min=0"`
}

// LimitOr returns the requested limit or def when none was sent.
func (q PaginationQuery) LimitOr(def int) int {
	if q.Limit == nil {
		return def
	}
	return *q.Limit
}

// OffsetOrZero returns the requested offset or 0.
func (q PaginationQuery) OffsetOrZero() int {
	if q.Offset == nil {
		return 0
	}
	return *q.Offset
}

// MessageResponse wraps the plain string results of seed endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// EmptyPayload is the request of endpoints that take no input.
type EmptyPayload struct{}

func (p *EmptyPayload) Validate() error {
	return nil
}
