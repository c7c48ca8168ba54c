package scim

import (
	"github.com/openkcm/common-sdk/pkg/pointers"
)

// SearchRequest is the .search POST payload.
type SearchRequest struct {
	Schemas            []string `json:"schemas,omitzero"`
	Attributes         []string `json:"attributes,omitzero"`
	ExcludedAttributes []string `json:"excludedAttributes,omitzero"`
	Filter             *string  `json:"filter,omitzero"`
	StartIndex         int64    `json:"startIndex,omitzero"`
	Count              *int64   `json:"count,omitzero"`
}

// NewSearchRequest returns a SearchRequest with the message schema declared
// and first-page defaults.
func NewSearchRequest() *SearchRequest {
	return &SearchRequest{
		Schemas:    []string{SearchRequestSchema},
		StartIndex: 1,
		Count:      pointers.To(int64(100)),
	}
}

// WithFilter sets the request filter from an expression. A nil or null
// expression leaves the filter unset.
func (r *SearchRequest) WithFilter(expr FilterExpression) *SearchRequest {
	if expr == nil || (expr == NullFilterExpression{}) {
		return r
	}

	r.Filter = pointers.To(expr.String())

	return r
}

// ListQuery carries the query parameters of a GET listing.
type ListQuery struct {
	Filter     string `json:"filter"`
	StartIndex int64  `json:"startIndex"`
	Count      *int64 `json:"count,omitzero"`
}

// ListResponse is a page of resources as returned by a listing endpoint.
//
//nolint:tagliatelle
type ListResponse[T any] struct {
	Schemas      []string `json:"schemas,omitzero"`
	TotalResults int64    `json:"totalResults"`
	ItemsPerPage int64    `json:"itemsPerPage"`
	StartIndex   int64    `json:"startIndex"`
	Resources    []T      `json:"Resources,omitzero"`
}

// NewListResponse returns an empty first page with the message schema
// declared.
func NewListResponse[T any]() *ListResponse[T] {
	return &ListResponse[T]{
		Schemas:    []string{ListResponseSchema},
		StartIndex: 1,
	}
}
