package response

import (
	"salon-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreatedResponse struct {
	ID string `json:"id"`
}

func Created(id uuid.UUID) CreatedResponse {
	return CreatedResponse{ID: id.String()}
}

// Page is the envelope of keyset-paginated lists.
type Page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
}

func NewPage[T any](items []T, next *queries.Cursor) Page[T] {
	if items == nil {
		items = []T{}
	}
	p := Page[T]{Items: items}
	if next != nil {
		p.NextCursor = next.After
	}
	return p
}

// List wraps unpaginated collections so every list answers with an object.
type List[T any] struct {
	Items []T `json:"items"`
}

func NewList[T any](items []T) List[T] {
	if items == nil {
		items = []T{}
	}
	return List[T]{Items: items}
}
