package repository

import (
	"context"

	"github.com/mithaighar/sweetshop/internal/domain/entity"
)

// SweetFilter narrows a search. Nil fields impose no constraint; provided
// fields compose with logical AND. Name and Category match by substring,
// price bounds are inclusive.
type SweetFilter struct {
	Name     *string
	Category *string
	MinPrice *float64
	MaxPrice *float64
}

// SweetUpdate is a partial update; nil fields keep their prior value.
type SweetUpdate struct {
	Name        *string
	Category    *string
	Price       *float64
	Quantity    *int
	Description *string
}

// SweetRepository defines the interface for inventory persistence.
// Purchase and Restock must be atomic read-modify-writes per record so that
// concurrent calls cannot lose updates or drive quantity negative.
type SweetRepository interface {
	List(ctx context.Context) ([]entity.Sweet, error)
	Search(ctx context.Context, f SweetFilter) ([]entity.Sweet, error)
	Get(ctx context.Context, id int64) (*entity.Sweet, error)
	// Create persists a new sweet and fills in ID and CreatedAt.
	Create(ctx context.Context, s *entity.Sweet) error
	Update(ctx context.Context, id int64, upd SweetUpdate) (*entity.Sweet, error)
	Delete(ctx context.Context, id int64) error
	// Purchase decrements quantity by one. Returns ErrOutOfStock when the
	// quantity is already zero, leaving the record unchanged.
	Purchase(ctx context.Context, id int64) (*entity.Sweet, error)
	// Restock increments quantity by amount and returns the updated record.
	Restock(ctx context.Context, id int64, amount int) (*entity.Sweet, error)
}
