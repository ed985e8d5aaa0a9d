package domain

import (
	"time"

	userdomain "github.com/itsSauraj/recipe-api/internal/auth/domain"
)

type ID string

// Recipe is a mutable record owned by exactly one user. The three text
// fields are independently optional; nil means the column is NULL.
type Recipe struct {
	ID           ID
	Name         *string
	Ingredients  *string
	Instructions *string
	OwnerID      userdomain.ID
	CreatedAt    time.Time
}

// Patch carries a partial update. Nil fields are left unchanged in the
// stored record; non-nil fields overwrite.
type Patch struct {
	Name         *string
	Ingredients  *string
	Instructions *string
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Ingredients == nil && p.Instructions == nil
}
