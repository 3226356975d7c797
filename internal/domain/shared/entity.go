package shared

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity provides the identity and audit fields shared by all entities.
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBaseEntity creates a base entity with a generated ID.
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch bumps the update timestamp.
func (e *BaseEntity) Touch() {
	e.UpdatedAt = time.Now()
}
