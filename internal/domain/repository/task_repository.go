package repository

import (
	"context"
	"errors"

	"taskhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when a task does not exist or does not belong to
// the requesting owner. Callers must not distinguish the two cases.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines the standard operations for task persistence.
// Every read and delete is scoped to an owner id so that ownership checks
// happen in the query itself rather than after the fact.
type TaskRepository interface {
	// FindByOwner retrieves all tasks belonging to the given owner.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error)

	// FindByIDAndOwner retrieves a single task only when it belongs to the given owner.
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Task, error)

	// Create persists a new task entity to the storage.
	Create(ctx context.Context, task *entity.Task) error

	// UpdateFields applies a partial update to the task with the given id.
	// Only the columns present in fields are written.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error

	// DeleteByIDAndOwner removes the task when it belongs to the given owner
	// and returns the number of rows affected.
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (int64, error)
}
