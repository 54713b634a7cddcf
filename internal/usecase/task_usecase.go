package usecase

import (
	"context"
	"time"

	"taskhub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateTaskInput defines the data required to create a new task.
// Status is optional and defaults to "todo" when empty.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      entity.TaskStatus
	DueDate     time.Time
}

// UpdateTaskInput defines a partial update to an existing task.
// Nil fields are left untouched.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *entity.TaskStatus
	DueDate     *time.Time
}

// TaskUsecase defines the interface for task-related business operations.
// Every operation is scoped to the owner extracted from the access token,
// so one account can never observe or modify another account's tasks.
type TaskUsecase interface {
	ListTasks(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error)
	GetTask(ctx context.Context, ownerID, taskID uuid.UUID) (*entity.Task, error)
	CreateTask(ctx context.Context, ownerID uuid.UUID, input *CreateTaskInput) (*entity.Task, error)
	UpdateTask(ctx context.Context, ownerID, taskID uuid.UUID, input *UpdateTaskInput) (*entity.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error
}
