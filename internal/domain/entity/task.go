package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the progress state of a task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// IsValid reports whether the status is one of the known states.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}

	return false
}

// Task is a to-do item owned by exactly one user. A task is only ever
// returned, updated, or deleted through an operation whose caller identity
// equals OwnerID.
type Task struct {
	ID          uuid.UUID  // The unique identifier for the task, assigned by the database.
	Title       string     // Short description of the task. Always non-empty.
	Description string     // Optional longer description.
	Status      TaskStatus // Progress state, defaults to TaskStatusTodo.
	DueDate     time.Time  // When the task is due.
	OwnerID     uuid.UUID  // The user this task belongs to. Taken from the verified token, never from client input.
	CreatedAt   time.Time  // Timestamp of when this task was created.
	UpdatedAt   time.Time  // Timestamp of the last modification to this task.
}
