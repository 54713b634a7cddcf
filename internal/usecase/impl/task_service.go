package impl

import (
	"context"
	"log/slog"

	deliverycontext "taskhub/internal/delivery/context"
	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	taskRepo repository.TaskRepository
	logger   *slog.Logger
}

// TaskServiceParams holds dependencies for taskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TaskRepo repository.TaskRepository
	Logger   *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		taskRepo: params.TaskRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListTasks returns every task owned by the given account.
func (srv *taskService) ListTasks(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error) {
	tasks, err := srv.taskRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list tasks", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}

// GetTask returns a single task owned by the given account. A task that does
// not exist and a task owned by someone else both answer ErrTaskNotFound.
func (srv *taskService) GetTask(ctx context.Context, ownerID, taskID uuid.UUID) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByIDAndOwner(ctx, taskID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTaskNotFound, "task lookup failed")
		}
		srv.log(ctx).Error("Failed to get task", slog.Any("taskID", taskID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get task")
	}

	return task, nil
}

// CreateTask persists a new task for the given owner. A missing status
// defaults to "todo"; an unknown status is rejected before touching storage.
func (srv *taskService) CreateTask(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateTaskInput) (*entity.Task, error) {
	status := input.Status
	if status == "" {
		status = entity.TaskStatusTodo
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown task status")
	}

	task := &entity.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		DueDate:     input.DueDate,
		OwnerID:     ownerID,
	}

	if err := srv.taskRepo.Create(ctx, task); err != nil {
		srv.log(ctx).Error("Failed to create task", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create task")
	}

	srv.log(ctx).Debug("Task created", slog.Any("taskID", task.ID), slog.Any("ownerID", ownerID))

	return task, nil
}

// UpdateTask applies a partial update to a task owned by the given account.
// Ownership is checked with an owner-scoped read before any column is
// written, and the updated task is re-read owner-scoped afterwards.
func (srv *taskService) UpdateTask(ctx context.Context, ownerID, taskID uuid.UUID, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	if _, err := srv.taskRepo.FindByIDAndOwner(ctx, taskID, ownerID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTaskNotFound, "task update rejected")
		}

		return nil, errors.Wrap(err, "failed to load task for update")
	}

	fields := make(map[string]any)
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown task status")
		}
		fields["status"] = string(*input.Status)
	}
	if input.DueDate != nil {
		fields["due_date"] = *input.DueDate
	}

	if len(fields) > 0 {
		if err := srv.taskRepo.UpdateFields(ctx, taskID, fields); err != nil {
			srv.log(ctx).Error("Failed to update task", slog.Any("taskID", taskID), slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to update task")
		}
	}

	// Re-read owner-scoped so a task deleted between the check and the
	// update still answers not-found instead of returning stale data.
	task, err := srv.taskRepo.FindByIDAndOwner(ctx, taskID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTaskNotFound, "task update rejected")
		}

		return nil, errors.Wrap(err, "failed to reload task after update")
	}

	srv.log(ctx).Debug("Task updated", slog.Any("taskID", taskID), slog.Any("ownerID", ownerID))

	return task, nil
}

// DeleteTask removes a task owned by the given account. Deleting a task that
// is absent or owned by someone else answers ErrTaskNotFound.
func (srv *taskService) DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error {
	if _, err := srv.taskRepo.FindByIDAndOwner(ctx, taskID, ownerID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return errors.Wrap(domainerrors.ErrTaskNotFound, "task delete rejected")
		}

		return errors.Wrap(err, "failed to load task for delete")
	}

	affected, err := srv.taskRepo.DeleteByIDAndOwner(ctx, taskID, ownerID)
	if err != nil {
		srv.log(ctx).Error("Failed to delete task", slog.Any("taskID", taskID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete task")
	}
	if affected == 0 {
		// The task disappeared between the check and the delete.
		return errors.Wrap(domainerrors.ErrTaskNotFound, "task delete rejected")
	}

	srv.log(ctx).Debug("Task deleted", slog.Any("taskID", taskID), slog.Any("ownerID", ownerID))

	return nil
}
