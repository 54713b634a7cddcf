package postgres

import (
	"context"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// taskRepository implements the repository.TaskRepository interface using GORM.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

// FindByOwner retrieves all tasks belonging to the given owner, newest first.
func (repo *taskRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error) {
	var taskMs []*model.TaskModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&taskMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tasks by owner")
	}

	tasks := make([]*entity.Task, 0, len(taskMs))
	for _, taskM := range taskMs {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return tasks, nil
}

// FindByIDAndOwner retrieves a single task only when it belongs to the given owner.
// A task owned by someone else is indistinguishable from a missing one.
func (repo *taskRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Task, error) {
	var taskM model.TaskModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by id and owner")
	}

	return toTaskDomain(&taskM), nil
}

// Create persists a new task entity to the database.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required task information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	// Update the task entity with the generated ID and timestamps
	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// UpdateFields applies a partial update to the task with the given id.
func (repo *taskRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update task")
	}

	return nil
}

// DeleteByIDAndOwner removes the task when it belongs to the given owner
// and reports the number of rows affected.
func (repo *taskRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.TaskModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete task")
	}

	return result.RowsAffected, nil
}

// toTaskDomain converts a GORM TaskModel to a domain Task entity.
func toTaskDomain(data *model.TaskModel) *entity.Task {
	if data == nil {
		return nil
	}

	return &entity.Task{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Status:      entity.TaskStatus(data.Status),
		DueDate:     data.DueDate,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromTaskDomain converts a domain Task entity to a GORM TaskModel for persistence.
func fromTaskDomain(data *entity.Task) *model.TaskModel {
	if data == nil {
		return nil
	}

	return &model.TaskModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Status:      string(data.Status),
		DueDate:     data.DueDate,
		OwnerID:     data.OwnerID,
	}
}
