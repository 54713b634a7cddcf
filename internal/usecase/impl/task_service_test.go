package impl

import (
	"context"
	"testing"
	"time"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	mockRepo "taskhub/internal/mocks/repository"
	"taskhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// taskServiceFixtures holds all test dependencies for task service tests.
type taskServiceFixtures struct {
	service  usecase.TaskUsecase
	taskRepo *mockRepo.MockTaskRepository
}

func createTestTaskService(t *testing.T) taskServiceFixtures {
	taskRepo := mockRepo.NewMockTaskRepository(t)

	service := NewTaskService(TaskServiceParams{
		TaskRepo: taskRepo,
		Logger:   newDiscardLogger(),
	})

	return taskServiceFixtures{
		service:  service,
		taskRepo: taskRepo,
	}
}

func newTestTask(ownerID uuid.UUID) *entity.Task {
	return &entity.Task{
		ID:          uuid.New(),
		Title:       "Write report",
		Description: "Quarterly report",
		Status:      entity.TaskStatusTodo,
		DueDate:     time.Now().Add(48 * time.Hour),
		OwnerID:     ownerID,
	}
}

func TestTaskService_ListTasks(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	expected := []*entity.Task{newTestTask(ownerID), newTestTask(ownerID)}

	fx.taskRepo.EXPECT().FindByOwner(ctx, ownerID).Return(expected, nil)

	tasks, err := fx.service.ListTasks(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, expected, tasks)
}

func TestTaskService_ListTasks_Empty(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.taskRepo.EXPECT().FindByOwner(ctx, ownerID).Return([]*entity.Task{}, nil)

	tasks, err := fx.service.ListTasks(ctx, ownerID)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskService_GetTask_Success(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	expected := newTestTask(ownerID)

	fx.taskRepo.EXPECT().FindByIDAndOwner(ctx, expected.ID, ownerID).Return(expected, nil)

	task, err := fx.service.GetTask(ctx, ownerID, expected.ID)
	require.NoError(t, err)
	assert.Equal(t, expected, task)
}

func TestTaskService_GetTask_NotFound(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	taskID := uuid.New()

	fx.taskRepo.EXPECT().FindByIDAndOwner(ctx, taskID, ownerID).Return(nil, repository.ErrTaskNotFound)

	task, err := fx.service.GetTask(ctx, ownerID, taskID)
	assert.Error(t, err)
	assert.Nil(t, task)
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
}

func TestTaskService_CreateTask_Success(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	taskID := uuid.New()
	dueDate := time.Now().Add(24 * time.Hour)

	input := &usecase.CreateTaskInput{
		Title:       "Write report",
		Description: "Quarterly report",
		Status:      entity.TaskStatusInProgress,
		DueDate:     dueDate,
	}

	fx.taskRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Task")).
		Run(func(ctx context.Context, task *entity.Task) {
			task.ID = taskID
		}).
		Return(nil)

	task, err := fx.service.CreateTask(ctx, ownerID, input)
	require.NoError(t, err)
	assert.Equal(t, taskID, task.ID)
	assert.Equal(t, input.Title, task.Title)
	assert.Equal(t, entity.TaskStatusInProgress, task.Status)
	assert.Equal(t, ownerID, task.OwnerID)
}

func TestTaskService_CreateTask_DefaultStatus(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	input := &usecase.CreateTaskInput{
		Title:   "Write report",
		DueDate: time.Now().Add(24 * time.Hour),
	}

	fx.taskRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Task")).
		Return(nil)

	task, err := fx.service.CreateTask(ctx, ownerID, input)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusTodo, task.Status)
}

func TestTaskService_CreateTask_UnknownStatus(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	input := &usecase.CreateTaskInput{
		Title:   "Write report",
		Status:  entity.TaskStatus("archived"),
		DueDate: time.Now().Add(24 * time.Hour),
	}

	task, err := fx.service.CreateTask(ctx, ownerID, input)
	assert.Error(t, err)
	assert.Nil(t, task)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTaskService_UpdateTask_Partial(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	existing := newTestTask(ownerID)
	newTitle := "Write final report"

	updated := *existing
	updated.Title = newTitle

	fx.taskRepo.EXPECT().
		FindByIDAndOwner(ctx, existing.ID, ownerID).
		Return(existing, nil).
		Once()

	fx.taskRepo.EXPECT().
		UpdateFields(ctx, existing.ID, map[string]any{"title": newTitle}).
		Return(nil)

	fx.taskRepo.EXPECT().
		FindByIDAndOwner(ctx, existing.ID, ownerID).
		Return(&updated, nil).
		Once()

	task, err := fx.service.UpdateTask(ctx, ownerID, existing.ID, &usecase.UpdateTaskInput{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, task.Title)
	assert.Equal(t, existing.Description, task.Description)
	assert.Equal(t, existing.Status, task.Status)
}

func TestTaskService_UpdateTask_NoFields(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	existing := newTestTask(ownerID)

	// An empty payload touches nothing but still answers the current task.
	fx.taskRepo.EXPECT().
		FindByIDAndOwner(ctx, existing.ID, ownerID).
		Return(existing, nil).
		Times(2)

	task, err := fx.service.UpdateTask(ctx, ownerID, existing.ID, &usecase.UpdateTaskInput{})
	require.NoError(t, err)
	assert.Equal(t, existing, task)
}

func TestTaskService_UpdateTask_NotOwned(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	taskID := uuid.New()
	newTitle := "Hijacked"

	fx.taskRepo.EXPECT().
		FindByIDAndOwner(ctx, taskID, ownerID).
		Return(nil, repository.ErrTaskNotFound)

	task, err := fx.service.UpdateTask(ctx, ownerID, taskID, &usecase.UpdateTaskInput{Title: &newTitle})
	assert.Error(t, err)
	assert.Nil(t, task)
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
}

func TestTaskService_UpdateTask_UnknownStatus(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	existing := newTestTask(ownerID)
	badStatus := entity.TaskStatus("archived")

	fx.taskRepo.EXPECT().
		FindByIDAndOwner(ctx, existing.ID, ownerID).
		Return(existing, nil)

	task, err := fx.service.UpdateTask(ctx, ownerID, existing.ID, &usecase.UpdateTaskInput{Status: &badStatus})
	assert.Error(t, err)
	assert.Nil(t, task)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTaskService_DeleteTask_Success(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	existing := newTestTask(ownerID)

	fx.taskRepo.EXPECT().
		FindByIDAndOwner(ctx, existing.ID, ownerID).
		Return(existing, nil)

	fx.taskRepo.EXPECT().
		DeleteByIDAndOwner(ctx, existing.ID, ownerID).
		Return(int64(1), nil)

	err := fx.service.DeleteTask(ctx, ownerID, existing.ID)
	require.NoError(t, err)
}

func TestTaskService_DeleteTask_NotFound(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	taskID := uuid.New()

	fx.taskRepo.EXPECT().
		FindByIDAndOwner(ctx, taskID, ownerID).
		Return(nil, repository.ErrTaskNotFound)

	err := fx.service.DeleteTask(ctx, ownerID, taskID)
	assert.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
}

func TestTaskService_DeleteTask_RacedAway(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	existing := newTestTask(ownerID)

	fx.taskRepo.EXPECT().
		FindByIDAndOwner(ctx, existing.ID, ownerID).
		Return(existing, nil)

	// The row vanished between the ownership check and the delete.
	fx.taskRepo.EXPECT().
		DeleteByIDAndOwner(ctx, existing.ID, ownerID).
		Return(int64(0), nil)

	err := fx.service.DeleteTask(ctx, ownerID, existing.ID)
	assert.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
}

func TestTaskService_ListTasks_RepoError(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.taskRepo.EXPECT().
		FindByOwner(ctx, ownerID).
		Return(nil, errors.New("db error"))

	tasks, err := fx.service.ListTasks(ctx, ownerID)
	assert.Error(t, err)
	assert.Nil(t, tasks)
}
