package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taskhub/internal/delivery/http/validator"
	"taskhub/internal/domain/entity"
	mockUC "taskhub/internal/mocks/usecase"
	"taskhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTaskContext(method, target, body string, owner uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Mimic what the auth middleware does for an authenticated request.
	c.Set("userID", owner)

	return c, rec
}

func sampleTask(owner uuid.UUID) *entity.Task {
	return &entity.Task{
		ID:          uuid.New(),
		Title:       "Write report",
		Description: "Quarterly report",
		Status:      entity.TaskStatusTodo,
		DueDate:     time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC),
		OwnerID:     owner,
	}
}

func TestTaskHandler_List(t *testing.T) {
	owner := uuid.New()
	task := sampleTask(owner)

	uc := mockUC.NewMockTaskUsecase(t)
	uc.EXPECT().ListTasks(mock.Anything, owner).Return([]*entity.Task{task}, nil)

	h := NewTaskHandler(uc, newDiscardLogger())
	c, rec := newTaskContext(http.MethodGet, "/tasks", "", owner)

	err := h.List(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), task.ID.String())
	assert.Contains(t, rec.Body.String(), `"ownerId":"`+owner.String()+`"`)
}

func TestTaskHandler_List_Empty(t *testing.T) {
	owner := uuid.New()

	uc := mockUC.NewMockTaskUsecase(t)
	uc.EXPECT().ListTasks(mock.Anything, owner).Return([]*entity.Task{}, nil)

	h := NewTaskHandler(uc, newDiscardLogger())
	c, rec := newTaskContext(http.MethodGet, "/tasks", "", owner)

	err := h.List(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestTaskHandler_Get_MalformedID(t *testing.T) {
	owner := uuid.New()

	uc := mockUC.NewMockTaskUsecase(t)

	h := NewTaskHandler(uc, newDiscardLogger())
	c, rec := newTaskContext(http.MethodGet, "/tasks/not-a-uuid", "", owner)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Get(c)
	require.NoError(t, err)

	// A malformed id is indistinguishable from a missing task.
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Task not found")
}

func TestTaskHandler_Create_Success(t *testing.T) {
	owner := uuid.New()
	task := sampleTask(owner)

	uc := mockUC.NewMockTaskUsecase(t)
	uc.EXPECT().
		CreateTask(mock.Anything, owner, mock.AnythingOfType("*usecase.CreateTaskInput")).
		Return(task, nil)

	h := NewTaskHandler(uc, newDiscardLogger())
	body := `{"title":"Write report","description":"Quarterly report","dueDate":"2026-09-15T12:00:00Z"}`
	c, rec := newTaskContext(http.MethodPost, "/tasks", body, owner)

	err := h.Create(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"todo"`)
}

func TestTaskHandler_Create_MissingTitle(t *testing.T) {
	owner := uuid.New()

	uc := mockUC.NewMockTaskUsecase(t)

	h := NewTaskHandler(uc, newDiscardLogger())
	body := `{"description":"no title","dueDate":"2026-09-15T12:00:00Z"}`
	c, _ := newTaskContext(http.MethodPost, "/tasks", body, owner)

	err := h.Create(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestTaskHandler_Create_UnknownStatus(t *testing.T) {
	owner := uuid.New()

	uc := mockUC.NewMockTaskUsecase(t)

	h := NewTaskHandler(uc, newDiscardLogger())
	body := `{"title":"Write report","status":"archived","dueDate":"2026-09-15T12:00:00Z"}`
	c, _ := newTaskContext(http.MethodPost, "/tasks", body, owner)

	err := h.Create(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestTaskHandler_Update_PartialBody(t *testing.T) {
	owner := uuid.New()
	task := sampleTask(owner)
	task.Status = entity.TaskStatusCompleted

	uc := mockUC.NewMockTaskUsecase(t)
	uc.EXPECT().
		UpdateTask(mock.Anything, owner, task.ID, mock.AnythingOfType("*usecase.UpdateTaskInput")).
		Run(func(ctx context.Context, ownerID uuid.UUID, taskID uuid.UUID, input *usecase.UpdateTaskInput) {
			require.NotNil(t, input.Status)
			assert.Equal(t, entity.TaskStatusCompleted, *input.Status)
			assert.Nil(t, input.Title)
			assert.Nil(t, input.Description)
			assert.Nil(t, input.DueDate)
		}).
		Return(task, nil)

	h := NewTaskHandler(uc, newDiscardLogger())
	c, rec := newTaskContext(http.MethodPut, "/tasks/"+task.ID.String(), `{"status":"completed"}`, owner)
	c.SetParamNames("id")
	c.SetParamValues(task.ID.String())

	err := h.Update(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"completed"`)
}

func TestTaskHandler_Delete_Success(t *testing.T) {
	owner := uuid.New()
	taskID := uuid.New()

	uc := mockUC.NewMockTaskUsecase(t)
	uc.EXPECT().DeleteTask(mock.Anything, owner, taskID).Return(nil)

	h := NewTaskHandler(uc, newDiscardLogger())
	c, rec := newTaskContext(http.MethodDelete, "/tasks/"+taskID.String(), "", owner)
	c.SetParamNames("id")
	c.SetParamValues(taskID.String())

	err := h.Delete(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestTaskHandler_MissingIdentity(t *testing.T) {
	uc := mockUC.NewMockTaskUsecase(t)

	h := NewTaskHandler(uc, newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.List(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
