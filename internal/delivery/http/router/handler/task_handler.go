package handler

import (
	"log/slog"
	"net/http"
	"time"

	"taskhub/internal/delivery/http/response"
	"taskhub/internal/domain/entity"
	"taskhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createTaskRequest is the payload for POST /tasks.
type createTaskRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Status      string    `json:"status" validate:"omitempty,oneof=todo in_progress completed"`
	DueDate     time.Time `json:"dueDate" validate:"required"`
}

// updateTaskRequest is the payload for PUT /tasks/:id. Absent fields are left
// untouched.
type updateTaskRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1"`
	Description *string    `json:"description"`
	Status      *string    `json:"status" validate:"omitempty,oneof=todo in_progress completed"`
	DueDate     *time.Time `json:"dueDate"`
}

// taskResponse is the wire representation of a task.
type taskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	DueDate     time.Time `json:"dueDate"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toTaskResponse(task *entity.Task) *taskResponse {
	return &taskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		DueDate:     task.DueDate,
		OwnerID:     task.OwnerID.String(),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// TaskHandler holds dependencies for task-related handlers.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

// ownerID extracts the authenticated account id set by the auth middleware.
func ownerID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get("userID").(uuid.UUID)

	return id, ok
}

// taskID parses the :id path parameter. A malformed id cannot match any task,
// so it answers the same not-found as a missing one.
func taskID(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))

	return id, err == nil
}

// List handles GET /tasks and returns every task owned by the caller.
func (h *TaskHandler) List(c echo.Context) error {
	owner, ok := ownerID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized access")
	}

	tasks, err := h.uc.ListTasks(c.Request().Context(), owner)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*taskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, toTaskResponse(task))
	}

	return response.Data(c, http.StatusOK, out)
}

// Get handles GET /tasks/:id.
func (h *TaskHandler) Get(c echo.Context) error {
	owner, ok := ownerID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized access")
	}

	id, ok := taskID(c)
	if !ok {
		return response.NotFound(c, "Task not found")
	}

	task, err := h.uc.GetTask(c.Request().Context(), owner, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, toTaskResponse(task))
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(c echo.Context) error {
	owner, ok := ownerID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized access")
	}

	var input createTaskRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid task input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	task, err := h.uc.CreateTask(c.Request().Context(), owner, &usecase.CreateTaskInput{
		Title:       input.Title,
		Description: input.Description,
		Status:      entity.TaskStatus(input.Status),
		DueDate:     input.DueDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusCreated, toTaskResponse(task))
}

// Update handles PUT /tasks/:id with a partial payload.
func (h *TaskHandler) Update(c echo.Context) error {
	owner, ok := ownerID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized access")
	}

	id, ok := taskID(c)
	if !ok {
		return response.NotFound(c, "Task not found")
	}

	var input updateTaskRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid task input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	update := &usecase.UpdateTaskInput{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
	}
	if input.Status != nil {
		status := entity.TaskStatus(*input.Status)
		update.Status = &status
	}

	task, err := h.uc.UpdateTask(c.Request().Context(), owner, id, update)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, toTaskResponse(task))
}

// Delete handles DELETE /tasks/:id.
func (h *TaskHandler) Delete(c echo.Context) error {
	owner, ok := ownerID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized access")
	}

	id, ok := taskID(c)
	if !ok {
		return response.NotFound(c, "Task not found")
	}

	if err := h.uc.DeleteTask(c.Request().Context(), owner, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Task deleted")
}
