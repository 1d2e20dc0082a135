package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "tasktracker/internal/errors"
	"tasktracker/internal/middleware"
	"tasktracker/internal/model"
	"tasktracker/internal/service"
)

// TaskHandler handles task endpoints. Every operation is scoped to the
// caller identified by the auth middleware.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List godoc
// @Summary List the caller's tasks
// @Tags tasks
// @Produce json
// @Security TokenAuth
// @Success 200 {array} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	identity, err := middleware.IdentityFrom(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.List(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// Get godoc
// @Summary Get one of the caller's tasks
// @Tags tasks
// @Produce json
// @Security TokenAuth
// @Param id path int true "Task ID"
// @Success 200 {object} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	identity, id, err := scope(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.Get(c.Request().Context(), id, identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Create godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body model.TaskInput true "Task"
// @Success 200 {object} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	identity, err := middleware.IdentityFrom(c)
	if err != nil {
		return err
	}
	in, ok := middleware.Payload[model.TaskInput](c)
	if !ok {
		return apperrors.ErrInvalidBody
	}

	task, err := h.taskService.Create(c.Request().Context(), identity.ID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Update godoc
// @Summary Replace a task's title, content, status and priority
// @Tags tasks
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Task ID"
// @Param request body model.TaskInput true "Task"
// @Success 200 {object} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	identity, id, err := scope(c)
	if err != nil {
		return err
	}
	in, ok := middleware.Payload[model.TaskInput](c)
	if !ok {
		return apperrors.ErrInvalidBody
	}

	task, err := h.taskService.Update(c.Request().Context(), id, identity.ID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Delete godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Security TokenAuth
// @Param id path int true "Task ID"
// @Success 200 {object} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	identity, id, err := scope(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.Delete(c.Request().Context(), id, identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// scope returns the caller and the task id from the path. An id that cannot
// name a task is reported as a missing task.
func scope(c echo.Context) (model.Identity, int64, error) {
	identity, err := middleware.IdentityFrom(c)
	if err != nil {
		return model.Identity{}, 0, err
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return model.Identity{}, 0, apperrors.ErrTaskNotFound
	}
	return identity, id, nil
}
