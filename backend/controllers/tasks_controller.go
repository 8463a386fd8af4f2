package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"studyhub/backend/metrics"
	"studyhub/backend/models"
	"studyhub/backend/repository"
	"studyhub/backend/utils"
)

type TasksController struct {
	Repo *repository.Repository
	Now  func() time.Time
}

func NewTasksController(repo *repository.Repository) *TasksController {
	return &TasksController{Repo: repo, Now: time.Now}
}

type CreateTaskRequest struct {
	Name       string            `json:"name" validate:"required,max=255" example:"Read chapter 3"`
	Difficulty models.Difficulty `json:"difficulty" validate:"omitempty,oneof=easy medium hard" example:"medium"`
}

// UpdateTaskRequest is a partial update; nil fields are left unchanged.
type UpdateTaskRequest struct {
	Name       *string            `json:"name" validate:"omitempty,max=255"`
	Difficulty *models.Difficulty `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Completed  *bool              `json:"completed"`
}

// GetTasks godoc
// @Summary List tasks
// @Description Returns the caller's tasks, newest first
// @Tags tasks
// @Produce json
// @Success 200 {array} models.Task
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /tasks [get]
func (tc *TasksController) GetTasks(c *fiber.Ctx) error {
	scope, err := scopeFor(c, tc.Repo)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	tasks, err := scope.Tasks(c.UserContext())
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch tasks")
	}
	return c.JSON(tasks)
}

// CreateTask godoc
// @Summary Create task
// @Tags tasks
// @Accept json
// @Produce json
// @Param input body CreateTaskRequest true "Task data"
// @Success 201 {object} models.Task
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /tasks [post]
func (tc *TasksController) CreateTask(c *fiber.Ctx) error {
	scope, err := scopeFor(c, tc.Repo)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input CreateTaskRequest
	if ok, err := bind(c, &input); !ok {
		return err
	}

	task := models.Task{Name: input.Name, Difficulty: input.Difficulty}
	if err := scope.CreateTask(c.UserContext(), &task); err != nil {
		return utils.InternalServerError(c, "Could not create task")
	}
	return utils.Created(c, task)
}

// UpdateTask godoc
// @Summary Update task
// @Description Partially updates a task. Toggling completed sets or clears completedAt.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param input body UpdateTaskRequest true "Fields to change"
// @Success 200 {object} models.Task
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /tasks/{id} [patch]
func (tc *TasksController) UpdateTask(c *fiber.Ctx) error {
	scope, err := scopeFor(c, tc.Repo)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input UpdateTaskRequest
	if ok, err := bind(c, &input); !ok {
		return err
	}

	ctx := c.UserContext()
	task, err := scope.Task(ctx, c.Params("id"))
	if err != nil {
		return storeError(c, err, "Task not found", "Could not fetch task")
	}

	if input.Name != nil {
		task.Name = *input.Name
	}
	if input.Difficulty != nil {
		task.Difficulty = *input.Difficulty
	}
	completedNow := false
	if input.Completed != nil {
		completedNow = *input.Completed && !task.Completed
		task.SetCompleted(*input.Completed, tc.Now())
	}

	if err := scope.SaveTask(ctx, task); err != nil {
		return storeError(c, err, "Task not found", "Could not update task")
	}
	if completedNow {
		metrics.RecordTaskCompleted(string(task.Difficulty))
	}
	return c.JSON(task)
}

// DeleteTask godoc
// @Summary Delete task
// @Tags tasks
// @Param id path string true "Task ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /tasks/{id} [delete]
func (tc *TasksController) DeleteTask(c *fiber.Ctx) error {
	scope, err := scopeFor(c, tc.Repo)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	if err := scope.DeleteTask(c.UserContext(), c.Params("id")); err != nil {
		return storeError(c, err, "Task not found", "Could not delete task")
	}
	return utils.NoContent(c)
}
