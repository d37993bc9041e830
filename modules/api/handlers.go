package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/taskboard/modules/film"
	"github.com/example/taskboard/modules/task"
	"github.com/example/taskboard/modules/user"
)

// setupRoutes configures all HTTP routes.
func (m *APIModule) setupRoutes() {
	m.app.Get("/health", m.healthHandler)

	api := m.app.Group("/api/v1")

	tasks := api.Group("/tasks")
	tasks.Post("/", m.createTask)
	tasks.Get("/", m.listTasks)
	tasks.Get("/:id", m.getTask)
	tasks.Put("/:id", m.updateTask)
	tasks.Delete("/:id", m.deleteTask)
	tasks.Put("/:id/users/:user_id", m.assignUser)
	tasks.Delete("/:id/users/:user_id", m.unassignUser)

	users := api.Group("/users")
	users.Post("/", m.createUser)
	users.Get("/", m.listUsers)
	users.Get("/:id", m.getUser)

	api.Post("/films/recommendations", m.recommendFilms)
	api.Post("/films", m.addFilms)

	api.Post("/chat", m.chat)
	api.Post("/habit-trainer", m.habitPlan)
	api.Post("/emotion", m.emotion)
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
			"addr":   m.addr,
		},
	})
}

// createTask handles POST /api/v1/tasks.
func (m *APIModule) createTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid_request", "Invalid request body")
	}
	if req.Title == "" {
		return badRequest(c, "validation_error", "Title is required")
	}
	if req.Description == "" {
		return badRequest(c, "validation_error", "Description is required")
	}

	resp, err := m.tasks.CreateTask(c.Context(), &task.CreateTaskRequest{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Details:     toTaskDetails(req.Details),
	})
	if err != nil {
		return badRequest(c, "create_failed", err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// getTask handles GET /api/v1/tasks/:id.
func (m *APIModule) getTask(c *fiber.Ctx) error {
	resp, err := m.tasks.GetTask(c.Context(), c.Params("id"))
	if err != nil {
		return serverError(c, "get_failed", err)
	}
	if !resp.Found {
		return notFound(c, "Task not found")
	}
	return c.JSON(resp.Task)
}

// listTasks handles GET /api/v1/tasks.
func (m *APIModule) listTasks(c *fiber.Ctx) error {
	resp, err := m.tasks.ListTasks(c.Context())
	if err != nil {
		return serverError(c, "list_failed", err)
	}
	return c.JSON(resp)
}

// updateTask handles PUT /api/v1/tasks/:id.
func (m *APIModule) updateTask(c *fiber.Ctx) error {
	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid_request", "Invalid request body")
	}

	resp, err := m.tasks.UpdateTask(c.Context(), &task.UpdateTaskRequest{
		TaskID:      c.Params("id"),
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Details:     toTaskDetails(req.Details),
	})
	if err != nil {
		return badRequest(c, "update_failed", err.Error())
	}
	if !resp.Found {
		return notFound(c, "Task not found")
	}
	return c.JSON(resp.Task)
}

// deleteTask handles DELETE /api/v1/tasks/:id.
func (m *APIModule) deleteTask(c *fiber.Ctx) error {
	resp, err := m.tasks.DeleteTask(c.Context(), c.Params("id"))
	if err != nil {
		return serverError(c, "delete_failed", err)
	}
	if !resp.Deleted {
		return notFound(c, "Task not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// assignUser handles PUT /api/v1/tasks/:id/users/:user_id.
func (m *APIModule) assignUser(c *fiber.Ctx) error {
	resp, err := m.tasks.AssignUser(c.Context(), c.Params("id"), c.Params("user_id"))
	if err != nil {
		return serverError(c, "assign_failed", err)
	}
	if !resp.Assigned {
		return notFound(c, "Task or User not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// unassignUser handles DELETE /api/v1/tasks/:id/users/:user_id.
func (m *APIModule) unassignUser(c *fiber.Ctx) error {
	resp, err := m.tasks.UnassignUser(c.Context(), c.Params("id"), c.Params("user_id"))
	if err != nil {
		return serverError(c, "unassign_failed", err)
	}
	if !resp.Removed {
		return notFound(c, "Task or User not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// createUser handles POST /api/v1/users.
func (m *APIModule) createUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid_request", "Invalid request body")
	}
	if req.Username == "" {
		return badRequest(c, "validation_error", "Username is required")
	}
	if req.Email == "" {
		return badRequest(c, "validation_error", "Email is required")
	}

	resp, err := m.users.CreateUser(c.Context(), &user.CreateUserRequest{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return badRequest(c, "create_failed", err.Error())
	}
	if resp.DuplicateEmail {
		return badRequest(c, "duplicate_email", "Email already exists")
	}
	return c.Status(fiber.StatusCreated).JSON(resp.User)
}

// getUser handles GET /api/v1/users/:id.
func (m *APIModule) getUser(c *fiber.Ctx) error {
	resp, err := m.users.GetUser(c.Context(), c.Params("id"))
	if err != nil {
		return serverError(c, "get_failed", err)
	}
	if !resp.Found {
		return notFound(c, "User not found")
	}
	return c.JSON(resp.User)
}

// listUsers handles GET /api/v1/users.
func (m *APIModule) listUsers(c *fiber.Ctx) error {
	resp, err := m.users.ListUsers(c.Context())
	if err != nil {
		return serverError(c, "list_failed", err)
	}
	return c.JSON(resp)
}

// recommendFilms handles POST /api/v1/films/recommendations.
func (m *APIModule) recommendFilms(c *fiber.Ctx) error {
	var req RecommendFilmsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid_request", "Invalid request body")
	}
	resp, err := m.films.RecommendFilms(c.Context(), req.Query)
	if err != nil {
		return serverError(c, "recommend_failed", err)
	}
	return c.JSON(resp)
}

// addFilms handles POST /api/v1/films.
func (m *APIModule) addFilms(c *fiber.Ctx) error {
	var req film.AddFilmsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid_request", "Invalid request body")
	}
	resp, err := m.films.AddFilms(c.Context(), &req)
	if err != nil {
		return serverError(c, "add_failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// chat handles POST /api/v1/chat.
func (m *APIModule) chat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid_request", "Invalid request body")
	}
	resp, err := m.assistant.Chat(c.Context(), req.Message)
	if err != nil {
		return serverError(c, "chat_failed", err)
	}
	return c.JSON(resp)
}

// habitPlan handles POST /api/v1/habit-trainer.
func (m *APIModule) habitPlan(c *fiber.Ctx) error {
	var req HabitPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid_request", "Invalid request body")
	}
	if req.Goal == "" {
		return badRequest(c, "validation_error", "Goal is required")
	}
	resp, err := m.assistant.HabitPlan(c.Context(), req.Goal, req.Context)
	if err != nil {
		return serverError(c, "habit_plan_failed", err)
	}
	return c.JSON(resp)
}

// emotion handles POST /api/v1/emotion.
func (m *APIModule) emotion(c *fiber.Ctx) error {
	var req EmotionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid_request", "Invalid request body")
	}
	if req.Text == "" {
		return badRequest(c, "validation_error", "Text is required")
	}
	resp, err := m.assistant.Emotion(c.Context(), req.Text)
	if err != nil {
		return serverError(c, "emotion_failed", err)
	}
	return c.JSON(resp)
}

func toTaskDetails(p *DetailsPayload) *task.DetailsPayload {
	if p == nil {
		return nil
	}
	return &task.DetailsPayload{
		Priority: p.Priority,
		DueDate:  p.DueDate,
		Notes:    p.Notes,
	}
}

func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: code, Message: message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "not_found", Message: message})
}

func serverError(c *fiber.Ctx, code string, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: code, Message: err.Error()})
}
