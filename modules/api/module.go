package api

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/taskboard/modules/assistant"
	"github.com/example/taskboard/modules/film"
	"github.com/example/taskboard/modules/task"
	"github.com/example/taskboard/modules/user"
)

// APIModule is the driving adapter that exposes REST endpoints. It is a
// thin pass-through: request payloads go down to the service ports,
// returned values and absent/duplicate markers come back up as status
// codes.
type APIModule struct {
	app       *fiber.App
	addr      string
	tasks     task.TaskPort
	users     user.UserPort
	films     film.FilmPort
	assistant assistant.AssistantPort
}

var _ mono.Module = (*APIModule)(nil)
var _ mono.DependentModule = (*APIModule)(nil)
var _ mono.HealthCheckableModule = (*APIModule)(nil)

// NewModule creates a new APIModule listening on HTTP_PORT (default 3000).
func NewModule() *APIModule {
	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "3000"
	}
	return &APIModule{addr: ":" + port}
}

func (m *APIModule) Name() string {
	return "api"
}

func (m *APIModule) Dependencies() []string {
	return []string{"task", "user", "film", "assistant"}
}

func (m *APIModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "task":
		m.tasks = task.NewTaskAdapter(container)
	case "user":
		m.users = user.NewUserAdapter(container)
	case "film":
		m.films = film.NewFilmAdapter(container)
	case "assistant":
		m.assistant = assistant.NewAssistantAdapter(container)
	}
}

func (m *APIModule) Start(_ context.Context) error {
	if m.tasks == nil || m.users == nil || m.films == nil || m.assistant == nil {
		return fmt.Errorf("api dependencies not set")
	}

	m.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler,
	})

	m.app.Use(recover.New())
	m.setupRoutes()

	// Server availability is verified via Health().
	go func() {
		if err := m.app.Listen(m.addr); err != nil {
			log.Printf("[api] HTTP server error: %v", err)
		}
	}()

	log.Printf("[api] HTTP server started on %s", m.addr)
	return nil
}

func (m *APIModule) Stop(_ context.Context) error {
	if m.app == nil {
		return nil
	}
	log.Println("[api] Shutting down HTTP server...")
	return m.app.Shutdown()
}

func (m *APIModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"addr": m.addr,
		},
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(ErrorResponse{
		Error:   "server_error",
		Message: message,
	})
}
