package main

import (
	"context"
	"log"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"

	"github.com/example/taskboard/ai"
	"github.com/example/taskboard/modules/api"
	"github.com/example/taskboard/modules/assistant"
	filmmodule "github.com/example/taskboard/modules/film"
	"github.com/example/taskboard/modules/notification"
	taskmodule "github.com/example/taskboard/modules/task"
	usermodule "github.com/example/taskboard/modules/user"
	"github.com/example/taskboard/storage"
	"github.com/example/taskboard/storage/jsonfile"
	"github.com/example/taskboard/storage/mongodb"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Taskboard - task tracking with AI guidance and film search ===")

	ctx := context.Background()

	// Build the storage gateway once; the backend is chosen here, never
	// by branching inside call sites.
	store, closeStore, err := buildStore(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	augmenter := ai.New(buildAIConfig())

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Order: independent modules first, then modules with dependencies.
	app.Register(usermodule.NewModule(store))
	app.Register(filmmodule.NewModule(store))
	app.Register(assistant.NewModule(augmenter))
	app.Register(notification.NewModule())
	app.Register(taskmodule.NewModule(store, augmenter))
	app.Register(api.NewModule())

	if err := app.Start(ctx); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	wait := gfshutdown.GracefulShutdown(
		ctx,
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
			"storage": closeStore,
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

// buildStore selects the storage backend from STORAGE_BACKEND: "mongo"
// dials MongoDB, anything else uses the whole-file JSON store.
func buildStore(ctx context.Context) (storage.Store, gfshutdown.Operation, error) {
	if os.Getenv("STORAGE_BACKEND") == "mongo" {
		uri := os.Getenv("MONGO_URI")
		if uri == "" {
			uri = "mongodb://localhost:27017"
		}
		dbName := os.Getenv("MONGO_DB")
		if dbName == "" {
			dbName = "taskboard"
		}

		dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		store, err := mongodb.Dial(dialCtx, uri, dbName)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("Using MongoDB storage (%s/%s)", uri, dbName)
		return store, store.Close, nil
	}

	path := os.Getenv("DB_FILE")
	if path == "" {
		path = "local_db.json"
	}
	log.Printf("Using JSON file storage (%s)", path)
	noop := func(context.Context) error { return nil }
	return jsonfile.New(path), noop, nil
}

// buildAIConfig reads the Groq connection settings from the environment.
func buildAIConfig() ai.Config {
	cfg := ai.DefaultConfig()
	cfg.APIKey = os.Getenv("GROQ_API_KEY")
	if base := os.Getenv("GROQ_BASE_URL"); base != "" {
		cfg.BaseURL = base
	}
	if model := os.Getenv("GROQ_MODEL"); model != "" {
		cfg.Model = model
	}
	return cfg
}

func printStartupInfo() {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("REST API Endpoints (http://localhost:3000):")
	log.Println("  POST   /api/v1/tasks                      - Create a task (AI guidance attached)")
	log.Println("  GET    /api/v1/tasks                      - List all tasks")
	log.Println("  GET    /api/v1/tasks/:id                  - Get a task by ID")
	log.Println("  PUT    /api/v1/tasks/:id                  - Update a task")
	log.Println("  DELETE /api/v1/tasks/:id                  - Delete a task")
	log.Println("  PUT    /api/v1/tasks/:id/users/:user_id   - Assign a user")
	log.Println("  DELETE /api/v1/tasks/:id/users/:user_id   - Unassign a user")
	log.Println("  POST   /api/v1/users                      - Create a user")
	log.Println("  GET    /api/v1/users                      - List all users")
	log.Println("  GET    /api/v1/users/:id                  - Get a user by ID")
	log.Println("  POST   /api/v1/films/recommendations      - Ranked film search")
	log.Println("  POST   /api/v1/chat                       - Free-form chat")
	log.Println("  POST   /api/v1/habit-trainer              - Habit-building plan")
	log.Println("  POST   /api/v1/emotion                    - Emotion labelling")
	log.Println("  GET    /health                            - Health check")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
