package task

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-monolith/mono"
	"github.com/google/uuid"

	"github.com/example/taskboard/ai"
	domain "github.com/example/taskboard/domain/task"
	"github.com/example/taskboard/events"
	"github.com/example/taskboard/storage"
)

// createTask handles the create-task service request. The augmentation
// call is synchronous and its result is persisted whatever it is, so the
// write succeeds at the storage level even when the upstream failed.
func (m *TaskModule) createTask(ctx context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return TaskResponse{}, fmt.Errorf("title is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return TaskResponse{}, fmt.Errorf("description is required")
	}

	status := domain.StatusPending
	if req.Status != "" {
		status = domain.Status(req.Status)
		if !status.Valid() {
			return TaskResponse{}, fmt.Errorf("invalid status: %s", req.Status)
		}
	}

	details, err := detailsFromPayload(req.Details)
	if err != nil {
		return TaskResponse{}, err
	}

	aiResponse := m.augmenter.Complete(ctx, ai.TaskGuidancePrompt(req.Title, req.Description))

	now := time.Now().UTC()
	newTask := &domain.Task{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		AIResponse:  aiResponse,
		Users:       []string{},
		Details:     details,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := m.store.InsertTask(ctx, newTask); err != nil {
		return TaskResponse{}, fmt.Errorf("failed to save task: %w", err)
	}

	if m.eventBus != nil {
		event := events.TaskCreatedEvent{
			TaskID:    newTask.ID,
			Title:     newTask.Title,
			CreatedAt: newTask.CreatedAt,
		}
		if err := events.TaskCreatedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskCreated event for task %s: %v", newTask.ID, err)
		}
	}

	return toTaskResponse(newTask), nil
}

// getTask handles the get-task service request.
func (m *TaskModule) getTask(ctx context.Context, req GetTaskRequest, _ *mono.Msg) (GetTaskResponse, error) {
	t, err := m.store.GetTask(ctx, req.TaskID)
	if errors.Is(err, storage.ErrNotFound) {
		return GetTaskResponse{Found: false}, nil
	}
	if err != nil {
		return GetTaskResponse{}, fmt.Errorf("failed to load task: %w", err)
	}
	resp := toTaskResponse(t)
	return GetTaskResponse{Task: &resp, Found: true}, nil
}

// listTasks handles the list-tasks service request.
func (m *TaskModule) listTasks(ctx context.Context, _ ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	tasks, err := m.store.ListTasks(ctx)
	if err != nil {
		return ListTasksResponse{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	resp := ListTasksResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
		Total: len(tasks),
	}
	for i := range tasks {
		resp.Tasks = append(resp.Tasks, toTaskResponse(&tasks[i]))
	}
	return resp, nil
}

// updateTask handles the update-task service request. The stored record
// is read through the gateway first, never from a cache; a new
// description re-invokes the augmenter and overwrites ai_response.
func (m *TaskModule) updateTask(ctx context.Context, req UpdateTaskRequest, _ *mono.Msg) (UpdateTaskResponse, error) {
	existing, err := m.store.GetTask(ctx, req.TaskID)
	if errors.Is(err, storage.ErrNotFound) {
		return UpdateTaskResponse{Found: false}, nil
	}
	if err != nil {
		return UpdateTaskResponse{}, fmt.Errorf("failed to load task: %w", err)
	}

	now := time.Now().UTC()
	patch := storage.TaskPatch{UpdatedAt: &now}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return UpdateTaskResponse{}, fmt.Errorf("title must not be empty")
		}
		patch.Title = req.Title
	}
	if req.Status != nil {
		status := domain.Status(*req.Status)
		if !status.Valid() {
			return UpdateTaskResponse{}, fmt.Errorf("invalid status: %s", *req.Status)
		}
		patch.Status = &status
	}
	if req.Details != nil {
		details, err := detailsFromPayload(req.Details)
		if err != nil {
			return UpdateTaskResponse{}, err
		}
		patch.Details = details
	}

	reaugmented := false
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return UpdateTaskResponse{}, fmt.Errorf("description must not be empty")
		}
		title := existing.Title
		if req.Title != nil {
			title = *req.Title
		}
		aiResponse := m.augmenter.Complete(ctx, ai.UpdatedTaskGuidancePrompt(title, *req.Description))
		patch.Description = req.Description
		patch.AIResponse = &aiResponse
		reaugmented = true
	}

	updated, err := m.store.UpdateTask(ctx, req.TaskID, patch)
	if errors.Is(err, storage.ErrNotFound) {
		// Deleted between the read and the merge.
		return UpdateTaskResponse{Found: false}, nil
	}
	if err != nil {
		return UpdateTaskResponse{}, fmt.Errorf("failed to update task: %w", err)
	}

	if m.eventBus != nil {
		event := events.TaskUpdatedEvent{
			TaskID:      updated.ID,
			Title:       updated.Title,
			Reaugmented: reaugmented,
			UpdatedAt:   updated.UpdatedAt,
		}
		if err := events.TaskUpdatedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskUpdated event for task %s: %v", updated.ID, err)
		}
	}

	resp := toTaskResponse(updated)
	return UpdateTaskResponse{Task: &resp, Found: true}, nil
}

// deleteTask handles the delete-task service request.
func (m *TaskModule) deleteTask(ctx context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	deleted, err := m.store.DeleteTask(ctx, req.TaskID)
	if err != nil {
		return DeleteTaskResponse{}, fmt.Errorf("failed to delete task: %w", err)
	}

	if deleted && m.eventBus != nil {
		event := events.TaskDeletedEvent{
			TaskID:    req.TaskID,
			DeletedAt: time.Now().UTC(),
		}
		if err := events.TaskDeletedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskDeleted event for task %s: %v", req.TaskID, err)
		}
	}

	return DeleteTaskResponse{Deleted: deleted}, nil
}

// assignUser handles the assign-user service request. Existence of both
// entities is the gateway's guarantee; the service adds no extra check.
func (m *TaskModule) assignUser(ctx context.Context, req AssignUserRequest, _ *mono.Msg) (AssignUserResponse, error) {
	assigned, err := m.store.AddUserToTask(ctx, req.TaskID, req.UserID)
	if err != nil {
		return AssignUserResponse{}, fmt.Errorf("failed to assign user: %w", err)
	}
	return AssignUserResponse{Assigned: assigned}, nil
}

// unassignUser handles the unassign-user service request.
func (m *TaskModule) unassignUser(ctx context.Context, req UnassignUserRequest, _ *mono.Msg) (UnassignUserResponse, error) {
	removed, err := m.store.RemoveUserFromTask(ctx, req.TaskID, req.UserID)
	if err != nil {
		return UnassignUserResponse{}, fmt.Errorf("failed to unassign user: %w", err)
	}
	return UnassignUserResponse{Removed: removed}, nil
}

// detailsFromPayload converts the wire sub-record to the domain form,
// defaulting priority to medium.
func detailsFromPayload(p *DetailsPayload) (*domain.Details, error) {
	if p == nil {
		return nil, nil
	}
	priority := domain.PriorityMedium
	if p.Priority != "" {
		priority = domain.Priority(p.Priority)
		if !priority.Valid() {
			return nil, fmt.Errorf("invalid priority: %s", p.Priority)
		}
	}
	return &domain.Details{
		Priority: priority,
		DueDate:  p.DueDate,
		Notes:    p.Notes,
	}, nil
}

// toTaskResponse converts a domain task to its wire form.
func toTaskResponse(t *domain.Task) TaskResponse {
	users := t.Users
	if users == nil {
		users = []string{}
	}
	var details *DetailsPayload
	if t.Details != nil {
		details = &DetailsPayload{
			Priority: string(t.Details.Priority),
			DueDate:  t.Details.DueDate,
			Notes:    t.Details.Notes,
		}
	}
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		AIResponse:  t.AIResponse,
		Users:       users,
		Details:     details,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
