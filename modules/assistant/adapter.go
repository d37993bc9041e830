package assistant

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// assistantAdapter wraps ServiceContainer for type-safe cross-module
// calls. It implements the AssistantPort interface.
type assistantAdapter struct {
	container mono.ServiceContainer
}

// NewAssistantAdapter creates an adapter for the assistant services.
func NewAssistantAdapter(container mono.ServiceContainer) AssistantPort {
	if container == nil {
		panic("assistant adapter requires non-nil ServiceContainer")
	}
	return &assistantAdapter{container: container}
}

func (a *assistantAdapter) Chat(ctx context.Context, message string) (*ChatResponse, error) {
	req := ChatRequest{Message: message}
	var resp ChatResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "chat", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("chat service call failed: %w", err)
	}
	return &resp, nil
}

func (a *assistantAdapter) HabitPlan(ctx context.Context, goal, context string) (*ChatResponse, error) {
	req := HabitPlanRequest{Goal: goal, Context: context}
	var resp ChatResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "habit-plan", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("habit-plan service call failed: %w", err)
	}
	return &resp, nil
}

func (a *assistantAdapter) Emotion(ctx context.Context, text string) (*ChatResponse, error) {
	req := EmotionRequest{Text: text}
	var resp ChatResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "emotion", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("emotion service call failed: %w", err)
	}
	return &resp, nil
}
