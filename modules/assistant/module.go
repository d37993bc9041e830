package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"

	"github.com/example/taskboard/ai"
)

// AssistantModule exposes the free-standing augmentation features: chat,
// habit plans and emotion labelling. It holds no state of its own.
type AssistantModule struct {
	augmenter Augmenter
}

var _ mono.Module = (*AssistantModule)(nil)
var _ mono.ServiceProviderModule = (*AssistantModule)(nil)

// NewModule creates an assistant module with the augmenter injected.
func NewModule(augmenter Augmenter) *AssistantModule {
	return &AssistantModule{augmenter: augmenter}
}

func (m *AssistantModule) Name() string {
	return "assistant"
}

func (m *AssistantModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "chat", json.Unmarshal, json.Marshal, m.chat,
	); err != nil {
		return fmt.Errorf("failed to register chat service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "habit-plan", json.Unmarshal, json.Marshal, m.habitPlan,
	); err != nil {
		return fmt.Errorf("failed to register habit-plan service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "emotion", json.Unmarshal, json.Marshal, m.emotion,
	); err != nil {
		return fmt.Errorf("failed to register emotion service: %w", err)
	}

	log.Printf("[assistant] Registered services: chat, habit-plan, emotion")
	return nil
}

// chat passes the message through unchanged.
func (m *AssistantModule) chat(ctx context.Context, req ChatRequest, _ *mono.Msg) (ChatResponse, error) {
	return ChatResponse{Response: m.augmenter.Complete(ctx, req.Message)}, nil
}

// habitPlan builds the habit-trainer prompt.
func (m *AssistantModule) habitPlan(ctx context.Context, req HabitPlanRequest, _ *mono.Msg) (ChatResponse, error) {
	return ChatResponse{Response: m.augmenter.Complete(ctx, ai.HabitPlanPrompt(req.Goal, req.Context))}, nil
}

// emotion builds the emotion-label prompt.
func (m *AssistantModule) emotion(ctx context.Context, req EmotionRequest, _ *mono.Msg) (ChatResponse, error) {
	return ChatResponse{Response: m.augmenter.Complete(ctx, ai.EmotionPrompt(req.Text))}, nil
}

func (m *AssistantModule) Start(_ context.Context) error {
	if m.augmenter == nil {
		return fmt.Errorf("augmenter dependency not set")
	}
	log.Println("[assistant] Module started")
	return nil
}

func (m *AssistantModule) Stop(_ context.Context) error {
	log.Println("[assistant] Module stopped")
	return nil
}
