package assistant

import (
	"context"
	"strings"
	"testing"
)

// echoAugmenter returns the prompt it was given, prefixed for visibility.
type echoAugmenter struct{}

func (echoAugmenter) Complete(_ context.Context, prompt string) string {
	return "echo: " + prompt
}

func TestChat_PassesMessageThrough(t *testing.T) {
	module := NewModule(echoAugmenter{})

	resp, err := module.chat(context.Background(), ChatRequest{Message: "hello there"}, nil)
	if err != nil {
		t.Fatalf("chat() error = %v", err)
	}
	if resp.Response != "echo: hello there" {
		t.Errorf("unexpected response %q", resp.Response)
	}
}

func TestHabitPlan_BuildsPrompt(t *testing.T) {
	module := NewModule(echoAugmenter{})

	resp, err := module.habitPlan(context.Background(), HabitPlanRequest{Goal: "daily running"}, nil)
	if err != nil {
		t.Fatalf("habitPlan() error = %v", err)
	}
	if !strings.Contains(resp.Response, "daily running") {
		t.Errorf("prompt missing goal: %q", resp.Response)
	}
	if !strings.Contains(resp.Response, "Habit Trainer") {
		t.Errorf("unexpected template: %q", resp.Response)
	}
}

func TestEmotion_BuildsPrompt(t *testing.T) {
	module := NewModule(echoAugmenter{})

	resp, err := module.emotion(context.Background(), EmotionRequest{Text: "what a day"}, nil)
	if err != nil {
		t.Fatalf("emotion() error = %v", err)
	}
	if !strings.Contains(resp.Response, "what a day") {
		t.Errorf("prompt missing text: %q", resp.Response)
	}
}

func TestChat_ErrorPayloadIsDataNotError(t *testing.T) {
	module := NewModule(failingAugmenter{})

	resp, err := module.chat(context.Background(), ChatRequest{Message: "hello"}, nil)
	if err != nil {
		t.Fatalf("chat() must not raise on upstream failure, got %v", err)
	}
	if !strings.HasPrefix(resp.Response, "Error: ") {
		t.Errorf("expected the folded error payload, got %q", resp.Response)
	}
}

type failingAugmenter struct{}

func (failingAugmenter) Complete(context.Context, string) string {
	return "Error: upstream unreachable"
}
