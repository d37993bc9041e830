package assistant

import "context"

// Augmenter is the boundary to the AI augmentation client. Upstream
// failures arrive folded into the payload text, never as errors.
type Augmenter interface {
	Complete(ctx context.Context, prompt string) string
}

// ChatRequest is a free-form message for the assistant.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the completion payload (or its error marker).
type ChatResponse struct {
	Response string `json:"response"`
}

// HabitPlanRequest asks for a habit-building plan.
type HabitPlanRequest struct {
	Goal    string `json:"goal"`
	Context string `json:"context,omitempty"`
}

// EmotionRequest asks for the primary emotion(s) expressed in a text.
type EmotionRequest struct {
	Text string `json:"text"`
}

// AssistantPort is the contract driving adapters use to reach the
// assistant services.
type AssistantPort interface {
	Chat(ctx context.Context, message string) (*ChatResponse, error)
	HabitPlan(ctx context.Context, goal, context string) (*ChatResponse, error)
	Emotion(ctx context.Context, text string) (*ChatResponse, error)
}
