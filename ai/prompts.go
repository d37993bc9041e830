package ai

import "fmt"

// Fixed prompt templates substituting caller-supplied text.

// TaskGuidancePrompt asks for guidance on a newly created task.
func TaskGuidancePrompt(title, description string) string {
	return fmt.Sprintf("Task: %s. Details: %s. Provide guidance on how to approach this task effectively.", title, description)
}

// UpdatedTaskGuidancePrompt asks for refreshed guidance after a task's
// description changed.
func UpdatedTaskGuidancePrompt(title, description string) string {
	return fmt.Sprintf("Updated task: %s. New details: %s. Provide updated guidance.", title, description)
}

// HabitPlanPrompt asks for a habit-building plan.
func HabitPlanPrompt(goal, context string) string {
	if context == "" {
		context = "No additional context provided."
	}
	return fmt.Sprintf("You are an AI Habit Trainer. A user wants to build the following habit: '%s'. "+
		"Context: %s "+
		"Provide a step-by-step, motivational, and practical plan to help the user build and sustain this habit. "+
		"Include tips for overcoming common obstacles and how to track progress.", goal, context)
}

// EmotionPrompt asks for the primary emotion(s) expressed in text.
func EmotionPrompt(text string) string {
	return fmt.Sprintf("Analyze the following text and identify the primary emotion(s) expressed. "+
		"Text: '%s'\n"+
		"Respond with a single word or a short phrase describing the emotion(s), such as 'joy', 'sadness', 'anger', 'fear', 'surprise', 'disgust', or 'neutral'. "+
		"If multiple emotions are present, list them separated by commas.", text)
}
