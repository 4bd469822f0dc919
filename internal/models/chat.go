package models

// ChatIntent is the script the assistant picked for a message
type ChatIntent string

const (
	IntentWasteReduction ChatIntent = "waste_reduction"
	IntentPrediction     ChatIntent = "prediction"
	IntentMealPlanning   ChatIntent = "meal_planning"
	IntentGeneral        ChatIntent = "general"
)

// ChatRequest is a message sent to the assistant
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse is the assistant's reply with follow-up prompts.
type ChatResponse struct {
	SessionID   string     `json:"session_id,omitempty"`
	Text        string     `json:"text"`
	Suggestions []string   `json:"suggestions"`
	Intent      ChatIntent `json:"intent"`
}
