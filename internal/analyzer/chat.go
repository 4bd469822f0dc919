package analyzer

import (
	"strings"
	"time"

	"wastewise/internal/models"
)

const predictionTemplate = "I predict you'll waste about {{.tomorrow_waste}}g tomorrow. " +
	"Your weekly efficiency is {{.efficiency}}%. Would you like tips to improve this?"

type intentRule struct {
	intent   models.ChatIntent
	keywords []string
}

// checked in order, first match wins
var intentRules = []intentRule{
	{models.IntentWasteReduction, []string{"waste", "reduce"}},
	{models.IntentPrediction, []string{"predict", "forecast"}},
	{models.IntentMealPlanning, []string{"meal", "recipe"}},
}

// ClassifyIntent picks the reply script for a message by case-insensitive
// keyword containment.
func ClassifyIntent(message string) models.ChatIntent {
	lower := strings.ToLower(message)
	for _, rule := range intentRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.intent
			}
		}
	}
	return models.IntentGeneral
}

// ChatAsync answers after the configured delay. The returned channel always
// receives exactly one reply and is then closed; there is no cancellation.
func (a *Analyzer) ChatAsync(message string, history []models.DailyRecord) <-chan models.ChatResponse {
	out := make(chan models.ChatResponse, 1)
	go func() {
		defer close(out)
		if a.chatDelay > 0 {
			time.Sleep(a.chatDelay)
		}
		out <- a.reply(message, history)
	}()
	return out
}

// Chat blocks for the configured delay and returns the assistant's reply.
func (a *Analyzer) Chat(message string, history []models.DailyRecord) models.ChatResponse {
	return <-a.ChatAsync(message, history)
}

func (a *Analyzer) reply(message string, history []models.DailyRecord) models.ChatResponse {
	intent := ClassifyIntent(message)
	a.metrics.RecordChat(intent)

	switch intent {
	case models.IntentWasteReduction:
		return models.ChatResponse{
			Intent: intent,
			Text: "Based on your data, you can reduce waste by: 1) Cooking 10% less portions, " +
				"2) Storing food properly, 3) Using leftovers creatively. " +
				"Would you like specific recipes for your common leftovers?",
			Suggestions: []string{"Portion control tips", "Storage methods", "Leftover recipes"},
		}
	case models.IntentPrediction:
		if text, ok := a.predictionText(history); ok {
			return models.ChatResponse{
				Intent:      intent,
				Text:        text,
				Suggestions: []string{"Improve efficiency", "Reduce waste", "Meal planning"},
			}
		}
	case models.IntentMealPlanning:
		return models.ChatResponse{
			Intent: intent,
			Text: "I can suggest meals based on your eating patterns! " +
				"You seem to prefer balanced meals with moderate portions. " +
				"Try batch cooking on Sundays to save time during the week.",
			Suggestions: []string{"Weekly meal plan", "Batch recipes", "Shopping list"},
		}
	}

	return models.ChatResponse{
		Intent: models.IntentGeneral,
		Text: "I'm here to help you reduce food waste! I can analyze your patterns, " +
			"predict waste, and suggest personalized tips. What would you like to know?",
		Suggestions: []string{"Waste prediction", "Efficiency tips", "Meal planning"},
	}
}

// PredictionText renders the forecast sentence for an already computed
// prediction.
func (a *Analyzer) PredictionText(p models.Prediction) (string, error) {
	return a.predictionPrompt.Format(map[string]any{
		"tomorrow_waste": p.TomorrowWaste,
		"efficiency":     p.EfficiencyLabel(),
	})
}

func (a *Analyzer) predictionText(history []models.DailyRecord) (string, bool) {
	p, err := a.PredictOrDefault(history)
	if err != nil {
		a.logger.Error("chat prediction failed", "error", err)
		return "", false
	}
	text, err := a.PredictionText(p)
	if err != nil {
		a.logger.Error("render prediction reply", "error", err)
		return "", false
	}
	return text, true
}
