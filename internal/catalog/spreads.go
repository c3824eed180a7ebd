package catalog

import "github.com/henryperkins/Tarot-Master/internal/domain"

// spreads lists the supported layouts in display order. The first entry
// is the default.
var spreads = []domain.Spread{
	{
		ID:          "single",
		Name:        "Single Card",
		Description: "A focused answer to a direct question. Perfect for daily guidance or quick insights.",
		CardCount:   1,
		Positions: []domain.Position{
			{ID: 1, Name: "The Message", Description: "The core insight or guidance for your question", X: 0.5, Y: 0.5},
		},
	},
	{
		ID:          "three-card",
		Name:        "Past, Present, Future",
		Description: "A classic three-card spread showing the timeline of your situation.",
		CardCount:   3,
		Positions: []domain.Position{
			{ID: 1, Name: "Past", Description: "Influences and events that have shaped the current situation", X: 0.2, Y: 0.5},
			{ID: 2, Name: "Present", Description: "The current state of affairs and immediate circumstances", X: 0.5, Y: 0.5},
			{ID: 3, Name: "Future", Description: "The likely outcome if the current path continues", X: 0.8, Y: 0.5},
		},
	},
	{
		ID:          "five-card",
		Name:        "Five Card Cross",
		Description: "A balanced spread exploring the heart of a matter from multiple angles.",
		CardCount:   5,
		Positions: []domain.Position{
			{ID: 1, Name: "Present", Description: "The heart of the matter, your current situation", X: 0.5, Y: 0.5},
			{ID: 2, Name: "Past", Description: "What led to this moment", X: 0.2, Y: 0.5},
			{ID: 3, Name: "Future", Description: "Where things are heading", X: 0.8, Y: 0.5},
			{ID: 4, Name: "Above", Description: "Your conscious desires and goals", X: 0.5, Y: 0.2},
			{ID: 5, Name: "Below", Description: "Subconscious influences and hidden factors", X: 0.5, Y: 0.8},
		},
	},
	{
		ID:          "celtic-cross",
		Name:        "Celtic Cross",
		Description: "The most comprehensive spread, revealing all aspects of a complex situation.",
		CardCount:   10,
		Positions: []domain.Position{
			{ID: 1, Name: "Present", Description: "The current situation and atmosphere", X: 0.3, Y: 0.45},
			{ID: 2, Name: "Challenge", Description: "The immediate obstacle or crossing force", X: 0.3, Y: 0.55},
			{ID: 3, Name: "Past", Description: "Recent events that have influenced the situation", X: 0.15, Y: 0.5},
			{ID: 4, Name: "Future", Description: "Events coming in the near future", X: 0.45, Y: 0.5},
			{ID: 5, Name: "Above", Description: "Your conscious goals and aspirations", X: 0.3, Y: 0.2},
			{ID: 6, Name: "Below", Description: "Subconscious influences and hidden foundations", X: 0.3, Y: 0.8},
			{ID: 7, Name: "Advice", Description: "Guidance on how to approach the situation", X: 0.7, Y: 0.85},
			{ID: 8, Name: "External", Description: "Outside influences and how others see you", X: 0.7, Y: 0.6},
			{ID: 9, Name: "Hopes & Fears", Description: "Your deepest hopes and fears about the outcome", X: 0.7, Y: 0.35},
			{ID: 10, Name: "Outcome", Description: "The likely outcome on the current path", X: 0.7, Y: 0.1},
		},
	},
	{
		ID:          "relationship",
		Name:        "Relationship",
		Description: "Explore the dynamics between you and another person.",
		CardCount:   6,
		Positions: []domain.Position{
			{ID: 1, Name: "You", Description: "Your current feelings and position", X: 0.25, Y: 0.3},
			{ID: 2, Name: "Them", Description: "Their feelings and perspective", X: 0.75, Y: 0.3},
			{ID: 3, Name: "Connection", Description: "What brings you together", X: 0.5, Y: 0.4},
			{ID: 4, Name: "Challenges", Description: "Obstacles in the relationship", X: 0.5, Y: 0.6},
			{ID: 5, Name: "Advice", Description: "Guidance for the relationship", X: 0.35, Y: 0.8},
			{ID: 6, Name: "Potential", Description: "The relationship's potential outcome", X: 0.65, Y: 0.8},
		},
	},
	{
		ID:          "decision",
		Name:        "Decision",
		Description: "Compare two paths when facing a major choice.",
		CardCount:   5,
		Positions: []domain.Position{
			{ID: 1, Name: "The Choice", Description: "The core of your decision", X: 0.5, Y: 0.2},
			{ID: 2, Name: "Path A", Description: "The first option and its energy", X: 0.25, Y: 0.45},
			{ID: 3, Name: "Path B", Description: "The second option and its energy", X: 0.75, Y: 0.45},
			{ID: 4, Name: "Outcome A", Description: "Where Path A leads", X: 0.25, Y: 0.75},
			{ID: 5, Name: "Outcome B", Description: "Where Path B leads", X: 0.75, Y: 0.75},
		},
	},
}
