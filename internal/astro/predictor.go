package astro

import (
	"math"
	"strings"

	"github.com/alexanderramin/astroplan/internal/domain"
)

// categoryKeywords holds the fixed keyword list scored for each category.
var categoryKeywords = map[domain.Category][]string{
	domain.CategoryWork: {
		"work", "project", "meeting", "presentation", "report", "deadline",
		"client", "colleague", "office", "task", "conference", "email",
		"documents", "contract", "budget", "analysis", "strategy", "planning",
		"development", "job",
	},
	domain.CategoryHealth: {
		"doctor", "sport", "training", "gym", "running", "yoga", "diet",
		"vitamins", "health", "fitness", "massage", "dentist", "tests",
		"examination", "medicine", "procedure", "meditation", "sleep",
		"rest", "relax",
	},
	domain.CategoryFinance: {
		"money", "bank", "account", "payment", "credit", "investment",
		"budget", "taxes", "insurance", "pension", "salary", "savings",
		"expenses", "income", "finance", "buy", "sell", "pay", "transfer",
		"accumulation",
	},
	domain.CategoryCreativity: {
		"drawing", "music", "creativity", "hobby", "art", "photo", "video",
		"design", "write", "blog", "instagram", "content", "idea",
		"inspiration", "project", "create", "invent", "experiment",
		"workshop", "course",
	},
	domain.CategoryRelationships: {
		"family", "friends", "date", "meeting", "conversation", "call",
		"visit", "celebration", "birthday", "gift", "relationship", "love",
		"partner", "children", "parents", "relatives", "wedding", "party",
		"communication", "conflict",
	},
	domain.CategoryPersonal: {
		"personal", "self-development", "learning", "book", "course", "goal",
		"planning", "organization", "cleaning", "shopping", "home", "repair",
		"travel", "vacation", "hobby", "development", "skills", "habits",
		"routine", "plan",
	},
}

// Predict suggests a category for free task text. It is total: empty or
// unmatched input falls back to "personal" with the minimum confidence.
//
// Scoring: one point per keyword appearing as a substring of the lower-cased
// text, plus half a point when the text starts with the keyword. Ties are
// broken by position in domain.Categories because only a strictly higher
// score replaces the current best.
func Predict(text string) domain.CategoryPrediction {
	lowered := strings.ToLower(text)

	best := domain.CategoryPersonal
	maxScore := 0.0

	for _, category := range domain.Categories {
		score := 0.0
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(lowered, keyword) {
				score++
				if strings.HasPrefix(lowered, keyword) {
					score += 0.5
				}
			}
		}
		if score > maxScore {
			maxScore = score
			best = category
		}
	}

	wordCount := len(strings.Fields(lowered))
	confidence := int(math.Round(maxScore / math.Max(float64(wordCount)*0.3, 1) * 100))
	if confidence > 95 {
		confidence = 95
	}
	if confidence < 15 {
		confidence = 15
	}

	return domain.CategoryPrediction{Category: best, Confidence: confidence}
}

// AutoAssignThreshold is the minimum confidence at which a prediction is
// applied to a new task without the user picking a category.
const AutoAssignThreshold = 30
