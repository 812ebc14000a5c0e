package astro

import (
	"testing"

	"github.com/alexanderramin/astroplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPredict_EmptyInput(t *testing.T) {
	got := Predict("")
	assert.Equal(t, domain.CategoryPersonal, got.Category)
	assert.Equal(t, 15, got.Confidence)
}

func TestPredict_NoKeywordMatch(t *testing.T) {
	got := Predict("zzz qqq xxx")
	assert.Equal(t, domain.CategoryPersonal, got.Category)
	assert.Equal(t, 15, got.Confidence)
}

func TestPredict_WorkKeywords(t *testing.T) {
	got := Predict("meeting with client about project deadline")
	assert.Equal(t, domain.CategoryWork, got.Category)
	assert.Greater(t, got.Confidence, 30)
}

func TestPredict_HealthKeywords(t *testing.T) {
	got := Predict("go for a run and do yoga")
	assert.Equal(t, domain.CategoryHealth, got.Category)
}

func TestPredict_CaseInsensitive(t *testing.T) {
	lower := Predict("pay taxes at the bank")
	upper := Predict("PAY TAXES AT THE BANK")
	assert.Equal(t, lower, upper)
	assert.Equal(t, domain.CategoryFinance, lower.Category)
}

func TestPredict_PrefixBonusBreaksScore(t *testing.T) {
	// "gift" alone scores 1; leading position adds the half-point bonus and
	// a shorter denominator, so confidence rises.
	middle := Predict("choose a gift later")
	leading := Predict("gift for mom")
	assert.Equal(t, domain.CategoryRelationships, middle.Category)
	assert.Equal(t, domain.CategoryRelationships, leading.Category)
	assert.Greater(t, leading.Confidence, middle.Confidence)
}

func TestPredict_TieGoesToFirstDeclaredCategory(t *testing.T) {
	// "project" appears in both the work and creativity lists; work is first
	// in domain.Categories, and a tie never displaces the earlier winner.
	got := Predict("project")
	assert.Equal(t, domain.CategoryWork, got.Category)
}

func TestPredict_ConfidenceBounds(t *testing.T) {
	// A short text stacked with keywords hits the 95 ceiling.
	got := Predict("work meeting")
	assert.LessOrEqual(t, got.Confidence, 95)
	assert.GreaterOrEqual(t, got.Confidence, 15)
}

func TestPredict_Deterministic(t *testing.T) {
	first := Predict("call parents about the birthday party")
	second := Predict("call parents about the birthday party")
	assert.Equal(t, first, second)
	assert.Equal(t, domain.CategoryRelationships, first.Category)
}
