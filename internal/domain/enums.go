package domain

type Category string

const (
	CategoryWork          Category = "work"
	CategoryPersonal      Category = "personal"
	CategoryHealth        Category = "health"
	CategoryCreativity    Category = "creativity"
	CategoryRelationships Category = "relationships"
	CategoryFinance       Category = "finance"
)

// Categories is the canonical ordered list of task categories. The order is
// load-bearing: the category predictor breaks score ties by first position
// in this slice.
var Categories = []Category{
	CategoryWork,
	CategoryHealth,
	CategoryFinance,
	CategoryCreativity,
	CategoryRelationships,
	CategoryPersonal,
}

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[string]bool{
	"work": true, "personal": true, "health": true,
	"creativity": true, "relationships": true, "finance": true,
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"low": true, "medium": true, "high": true,
}

type Energy string

const (
	EnergyFavorable   Energy = "favorable"
	EnergyChallenging Energy = "challenging"
	EnergyNeutral     Energy = "neutral"
)
