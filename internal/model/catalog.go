package model

// Difficulty is the advertised difficulty of a mock test.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "Easy"
	DifficultyModerate Difficulty = "Moderate"
	DifficultyHard     Difficulty = "Hard"
)

// Category distinguishes full-syllabus papers from topic drills.
type Category string

const (
	CategoryFullLength Category = "Full Length"
	CategoryTopicWise  Category = "Topic Wise"
)

// MockTest is a catalog entry. Consumed for display and to resolve a
// human-readable title for a chosen test id.
type MockTest struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
	Tags        []string   `json:"tags"`
	Category    Category   `json:"category"`
}
