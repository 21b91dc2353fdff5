package provider

import (
	"fmt"
	"math/rand"

	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/model"
)

// QuestionSource supplies the ordered question sequence for a test id.
type QuestionSource interface {
	Questions(testID int) []model.Question
}

// GeneratedBank is a deterministic stand-in for a real question bank.
// Every test id yields the same 75-question paper on every call: ids 1..75
// grouped by section per the exam configuration, with the answer key drawn
// from a rand seeded by the test id.
type GeneratedBank struct {
	catalog *Catalog
	cfg     model.ExamConfig
}

// NewGeneratedBank creates a bank over the given catalog and exam policy.
func NewGeneratedBank(catalog *Catalog, cfg model.ExamConfig) *GeneratedBank {
	return &GeneratedBank{catalog: catalog, cfg: cfg}
}

var sectionTemplates = map[model.Section]struct {
	topic   string
	options []string
}{
	model.SectionPartA: {
		topic:   "General Aptitude question relating to logic, series, or data analysis.",
		options: []string{"Option A", "Option B", "Option C", "Option D"},
	},
	model.SectionPartB: {
		topic:   "Conceptual physics question on a core topic.",
		options: []string{"Concept 1", "Concept 2", "Concept 3", "Concept 4"},
	},
	model.SectionPartC: {
		topic:   "Advanced analytical problem requiring detailed calculation.",
		options: []string{"Result X", "Result Y", "Result Z", "Result W"},
	},
}

// Questions builds the paper for the given test id.
func (b *GeneratedBank) Questions(testID int) []model.Question {
	title := fmt.Sprintf("Test %d", testID)
	if t, ok := b.catalog.FindTest(testID); ok {
		title = t.Title
	}

	rng := rand.New(rand.NewSource(int64(testID)))

	questions := make([]model.Question, 0, b.cfg.TotalQuestions())
	id := 1
	for _, sec := range model.SectionOrder {
		tmpl := sectionTemplates[sec]
		for i := 0; i < b.cfg.Sections[sec].TotalQuestions; i++ {
			questions = append(questions, model.Question{
				ID:            id,
				Section:       sec,
				Text:          fmt.Sprintf("[%s] %s Q%d: %s", title, sec, i+1, tmpl.topic),
				Options:       tmpl.options,
				CorrectOption: rng.Intn(len(tmpl.options)),
			})
			id++
		}
	}
	return questions
}
