// Package provider supplies the externally-owned exam content: the test
// catalog and the per-test question banks.
package provider

import "github.com/Mohit-5899/CSIRNet-Mock-Test/internal/model"

// fullLengthTests are the complete mock papers, ids 1..10.
var fullLengthTests = []model.MockTest{
	{ID: 1, Title: "CSIR NET Physics Mock 1", Description: "Full length paper focusing on Classical Mechanics and EMP.", Difficulty: model.DifficultyModerate, Tags: []string{"Full Syllabus", "2023 Pattern"}, Category: model.CategoryFullLength},
	{ID: 2, Title: "CSIR NET Physics Mock 2", Description: "High difficulty level questions on Quantum Mechanics.", Difficulty: model.DifficultyHard, Tags: []string{"Quantum Heavy", "Advanced"}, Category: model.CategoryFullLength},
	{ID: 3, Title: "CSIR NET Physics Mock 3", Description: "Balanced paper covering all core topics.", Difficulty: model.DifficultyModerate, Tags: []string{"Standard", "Balanced"}, Category: model.CategoryFullLength},
	{ID: 4, Title: "CSIR NET Physics Mock 4", Description: "Focus on Mathematical Physics and Electronics.", Difficulty: model.DifficultyEasy, Tags: []string{"Math Physics", "Electronics"}, Category: model.CategoryFullLength},
	{ID: 5, Title: "CSIR NET Physics Mock 5", Description: "Previous year trends based mock test.", Difficulty: model.DifficultyModerate, Tags: []string{"PYQ Pattern"}, Category: model.CategoryFullLength},
	{ID: 6, Title: "CSIR NET Physics Mock 6", Description: "Condensed Matter Physics and Thermodynamics special.", Difficulty: model.DifficultyHard, Tags: []string{"CMP", "Thermo"}, Category: model.CategoryFullLength},
	{ID: 7, Title: "CSIR NET Physics Mock 7", Description: "Nuclear and Particle Physics focus.", Difficulty: model.DifficultyModerate, Tags: []string{"Nuclear", "Particle"}, Category: model.CategoryFullLength},
	{ID: 8, Title: "CSIR NET Physics Mock 8", Description: "Comprehensive test for final revision.", Difficulty: model.DifficultyHard, Tags: []string{"Full Syllabus"}, Category: model.CategoryFullLength},
	{ID: 9, Title: "CSIR NET Physics Mock 9", Description: "Speed test with moderate difficulty questions.", Difficulty: model.DifficultyModerate, Tags: []string{"Speed Test"}, Category: model.CategoryFullLength},
	{ID: 10, Title: "CSIR NET Physics Mock 10", Description: "The ultimate challenge. Very hard.", Difficulty: model.DifficultyHard, Tags: []string{"Challenger"}, Category: model.CategoryFullLength},
}

// topicTests are topic drills, ids 101..109. They keep the standard
// three-section structure so the session rules stay uniform.
var topicTests = []model.MockTest{
	{ID: 101, Title: "Classical Mechanics", Description: "Lagrangian, Hamiltonian, and Rigid Body Dynamics.", Difficulty: model.DifficultyModerate, Tags: []string{"Topic Wise", "CM"}, Category: model.CategoryTopicWise},
	{ID: 102, Title: "Quantum Mechanics", Description: "Perturbation Theory, WKB, and Operators.", Difficulty: model.DifficultyHard, Tags: []string{"Topic Wise", "QM"}, Category: model.CategoryTopicWise},
	{ID: 103, Title: "Electromagnetic Theory", Description: "Maxwell's Equations, Waveguides, and Radiation.", Difficulty: model.DifficultyModerate, Tags: []string{"Topic Wise", "EMT"}, Category: model.CategoryTopicWise},
	{ID: 104, Title: "Mathematical Physics", Description: "Complex Analysis, Differential Equations, and Matrices.", Difficulty: model.DifficultyEasy, Tags: []string{"Topic Wise", "Math"}, Category: model.CategoryTopicWise},
	{ID: 105, Title: "Thermodynamics & Stat Mech", Description: "Ensembles, Phase Transitions, and Laws of Thermo.", Difficulty: model.DifficultyModerate, Tags: []string{"Topic Wise", "Thermo"}, Category: model.CategoryTopicWise},
	{ID: 106, Title: "Electronics & Experimental", Description: "Op-Amps, Digital Electronics, and Error Analysis.", Difficulty: model.DifficultyEasy, Tags: []string{"Topic Wise", "Electronics"}, Category: model.CategoryTopicWise},
	{ID: 107, Title: "Atomic & Molecular Physics", Description: "Spectroscopy, Lasers, and Zeeman Effect.", Difficulty: model.DifficultyModerate, Tags: []string{"Topic Wise", "Atomic"}, Category: model.CategoryTopicWise},
	{ID: 108, Title: "Condensed Matter Physics", Description: "Crystal Structure, Superconductivity, and Band Theory.", Difficulty: model.DifficultyHard, Tags: []string{"Topic Wise", "CMP"}, Category: model.CategoryTopicWise},
	{ID: 109, Title: "Nuclear & Particle Physics", Description: "Shell Model, Conservation Laws, and Quarks.", Difficulty: model.DifficultyModerate, Tags: []string{"Topic Wise", "Nuclear"}, Category: model.CategoryTopicWise},
}

// Catalog lists the available mock tests and resolves ids to titles.
type Catalog struct {
	tests []model.MockTest
	byID  map[int]model.MockTest
}

// NewCatalog builds the static CSIR NET physics catalog.
func NewCatalog() *Catalog {
	tests := make([]model.MockTest, 0, len(fullLengthTests)+len(topicTests))
	tests = append(tests, fullLengthTests...)
	tests = append(tests, topicTests...)

	byID := make(map[int]model.MockTest, len(tests))
	for _, t := range tests {
		byID[t.ID] = t
	}
	return &Catalog{tests: tests, byID: byID}
}

// ListTests returns every catalog entry in display order.
func (c *Catalog) ListTests() []model.MockTest { return c.tests }

// FindTest resolves a test id.
func (c *Catalog) FindTest(id int) (model.MockTest, bool) {
	t, ok := c.byID[id]
	return t, ok
}
