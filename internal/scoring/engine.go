// Package scoring turns a finished answer map into a score card. It is a
// pure function of (questions, answers, config) with no session state.
package scoring

import (
	"math"

	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/model"
)

// Score computes the final report. Each answered question adds the
// section's marks when correct and subtracts its negative marking when
// wrong; unanswered questions contribute nothing. Scores are never clamped
// and may go negative.
func Score(questions []model.Question, answers map[int]int, cfg model.ExamConfig) model.Report {
	perSection := make(map[model.Section]*model.SectionResult, len(cfg.Sections))
	for _, sec := range model.SectionOrder {
		sc, ok := cfg.Sections[sec]
		if !ok {
			continue
		}
		perSection[sec] = &model.SectionResult{
			Section:          sec,
			MarksPerQuestion: sc.MarksPerQuestion,
			NegativeMarking:  sc.NegativeMarking,
			MaxScore:         sc.MaxScore(),
		}
	}

	report := model.Report{TotalMarks: cfg.TotalMarks()}

	for _, q := range questions {
		chosen, answered := answers[q.ID]
		if !answered {
			continue
		}
		row := perSection[q.Section]
		if row == nil {
			continue
		}
		row.Attempted++
		report.Attempted++
		if chosen == q.CorrectOption {
			row.Score += row.MarksPerQuestion
			row.Correct++
			report.TotalScore += row.MarksPerQuestion
			report.Correct++
		} else {
			row.Score -= row.NegativeMarking
			row.Wrong++
			report.TotalScore -= row.NegativeMarking
			report.Wrong++
		}
	}

	if report.Attempted > 0 {
		report.AccuracyPercent = int(math.Round(float64(report.Correct) / float64(report.Attempted) * 100))
	}

	for _, sec := range model.SectionOrder {
		row, ok := perSection[sec]
		if !ok {
			continue
		}
		if row.MaxScore > 0 {
			row.Percentage = math.Max(0, row.Score/row.MaxScore*100)
		}
		report.Sections = append(report.Sections, *row)
	}

	return report
}
