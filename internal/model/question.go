package model

// Section identifies one of the three parts of a CSIR NET paper.
type Section string

const (
	SectionPartA Section = "Part A"
	SectionPartB Section = "Part B"
	SectionPartC Section = "Part C"
)

// SectionOrder is the canonical paper order. Question ids are assigned
// sequentially following this order.
var SectionOrder = []Section{SectionPartA, SectionPartB, SectionPartC}

// Question is a single multiple-choice question. Immutable once loaded.
type Question struct {
	ID            int      `json:"id"`
	Section       Section  `json:"section"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
	ImageURL      string   `json:"image_url,omitempty"`
}

// PaperQuestion is a question as delivered to the candidate, without the
// answer key.
type PaperQuestion struct {
	ID       int      `json:"id"`
	Section  Section  `json:"section"`
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	ImageURL string   `json:"image_url,omitempty"`
}

// ForCandidate strips the answer key from a question.
func (q Question) ForCandidate() PaperQuestion {
	return PaperQuestion{
		ID:       q.ID,
		Section:  q.Section,
		Text:     q.Text,
		Options:  q.Options,
		ImageURL: q.ImageURL,
	}
}
