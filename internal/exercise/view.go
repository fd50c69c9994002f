// internal/exercise/view.go
package exercise

import "time"

// View は評価器の表示モデルです。種類ごとに使うフィールドだけが埋まります。
type View struct {
	Kind      Kind   `json:"kind"`
	Subtype   string `json:"subtype,omitempty"`
	Prompt    string `json:"prompt,omitempty"`
	Passage   string `json:"passage,omitempty"`
	Submitted bool   `json:"submitted"`
	CanSubmit bool   `json:"can_submit"`

	// single_choice / reading_choice
	Options []Option `json:"options,omitempty"`

	// blank_fill
	Prefix string `json:"prefix,omitempty"`
	Suffix string `json:"suffix,omitempty"`

	// blank_fill / rewrite
	Input *string `json:"input,omitempty"`

	// reorder
	Bank   []Token `json:"bank,omitempty"`
	Answer []Token `json:"answer,omitempty"`

	// pair_match
	Questions         []MatchCandidate `json:"questions,omitempty"`
	Answers           []MatchCandidate `json:"answers,omitempty"`
	AllMatched        bool             `json:"all_matched,omitempty"`
	CooldownUntil     *time.Time       `json:"cooldown_until,omitempty"`
	CompletionMessage string           `json:"completion_message,omitempty"`

	Result *Result `json:"result,omitempty"`
}

type Option struct {
	Text     string `json:"text"`
	Selected bool   `json:"selected"`
	Disabled bool   `json:"disabled"`
}

type Token struct {
	ID   int    `json:"id"`
	Word string `json:"word"`
}

// CandidateState はペア照合の候補の状態です
type CandidateState string

const (
	CandidateIdle      CandidateState = "idle"
	CandidateSelected  CandidateState = "selected"
	CandidateIncorrect CandidateState = "incorrect"
	CandidateMatched   CandidateState = "matched"
)

type MatchCandidate struct {
	ID       int            `json:"id"`
	Text     string         `json:"text"`
	State    CandidateState `json:"state"`
	Disabled bool           `json:"disabled"`
}

// Result は確定後の採点表示です
type Result struct {
	Correct            bool   `json:"correct"`
	Label              string `json:"label"`
	Feedback           string `json:"feedback,omitempty"`
	CorrectAnswerLabel string `json:"correct_answer_label,omitempty"`
	CorrectAnswer      string `json:"correct_answer,omitempty"`
}
