// internal/exercise/single_choice.go
package exercise

import (
	"context"
	"slices"

	"go_5_english_tutor/internal/locale"
	"go_5_english_tutor/internal/model"
)

// SingleChoice は選択肢から1つを選ぶ練習問題です。読解付き (read_and_answer) もこれを使います。
// unanswered -> selected -> submitted(correct|incorrect)
type SingleChoice struct {
	kind    Kind
	content model.SingleChoiceContent
	passage locale.LocalizedText
	report  ReportFunc

	selected  string
	hasChoice bool
	submitted bool
	correct   bool
}

func NewSingleChoice(c model.SingleChoiceContent, report ReportFunc) *SingleChoice {
	return &SingleChoice{kind: KindSingleChoice, content: c, report: report}
}

func NewReadingChoice(c model.ReadingChoiceContent, report ReportFunc) *SingleChoice {
	return &SingleChoice{kind: KindReadingChoice, content: c.Choice, passage: c.Text, report: report}
}

func (e *SingleChoice) Kind() Kind { return e.kind }

func (e *SingleChoice) Submitted() bool { return e.submitted }

// Select は選択肢を選びます。確定後は状態を変えません。
func (e *SingleChoice) Select(option string) error {
	if e.submitted {
		return ErrAlreadySubmitted
	}
	if !slices.Contains(e.content.Options, option) {
		return ErrUnknownCandidate
	}
	e.selected = option
	e.hasChoice = true
	return nil
}

// Submit は選択肢を正解と完全一致 (大文字小文字・空白を区別) で比較します
func (e *SingleChoice) Submit(ctx context.Context) error {
	if e.submitted {
		return ErrAlreadySubmitted
	}
	if !e.hasChoice {
		return ErrNothingToSubmit
	}
	e.correct = e.selected == e.content.CorrectAnswer
	e.submitted = true
	e.report(ctx, e.correct, e.selected)
	return nil
}

func (e *SingleChoice) View(r locale.Resolver) View {
	v := View{
		Kind:      e.kind,
		Subtype:   string(e.content.Subtype),
		Prompt:    r.ResolveOr(e.content.Question, ""),
		Submitted: e.submitted,
		CanSubmit: !e.submitted && e.hasChoice,
		Options:   make([]Option, 0, len(e.content.Options)),
	}
	if e.kind == KindReadingChoice {
		v.Passage = r.ResolveOr(e.passage, "")
	}
	for _, o := range e.content.Options {
		v.Options = append(v.Options, Option{
			Text:     o,
			Selected: e.hasChoice && o == e.selected,
			Disabled: e.submitted,
		})
	}
	if e.submitted {
		// 単一選択ではフィードバック文のみを表示し、正解は明かさない
		v.Result = newResult(r, e.correct, r.ResolveOr(e.content.Feedback, ""), e.content.CorrectAnswer, false)
	}
	return v
}
