// internal/exercise/blank_fill.go
package exercise

import (
	"context"
	"strings"

	"go_5_english_tutor/internal/locale"
	"go_5_english_tutor/internal/model"
)

// BlankMarker は設問中の空欄です
const BlankMarker = "___"

// BlankFill は空欄に自由入力する練習問題です
type BlankFill struct {
	content model.BlankFillContent
	report  ReportFunc

	input     string
	submitted bool
	correct   bool
}

func NewBlankFill(c model.BlankFillContent, report ReportFunc) *BlankFill {
	return &BlankFill{content: c, report: report}
}

func (e *BlankFill) Kind() Kind { return KindBlankFill }

func (e *BlankFill) Submitted() bool { return e.submitted }

func (e *BlankFill) SetInput(text string) error {
	if e.submitted {
		return ErrAlreadySubmitted
	}
	e.input = text
	return nil
}

// Submit は前後の空白を除き、大文字小文字を区別せずに比較します。
// 内部の空白は正規化しません。送信するのはトリム済みの入力です。
func (e *BlankFill) Submit(ctx context.Context) error {
	if e.submitted {
		return ErrAlreadySubmitted
	}
	answer := strings.TrimSpace(e.input)
	if answer == "" {
		return ErrNothingToSubmit
	}
	e.correct = strings.EqualFold(answer, strings.TrimSpace(e.content.CorrectAnswer))
	e.submitted = true
	e.report(ctx, e.correct, answer)
	return nil
}

// SplitBlank は設問を最初の空欄で前後に分けます。空欄が無い場合 suffix は空です。
func SplitBlank(question string) (prefix, suffix string) {
	prefix, suffix, _ = strings.Cut(question, BlankMarker)
	return prefix, suffix
}

func (e *BlankFill) View(r locale.Resolver) View {
	prefix, suffix := SplitBlank(r.ResolveOr(e.content.Question, ""))
	input := e.input
	v := View{
		Kind:      KindBlankFill,
		Prefix:    prefix,
		Suffix:    suffix,
		Input:     &input,
		Submitted: e.submitted,
		CanSubmit: !e.submitted && strings.TrimSpace(e.input) != "",
	}
	if e.submitted {
		v.Result = newResult(r, e.correct, r.ResolveOr(e.content.Feedback, ""), e.content.CorrectAnswer, true)
	}
	return v
}
