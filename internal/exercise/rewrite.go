// internal/exercise/rewrite.go
package exercise

import (
	"context"
	"strings"

	"go_5_english_tutor/internal/locale"
	"go_5_english_tutor/internal/model"
)

// Rewrite は文の書き換えを自由入力する練習問題です
type Rewrite struct {
	content model.RewriteContent
	report  ReportFunc

	input     string
	submitted bool
	correct   bool
}

func NewRewrite(c model.RewriteContent, report ReportFunc) *Rewrite {
	return &Rewrite{content: c, report: report}
}

func (e *Rewrite) Kind() Kind { return KindRewrite }

func (e *Rewrite) Submitted() bool { return e.submitted }

func (e *Rewrite) SetInput(text string) error {
	if e.submitted {
		return ErrAlreadySubmitted
	}
	e.input = text
	return nil
}

// normalizeSentence はトリムし、末尾の終止符 (. ! ?) を1文字だけ除いて小文字にします
func normalizeSentence(s string) string {
	s = strings.TrimSpace(s)
	if n := len(s); n > 0 && strings.ContainsRune(".!?", rune(s[n-1])) {
		s = s[:n-1]
	}
	return strings.ToLower(s)
}

// Submit は入力をそのまま (トリムせずに) 送信します
func (e *Rewrite) Submit(ctx context.Context) error {
	if e.submitted {
		return ErrAlreadySubmitted
	}
	if strings.TrimSpace(e.input) == "" {
		return ErrNothingToSubmit
	}
	e.correct = normalizeSentence(e.input) == normalizeSentence(e.content.CorrectAnswer)
	e.submitted = true
	e.report(ctx, e.correct, e.input)
	return nil
}

func (e *Rewrite) View(r locale.Resolver) View {
	input := e.input
	v := View{
		Kind:      KindRewrite,
		Prompt:    r.ResolveOr(e.content.Question, ""),
		Input:     &input,
		Submitted: e.submitted,
		CanSubmit: !e.submitted && strings.TrimSpace(e.input) != "",
	}
	if e.submitted {
		feedback := r.ResolveOr(e.content.Feedback, locale.Message(locale.MsgEncouragement, r.Requested))
		v.Result = newResult(r, e.correct, feedback, e.content.CorrectAnswer, true)
	}
	return v
}
