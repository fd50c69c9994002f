// internal/exercise/reorder.go
package exercise

import (
	"context"
	"slices"
	"strings"

	"go_5_english_tutor/internal/locale"
	"go_5_english_tutor/internal/model"
)

// Reorder は単語を並べて文を作る練習問題です。
// 単語は出題順の位置をIDとして持ち、同じ単語が複数あっても区別できます。
type Reorder struct {
	content model.ReorderContent
	report  ReportFunc

	bank      []Token
	answer    []Token
	submitted bool
	correct   bool
}

func NewReorder(c model.ReorderContent, report ReportFunc) *Reorder {
	bank := make([]Token, len(c.Words))
	for i, w := range c.Words {
		bank[i] = Token{ID: i, Word: w}
	}
	return &Reorder{content: c, report: report, bank: bank}
}

func (e *Reorder) Kind() Kind { return KindReorder }

func (e *Reorder) Submitted() bool { return e.submitted }

// Place は単語バンクの単語を解答欄の末尾に移します
func (e *Reorder) Place(tokenID int) error {
	if e.submitted {
		return ErrAlreadySubmitted
	}
	var ok bool
	e.bank, e.answer, ok = moveToken(e.bank, e.answer, tokenID)
	if !ok {
		return ErrUnknownCandidate
	}
	return nil
}

// Return は解答欄の単語をバンクの末尾 (元の位置ではない) に戻します
func (e *Reorder) Return(tokenID int) error {
	if e.submitted {
		return ErrAlreadySubmitted
	}
	var ok bool
	e.answer, e.bank, ok = moveToken(e.answer, e.bank, tokenID)
	if !ok {
		return ErrUnknownCandidate
	}
	return nil
}

func moveToken(from, to []Token, id int) ([]Token, []Token, bool) {
	i := slices.IndexFunc(from, func(t Token) bool { return t.ID == id })
	if i < 0 {
		return from, to, false
	}
	t := from[i]
	return slices.Delete(from, i, i+1), append(to, t), true
}

// Response は解答欄の現在の並びをスペースで連結した文字列です
func (e *Reorder) Response() string {
	words := make([]string, len(e.answer))
	for i, t := range e.answer {
		words[i] = t.Word
	}
	return strings.Join(words, " ")
}

// Submit は正解の文と完全一致 (大文字小文字・空白を区別) で比較します
func (e *Reorder) Submit(ctx context.Context) error {
	if e.submitted {
		return ErrAlreadySubmitted
	}
	if len(e.answer) == 0 {
		return ErrNothingToSubmit
	}
	response := e.Response()
	e.correct = response == e.content.CorrectAnswer
	e.submitted = true
	e.report(ctx, e.correct, response)
	return nil
}

func (e *Reorder) View(r locale.Resolver) View {
	v := View{
		Kind:      KindReorder,
		Prompt:    r.ResolveOr(e.content.Question, ""),
		Bank:      slices.Clone(e.bank),
		Answer:    slices.Clone(e.answer),
		Submitted: e.submitted,
		CanSubmit: !e.submitted && len(e.answer) > 0,
	}
	if v.Bank == nil {
		v.Bank = []Token{}
	}
	if v.Answer == nil {
		v.Answer = []Token{}
	}
	if e.submitted {
		v.Result = newResult(r, e.correct, r.ResolveOr(e.content.Feedback, ""), e.content.CorrectAnswer, true)
	}
	return v
}
