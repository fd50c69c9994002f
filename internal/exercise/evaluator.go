// internal/exercise/evaluator.go
package exercise

import (
	"context"
	"errors"
	"fmt"

	"go_5_english_tutor/internal/locale"
	"go_5_english_tutor/internal/model"
)

// Kind は評価器の種類です
type Kind string

const (
	KindSingleChoice  Kind = "single_choice"
	KindReadingChoice Kind = "reading_choice"
	KindBlankFill     Kind = "blank_fill"
	KindPairMatch     Kind = "pair_match"
	KindReorder       Kind = "reorder"
	KindRewrite       Kind = "rewrite"
)

var (
	ErrNothingToSubmit   = errors.New("nothing selected or typed")
	ErrAlreadySubmitted  = errors.New("exercise already submitted")
	ErrUnknownCandidate  = errors.New("unknown candidate")
	ErrUnsupportedAction = errors.New("action not supported by this exercise")
)

// ReportFunc は回答確定時に1度だけ呼ばれます。
// isCorrectLocally は画面表示用の判定であり、永続化される正誤ではありません。
// 送信の失敗は呼び出し側で処理し、評価器の状態には影響させません。
type ReportFunc func(ctx context.Context, isCorrectLocally bool, response string)

// Evaluator は1つの練習問題の操作状態と採点を持ちます。
// 同時に呼び出さないこと (ロックは呼び出し側のセッションが持つ)。
type Evaluator interface {
	Kind() Kind
	Submit(ctx context.Context) error
	Submitted() bool
	View(r locale.Resolver) View
}

// 操作ごとのインターフェース。評価器は対応する操作だけを実装します。

type Selector interface {
	Select(option string) error
}

type TextInput interface {
	SetInput(text string) error
}

type Arranger interface {
	Place(tokenID int) error
	Return(tokenID int) error
}

type Matcher interface {
	SelectQuestion(ctx context.Context, id int) error
	SelectAnswer(ctx context.Context, id int) error
}

// Apply は学習者の操作を評価器に適用します
func Apply(ctx context.Context, ev Evaluator, action model.ItemAction, value string, tokenID *int) error {
	if action == model.ActionSubmit {
		return ev.Submit(ctx)
	}

	switch action {
	case model.ActionSelect:
		if s, ok := ev.(Selector); ok {
			return s.Select(value)
		}
	case model.ActionInput:
		if in, ok := ev.(TextInput); ok {
			return in.SetInput(value)
		}
	case model.ActionPlace, model.ActionReturn:
		a, ok := ev.(Arranger)
		if !ok {
			break
		}
		if tokenID == nil {
			return fmt.Errorf("%w: token_id is required", ErrUnknownCandidate)
		}
		if action == model.ActionPlace {
			return a.Place(*tokenID)
		}
		return a.Return(*tokenID)
	case model.ActionPickQuestion, model.ActionPickAnswer:
		m, ok := ev.(Matcher)
		if !ok {
			break
		}
		if tokenID == nil {
			return fmt.Errorf("%w: token_id is required", ErrUnknownCandidate)
		}
		if action == model.ActionPickQuestion {
			return m.SelectQuestion(ctx, *tokenID)
		}
		return m.SelectAnswer(ctx, *tokenID)
	}
	return fmt.Errorf("%w: %s on %s", ErrUnsupportedAction, action, ev.Kind())
}

// newResult は確定後の表示を組み立てます。
// disclose が true のとき、不正解なら正解を表示します。
func newResult(r locale.Resolver, correct bool, feedback string, canonical string, disclose bool) *Result {
	res := &Result{
		Correct:  correct,
		Feedback: feedback,
	}
	if correct {
		res.Label = locale.Message(locale.MsgCorrect, r.Requested)
	} else {
		res.Label = locale.Message(locale.MsgIncorrect, r.Requested)
		if disclose {
			res.CorrectAnswerLabel = locale.Message(locale.MsgCorrectAnswerIs, r.Requested)
			res.CorrectAnswer = canonical
		}
	}
	return res
}
