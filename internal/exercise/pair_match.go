// internal/exercise/pair_match.go
package exercise

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"go_5_english_tutor/internal/locale"
	"go_5_english_tutor/internal/model"
)

// CompletionPolicy は全ペア照合時に回答を送信するかどうかです
type CompletionPolicy string

const (
	// CompletionDeferred は完了を表示するだけで送信しません。進捗はレッスン完了で保存されます。
	CompletionDeferred CompletionPolicy = "deferred"
	// CompletionAuto は完了時に (true, ペアのJSON配列) を1度だけ送信します。
	CompletionAuto CompletionPolicy = "auto"
)

// DefaultPairCooldown は誤答表示が消えるまでの時間です
const DefaultPairCooldown = 800 * time.Millisecond

// ParseCompletionPolicy は設定値を解釈します。未知の値はエラーです。
func ParseCompletionPolicy(s string) (CompletionPolicy, error) {
	switch CompletionPolicy(s) {
	case "", CompletionDeferred:
		return CompletionDeferred, nil
	case CompletionAuto:
		return CompletionAuto, nil
	}
	return "", fmt.Errorf("unknown pair completion policy %q", s)
}

// PairMatchOptions はゼロ値のフィールドにデフォルトが使われます
type PairMatchOptions struct {
	Policy   CompletionPolicy
	Cooldown time.Duration
	Now      func() time.Time
	// Shuffle は長さ n の順列を返します。マウント時に1度だけ呼ばれます。
	Shuffle func(n int) []int
}

const noSelection = -1

// PairMatch は質問と答えを組み合わせる練習問題です。
// 答えの並びはマウント時に1度だけシャッフルし、再描画では変えません。
// 誤答のクールダウンは次の操作または表示の時点で期限切れを判定します (タイマーは使わない)。
type PairMatch struct {
	content model.PairMatchContent
	report  ReportFunc
	opts    PairMatchOptions

	order    []int // 答えの表示位置 -> ペアの添字
	matchedQ []bool
	matchedA []bool // 表示位置で管理
	matched  int

	selQ, selA     int
	wrongQ, wrongA int
	wrongUntil     time.Time
	reported       bool
}

func NewPairMatch(c model.PairMatchContent, report ReportFunc, opts PairMatchOptions) *PairMatch {
	if opts.Policy == "" {
		opts.Policy = CompletionDeferred
	}
	if opts.Cooldown <= 0 {
		opts.Cooldown = DefaultPairCooldown
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Shuffle == nil {
		opts.Shuffle = rand.Perm
	}

	n := len(c.Pairs)
	order := opts.Shuffle(n)
	if !isPermutation(order, n) {
		order = make([]int, n)
		for i := range order {
			order[i] = i
		}
	}

	return &PairMatch{
		content:  c,
		report:   report,
		opts:     opts,
		order:    order,
		matchedQ: make([]bool, n),
		matchedA: make([]bool, n),
		selQ:     noSelection,
		selA:     noSelection,
		wrongQ:   noSelection,
		wrongA:   noSelection,
	}
}

func isPermutation(p []int, n int) bool {
	if len(p) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range p {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func (e *PairMatch) Kind() Kind { return KindPairMatch }

// Submitted は全ペアが照合済みかどうかです
func (e *PairMatch) Submitted() bool { return e.AllMatched() }

func (e *PairMatch) AllMatched() bool { return e.matched == len(e.content.Pairs) }

func (e *PairMatch) Policy() CompletionPolicy { return e.opts.Policy }

// settle は期限切れの誤答表示と選択を解除します
func (e *PairMatch) settle() {
	if e.wrongQ == noSelection {
		return
	}
	if e.opts.Now().Before(e.wrongUntil) {
		return
	}
	e.wrongQ, e.wrongA = noSelection, noSelection
	e.selQ, e.selA = noSelection, noSelection
	e.wrongUntil = time.Time{}
}

func (e *PairMatch) coolingDown() bool {
	e.settle()
	return e.wrongQ != noSelection
}

// SelectQuestion は質問を選択 (同じものを再度選ぶと解除) します。
// 照合済みの候補とクールダウン中の操作は無視します。
func (e *PairMatch) SelectQuestion(ctx context.Context, id int) error {
	if id < 0 || id >= len(e.content.Pairs) {
		return ErrUnknownCandidate
	}
	if e.coolingDown() || e.matchedQ[id] || e.AllMatched() {
		return nil
	}
	if e.selQ == id {
		e.selQ = noSelection
	} else {
		e.selQ = id
	}
	e.evaluate(ctx)
	return nil
}

// SelectAnswer は答えを表示位置で選択します
func (e *PairMatch) SelectAnswer(ctx context.Context, id int) error {
	if id < 0 || id >= len(e.order) {
		return ErrUnknownCandidate
	}
	if e.coolingDown() || e.matchedA[id] || e.AllMatched() {
		return nil
	}
	if e.selA == id {
		e.selA = noSelection
	} else {
		e.selA = id
	}
	e.evaluate(ctx)
	return nil
}

func (e *PairMatch) evaluate(ctx context.Context) {
	if e.selQ == noSelection || e.selA == noSelection {
		return
	}
	pairs := e.content.Pairs
	// 同じ文字列の答えが複数あっても正解として扱う
	if pairs[e.selQ].Answer == pairs[e.order[e.selA]].Answer {
		e.matchedQ[e.selQ] = true
		e.matchedA[e.selA] = true
		e.matched++
		e.selQ, e.selA = noSelection, noSelection
		if e.AllMatched() {
			e.complete(ctx)
		}
		return
	}
	e.wrongQ, e.wrongA = e.selQ, e.selA
	e.wrongUntil = e.opts.Now().Add(e.opts.Cooldown)
}

func (e *PairMatch) complete(ctx context.Context) {
	if e.opts.Policy != CompletionAuto || e.reported {
		return
	}
	e.reported = true
	payload, err := json.Marshal(e.content.Pairs)
	if err != nil {
		// []Pair は必ずエンコードできる
		payload = []byte("[]")
	}
	e.report(ctx, true, string(payload))
}

// Submit はペア照合では明示的な送信を受け付けません。
// auto の場合、完了時に自動送信済みなら ErrAlreadySubmitted を返します。
func (e *PairMatch) Submit(ctx context.Context) error {
	if e.opts.Policy == CompletionAuto && e.reported {
		return ErrAlreadySubmitted
	}
	return ErrNothingToSubmit
}

func (e *PairMatch) View(r locale.Resolver) View {
	e.settle()

	v := View{
		Kind:       KindPairMatch,
		Subtype:    string(e.content.Subtype),
		Prompt:     r.ResolveOr(e.content.Question, ""),
		Submitted:  e.AllMatched(),
		AllMatched: e.AllMatched(),
		Questions:  make([]MatchCandidate, len(e.content.Pairs)),
		Answers:    make([]MatchCandidate, len(e.order)),
	}
	for i, p := range e.content.Pairs {
		v.Questions[i] = e.candidate(i, p.Question, e.matchedQ[i], e.selQ, e.wrongQ)
	}
	for pos, idx := range e.order {
		v.Answers[pos] = e.candidate(pos, e.content.Pairs[idx].Answer, e.matchedA[pos], e.selA, e.wrongA)
	}
	if e.wrongQ != noSelection {
		until := e.wrongUntil
		v.CooldownUntil = &until
	}
	if v.AllMatched {
		v.CompletionMessage = locale.Message(locale.MsgAllPairsMatched, r.Requested)
	}
	return v
}

func (e *PairMatch) candidate(id int, text string, matched bool, selected, wrong int) MatchCandidate {
	c := MatchCandidate{ID: id, Text: text, State: CandidateIdle}
	switch {
	case matched:
		c.State = CandidateMatched
		c.Disabled = true
	case wrong == id:
		c.State = CandidateIncorrect
		c.Disabled = true
	case selected == id:
		c.State = CandidateSelected
	}
	if e.wrongQ != noSelection {
		c.Disabled = true
	}
	return c
}
