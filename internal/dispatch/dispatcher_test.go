package dispatch

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"go_5_english_tutor/internal/exercise"
	"go_5_english_tutor/internal/locale"
	"go_5_english_tutor/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reported struct {
	itemID   string
	correct  bool
	response string
}

func newTestDispatcher() *Dispatcher {
	return NewDispatcher(exercise.PairMatchOptions{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func recordInto(calls *[]reported, itemID string) exercise.ReportFunc {
	return func(_ context.Context, correct bool, response string) {
		*calls = append(*calls, reported{itemID: itemID, correct: correct, response: response})
	}
}

var (
	enUS = locale.Resolver{Requested: "en-US", Default: locale.CanonicalDefault}
	ptBR = locale.Resolver{Requested: "pt-BR", Default: locale.CanonicalDefault}
)

func TestDispatch_Routing(t *testing.T) {
	d := newTestDispatcher()

	tests := []struct {
		name     string
		item     model.Item
		wantKind RenderKind
		wantEval exercise.Kind
	}{
		{name: "choose_the_correct_option", item: model.Item{ID: "1", Type: "exercise", Content: json.RawMessage(`{"exercise_type":"choose_the_correct_option","options":["a"],"correct_answer":"a"}`)}, wantKind: RenderInteractive, wantEval: exercise.KindSingleChoice},
		{name: "multiple_choice", item: model.Item{ID: "1", Type: "exercise", Content: json.RawMessage(`{"exercise_type":"multiple_choice","options":["a"],"correct_answer":"a"}`)}, wantKind: RenderInteractive, wantEval: exercise.KindSingleChoice},
		{name: "choose_the_word", item: model.Item{ID: "1", Type: "exercise", Content: json.RawMessage(`{"exercise_type":"choose_the_word","options":["a"],"correct_answer":"a"}`)}, wantKind: RenderInteractive, wantEval: exercise.KindSingleChoice},
		{name: "fill_in_the_blank_preposition", item: model.Item{ID: "1", Type: "exercise", Content: json.RawMessage(`{"exercise_type":"fill_in_the_blank_preposition","options":["in"],"correct_answer":"in"}`)}, wantKind: RenderInteractive, wantEval: exercise.KindSingleChoice},
		{name: "fill_in_the_blank_quantifier", item: model.Item{ID: "1", Type: "exercise", Content: json.RawMessage(`{"exercise_type":"fill_in_the_blank_quantifier","options":["some"],"correct_answer":"some"}`)}, wantKind: RenderInteractive, wantEval: exercise.KindSingleChoice},
		{name: "fill_in_the_blank_article", item: model.Item{ID: "1", Type: "exercise", Content: json.RawMessage(`{"exercise_type":"fill_in_the_blank_article","options":["an"],"correct_answer":"an"}`)}, wantKind: RenderInteractive, wantEval: exercise.KindSingleChoice},
		{name: "fill_in_the_blank_pronoun", item: model.Item{ID: "1", Type: "exercise", Content: json.RawMessage(`{"exercise_type":"fill_in_the_blank_pronoun","options":["he"],"correct_answer":"he"}`)}, wantKind: RenderInteractive, wantEval: exercise.KindSingleChoice},
		{name: "fill_in_the_blank", item: model.Item{ID: "1", Type: "exercise", Content: json.RawMessage(`{"exercise_type":"fill_in_the_blank","question":"I ___ happy","correct_answer":"am"}`)}, wantKind: RenderInteractive, wantEval: exercise.KindBlankFill},
		{name: "match_pairs", item: model.Item{ID: "1", Type: "exercise", Content: json.RawMessage(`{"exercise_type":"match_pairs","pairs":[{"question":"a","answer":"b"}]}`)}, wantKind: RenderInteractive, wantEval: exercise.KindPairMatch},
		{name: "match_question_answer", item: model.Item{ID: "1", Type: "review_exercise", Content: json.RawMessage(`{"exercise_type":"match_question_answer","pairs":[{"question":"a","answer":"b"}]}`)}, wantKind: RenderInteractive, wantEval: exercise.KindPairMatch},
		{name: "read_and_answer 設問付き", item: model.Item{ID: "1", Type: "exercise", Content: json.RawMessage(`{"exercise_type":"read_and_answer","text":"t","question":"q","options":["a"],"correct_answer":"a"}`)}, wantKind: RenderInteractive, wantEval: exercise.KindReadingChoice},
		{name: "read_and_answer 本文のみ", item: model.Item{ID: "1", Type: "exercise", Content: json.RawMessage(`{"exercise_type":"read_and_answer","reading_passage":"Tom is a teacher."}`)}, wantKind: RenderStatic},
		{name: "reorder_words", item: model.Item{ID: "1", Type: "exercise", Content: json.RawMessage(`{"exercise_type":"reorder_words","words":["a"],"correct_answer":"a"}`)}, wantKind: RenderInteractive, wantEval: exercise.KindReorder},
		{name: "rewrite_sentence", item: model.Item{ID: "1", Type: "exercise", Content: json.RawMessage(`{"exercise_type":"rewrite_sentence","correct_answer":"a"}`)}, wantKind: RenderInteractive, wantEval: exercise.KindRewrite},
		{name: "grammar_rule", item: model.Item{ID: "1", Type: "grammar_rule", Content: json.RawMessage(`{"rule_name":"Verb to be","explanation":"..."}`)}, wantKind: RenderStatic},
		{name: "dialogue", item: model.Item{ID: "1", Type: "dialogue", Content: json.RawMessage(`{"lines":[{"speaker":"A","sentence":"Hi"}]}`)}, wantKind: RenderStatic},
		{name: "vocabulary", item: model.Item{ID: "1", Type: "vocabulary", Content: json.RawMessage(`{"concept":"apple","translations":{"pt-BR":"maçã"}}`)}, wantKind: RenderStatic},
		{name: "cultural_tip", item: model.Item{ID: "1", Type: "cultural_tip", Content: json.RawMessage(`{"tip":"..."}`)}, wantKind: RenderStatic},
		{name: "congratulations_message", item: model.Item{ID: "1", Type: "congratulations_message", Content: json.RawMessage(`{}`)}, wantKind: RenderStatic},
		{name: "未知の exercise_type", item: model.Item{ID: "1", Type: "exercise", Content: json.RawMessage(`{"exercise_type":"cloze_audio"}`)}, wantKind: RenderNotice},
		{name: "未知の type", item: model.Item{ID: "1", Type: "video", Content: json.RawMessage(`{}`)}, wantKind: RenderNotice},
		{name: "不正なコンテンツ", item: model.Item{ID: "1", Type: "exercise", Content: json.RawMessage(`{"exercise_type":"multiple_choice"}`)}, wantKind: RenderNotice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []reported
			m := d.Dispatch(tt.item, recordInto(&calls, tt.item.ID))

			assert.Equal(t, tt.wantKind, m.Kind())
			if tt.wantEval != "" {
				require.NotNil(t, m.Evaluator)
				assert.Equal(t, tt.wantEval, m.Evaluator.Kind())
			} else {
				assert.Nil(t, m.Evaluator)
			}

			// どの種類でも描画は panic せず、種類に応じた1つだけが入る
			var v ItemView
			require.NotPanics(t, func() { v = m.View(ptBR) })
			filled := 0
			for _, present := range []bool{v.Exercise != nil, v.Static != nil, v.Notice != nil} {
				if present {
					filled++
				}
			}
			assert.Equal(t, 1, filled)
		})
	}
}

func TestDispatch_BlankFillEndToEnd(t *testing.T) {
	d := newTestDispatcher()
	item := model.Item{
		ID:      "unit-1",
		Type:    "exercise",
		Content: json.RawMessage(`{"exercise_type":"fill_in_the_blank","question":"I ___ happy","correct_answer":"am","feedback":{"en-US":"Good"}}`),
	}

	var calls []reported
	m := d.Dispatch(item, recordInto(&calls, item.ID))

	ctx := context.Background()
	require.NoError(t, exercise.Apply(ctx, m.Evaluator, model.ActionInput, " Am ", nil))
	require.NoError(t, exercise.Apply(ctx, m.Evaluator, model.ActionSubmit, "", nil))

	assert.Equal(t, []reported{{itemID: "unit-1", correct: true, response: "Am"}}, calls)

	v := m.View(ptBR)
	require.NotNil(t, v.Exercise)
	require.NotNil(t, v.Exercise.Result)
	assert.True(t, v.Exercise.Result.Correct)
	assert.Equal(t, "Good", v.Exercise.Result.Feedback)
	assert.Equal(t, "I ", v.Exercise.Prefix)
	assert.Equal(t, " happy", v.Exercise.Suffix)
}

func TestDispatch_UnsupportedExerciseEndToEnd(t *testing.T) {
	d := newTestDispatcher()
	raw := `{"exercise_type":"cloze_audio","audio_url":"https://example.com/a.mp3"}`
	item := model.Item{ID: "unit-2", Type: "exercise", Content: json.RawMessage(raw)}

	var m *Mount
	require.NotPanics(t, func() { m = d.Dispatch(item, recordInto(new([]reported), item.ID)) })

	v := m.View(enUS)
	require.NotNil(t, v.Notice)
	assert.Equal(t, NoticeUnsupportedExercise, v.Notice.Code)
	assert.Equal(t, "unsupported exercise type: cloze_audio", v.Notice.Message)
	assert.JSONEq(t, raw, string(v.Notice.Raw))
}

func TestDispatchLesson(t *testing.T) {
	d := newTestDispatcher()
	lesson := &model.Lesson{
		ID: "L1",
		Items: []model.Item{
			{ID: "a", Type: "vocabulary", Content: json.RawMessage(`{"concept":"apple"}`)},
			{ID: "", Type: "dialogue", Content: json.RawMessage(`{"lines":[{"speaker":"A","sentence":"Hi"}]}`)},
			{ID: "b", Type: "exercise", Content: json.RawMessage(`{"exercise_type":"multiple_choice"}`)},
			{ID: "c", Type: "cultural_tip", Content: json.RawMessage(`{"tip":"Say please."}`)},
			{ID: "a", Type: "cultural_tip", Content: json.RawMessage(`{"tip":"dup"}`)},
		},
	}

	mounts := d.DispatchLesson(lesson, func(itemID string) exercise.ReportFunc {
		return recordInto(new([]reported), itemID)
	})

	// ID 無しと重複はスキップし、不正な項目があっても兄弟は表示する
	require.Len(t, mounts, 3)
	assert.Equal(t, "a", mounts[0].Item.ID)
	assert.Equal(t, "b", mounts[1].Item.ID)
	assert.Equal(t, RenderNotice, mounts[1].Kind())
	assert.Equal(t, "c", mounts[2].Item.ID)
	assert.Equal(t, RenderStatic, mounts[2].Kind())
}

func TestStaticViews(t *testing.T) {
	d := newTestDispatcher()
	noop := recordInto(new([]reported), "")

	t.Run("読解: 原文と訳", func(t *testing.T) {
		m := d.Dispatch(model.Item{ID: "r", Type: "exercise", Content: json.RawMessage(
			`{"exercise_type":"read_and_answer","reading_passage":{"en-US":"Tom is a teacher.","pt-BR":"Tom é professor."}}`)}, noop)

		v := m.View(ptBR).Static
		assert.Equal(t, "Tom is a teacher.", v.Original)
		assert.Equal(t, "Tom é professor.", v.Translation)

		// 英語の学習者には訳を出さない
		assert.Empty(t, m.View(enUS).Static.Translation)
	})

	t.Run("語彙: 訳が無い場合", func(t *testing.T) {
		m := d.Dispatch(model.Item{ID: "v", Type: "vocabulary", Content: json.RawMessage(`{"concept":"apple","translations":{"es-ES":"manzana"}}`)}, noop)
		v := m.View(ptBR).Static
		assert.Equal(t, "apple", v.Title)
		assert.Equal(t, "Tradução não disponível", v.Translation)
	})

	t.Run("文化のヒント: タイトルのデフォルト", func(t *testing.T) {
		m := d.Dispatch(model.Item{ID: "c", Type: "cultural_tip", Content: json.RawMessage(`{"tip":{"pt-BR":"Diga please."}}`)}, noop)
		v := m.View(ptBR).Static
		assert.Equal(t, "Dica Cultural", v.Title)
		assert.Equal(t, "Diga please.", v.Body)
	})

	t.Run("お祝い: デフォルト文言", func(t *testing.T) {
		m := d.Dispatch(model.Item{ID: "g", Type: "congratulations_message"}, noop)
		v := m.View(enUS).Static
		assert.Equal(t, "Congratulations!", v.Title)
		assert.Equal(t, "You completed this step!", v.Body)
	})

	t.Run("会話: ロケールの解決", func(t *testing.T) {
		m := d.Dispatch(model.Item{ID: "d", Type: "dialogue", Content: json.RawMessage(
			`{"lines":[{"speaker":"Ana","sentence":{"en-US":"Hello!","pt-BR":"Olá!"}},{"speaker":"Bob","sentence":{"fr-FR":"Salut"}}]}`)}, noop)
		v := m.View(ptBR).Static
		assert.Equal(t, "Diálogo", v.Title)
		assert.Equal(t, []LineView{{Speaker: "Ana", Sentence: "Olá!"}, {Speaker: "Bob", Sentence: ""}}, v.Lines)
	})
}
