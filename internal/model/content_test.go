package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseItem(content string) Item {
	return Item{ID: "u1", Type: string(ItemTypeExercise), Content: json.RawMessage(content)}
}

func TestParseContent(t *testing.T) {
	tests := []struct {
		name   string
		item   Item
		assert func(t *testing.T, c Content)
	}{
		{
			name: "正常系: choose_the_correct_option は単一選択",
			item: exerciseItem(`{"exercise_type":"choose_the_correct_option","question":"She ___ a doctor.","options":["is","are"],"correct_answer":"is"}`),
			assert: func(t *testing.T, c Content) {
				sc, ok := c.(SingleChoiceContent)
				require.True(t, ok)
				assert.Equal(t, ExerciseChooseTheCorrectOption, sc.Subtype)
				assert.Equal(t, []string{"is", "are"}, sc.Options)
				assert.Equal(t, "is", sc.CorrectAnswer)
			},
		},
		{
			name: "正常系: review_exercise も同じ形で扱う",
			item: Item{ID: "u2", Type: "review_exercise", Content: json.RawMessage(`{"exercise_type":"fill_in_the_blank_article","options":["a","an"],"correct_answer":"an"}`)},
			assert: func(t *testing.T, c Content) {
				_, ok := c.(SingleChoiceContent)
				assert.True(t, ok)
			},
		},
		{
			name: "正常系: read_and_answer 旧形式は本文ビュー",
			item: exerciseItem(`{"exercise_type":"read_and_answer","reading_passage":{"en-US":"Tom is a teacher.","pt-BR":"Tom é professor."}}`),
			assert: func(t *testing.T, c Content) {
				rp, ok := c.(ReadingPassageContent)
				require.True(t, ok)
				assert.Equal(t, "Tom is a teacher.", rp.Passage.ByLocale["en-US"])
			},
		},
		{
			name: "正常系: read_and_answer 設問付きは読解選択",
			item: exerciseItem(`{"exercise_type":"read_and_answer","text":"Tom is a teacher.","question":"What is Tom?","options":["A teacher","A doctor"],"correct_answer":"A teacher"}`),
			assert: func(t *testing.T, c Content) {
				rc, ok := c.(ReadingChoiceContent)
				require.True(t, ok)
				assert.Equal(t, "Tom is a teacher.", rc.Text.Plain)
				assert.Equal(t, "A teacher", rc.Choice.CorrectAnswer)
			},
		},
		{
			name: "正常系: reorder_words は単語配列の正解も受け付ける",
			item: exerciseItem(`{"exercise_type":"reorder_words","words":["am","I","happy"],"correct_answer":["I","am","happy"]}`),
			assert: func(t *testing.T, c Content) {
				rc, ok := c.(ReorderContent)
				require.True(t, ok)
				assert.Equal(t, "I am happy", rc.CorrectAnswer)
			},
		},
		{
			name: "正常系: match_question_answer はペア照合",
			item: exerciseItem(`{"exercise_type":"match_question_answer","pairs":[{"question":"How are you?","answer":"Fine"}]}`),
			assert: func(t *testing.T, c Content) {
				pm, ok := c.(PairMatchContent)
				require.True(t, ok)
				assert.Len(t, pm.Pairs, 1)
			},
		},
		{
			name: "フォールバック: 未知の exercise_type は生の値を保持",
			item: exerciseItem(`{"exercise_type":"cloze_audio","audio":"x.mp3"}`),
			assert: func(t *testing.T, c Content) {
				ue, ok := c.(UnsupportedExerciseContent)
				require.True(t, ok)
				assert.Equal(t, "cloze_audio", ue.Subtype)
				assert.JSONEq(t, `{"exercise_type":"cloze_audio","audio":"x.mp3"}`, string(ue.Raw))
			},
		},
		{
			name: "フォールバック: 未知の type",
			item: Item{ID: "u3", Type: "video", Content: json.RawMessage(`{"url":"x"}`)},
			assert: func(t *testing.T, c Content) {
				ui, ok := c.(UnknownItemContent)
				require.True(t, ok)
				assert.Equal(t, "video", ui.Type)
			},
		},
		{
			name: "不正: 選択肢が無い",
			item: exerciseItem(`{"exercise_type":"multiple_choice","question":"?","correct_answer":"a"}`),
			assert: func(t *testing.T, c Content) {
				mc, ok := c.(MalformedContent)
				require.True(t, ok)
				assert.Equal(t, "multiple_choice", mc.Subtype)
				assert.Equal(t, "missing options", mc.Reason)
			},
		},
		{
			name: "不正: ペアが空",
			item: exerciseItem(`{"exercise_type":"match_pairs","pairs":[]}`),
			assert: func(t *testing.T, c Content) {
				mc, ok := c.(MalformedContent)
				require.True(t, ok)
				assert.Equal(t, "missing pairs", mc.Reason)
			},
		},
		{
			name: "不正: content がオブジェクトでない",
			item: exerciseItem(`["a"]`),
			assert: func(t *testing.T, c Content) {
				_, ok := c.(MalformedContent)
				assert.True(t, ok)
			},
		},
		{
			name: "不正: 型が合わない",
			item: exerciseItem(`{"exercise_type":"reorder_words","words":"I am"}`),
			assert: func(t *testing.T, c Content) {
				_, ok := c.(MalformedContent)
				assert.True(t, ok)
			},
		},
		{
			name: "不正: read_and_answer に本文も設問も無い",
			item: exerciseItem(`{"exercise_type":"read_and_answer"}`),
			assert: func(t *testing.T, c Content) {
				_, ok := c.(MalformedContent)
				assert.True(t, ok)
			},
		},
		{
			name: "正常系: お祝いメッセージは content 無しでも表示",
			item: Item{ID: "u4", Type: "congratulations_message"},
			assert: func(t *testing.T, c Content) {
				_, ok := c.(CongratulationsContent)
				assert.True(t, ok)
			},
		},
		{
			name: "正常系: dialogue",
			item: Item{ID: "u5", Type: "dialogue", Content: json.RawMessage(`{"title":"At the café","lines":[{"speaker":"A","sentence":{"en-US":"Hi"}}]}`)},
			assert: func(t *testing.T, c Content) {
				dc, ok := c.(DialogueContent)
				require.True(t, ok)
				assert.Equal(t, "A", dc.Lines[0].Speaker)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				tt.assert(t, ParseContent(tt.item))
			})
		})
	}
}

func TestLesson_UnmarshalJSON(t *testing.T) {
	t.Run("正常系: lesson_id を優先", func(t *testing.T) {
		var l Lesson
		require.NoError(t, json.Unmarshal([]byte(`{"lesson_id":"L1","id":"old","title":"T","lesson_items":[{"id":"b","type":"dialogue"},{"id":"a","type":"vocabulary"}]}`), &l))
		assert.Equal(t, "L1", l.ID)
		require.Len(t, l.Items, 2)
		assert.Equal(t, "b", l.Items[0].ID)
		assert.Equal(t, "a", l.Items[1].ID)
	})

	t.Run("正常系: 旧形式の id", func(t *testing.T) {
		var l Lesson
		require.NoError(t, json.Unmarshal([]byte(`{"id":"old","module_id":"M1"}`), &l))
		assert.Equal(t, "old", l.ID)
		assert.Equal(t, "M1", l.ModuleID)
	})

	broken := []struct {
		name     string
		item     string
		wantID   string
		wantType string
	}{
		{name: "id が数値", item: `{"id":7,"type":"dialogue","content":{}}`, wantID: "", wantType: "dialogue"},
		{name: "type が数値", item: `{"id":"b","type":3,"content":{}}`, wantID: "b", wantType: ""},
		{name: "metadata が配列", item: `{"id":"b","type":"cultural_tip","content":{"tip":"Hi"},"metadata":[]}`, wantID: "b", wantType: "cultural_tip"},
		{name: "項目がオブジェクトでない", item: `"oops"`, wantID: "", wantType: ""},
	}
	for _, tt := range broken {
		t.Run("異常系: 壊れた項目があっても他の項目は残る ("+tt.name+")", func(t *testing.T) {
			data := `{"lesson_id":"L1","lesson_items":[{"id":"a","type":"vocabulary","content":{"concept":"cat"}},` + tt.item + `]}`

			var l Lesson
			require.NoError(t, json.Unmarshal([]byte(data), &l))
			require.Len(t, l.Items, 2)
			assert.Equal(t, "a", l.Items[0].ID)
			assert.Equal(t, "vocabulary", l.Items[0].Type)
			assert.JSONEq(t, `{"concept":"cat"}`, string(l.Items[0].Content))
			assert.Equal(t, tt.wantID, l.Items[1].ID)
			assert.Equal(t, tt.wantType, l.Items[1].Type)
			assert.Nil(t, l.Items[1].Metadata)
		})
	}
}
