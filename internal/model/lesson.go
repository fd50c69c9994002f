// internal/model/lesson.go
package model

import (
	"encoding/json"
)

// ItemType はレッスン項目の種類 (type) です
type ItemType string

const (
	ItemTypeExercise               ItemType = "exercise"
	ItemTypeReviewExercise         ItemType = "review_exercise"
	ItemTypeGrammarRule            ItemType = "grammar_rule"
	ItemTypeDialogue               ItemType = "dialogue"
	ItemTypeVocabulary             ItemType = "vocabulary"
	ItemTypeCulturalTip            ItemType = "cultural_tip"
	ItemTypeCongratulationsMessage ItemType = "congratulations_message"
)

// ExerciseType は練習問題のサブタイプ (content.exercise_type) です
type ExerciseType string

const (
	ExerciseChooseTheCorrectOption      ExerciseType = "choose_the_correct_option"
	ExerciseMultipleChoice              ExerciseType = "multiple_choice"
	ExerciseChooseTheWord               ExerciseType = "choose_the_word"
	ExerciseFillInTheBlankPreposition   ExerciseType = "fill_in_the_blank_preposition"
	ExerciseFillInTheBlankQuantifier    ExerciseType = "fill_in_the_blank_quantifier"
	ExerciseFillInTheBlankArticle       ExerciseType = "fill_in_the_blank_article"
	ExerciseFillInTheBlankPronoun       ExerciseType = "fill_in_the_blank_pronoun"
	ExerciseFillInTheBlank              ExerciseType = "fill_in_the_blank"
	ExerciseMatchPairs                  ExerciseType = "match_pairs"
	ExerciseMatchQuestionAnswer         ExerciseType = "match_question_answer"
	ExerciseReadAndAnswer               ExerciseType = "read_and_answer"
	ExerciseReorderWords                ExerciseType = "reorder_words"
	ExerciseRewriteSentence             ExerciseType = "rewrite_sentence"
)

// Lesson はAPIから受け取るレッスンです。Items の順序は表示順であり、並べ替えません。
type Lesson struct {
	ID        string `json:"lesson_id"`
	ModuleID  string `json:"module_id,omitempty"`
	Title     string `json:"title"`
	Objective string `json:"objective"`
	Items     []Item `json:"lesson_items"`
}

// Item はレッスン内の1項目 (learning unit) です
type Item struct {
	ID       string          `json:"id"`
	UnitCode string          `json:"unit_code,omitempty"`
	Type     string          `json:"type"`
	Content  json.RawMessage `json:"content"`
	Metadata map[string]any  `json:"metadata,omitempty"`
}

// lessonPayload は新旧両方のレッスンIDキーを受け付けるためのものです
type lessonPayload struct {
	LessonID  string            `json:"lesson_id"`
	ID        string            `json:"id"`
	ModuleID  string            `json:"module_id"`
	Title     string            `json:"title"`
	Objective string            `json:"objective"`
	Items     []json.RawMessage `json:"lesson_items"`
}

func (l *Lesson) UnmarshalJSON(data []byte) error {
	var p lessonPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	id := p.LessonID
	if id == "" {
		id = p.ID
	}
	*l = Lesson{
		ID:        id,
		ModuleID:  p.ModuleID,
		Title:     p.Title,
		Objective: p.Objective,
		Items:     decodeItems(p.Items),
	}
	return nil
}

// decodeItems は項目を1件ずつデコードします。
// 壊れた項目があっても他の項目は失いません。
func decodeItems(raws []json.RawMessage) []Item {
	if raws == nil {
		return nil
	}
	items := make([]Item, len(raws))
	for i, raw := range raws {
		if err := json.Unmarshal(raw, &items[i]); err != nil {
			items[i] = salvageItem(raw)
		}
	}
	return items
}

// salvageItem は型の合わないフィールドを捨てて、読める部分だけで Item を作ります。
// id が文字列でなければ ID は空になり、ディスパッチ時にスキップされます。
func salvageItem(raw json.RawMessage) Item {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Item{}
	}
	var item Item
	json.Unmarshal(fields["id"], &item.ID)
	json.Unmarshal(fields["unit_code"], &item.UnitCode)
	json.Unmarshal(fields["type"], &item.Type)
	json.Unmarshal(fields["metadata"], &item.Metadata)
	if c, ok := fields["content"]; ok {
		item.Content = c
	}
	return item
}
