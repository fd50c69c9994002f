// internal/model/content.go
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"go_5_english_tutor/internal/locale"
)

// Content は ParseContent が返す型付きコンテンツです。
// 以下のいずれかの型だけが実装します (閉じた直和型)。
type Content interface {
	isContent()
}

type Pair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type DialogueLine struct {
	Speaker  string               `json:"speaker"`
	Sentence locale.LocalizedText `json:"sentence"`
}

// --- 練習問題 ---

type SingleChoiceContent struct {
	Subtype       ExerciseType
	Question      locale.LocalizedText
	Options       []string
	CorrectAnswer string
	Feedback      locale.LocalizedText
}

// ReadingChoiceContent は本文付きの read_and_answer (text/question/options) です
type ReadingChoiceContent struct {
	Text   locale.LocalizedText
	Choice SingleChoiceContent
}

type BlankFillContent struct {
	Question      locale.LocalizedText
	CorrectAnswer string
	Feedback      locale.LocalizedText
}

type PairMatchContent struct {
	Subtype  ExerciseType
	Question locale.LocalizedText
	Pairs    []Pair
}

type ReorderContent struct {
	Question      locale.LocalizedText
	Words         []string
	CorrectAnswer string
	Feedback      locale.LocalizedText
}

type RewriteContent struct {
	Question      locale.LocalizedText
	CorrectAnswer string
	Feedback      locale.LocalizedText
}

// --- 静的コンテンツ ---

// ReadingPassageContent は旧形式の read_and_answer (reading_passage のみ) です
type ReadingPassageContent struct {
	Title   locale.LocalizedText
	Passage locale.LocalizedText
}

type GrammarRuleContent struct {
	RuleName     locale.LocalizedText
	Explanation  locale.LocalizedText
	PositiveForm locale.LocalizedText
	NegativeForm locale.LocalizedText
}

type DialogueContent struct {
	Title locale.LocalizedText
	Lines []DialogueLine
}

type VocabularyContent struct {
	Concept      locale.LocalizedText
	Translations locale.LocalizedText
}

type CulturalTipContent struct {
	Title locale.LocalizedText
	Tip   locale.LocalizedText
}

type CongratulationsContent struct {
	Title   locale.LocalizedText
	Message locale.LocalizedText
}

// --- フォールバック ---

// UnsupportedExerciseContent は未知の exercise_type です。Raw に元の文字列を保持します。
type UnsupportedExerciseContent struct {
	Subtype string
	Raw     json.RawMessage
}

// UnknownItemContent は未知の type です
type UnknownItemContent struct {
	Type string
	Raw  json.RawMessage
}

// MalformedContent は宣言された型に必要なフィールドが欠けているコンテンツです
type MalformedContent struct {
	Type    string
	Subtype string
	Reason  string
	Raw     json.RawMessage
}

func (SingleChoiceContent) isContent()        {}
func (ReadingChoiceContent) isContent()       {}
func (BlankFillContent) isContent()           {}
func (PairMatchContent) isContent()           {}
func (ReorderContent) isContent()             {}
func (RewriteContent) isContent()             {}
func (ReadingPassageContent) isContent()      {}
func (GrammarRuleContent) isContent()         {}
func (DialogueContent) isContent()            {}
func (VocabularyContent) isContent()          {}
func (CulturalTipContent) isContent()         {}
func (CongratulationsContent) isContent()     {}
func (UnsupportedExerciseContent) isContent() {}
func (UnknownItemContent) isContent()         {}
func (MalformedContent) isContent()           {}

// rawContent はすべての形を一度に受け取るためのデコード用構造体です
type rawContent struct {
	ExerciseType   string                `json:"exercise_type"`
	Question       locale.LocalizedText  `json:"question"`
	Text           locale.LocalizedText  `json:"text"`
	ReadingPassage locale.LocalizedText  `json:"reading_passage"`
	Options        []string              `json:"options"`
	CorrectAnswer  json.RawMessage       `json:"correct_answer"`
	Words          []string              `json:"words"`
	Pairs          []Pair                `json:"pairs"`
	Feedback       locale.LocalizedText  `json:"feedback"`
	RuleName       locale.LocalizedText  `json:"rule_name"`
	Explanation    locale.LocalizedText  `json:"explanation"`
	PositiveForm   locale.LocalizedText  `json:"positive_form"`
	NegativeForm   locale.LocalizedText  `json:"negative_form"`
	Title          locale.LocalizedText  `json:"title"`
	Lines          []DialogueLine        `json:"lines"`
	Concept        locale.LocalizedText  `json:"concept"`
	Translations   locale.LocalizedText  `json:"translations"`
	Tip            locale.LocalizedText  `json:"tip"`
	Message        locale.LocalizedText  `json:"message"`
}

// IsExerciseType は type が練習問題 (通常/復習) かどうかを返します
func IsExerciseType(t string) bool {
	return ItemType(t) == ItemTypeExercise || ItemType(t) == ItemTypeReviewExercise
}

// ParseContent は項目を型付きコンテンツに変換します。
// 失敗は panic にもエラーにもせず、MalformedContent / UnknownItemContent として返します。
func ParseContent(item Item) Content {
	switch ItemType(item.Type) {
	case ItemTypeExercise, ItemTypeReviewExercise,
		ItemTypeGrammarRule, ItemTypeDialogue, ItemTypeVocabulary,
		ItemTypeCulturalTip, ItemTypeCongratulationsMessage:
	default:
		return UnknownItemContent{Type: item.Type, Raw: item.Content}
	}

	raw, err := decodeRaw(item.Content)
	if err != nil {
		return MalformedContent{Type: item.Type, Reason: err.Error(), Raw: item.Content}
	}

	switch ItemType(item.Type) {
	case ItemTypeExercise, ItemTypeReviewExercise:
		return parseExercise(item, raw)
	case ItemTypeGrammarRule:
		if raw.RuleName.IsEmpty() && raw.Explanation.IsEmpty() {
			return malformed(item, "", "grammar rule has neither rule_name nor explanation")
		}
		return GrammarRuleContent{
			RuleName:     raw.RuleName,
			Explanation:  raw.Explanation,
			PositiveForm: raw.PositiveForm,
			NegativeForm: raw.NegativeForm,
		}
	case ItemTypeDialogue:
		if len(raw.Lines) == 0 {
			return malformed(item, "", "dialogue has no lines")
		}
		return DialogueContent{Title: raw.Title, Lines: raw.Lines}
	case ItemTypeVocabulary:
		if raw.Concept.IsEmpty() {
			return malformed(item, "", "vocabulary has no concept")
		}
		return VocabularyContent{Concept: raw.Concept, Translations: raw.Translations}
	case ItemTypeCulturalTip:
		return CulturalTipContent{Title: raw.Title, Tip: raw.Tip}
	default: // ItemTypeCongratulationsMessage
		return CongratulationsContent{Title: raw.Title, Message: raw.Message}
	}
}

func decodeRaw(data json.RawMessage) (*rawContent, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		// お祝いメッセージなどは content 無しでも表示できる
		return &rawContent{}, nil
	}
	if trimmed[0] != '{' {
		return nil, fmt.Errorf("content must be a JSON object")
	}
	var raw rawContent
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("content could not be decoded: %w", err)
	}
	return &raw, nil
}

func parseExercise(item Item, raw *rawContent) Content {
	subtype := ExerciseType(raw.ExerciseType)

	switch subtype {
	case ExerciseChooseTheCorrectOption, ExerciseMultipleChoice, ExerciseChooseTheWord,
		ExerciseFillInTheBlankPreposition, ExerciseFillInTheBlankQuantifier,
		ExerciseFillInTheBlankArticle, ExerciseFillInTheBlankPronoun:
		choice, reason := singleChoice(subtype, raw)
		if reason != "" {
			return malformed(item, raw.ExerciseType, reason)
		}
		return choice

	case ExerciseReadAndAnswer:
		if hasReadingPassage(raw) {
			return ReadingPassageContent{Title: raw.Title, Passage: raw.ReadingPassage}
		}
		if raw.Question.IsEmpty() && len(raw.Options) == 0 {
			return malformed(item, raw.ExerciseType, "read_and_answer has neither reading_passage nor question/options")
		}
		choice, reason := singleChoice(subtype, raw)
		if reason != "" {
			return malformed(item, raw.ExerciseType, reason)
		}
		return ReadingChoiceContent{Text: raw.Text, Choice: choice}

	case ExerciseFillInTheBlank:
		answer, ok := canonicalAnswer(raw.CorrectAnswer)
		if raw.Question.IsEmpty() {
			return malformed(item, raw.ExerciseType, "missing question")
		}
		if !ok {
			return malformed(item, raw.ExerciseType, "missing correct_answer")
		}
		return BlankFillContent{Question: raw.Question, CorrectAnswer: answer, Feedback: raw.Feedback}

	case ExerciseMatchPairs, ExerciseMatchQuestionAnswer:
		if len(raw.Pairs) == 0 {
			return malformed(item, raw.ExerciseType, "missing pairs")
		}
		for i, p := range raw.Pairs {
			if p.Question == "" || p.Answer == "" {
				return malformed(item, raw.ExerciseType, fmt.Sprintf("pair %d is incomplete", i))
			}
		}
		return PairMatchContent{Subtype: subtype, Question: raw.Question, Pairs: raw.Pairs}

	case ExerciseReorderWords:
		answer, ok := canonicalAnswer(raw.CorrectAnswer)
		if len(raw.Words) == 0 {
			return malformed(item, raw.ExerciseType, "missing words")
		}
		if !ok {
			return malformed(item, raw.ExerciseType, "missing correct_answer")
		}
		return ReorderContent{Question: raw.Question, Words: raw.Words, CorrectAnswer: answer, Feedback: raw.Feedback}

	case ExerciseRewriteSentence:
		answer, ok := canonicalAnswer(raw.CorrectAnswer)
		if !ok {
			return malformed(item, raw.ExerciseType, "missing correct_answer")
		}
		return RewriteContent{Question: raw.Question, CorrectAnswer: answer, Feedback: raw.Feedback}

	default:
		return UnsupportedExerciseContent{Subtype: raw.ExerciseType, Raw: item.Content}
	}
}

// hasReadingPassage は read_and_answer が旧形式 (本文のみ、設問・選択肢なし) かを判定します。
// 同じサブタイプ名が2種類のペイロードに使われているため、ここで一度だけ判定します。
func hasReadingPassage(raw *rawContent) bool {
	return !raw.ReadingPassage.IsEmpty() && raw.Question.IsEmpty() && len(raw.Options) == 0
}

func singleChoice(subtype ExerciseType, raw *rawContent) (SingleChoiceContent, string) {
	if len(raw.Options) == 0 {
		return SingleChoiceContent{}, "missing options"
	}
	answer, ok := canonicalAnswer(raw.CorrectAnswer)
	if !ok {
		return SingleChoiceContent{}, "missing correct_answer"
	}
	return SingleChoiceContent{
		Subtype:       subtype,
		Question:      raw.Question,
		Options:       raw.Options,
		CorrectAnswer: answer,
		Feedback:      raw.Feedback,
	}, ""
}

// canonicalAnswer は correct_answer を文字列にします。
// 単語の配列で届いた場合はスペースで連結します。
func canonicalAnswer(data json.RawMessage) (string, bool) {
	if len(bytes.TrimSpace(data)) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s, s != ""
	}
	var words []string
	if err := json.Unmarshal(data, &words); err == nil && len(words) > 0 {
		return strings.Join(words, " "), true
	}
	return "", false
}

func malformed(item Item, subtype, reason string) MalformedContent {
	return MalformedContent{Type: item.Type, Subtype: subtype, Reason: reason, Raw: item.Content}
}
