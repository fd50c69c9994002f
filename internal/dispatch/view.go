// internal/dispatch/view.go
package dispatch

import (
	"encoding/json"

	"go_5_english_tutor/internal/exercise"
)

// RenderKind は項目の描画結果の種類です
type RenderKind string

const (
	RenderInteractive RenderKind = "interactive"
	RenderStatic      RenderKind = "static"
	RenderNotice      RenderKind = "notice"
)

// NoticeCode はフォールバック表示の種類です
type NoticeCode string

const (
	NoticeUnsupportedExercise NoticeCode = "unsupported_exercise"
	NoticeUnknownItem         NoticeCode = "unknown_item"
	NoticeMalformedContent    NoticeCode = "malformed_content"
)

// ItemView は1項目の表示モデルです。Exercise / Static / Notice のいずれか1つだけが入ります。
type ItemView struct {
	ItemID   string         `json:"item_id"`
	ItemType string         `json:"item_type"`
	MountID  string         `json:"mount_id"`
	Kind     RenderKind     `json:"kind"`
	Exercise *exercise.View `json:"exercise,omitempty"`
	Static   *StaticView    `json:"static,omitempty"`
	Notice   *NoticeView    `json:"notice,omitempty"`
	Report   *ReportStatus  `json:"report,omitempty"`
}

// ReportStatus は回答送信の状態です。セッションが付与します。
type ReportStatus struct {
	State         string `json:"state"`
	Retryable     bool   `json:"retryable"`
	ServerVerdict *bool  `json:"server_verdict,omitempty"`
}

type StaticView struct {
	Kind  string `json:"kind"`
	Label string `json:"label,omitempty"`
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`

	// grammar_rule
	PositiveForm string `json:"positive_form,omitempty"`
	NegativeForm string `json:"negative_form,omitempty"`

	// reading_passage (原文 / 学習者ロケールの訳) と vocabulary (訳)
	Original    string `json:"original,omitempty"`
	Translation string `json:"translation,omitempty"`

	// dialogue
	Lines []LineView `json:"lines,omitempty"`
}

type LineView struct {
	Speaker  string `json:"speaker"`
	Sentence string `json:"sentence"`
}

type NoticeView struct {
	Code    NoticeCode      `json:"code"`
	Message string          `json:"message"`
	RawType string          `json:"raw_type,omitempty"`
	Subtype string          `json:"subtype,omitempty"`
	Reason  string          `json:"reason,omitempty"`
	Raw     json.RawMessage `json:"raw,omitempty"`
}

// LessonView はマウント済みレッスン全体の表示モデルです
type LessonView struct {
	LessonID  string     `json:"lesson_id"`
	ModuleID  string     `json:"module_id,omitempty"`
	Title     string     `json:"title"`
	Objective string     `json:"objective,omitempty"`
	Items     []ItemView `json:"items"`
}
