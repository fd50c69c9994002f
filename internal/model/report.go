// internal/model/report.go
package model

import "time"

// AnswerPayload は POST /lessons/answer のリクエストです
type AnswerPayload struct {
	LessonID        string `json:"lesson_id" validate:"required"`
	UnitID          string `json:"unit_id" validate:"required"`
	StudentResponse string `json:"student_response"`
}

// AnswerVerdict はサーバー側の判定です。永続化される正誤はこちらです。
type AnswerVerdict struct {
	IsCorrect     bool              `json:"is_correct"`
	CorrectAnswer string            `json:"correct_answer"`
	Feedback      map[string]string `json:"feedback,omitempty"`
}

// ReportState は項目ごとの回答送信状態です
type ReportState string

const (
	ReportStateNone    ReportState = ""
	ReportStateSent    ReportState = "sent"
	ReportStatePending ReportState = "pending"
)

// PendingReport は送信に失敗し、再送待ちの回答です
type PendingReport struct {
	LessonID         string    `json:"lesson_id"`
	ItemID           string    `json:"item_id"`
	IsCorrectLocally bool      `json:"is_correct_locally"`
	Response         string    `json:"response"`
	FailedAt         time.Time `json:"failed_at"`
	LastError        string    `json:"last_error"`
}
