// internal/model/notice.go
package model

import "time"

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
	NoticeInfo    NoticeLevel = "info"
)

// Notice は学習者に一時的に表示するトーストです
type Notice struct {
	ID        string      `json:"id"`
	Level     NoticeLevel `json:"level"`
	Message   string      `json:"message"`
	Retryable bool        `json:"retryable"`
	ItemID    string      `json:"item_id,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
