// internal/model/tutor.go
package model

import "encoding/json"

type IntentType string

const (
	IntentButtonClick IntentType = "button_click"
	IntentChatMessage IntentType = "chat_message"
)

// UserIntent はチューターへの操作 (ボタン / チャット) です
type UserIntent struct {
	Type     IntentType     `json:"type" validate:"required,oneof=button_click chat_message"`
	ActionID string         `json:"action_id,omitempty" validate:"required_if=Type button_click"`
	Text     string         `json:"text,omitempty" validate:"required_if=Type chat_message,max=2000"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type AIResponseType string

const (
	AIResponseNewLesson            AIResponseType = "new_lesson"
	AIResponseActiveLessonReturned AIResponseType = "active_lesson_returned"
	AIResponseTutorFeedback        AIResponseType = "tutor_feedback"
	AIResponseError                AIResponseType = "error"
)

// AIResponse はチューターAPIの応答です。content はレッスンの場合があります。
type AIResponse struct {
	ResponseType  AIResponseType  `json:"response_type"`
	MessageToUser string          `json:"message_to_user"`
	Content       json.RawMessage `json:"content,omitempty"`
}

// CarriesLesson は応答がレッスンを含む種類かどうかを返します
func (r *AIResponse) CarriesLesson() bool {
	return r.ResponseType == AIResponseNewLesson || r.ResponseType == AIResponseActiveLessonReturned
}

// TutorMessage はチューターからの未読メッセージです
type TutorMessage struct {
	ID             int64  `json:"id"`
	MessageContent string `json:"message_content"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}
