// internal/model/request.go
package model

// ItemAction は項目に対する学習者の操作です
type ItemAction string

const (
	ActionSelect       ItemAction = "select"
	ActionInput        ItemAction = "input"
	ActionPlace        ItemAction = "place"
	ActionReturn       ItemAction = "return"
	ActionPickQuestion ItemAction = "pick_question"
	ActionPickAnswer   ItemAction = "pick_answer"
	ActionSubmit       ItemAction = "submit"
)

// ItemActionRequest は POST /lesson/items/{item_id}/actions のボディです。
// place / return / pick_* は TokenID (表示上の候補ID) を使います。
type ItemActionRequest struct {
	Action  ItemAction `json:"action" validate:"required,oneof=select input place return pick_question pick_answer submit"`
	Value   string     `json:"value" validate:"max=1000"`
	TokenID *int       `json:"token_id,omitempty" validate:"omitempty,min=0"`
}

type StartLessonRequest struct {
	ModuleID string `json:"module_id" validate:"required"`
}

// ModuleRequest は start-lesson / complete-lesson に送るボディです
type ModuleRequest struct {
	ModuleID string `json:"module_id"`
}
