// internal/model/studyplan.go
package model

// ModuleStatus はAPIが返すモジュールの進捗状態です
type ModuleStatus string

const (
	ModuleStatusCompleted  ModuleStatus = "completed"
	ModuleStatusInProgress ModuleStatus = "in_progress"
	ModuleStatusNotStarted ModuleStatus = "not_started"
)

type OverallProgress struct {
	CompletedModules int `json:"completed_modules"`
	TotalModules     int `json:"total_modules"`
	Percentage       int `json:"percentage"`
}

type ModuleLessonProgress struct {
	CompletedLessons int `json:"completed_lessons"`
	TotalLessons     int `json:"total_lessons"`
}

type ModuleProgress struct {
	ModuleID    string               `json:"module_id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Status      ModuleStatus         `json:"status"`
	Progress    ModuleLessonProgress `json:"progress"`
}

// StudyPlanProgress は GET /study-plan/progress のレスポンスです
type StudyPlanProgress struct {
	OverallProgress OverallProgress  `json:"overall_progress"`
	Modules         []ModuleProgress `json:"modules"`
}

// CardState は学習プラン画面でのモジュールカードの状態です
type CardState string

const (
	CardStateCompleted CardState = "completed"
	CardStateActive    CardState = "active"
	CardStateLocked    CardState = "locked"
)

type ModuleCard struct {
	ModuleID         string    `json:"module_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	State            CardState `json:"state"`
	IsNew            bool      `json:"is_new"`
	CompletedLessons int       `json:"completed_lessons"`
	TotalLessons     int       `json:"total_lessons"`
}

// StudyPlanView は BFF が返す学習プラン画面です
type StudyPlanView struct {
	InPreparation   bool            `json:"in_preparation"`
	Message         string          `json:"message,omitempty"`
	OverallProgress OverallProgress `json:"overall_progress"`
	ActiveModuleID  string          `json:"active_module_id,omitempty"`
	Modules         []ModuleCard    `json:"modules"`
}
