//go:generate mockery --name StudyPlanRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"net/http"

	"go_5_english_tutor/internal/model"
)

// StudyPlanRepository は学習プランのAPIです
type StudyPlanRepository interface {
	GetProgress(ctx context.Context) (*model.StudyPlanProgress, error)
	StartLesson(ctx context.Context, moduleID string) (*model.Lesson, error)
	CompleteLesson(ctx context.Context, moduleID string) error
}

type apiStudyPlanRepository struct {
	client *APIClient
}

func NewAPIStudyPlanRepository(client *APIClient) StudyPlanRepository {
	return &apiStudyPlanRepository{client: client}
}

func (r *apiStudyPlanRepository) GetProgress(ctx context.Context) (*model.StudyPlanProgress, error) {
	var progress model.StudyPlanProgress
	if err := r.client.do(ctx, http.MethodGet, "/study-plan/progress", nil, &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *apiStudyPlanRepository) StartLesson(ctx context.Context, moduleID string) (*model.Lesson, error) {
	var lesson model.Lesson
	if err := r.client.do(ctx, http.MethodPost, "/study-plan/start-lesson", &model.ModuleRequest{ModuleID: moduleID}, &lesson); err != nil {
		return nil, err
	}
	// API のレッスンには module_id が無いことがあるので、完了時のために補う
	if lesson.ModuleID == "" {
		lesson.ModuleID = moduleID
	}
	return &lesson, nil
}

func (r *apiStudyPlanRepository) CompleteLesson(ctx context.Context, moduleID string) error {
	return r.client.do(ctx, http.MethodPost, "/study-plan/complete-lesson", &model.ModuleRequest{ModuleID: moduleID}, nil)
}
