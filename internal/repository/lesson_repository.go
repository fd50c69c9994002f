//go:generate mockery --name LessonRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"net/http"

	"go_5_english_tutor/internal/model"
)

// LessonRepository はレッスン生成と回答送信のAPIです
type LessonRepository interface {
	NewLesson(ctx context.Context) (*model.Lesson, error)
	SubmitAnswer(ctx context.Context, payload *model.AnswerPayload) (*model.AnswerVerdict, error)
}

type apiLessonRepository struct {
	client *APIClient
}

func NewAPILessonRepository(client *APIClient) LessonRepository {
	return &apiLessonRepository{client: client}
}

func (r *apiLessonRepository) NewLesson(ctx context.Context) (*model.Lesson, error) {
	var lesson model.Lesson
	if err := r.client.do(ctx, http.MethodPost, "/lessons/new", nil, &lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *apiLessonRepository) SubmitAnswer(ctx context.Context, payload *model.AnswerPayload) (*model.AnswerVerdict, error) {
	var verdict model.AnswerVerdict
	if err := r.client.do(ctx, http.MethodPost, "/lessons/answer", payload, &verdict); err != nil {
		return nil, err
	}
	return &verdict, nil
}
