//go:generate mockery --name TutorRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"net/http"

	"go_5_english_tutor/internal/model"
)

// TutorRepository はチューターのメッセージと対話のAPIです
type TutorRepository interface {
	ListMessages(ctx context.Context) ([]model.TutorMessage, error)
	MarkRead(ctx context.Context, messageID int64) error
	Interact(ctx context.Context, intent *model.UserIntent) (*model.AIResponse, error)
}

type apiTutorRepository struct {
	client *APIClient
}

func NewAPITutorRepository(client *APIClient) TutorRepository {
	return &apiTutorRepository{client: client}
}

func (r *apiTutorRepository) ListMessages(ctx context.Context) ([]model.TutorMessage, error) {
	var messages []model.TutorMessage
	if err := r.client.do(ctx, http.MethodGet, "/tutor/messages", nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *apiTutorRepository) MarkRead(ctx context.Context, messageID int64) error {
	return r.client.do(ctx, http.MethodPost, fmt.Sprintf("/tutor/messages/%d/read", messageID), nil, nil)
}

func (r *apiTutorRepository) Interact(ctx context.Context, intent *model.UserIntent) (*model.AIResponse, error) {
	var resp model.AIResponse
	if err := r.client.do(ctx, http.MethodPost, "/tutor/interact", intent, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
