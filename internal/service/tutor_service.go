//go:generate mockery --name TutorService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"go_5_english_tutor/internal/dispatch"
	"go_5_english_tutor/internal/locale"
	"go_5_english_tutor/internal/middleware"
	"go_5_english_tutor/internal/model"
	"go_5_english_tutor/internal/repository"
)

// TutorReply はチューターの応答です。レッスンを含む応答ならマウント済みの Lesson が入ります。
type TutorReply struct {
	ResponseType  model.AIResponseType `json:"response_type"`
	MessageToUser string               `json:"message_to_user"`
	Content       json.RawMessage      `json:"content,omitempty"`
	Lesson        *dispatch.LessonView `json:"lesson,omitempty"`
}

type TutorService interface {
	ListMessages(ctx context.Context) ([]model.TutorMessage, error)
	MarkRead(ctx context.Context, messageID int64) ([]model.TutorMessage, error)
	Interact(ctx context.Context, intent *model.UserIntent) (*TutorReply, error)
}

type tutorService struct {
	tutorRepo repository.TutorRepository
	sessions  LessonSessionService
	notifier  Notifier

	mu    sync.Mutex
	inbox map[string][]model.TutorMessage
}

func NewTutorService(tutorRepo repository.TutorRepository, sessions LessonSessionService, notifier Notifier) TutorService {
	return &tutorService{
		tutorRepo: tutorRepo,
		sessions:  sessions,
		notifier:  notifier,
		inbox:     make(map[string][]model.TutorMessage),
	}
}

func (s *tutorService) ListMessages(ctx context.Context) ([]model.TutorMessage, error) {
	student, err := studentID(ctx)
	if err != nil {
		return nil, err
	}
	return s.refresh(ctx, student)
}

// refresh はバックエンドから未読メッセージを取り直してキャッシュします
func (s *tutorService) refresh(ctx context.Context, student string) ([]model.TutorMessage, error) {
	logger := middleware.GetLogger(ctx)
	messages, err := s.tutorRepo.ListMessages(ctx)
	if err != nil {
		logger.Error("Failed to fetch tutor messages", slog.Any("error", err))
		return nil, err
	}
	if messages == nil {
		messages = []model.TutorMessage{}
	}

	s.mu.Lock()
	s.inbox[student] = messages
	s.mu.Unlock()
	return messages, nil
}

// MarkRead は既読にします。先にキャッシュから消し、失敗したらバックエンドから取り直します。
func (s *tutorService) MarkRead(ctx context.Context, messageID int64) ([]model.TutorMessage, error) {
	logger := middleware.GetLogger(ctx).With(slog.Int64("message_id", messageID))
	student, err := studentID(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	remaining := make([]model.TutorMessage, 0, len(s.inbox[student]))
	for _, m := range s.inbox[student] {
		if m.ID != messageID {
			remaining = append(remaining, m)
		}
	}
	s.inbox[student] = remaining
	s.mu.Unlock()

	if err := s.tutorRepo.MarkRead(ctx, messageID); err != nil {
		logger.Warn("Failed to mark tutor message as read", slog.Any("error", err))
		s.notifier.Notify(ctx, student, model.Notice{
			Level:     model.NoticeError,
			Message:   locale.Message(locale.MsgMarkReadFailed, middleware.GetLocale(ctx)),
			Retryable: true,
		})
		if _, rerr := s.refresh(ctx, student); rerr != nil {
			logger.Warn("Failed to refresh tutor messages after mark-read failure", slog.Any("error", rerr))
		}
		return nil, err
	}

	logger.Debug("Tutor message marked as read")
	return remaining, nil
}

// Interact はチューターに操作を送ります。
// バックエンドのエラーは response_type=error の応答として返します。
func (s *tutorService) Interact(ctx context.Context, intent *model.UserIntent) (*TutorReply, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("intent_type", string(intent.Type)))
	if _, err := studentID(ctx); err != nil {
		return nil, err
	}

	resp, err := s.tutorRepo.Interact(ctx, intent)
	if err != nil {
		if errors.Is(err, model.ErrUnauthenticated) {
			return nil, err
		}
		logger.Error("Tutor interaction failed", slog.Any("error", err))
		msg, ok := repository.BackendDetail(err)
		if !ok {
			msg = locale.Message(locale.MsgTutorUnknownError, middleware.GetLocale(ctx))
		}
		return &TutorReply{ResponseType: model.AIResponseError, MessageToUser: msg}, nil
	}

	reply := &TutorReply{
		ResponseType:  resp.ResponseType,
		MessageToUser: resp.MessageToUser,
		Content:       resp.Content,
	}
	if !resp.CarriesLesson() {
		return reply, nil
	}

	var lesson model.Lesson
	if err := json.Unmarshal(resp.Content, &lesson); err != nil {
		logger.Warn("Tutor returned a lesson response without a readable lesson", slog.Any("error", err))
		return reply, nil
	}
	view, err := s.sessions.Mount(ctx, &lesson)
	if err != nil {
		return nil, err
	}
	reply.Lesson = view
	logger.Info("Lesson mounted from tutor response", slog.String("response_type", string(resp.ResponseType)))
	return reply, nil
}
