//go:generate mockery --name StudyPlanService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"log/slog"

	"go_5_english_tutor/internal/locale"
	"go_5_english_tutor/internal/middleware"
	"go_5_english_tutor/internal/model"
	"go_5_english_tutor/internal/repository"
)

type StudyPlanService interface {
	GetStudyPlan(ctx context.Context) (*model.StudyPlanView, error)
}

type studyPlanService struct {
	studyPlanRepo repository.StudyPlanRepository
	notifier      Notifier
}

func NewStudyPlanService(studyPlanRepo repository.StudyPlanRepository, notifier Notifier) StudyPlanService {
	return &studyPlanService{studyPlanRepo: studyPlanRepo, notifier: notifier}
}

func (s *studyPlanService) GetStudyPlan(ctx context.Context) (*model.StudyPlanView, error) {
	logger := middleware.GetLogger(ctx)
	student, err := studentID(ctx)
	if err != nil {
		return nil, err
	}
	lang := middleware.GetLocale(ctx)

	progress, err := s.studyPlanRepo.GetProgress(ctx)
	if err != nil {
		logger.Error("Failed to load study plan", slog.Any("error", err))
		s.notifier.Notify(ctx, student, model.Notice{
			Level:     model.NoticeError,
			Message:   locale.Message(locale.MsgStudyPlanLoadFailed, lang),
			Retryable: true,
		})
		return nil, err
	}

	view := BuildStudyPlanView(progress)
	if view.InPreparation {
		view.Message = locale.Message(locale.MsgStudyPlanInPreparation, lang)
	}
	logger.Debug("Study plan loaded", slog.Int("modules", len(view.Modules)), slog.String("active_module_id", view.ActiveModuleID))
	return view, nil
}

// BuildStudyPlanView はモジュールの進捗をカードにします。
// 最初の未完了モジュールが active、それより後ろの未完了モジュールは locked です。
func BuildStudyPlanView(progress *model.StudyPlanProgress) *model.StudyPlanView {
	view := &model.StudyPlanView{
		OverallProgress: progress.OverallProgress,
		Modules:         make([]model.ModuleCard, 0, len(progress.Modules)),
	}
	if len(progress.Modules) == 0 {
		view.InPreparation = true
		return view
	}

	for _, m := range progress.Modules {
		card := model.ModuleCard{
			ModuleID:         m.ModuleID,
			Title:            m.Title,
			Description:      m.Description,
			CompletedLessons: m.Progress.CompletedLessons,
			TotalLessons:     m.Progress.TotalLessons,
		}
		switch {
		case m.Status == model.ModuleStatusCompleted:
			card.State = model.CardStateCompleted
		case view.ActiveModuleID == "":
			view.ActiveModuleID = m.ModuleID
			card.State = model.CardStateActive
			card.IsNew = m.Progress.CompletedLessons == 0
		default:
			card.State = model.CardStateLocked
		}
		view.Modules = append(view.Modules, card)
	}
	return view
}
