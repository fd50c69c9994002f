// internal/handlers/study_plan_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_english_tutor/internal/middleware"
	"go_5_english_tutor/internal/model"
	"go_5_english_tutor/internal/service"
	"go_5_english_tutor/internal/webutil"
)

type StudyPlanHandler struct {
	studyPlan service.StudyPlanService
	sessions  service.LessonSessionService
	logger    *slog.Logger
}

func NewStudyPlanHandler(studyPlan service.StudyPlanService, sessions service.LessonSessionService, logger *slog.Logger) *StudyPlanHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudyPlanHandler{
		studyPlan: studyPlan,
		sessions:  sessions,
		logger:    logger,
	}
}

// GetStudyPlan は学習プラン画面 (全体の進捗とモジュールカード) を返します
func (h *StudyPlanHandler) GetStudyPlan(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStudyPlan"))

	view, err := h.studyPlan.GetStudyPlan(r.Context())
	if err != nil {
		logger.Error("Error loading study plan in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Study plan loaded successfully", slog.Int("modules", len(view.Modules)), slog.Bool("in_preparation", view.InPreparation))
	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}

// StartLesson はモジュールの次のレッスンを開始してマウントします
func (h *StudyPlanHandler) StartLesson(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StartLesson"))

	var req model.StartLessonRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, webutil.NewValidationError(err, middleware.GetLocale(r.Context())))
		return
	}
	logger = logger.With(slog.String("module_id", req.ModuleID))

	lesson, err := h.sessions.StartModule(r.Context(), req.ModuleID)
	if err != nil {
		logger.Warn("Error starting lesson in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Lesson started successfully", slog.String("lesson_id", lesson.LessonID))
	webutil.RespondWithJSON(w, http.StatusCreated, lesson, logger)
}
