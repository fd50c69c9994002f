// internal/handlers/lesson_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_english_tutor/internal/middleware"
	"go_5_english_tutor/internal/model"
	"go_5_english_tutor/internal/service"
	"go_5_english_tutor/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type LessonHandler struct {
	service service.LessonSessionService
	logger  *slog.Logger
}

func NewLessonHandler(s service.LessonSessionService, logger *slog.Logger) *LessonHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LessonHandler{
		service: s,
		logger:  logger,
	}
}

// GenerateLesson は自由練習用のレッスンを生成してマウントします
func (h *LessonHandler) GenerateLesson(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GenerateLesson"))

	lesson, err := h.service.Generate(r.Context())
	if err != nil {
		logger.Warn("Error generating lesson in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Lesson generated successfully", slog.String("lesson_id", lesson.LessonID), slog.Int("items", len(lesson.Items)))
	webutil.RespondWithJSON(w, http.StatusCreated, lesson, logger)
}

// GetLesson はマウント中のレッスンを返します
func (h *LessonHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLesson"))

	lesson, err := h.service.Current(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, lesson, logger)
}

// ActOnItem は項目に対する学習者の操作 (選択・入力・確定など) を適用します
func (h *LessonHandler) ActOnItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")
	logger := h.logger.With(slog.String("handler", "ActOnItem"), slog.String("item_id", itemID))

	var req model.ItemActionRequest
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

	view, err := h.service.Act(r.Context(), itemID, &req)
	if err != nil {
		logger.Warn("Item action failed", slog.String("action", string(req.Action)), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Debug("Item action applied", slog.String("action", string(req.Action)))
	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}

// RetryReport は送信に失敗した回答を再送します
func (h *LessonHandler) RetryReport(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")
	logger := h.logger.With(slog.String("handler", "RetryReport"), slog.String("item_id", itemID))

	view, err := h.service.RetryReport(r.Context(), itemID)
	if err != nil {
		logger.Warn("Retry report failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}

// CompleteLesson はマウント中のレッスンを完了し、学習プランの進捗を保存します
func (h *LessonHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CompleteLesson"))

	result, err := h.service.Complete(r.Context())
	if err != nil {
		logger.Warn("Error completing lesson in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Lesson completed successfully", slog.String("module_id", result.ModuleID))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
