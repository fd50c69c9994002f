// internal/handlers/tutor_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"go_5_english_tutor/internal/middleware"
	"go_5_english_tutor/internal/model"
	"go_5_english_tutor/internal/service"
	"go_5_english_tutor/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type TutorHandler struct {
	service service.TutorService
	logger  *slog.Logger
}

func NewTutorHandler(s service.TutorService, logger *slog.Logger) *TutorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TutorHandler{
		service: s,
		logger:  logger,
	}
}

// GetMessages はチューターからの未読メッセージを返します
func (h *TutorHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMessages"))

	messages, err := h.service.ListMessages(r.Context())
	if err != nil {
		logger.Error("Error listing tutor messages in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if messages == nil {
		messages = []model.TutorMessage{}
	}
	logger.Info("Tutor messages listed successfully", slog.Int("count", len(messages)))
	webutil.RespondWithJSON(w, http.StatusOK, messages, logger)
}

// MarkMessageRead はメッセージを既読にし、残りの未読メッセージを返します
func (h *TutorHandler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "MarkMessageRead"))

	idStr := chi.URLParam(r, "message_id")
	messageID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || messageID <= 0 {
		logger.Warn("Invalid message ID format in URL", slog.String("message_id_str", idStr))
		appErr := model.NewAppError("INVALID_URL_PARAM", "message_idの形式が正しくありません。", "message_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.Int64("message_id", messageID))

	remaining, err := h.service.MarkRead(r.Context(), messageID)
	if err != nil {
		logger.Warn("Error marking tutor message as read", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, remaining, logger)
}

// Interact はチューターにボタン操作やチャットを送ります
func (h *TutorHandler) Interact(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Interact"))

	var req model.UserIntent
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

	reply, err := h.service.Interact(r.Context(), &req)
	if err != nil {
		logger.Warn("Tutor interaction failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Tutor interaction completed", slog.String("response_type", string(reply.ResponseType)))
	webutil.RespondWithJSON(w, http.StatusOK, reply, logger)
}
