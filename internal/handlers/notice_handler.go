// internal/handlers/notice_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_english_tutor/internal/config"
	"go_5_english_tutor/internal/model"
	"go_5_english_tutor/internal/service"
	"go_5_english_tutor/internal/webutil"
)

type NoticeHandler struct {
	notifier service.Notifier
	logger   *slog.Logger
}

func NewNoticeHandler(notifier service.Notifier, logger *slog.Logger) *NoticeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoticeHandler{notifier: notifier, logger: logger}
}

// GetNotices は未表示の通知 (トースト) を取り出します。取り出した通知は消えます。
func (h *NoticeHandler) GetNotices(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetNotices"))

	principal, ok := model.PrincipalFromContext(r.Context())
	if !ok {
		logger.Warn("Unauthorized access attempt")
		appErr := model.NewAppError("UNAUTHENTICATED", "認証情報が見つかりません。", "", model.ErrUnauthenticated)
		webutil.HandleError(w, logger, appErr)
		return
	}

	notices := h.notifier.Drain(principal.StudentID)
	webutil.RespondWithJSON(w, http.StatusOK, notices, logger)
}

// Health はサービスの稼働確認です。チューターAPIには問い合わせません。
func Health(w http.ResponseWriter, r *http.Request) {
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"name":    config.AppName,
		"version": config.AppVersion,
	}, nil)
}
