package webutil

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"go_5_english_tutor/internal/model"
)

// maxBodyBytes はリクエストボディの上限です
const maxBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディをデコードします。
// 未知のフィールドはエラーにします。
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		slog.Default().Debug("Error decoding JSON body", slog.Any("error", err))
		return model.ErrInvalidInput
	}
	return nil
}
