// internal/repository/api_client.go
package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go_5_english_tutor/internal/middleware"
	"go_5_english_tutor/internal/model"
)

const defaultAPITimeout = 30 * time.Second

// APIClient はチューターAPI (REST) のクライアントです。
// 呼び出し元のリクエストのアクセストークンをそのまま Bearer として付与します。
// リトライはしません。
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	if timeout <= 0 {
		timeout = defaultAPITimeout
	}
	return &APIClient{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// apiErrorBody は FastAPI のエラーレスポンス {"detail": ...} です
type apiErrorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// detailMessage は detail が文字列ならそのまま、それ以外は JSON のまま返します
func detailMessage(body []byte) string {
	var e apiErrorBody
	if err := json.Unmarshal(body, &e); err != nil || len(e.Detail) == 0 {
		return strings.TrimSpace(string(body))
	}
	var s string
	if err := json.Unmarshal(e.Detail, &s); err == nil {
		return s
	}
	return string(e.Detail)
}

// do はリクエストを送り、2xx ならレスポンスを out にデコードします。
// out が nil の場合はボディを読み捨てます。
func (c *APIClient) do(ctx context.Context, method, path string, in, out any) error {
	logger := middleware.GetLogger(ctx).With(slog.String("api_method", method), slog.String("api_path", path))

	principal, ok := model.PrincipalFromContext(ctx)
	if !ok || principal.AccessToken == "" {
		logger.Warn("Tutor API call without session token")
		return model.NewAppError("UNAUTHENTICATED", "session token is missing", "", model.ErrUnauthenticated)
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("APIClient.do: marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("APIClient.do: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+principal.AccessToken)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Tutor API request failed", slog.Any("error", err))
		return model.NewAppError("BACKEND_UNAVAILABLE", "tutor api request failed", "", fmt.Errorf("%w: %v", model.ErrBackendUnavailable, err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("Failed to read tutor API response", slog.Any("error", err))
		return model.NewAppError("BACKEND_UNAVAILABLE", "tutor api response could not be read", "", fmt.Errorf("%w: %v", model.ErrBackendUnavailable, err))
	}

	logger.Debug("Tutor API responded",
		slog.Int("status", resp.StatusCode),
		slog.Float64("latency_ms", float64(time.Since(start).Nanoseconds())/1e6),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(logger, resp.StatusCode, respBody)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		logger.Error("Failed to decode tutor API response", slog.Any("error", err))
		return model.NewAppError("BACKEND_UNAVAILABLE", "tutor api returned an unexpected payload", "", fmt.Errorf("%w: %v", model.ErrBackendUnavailable, err))
	}
	return nil
}

// StatusError はチューターAPIが返したエラーステータスと detail です
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tutor api status %d: %s", e.Status, e.Detail)
}

// statusError は API のステータスコードをアプリケーションエラーに変換します
func statusError(logger *slog.Logger, status int, body []byte) error {
	detail := detailMessage(body)
	logger.Warn("Tutor API returned an error status", slog.Int("status", status), slog.String("detail", detail))

	cause := &StatusError{Status: status, Detail: detail}
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return model.NewAppError("UNAUTHENTICATED", detail, "", fmt.Errorf("%w: %w", model.ErrUnauthenticated, cause))
	case status == http.StatusNotFound:
		return model.NewAppError("NOT_FOUND", detail, "", fmt.Errorf("%w: %w", model.ErrNotFound, cause))
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return model.NewAppError("INVALID_INPUT", detail, "", fmt.Errorf("%w: %w", model.ErrInvalidInput, cause))
	default:
		return model.NewAppError("BACKEND_UNAVAILABLE", detail, "", fmt.Errorf("%w: %w", model.ErrBackendUnavailable, cause))
	}
}

// BackendDetail は API がエラーステータスで返した detail を取り出します。
// 通信エラーなど detail が無い場合は false です。
func BackendDetail(err error) (string, bool) {
	var se *StatusError
	if errors.As(err, &se) && se.Detail != "" {
		return se.Detail, true
	}
	return "", false
}

// IsNotFound は API が 404 を返したかどうかです
func IsNotFound(err error) bool {
	return errors.Is(err, model.ErrNotFound)
}
