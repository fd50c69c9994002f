// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"go_5_english_tutor/internal/middleware"
	"go_5_english_tutor/internal/model"
)

const testStudentID = "student-1"

// newTestRouter は本番と同じ認証・ロケールのミドルウェアを通すルーターを作ります
func newTestRouter(register func(r chi.Router)) http.Handler {
	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(middleware.DevAuthMiddleware)
		r.Use(middleware.LocaleMiddleware("pt-BR"))
		register(r)
	})
	return router
}

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
// StudentID が空ならヘッダーを付けません (未認証)。
type httpRequestDetails struct {
	Method    string
	Path      string
	Body      interface{}
	StudentID string
	Language  string
}

func sendRequest(t *testing.T, handler http.Handler, details httpRequestDetails) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	switch b := details.Body.(type) {
	case nil:
	case string:
		body = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err, "Failed to marshal request body")
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(details.Method, details.Path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if details.StudentID != "" {
		req.Header.Set(middleware.DevStudentHeader, details.StudentID)
	}
	if details.Language != "" {
		req.Header.Set("Accept-Language", details.Language)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp.Error
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}
