// internal/handlers/lesson_handler_test.go
package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go_5_english_tutor/internal/dispatch"
	"go_5_english_tutor/internal/handlers"
	"go_5_english_tutor/internal/model"
	"go_5_english_tutor/internal/service"
	"go_5_english_tutor/internal/service/mocks"
)

func lessonRouter(svc *mocks.LessonSessionService) http.Handler {
	h := handlers.NewLessonHandler(svc, nil)
	return newTestRouter(func(r chi.Router) {
		r.Get("/api/v1/lesson", h.GetLesson)
		r.Post("/api/v1/lesson/generate", h.GenerateLesson)
		r.Post("/api/v1/lesson/items/{item_id}/actions", h.ActOnItem)
		r.Post("/api/v1/lesson/items/{item_id}/report/retry", h.RetryReport)
		r.Post("/api/v1/lesson/complete", h.CompleteLesson)
	})
}

// studentCtx は DevAuthMiddleware が学習者を格納したコンテキストに一致します
var studentCtx = mock.MatchedBy(func(ctx context.Context) bool {
	p, ok := model.PrincipalFromContext(ctx)
	return ok && p.StudentID == testStudentID
})

func TestLessonHandler_GenerateLesson(t *testing.T) {
	lesson := &dispatch.LessonView{LessonID: "l-1", Title: "Greetings"}

	tests := []struct {
		name           string
		studentID      string
		setupMock      func(m *mocks.LessonSessionService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:      "正常系: レッスンを生成して201を返す",
			studentID: testStudentID,
			setupMock: func(m *mocks.LessonSessionService) {
				m.On("Generate", studentCtx).Return(lesson, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: 学習者ヘッダーなしは401",
			setupMock:      func(m *mocks.LessonSessionService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "UNAUTHENTICATED",
		},
		{
			name:      "異常系: チューターAPI障害は502",
			studentID: testStudentID,
			setupMock: func(m *mocks.LessonSessionService) {
				m.On("Generate", studentCtx).
					Return(nil, model.NewAppError("BACKEND_UNAVAILABLE", "indisponível", "", model.ErrBackendUnavailable)).Once()
			},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   "BACKEND_UNAVAILABLE",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewLessonSessionService(t)
			tc.setupMock(svc)

			rr := sendRequest(t, lessonRouter(svc), httpRequestDetails{
				Method: http.MethodPost, Path: "/api/v1/lesson/generate", StudentID: tc.studentID,
			})

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode != "" {
				assert.Equal(t, tc.expectedCode, decodeError(t, rr).Code)
				return
			}
			got := decodeBody[dispatch.LessonView](t, rr)
			assert.Equal(t, "l-1", got.LessonID)
		})
	}
}

func TestLessonHandler_GetLesson_NoActiveLesson(t *testing.T) {
	svc := mocks.NewLessonSessionService(t)
	svc.On("Current", studentCtx).
		Return(nil, model.NewAppError("NO_ACTIVE_LESSON", "Nenhuma lição ativa.", "", model.ErrNoActiveLesson)).Once()

	rr := sendRequest(t, lessonRouter(svc), httpRequestDetails{
		Method: http.MethodGet, Path: "/api/v1/lesson", StudentID: testStudentID,
	})

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "NO_ACTIVE_LESSON", decodeError(t, rr).Code)
}

func TestLessonHandler_ActOnItem(t *testing.T) {
	tokenID := 2
	view := &dispatch.ItemView{ItemID: "i1", Kind: dispatch.RenderInteractive}

	tests := []struct {
		name           string
		path           string
		body           interface{}
		language       string
		setupMock      func(m *mocks.LessonSessionService)
		expectedStatus int
		expectedCode   string
		expectedMsg    string
	}{
		{
			name: "正常系: 入力操作を適用する",
			path: "/api/v1/lesson/items/i1/actions",
			body: model.ItemActionRequest{Action: model.ActionInput, Value: "Am"},
			setupMock: func(m *mocks.LessonSessionService) {
				m.On("Act", studentCtx, "i1", &model.ItemActionRequest{Action: model.ActionInput, Value: "Am"}).
					Return(view, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "正常系: token_id 付きの配置操作",
			path: "/api/v1/lesson/items/i1/actions",
			body: model.ItemActionRequest{Action: model.ActionPlace, TokenID: &tokenID},
			setupMock: func(m *mocks.LessonSessionService) {
				m.On("Act", studentCtx, "i1", mock.MatchedBy(func(req *model.ItemActionRequest) bool {
					return req.Action == model.ActionPlace && req.TokenID != nil && *req.TokenID == 2
				})).Return(view, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: 不正なJSON",
			path:           "/api/v1/lesson/items/i1/actions",
			body:           `{"action":`,
			setupMock:      func(m *mocks.LessonSessionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
		{
			name:           "異常系: action が空ならポルトガル語のバリデーションエラー",
			path:           "/api/v1/lesson/items/i1/actions",
			body:           model.ItemActionRequest{Value: "x"},
			setupMock:      func(m *mocks.LessonSessionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
			expectedMsg:    "ação é obrigatório.",
		},
		{
			name:           "異常系: 英語ロケールのバリデーションエラー",
			path:           "/api/v1/lesson/items/i1/actions",
			body:           model.ItemActionRequest{Value: "x"},
			language:       "en-US",
			setupMock:      func(m *mocks.LessonSessionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
			expectedMsg:    "action is required.",
		},
		{
			name: "異常系: 静的項目への操作は409",
			path: "/api/v1/lesson/items/g1/actions",
			body: model.ItemActionRequest{Action: model.ActionSubmit},
			setupMock: func(m *mocks.LessonSessionService) {
				m.On("Act", studentCtx, "g1", mock.Anything).
					Return(nil, model.NewAppError("ITEM_NOT_INTERACTIVE", "x", "item_id", model.ErrItemNotMounted)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "ITEM_NOT_INTERACTIVE",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewLessonSessionService(t)
			tc.setupMock(svc)

			rr := sendRequest(t, lessonRouter(svc), httpRequestDetails{
				Method: http.MethodPost, Path: tc.path, Body: tc.body, StudentID: testStudentID, Language: tc.language,
			})

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode == "" {
				got := decodeBody[dispatch.ItemView](t, rr)
				assert.Equal(t, "i1", got.ItemID)
				return
			}
			detail := decodeError(t, rr)
			assert.Equal(t, tc.expectedCode, detail.Code)
			if tc.expectedMsg != "" {
				assert.Equal(t, tc.expectedMsg, detail.Message)
			}
		})
	}
}

func TestLessonHandler_RetryReport(t *testing.T) {
	verdict := true
	svc := mocks.NewLessonSessionService(t)
	svc.On("RetryReport", studentCtx, "i1").Return(&dispatch.ItemView{
		ItemID: "i1",
		Report: &dispatch.ReportStatus{State: "sent", ServerVerdict: &verdict},
	}, nil).Once()
	svc.On("RetryReport", studentCtx, "i2").
		Return(nil, model.NewAppError("NO_PENDING_REPORT", "x", "item_id", model.ErrConflict)).Once()

	router := lessonRouter(svc)

	rr := sendRequest(t, router, httpRequestDetails{
		Method: http.MethodPost, Path: "/api/v1/lesson/items/i1/report/retry", StudentID: testStudentID,
	})
	assert.Equal(t, http.StatusOK, rr.Code)
	got := decodeBody[dispatch.ItemView](t, rr)
	if assert.NotNil(t, got.Report) {
		assert.Equal(t, "sent", got.Report.State)
	}

	rr = sendRequest(t, router, httpRequestDetails{
		Method: http.MethodPost, Path: "/api/v1/lesson/items/i2/report/retry", StudentID: testStudentID,
	})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "NO_PENDING_REPORT", decodeError(t, rr).Code)
}

func TestLessonHandler_CompleteLesson(t *testing.T) {
	tests := []struct {
		name           string
		result         *service.CompletionResult
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "正常系: 完了結果を返す",
			result:         &service.CompletionResult{Completed: true, ModuleID: "m1", Message: "Lição concluída!"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: モジュールIDなし",
			err:            model.NewAppError("MODULE_ID_MISSING", "x", "module_id", model.ErrInvalidInput),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "MODULE_ID_MISSING",
		},
		{
			name:           "異常系: マウント中のレッスンなし",
			err:            model.NewAppError("NO_ACTIVE_LESSON", "x", "", model.ErrNoActiveLesson),
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NO_ACTIVE_LESSON",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewLessonSessionService(t)
			svc.On("Complete", studentCtx).Return(tc.result, tc.err).Once()

			rr := sendRequest(t, lessonRouter(svc), httpRequestDetails{
				Method: http.MethodPost, Path: "/api/v1/lesson/complete", StudentID: testStudentID,
			})

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode != "" {
				assert.Equal(t, tc.expectedCode, decodeError(t, rr).Code)
				return
			}
			got := decodeBody[service.CompletionResult](t, rr)
			assert.True(t, got.Completed)
			assert.Equal(t, "m1", got.ModuleID)
		})
	}
}
