// internal/handlers/study_plan_handler_test.go
package handlers_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"go_5_english_tutor/internal/dispatch"
	"go_5_english_tutor/internal/handlers"
	"go_5_english_tutor/internal/model"
	"go_5_english_tutor/internal/service/mocks"
)

func studyPlanRouter(plan *mocks.StudyPlanService, sessions *mocks.LessonSessionService) http.Handler {
	h := handlers.NewStudyPlanHandler(plan, sessions, nil)
	return newTestRouter(func(r chi.Router) {
		r.Get("/api/v1/study-plan", h.GetStudyPlan)
		r.Post("/api/v1/study-plan/start", h.StartLesson)
	})
}

func TestStudyPlanHandler_GetStudyPlan(t *testing.T) {
	tests := []struct {
		name           string
		view           *model.StudyPlanView
		err            error
		expectedStatus int
	}{
		{
			name: "正常系: カードを返す",
			view: &model.StudyPlanView{
				ActiveModuleID: "m2",
				Modules: []model.ModuleCard{
					{ModuleID: "m1", State: model.CardStateCompleted},
					{ModuleID: "m2", State: model.CardStateActive},
				},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: 取得失敗は502",
			err:            model.NewAppError("BACKEND_UNAVAILABLE", "x", "", model.ErrBackendUnavailable),
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			plan := mocks.NewStudyPlanService(t)
			plan.On("GetStudyPlan", studentCtx).Return(tc.view, tc.err).Once()

			rr := sendRequest(t, studyPlanRouter(plan, mocks.NewLessonSessionService(t)), httpRequestDetails{
				Method: http.MethodGet, Path: "/api/v1/study-plan", StudentID: testStudentID,
			})

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.err == nil {
				got := decodeBody[model.StudyPlanView](t, rr)
				assert.Equal(t, "m2", got.ActiveModuleID)
				assert.Len(t, got.Modules, 2)
			}
		})
	}
}

func TestStudyPlanHandler_StartLesson(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.LessonSessionService)
		expectedStatus int
		expectedCode   string
		expectedField  string
	}{
		{
			name: "正常系: レッスンを開始して201",
			body: model.StartLessonRequest{ModuleID: "m1"},
			setupMock: func(m *mocks.LessonSessionService) {
				m.On("StartModule", studentCtx, "m1").
					Return(&dispatch.LessonView{LessonID: "l-9", ModuleID: "m1"}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: module_id が空",
			body:           model.StartLessonRequest{},
			setupMock:      func(m *mocks.LessonSessionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
			expectedField:  "module_id",
		},
		{
			name:           "異常系: 未知のフィールド",
			body:           `{"module_id":"m1","extra":true}`,
			setupMock:      func(m *mocks.LessonSessionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
		{
			name: "異常系: モジュール準備中は404",
			body: model.StartLessonRequest{ModuleID: "m9"},
			setupMock: func(m *mocks.LessonSessionService) {
				m.On("StartModule", studentCtx, "m9").
					Return(nil, model.NewAppError("MODULE_IN_PREPARATION", "x", "module_id", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "MODULE_IN_PREPARATION",
			expectedField:  "module_id",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sessions := mocks.NewLessonSessionService(t)
			tc.setupMock(sessions)

			rr := sendRequest(t, studyPlanRouter(mocks.NewStudyPlanService(t), sessions), httpRequestDetails{
				Method: http.MethodPost, Path: "/api/v1/study-plan/start", Body: tc.body, StudentID: testStudentID,
			})

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode == "" {
				got := decodeBody[dispatch.LessonView](t, rr)
				assert.Equal(t, "l-9", got.LessonID)
				return
			}
			detail := decodeError(t, rr)
			assert.Equal(t, tc.expectedCode, detail.Code)
			assert.Equal(t, tc.expectedField, detail.Field)
		})
	}
}
