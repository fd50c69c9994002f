//go:generate mockery --name LessonSessionService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"go_5_english_tutor/internal/dispatch"
	"go_5_english_tutor/internal/exercise"
	"go_5_english_tutor/internal/locale"
	"go_5_english_tutor/internal/middleware"
	"go_5_english_tutor/internal/model"
	"go_5_english_tutor/internal/repository"
)

// CompletionResult はレッスン完了の結果です。完了後のレッスンは null になります。
type CompletionResult struct {
	Completed bool                 `json:"completed"`
	ModuleID  string               `json:"module_id"`
	Message   string               `json:"message"`
	Lesson    *dispatch.LessonView `json:"lesson"`
}

// LessonSessionService は学習者ごとにマウント中のレッスンを1つ保持します。
// 新しいレッスンをマウントすると、前のレッスンの評価器の状態はすべて破棄されます。
type LessonSessionService interface {
	Generate(ctx context.Context) (*dispatch.LessonView, error)
	StartModule(ctx context.Context, moduleID string) (*dispatch.LessonView, error)
	Mount(ctx context.Context, lesson *model.Lesson) (*dispatch.LessonView, error)
	Current(ctx context.Context) (*dispatch.LessonView, error)
	Act(ctx context.Context, itemID string, req *model.ItemActionRequest) (*dispatch.ItemView, error)
	RetryReport(ctx context.Context, itemID string) (*dispatch.ItemView, error)
	Complete(ctx context.Context) (*CompletionResult, error)
}

// mountedLesson はマウント中のレッスンと、項目ごとの評価器・送信状態です
type mountedLesson struct {
	lesson  *model.Lesson
	mounts  []*dispatch.Mount
	byItem  map[string]*dispatch.Mount
	reports map[string]ReportOutcome
}

// lessonSession は1人の学習者のセッションです。mu の下でだけ触ります。
type lessonSession struct {
	mu      sync.Mutex
	current *mountedLesson
	// released は Complete 後にセッション表から外されたことを示します
	released bool
}

type lessonSessionService struct {
	lessonRepo    repository.LessonRepository
	studyPlanRepo repository.StudyPlanRepository
	reporter      AnswerReporter
	notifier      Notifier
	dispatcher    *dispatch.Dispatcher

	mu       sync.Mutex
	sessions map[string]*lessonSession
}

func NewLessonSessionService(
	lessonRepo repository.LessonRepository,
	studyPlanRepo repository.StudyPlanRepository,
	reporter AnswerReporter,
	notifier Notifier,
	dispatcher *dispatch.Dispatcher,
) LessonSessionService {
	return &lessonSessionService{
		lessonRepo:    lessonRepo,
		studyPlanRepo: studyPlanRepo,
		reporter:      reporter,
		notifier:      notifier,
		dispatcher:    dispatcher,
		sessions:      make(map[string]*lessonSession),
	}
}

// studentID は認証済みの学習者IDを返します
func studentID(ctx context.Context) (string, error) {
	p, ok := model.PrincipalFromContext(ctx)
	if !ok || p.StudentID == "" {
		return "", model.NewAppError("UNAUTHENTICATED", "session is missing", "", model.ErrUnauthenticated)
	}
	return p.StudentID, nil
}

// session は学習者のセッションを返します。create が false なら作らずに ErrNoActiveLesson を返します。
func (s *lessonSessionService) session(ctx context.Context, create bool) (*lessonSession, string, error) {
	id, err := studentID(ctx)
	if err != nil {
		return nil, "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		if !create {
			return nil, id, noActiveLesson()
		}
		sess = &lessonSession{}
		s.sessions[id] = sess
	}
	return sess, id, nil
}

// lockSession は学習者のセッションを mu を保持した状態で返します。
// 取り除かれたセッションを掴んだ場合は取り直します。
func (s *lessonSessionService) lockSession(ctx context.Context, create bool) (*lessonSession, string, error) {
	for {
		sess, id, err := s.session(ctx, create)
		if err != nil {
			return nil, "", err
		}
		sess.mu.Lock()
		if !sess.released {
			return sess, id, nil
		}
		sess.mu.Unlock()
	}
}

// release はレッスンの無くなったセッションをセッション表から取り除きます。sess.mu を保持して呼びます。
func (s *lessonSessionService) release(student string, sess *lessonSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions[student] == sess {
		delete(s.sessions, student)
	}
	sess.released = true
}

func (s *lessonSessionService) Generate(ctx context.Context) (*dispatch.LessonView, error) {
	logger := middleware.GetLogger(ctx)
	student, err := studentID(ctx)
	if err != nil {
		return nil, err
	}

	lesson, err := s.lessonRepo.NewLesson(ctx)
	if err != nil {
		logger.Error("Failed to generate lesson", slog.Any("error", err))
		s.notifier.Notify(ctx, student, model.Notice{
			Level:     model.NoticeError,
			Message:   locale.Message(locale.MsgLessonStartFailed, middleware.GetLocale(ctx)),
			Retryable: true,
		})
		return nil, err
	}
	return s.mount(ctx, lesson)
}

func (s *lessonSessionService) StartModule(ctx context.Context, moduleID string) (*dispatch.LessonView, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("module_id", moduleID))
	student, err := studentID(ctx)
	if err != nil {
		return nil, err
	}
	if moduleID == "" {
		return nil, model.NewAppError("INVALID_INPUT", "module_id is required", "module_id", model.ErrInvalidInput)
	}
	lang := middleware.GetLocale(ctx)

	lesson, err := s.studyPlanRepo.StartLesson(ctx, moduleID)
	if err != nil {
		// レッスンが無い (モジュール準備中 or 完了済み) は 404 で返ってくる
		if repository.IsNotFound(err) {
			logger.Info("No lesson available for module", slog.Any("error", err))
			msg := locale.Message(locale.MsgModuleInPreparation, lang)
			s.notifier.Notify(ctx, student, model.Notice{Level: model.NoticeInfo, Message: msg})
			return nil, model.NewAppError("MODULE_IN_PREPARATION", msg, "module_id", model.ErrNotFound)
		}
		logger.Error("Failed to start lesson", slog.Any("error", err))
		s.notifier.Notify(ctx, student, model.Notice{
			Level:     model.NoticeError,
			Message:   locale.Message(locale.MsgLessonStartFailed, lang),
			Retryable: true,
		})
		return nil, err
	}
	return s.mount(ctx, lesson)
}

func (s *lessonSessionService) Mount(ctx context.Context, lesson *model.Lesson) (*dispatch.LessonView, error) {
	if _, err := studentID(ctx); err != nil {
		return nil, err
	}
	if lesson == nil {
		return nil, model.NewAppError("INVALID_INPUT", "lesson is empty", "", model.ErrInvalidInput)
	}
	return s.mount(ctx, lesson)
}

// mount はレッスンの全項目をマウントし、前のレッスンを置き換えます
func (s *lessonSessionService) mount(ctx context.Context, lesson *model.Lesson) (*dispatch.LessonView, error) {
	logger := middleware.GetLogger(ctx)

	ml := &mountedLesson{
		lesson:  lesson,
		byItem:  make(map[string]*dispatch.Mount, len(lesson.Items)),
		reports: make(map[string]ReportOutcome),
	}
	ml.mounts = s.dispatcher.DispatchLesson(lesson, func(itemID string) exercise.ReportFunc {
		// 評価器の Submit から呼ばれるので、このときは sess.mu を保持している
		return func(ctx context.Context, isCorrectLocally bool, response string) {
			ml.reports[itemID] = s.reporter.Report(ctx, lesson.ID, itemID, isCorrectLocally, response)
		}
	})
	for _, m := range ml.mounts {
		ml.byItem[m.Item.ID] = m
	}

	sess, _, err := s.lockSession(ctx, true)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()
	if sess.current != nil {
		logger.Info("Replacing active lesson", slog.String("previous_lesson_id", sess.current.lesson.ID))
	}
	sess.current = ml

	logger.Info("Lesson mounted",
		slog.String("lesson_id", lesson.ID),
		slog.String("module_id", lesson.ModuleID),
		slog.Int("items", len(ml.mounts)),
	)
	return ml.view(middleware.GetResolver(ctx)), nil
}

func (s *lessonSessionService) Current(ctx context.Context) (*dispatch.LessonView, error) {
	sess, _, err := s.lockSession(ctx, false)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()
	if sess.current == nil {
		return nil, noActiveLesson()
	}
	return sess.current.view(middleware.GetResolver(ctx)), nil
}

func (s *lessonSessionService) Act(ctx context.Context, itemID string, req *model.ItemActionRequest) (*dispatch.ItemView, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("item_id", itemID), slog.String("action", string(req.Action)))
	sess, _, err := s.lockSession(ctx, false)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()
	m, err := sess.interactiveMount(itemID)
	if err != nil {
		return nil, err
	}

	if err := exercise.Apply(ctx, m.Evaluator, req.Action, req.Value, req.TokenID); err != nil {
		// 未入力の確定と確定後の操作は何もせず、今の表示を返す
		if !errors.Is(err, exercise.ErrNothingToSubmit) && !errors.Is(err, exercise.ErrAlreadySubmitted) {
			logger.Debug("Item action rejected", slog.Any("error", err))
			return nil, exerciseError(err)
		}
		logger.Debug("Item action ignored", slog.Any("error", err))
	}

	v := sess.current.itemView(m, middleware.GetResolver(ctx))
	return &v, nil
}

func (s *lessonSessionService) RetryReport(ctx context.Context, itemID string) (*dispatch.ItemView, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("item_id", itemID))
	sess, _, err := s.lockSession(ctx, false)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()
	m, err := sess.interactiveMount(itemID)
	if err != nil {
		return nil, err
	}

	out, ok := sess.current.reports[itemID]
	if !ok || out.State != model.ReportStatePending || out.Pending == nil {
		return nil, model.NewAppError("NO_PENDING_REPORT", "there is no failed answer to resend for this item", "", model.ErrConflict)
	}

	logger.Info("Retrying answer report")
	sess.current.reports[itemID] = s.reporter.Retry(ctx, out.Pending)

	v := sess.current.itemView(m, middleware.GetResolver(ctx))
	return &v, nil
}

func (s *lessonSessionService) Complete(ctx context.Context) (*CompletionResult, error) {
	logger := middleware.GetLogger(ctx)
	sess, student, err := s.lockSession(ctx, false)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()
	lang := middleware.GetLocale(ctx)
	if sess.current == nil {
		return nil, noActiveLesson()
	}
	lesson := sess.current.lesson

	if lesson.ModuleID == "" {
		logger.Warn("Cannot complete lesson without module id", slog.String("lesson_id", lesson.ID))
		msg := locale.Message(locale.MsgModuleIDMissing, lang)
		s.notifier.Notify(ctx, student, model.Notice{Level: model.NoticeError, Message: msg})
		return nil, model.NewAppError("MODULE_ID_MISSING", msg, "module_id", model.ErrInvalidInput)
	}

	if err := s.studyPlanRepo.CompleteLesson(ctx, lesson.ModuleID); err != nil {
		// レッスンはそのまま残し、学習者がもう一度完了を押せるようにする
		logger.Error("Failed to complete lesson", slog.String("lesson_id", lesson.ID), slog.Any("error", err))
		s.notifier.Notify(ctx, student, model.Notice{
			Level:     model.NoticeError,
			Message:   locale.Message(locale.MsgLessonCompleteFailed, lang),
			Retryable: true,
		})
		return nil, err
	}

	msg := locale.Message(locale.MsgLessonCompleted, lang)
	s.notifier.Notify(ctx, student, model.Notice{Level: model.NoticeSuccess, Message: msg})
	sess.current = nil
	s.release(student, sess)

	logger.Info("Lesson completed", slog.String("lesson_id", lesson.ID), slog.String("module_id", lesson.ModuleID))
	return &CompletionResult{Completed: true, ModuleID: lesson.ModuleID, Message: msg}, nil
}

// interactiveMount は評価器を持つマウント済み項目を探します。sess.mu を保持して呼びます。
func (sess *lessonSession) interactiveMount(itemID string) (*dispatch.Mount, error) {
	if sess.current == nil {
		return nil, noActiveLesson()
	}
	m, ok := sess.current.byItem[itemID]
	if !ok {
		return nil, model.NewAppError("NOT_FOUND", "item is not part of the active lesson", "item_id", model.ErrNotFound)
	}
	if m.Evaluator == nil {
		return nil, model.NewAppError("ITEM_NOT_INTERACTIVE", "item does not accept actions", "item_id", model.ErrItemNotMounted)
	}
	return m, nil
}

func (ml *mountedLesson) view(r locale.Resolver) *dispatch.LessonView {
	v := &dispatch.LessonView{
		LessonID:  ml.lesson.ID,
		ModuleID:  ml.lesson.ModuleID,
		Title:     ml.lesson.Title,
		Objective: ml.lesson.Objective,
		Items:     make([]dispatch.ItemView, 0, len(ml.mounts)),
	}
	for _, m := range ml.mounts {
		v.Items = append(v.Items, ml.itemView(m, r))
	}
	return v
}

func (ml *mountedLesson) itemView(m *dispatch.Mount, r locale.Resolver) dispatch.ItemView {
	v := m.View(r)
	out, ok := ml.reports[m.Item.ID]
	if !ok {
		return v
	}
	status := &dispatch.ReportStatus{
		State:     string(out.State),
		Retryable: out.State == model.ReportStatePending,
	}
	if out.Verdict != nil {
		verdict := out.Verdict.IsCorrect
		status.ServerVerdict = &verdict
	}
	v.Report = status
	return v
}

func noActiveLesson() error {
	return model.NewAppError("NO_ACTIVE_LESSON", "no lesson is mounted", "", model.ErrNoActiveLesson)
}

// exerciseError は評価器のエラーをアプリケーションエラーにします
func exerciseError(err error) error {
	switch {
	case errors.Is(err, exercise.ErrUnknownCandidate):
		return model.NewAppError("UNKNOWN_CANDIDATE", err.Error(), "token_id", errors.Join(model.ErrInvalidInput, err))
	case errors.Is(err, exercise.ErrUnsupportedAction):
		return model.NewAppError("UNSUPPORTED_ACTION", err.Error(), "action", errors.Join(model.ErrInvalidInput, err))
	default:
		return err
	}
}
