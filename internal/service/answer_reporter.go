package service

import (
	"context"
	"log/slog"
	"time"

	"go_5_english_tutor/internal/locale"
	"go_5_english_tutor/internal/middleware"
	"go_5_english_tutor/internal/model"
	"go_5_english_tutor/internal/repository"
)

// ReportOutcome は1回の回答送信の結果です。
// 送信に失敗した場合は Pending に再送用の回答が入ります。
type ReportOutcome struct {
	State   model.ReportState
	Verdict *model.AnswerVerdict
	Pending *model.PendingReport
}

// AnswerReporter は確定した回答をチューターAPIに送ります。
// 自動リトライはしません。失敗は再送可能な通知として学習者に伝えます。
type AnswerReporter interface {
	Report(ctx context.Context, lessonID, itemID string, isCorrectLocally bool, response string) ReportOutcome
	Retry(ctx context.Context, pending *model.PendingReport) ReportOutcome
}

type answerReporter struct {
	lessonRepo repository.LessonRepository
	notifier   Notifier
	now        func() time.Time
}

func NewAnswerReporter(lessonRepo repository.LessonRepository, notifier Notifier) AnswerReporter {
	return &answerReporter{
		lessonRepo: lessonRepo,
		notifier:   notifier,
		now:        time.Now,
	}
}

func (r *answerReporter) Report(ctx context.Context, lessonID, itemID string, isCorrectLocally bool, response string) ReportOutcome {
	pending := &model.PendingReport{
		LessonID:         lessonID,
		ItemID:           itemID,
		IsCorrectLocally: isCorrectLocally,
		Response:         response,
	}
	return r.send(ctx, pending, false)
}

func (r *answerReporter) Retry(ctx context.Context, pending *model.PendingReport) ReportOutcome {
	if pending == nil {
		return ReportOutcome{State: model.ReportStateNone}
	}
	retry := *pending
	return r.send(ctx, &retry, true)
}

func (r *answerReporter) send(ctx context.Context, pending *model.PendingReport, retried bool) ReportOutcome {
	logger := middleware.GetLogger(ctx).With(
		slog.String("lesson_id", pending.LessonID),
		slog.String("item_id", pending.ItemID),
	)
	studentID, lang := noticeTarget(ctx)

	verdict, err := r.lessonRepo.SubmitAnswer(ctx, &model.AnswerPayload{
		LessonID:        pending.LessonID,
		UnitID:          pending.ItemID,
		StudentResponse: pending.Response,
	})
	if err != nil {
		logger.Warn("Failed to report answer", slog.Bool("retry", retried), slog.Any("error", err))
		pending.FailedAt = r.now()
		pending.LastError = err.Error()
		r.notifier.Notify(ctx, studentID, model.Notice{
			Level:     model.NoticeError,
			Message:   locale.Message(locale.MsgAnswerReportFailed, lang),
			Retryable: true,
			ItemID:    pending.ItemID,
		})
		return ReportOutcome{State: model.ReportStatePending, Pending: pending}
	}

	// 永続化される正誤はサーバー側の判定。画面の判定と食い違ってもログに残すだけ
	if verdict.IsCorrect != pending.IsCorrectLocally {
		logger.Warn("Server verdict disagrees with local grading",
			slog.Bool("local", pending.IsCorrectLocally),
			slog.Bool("server", verdict.IsCorrect),
			slog.String("server_correct_answer", verdict.CorrectAnswer),
		)
	}
	logger.Info("Answer reported", slog.Bool("retry", retried), slog.Bool("is_correct", verdict.IsCorrect))

	if retried {
		r.notifier.Notify(ctx, studentID, model.Notice{
			Level:   model.NoticeSuccess,
			Message: locale.Message(locale.MsgAnswerReportRetried, lang),
			ItemID:  pending.ItemID,
		})
	}
	return ReportOutcome{State: model.ReportStateSent, Verdict: verdict}
}

// noticeTarget は通知先の学習者IDと表示ロケールをコンテキストから取り出します
func noticeTarget(ctx context.Context) (string, string) {
	var studentID string
	if p, ok := model.PrincipalFromContext(ctx); ok {
		studentID = p.StudentID
	}
	return studentID, middleware.GetLocale(ctx)
}
