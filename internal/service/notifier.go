package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go_5_english_tutor/internal/config"
	"go_5_english_tutor/internal/middleware"
	"go_5_english_tutor/internal/model"

	"github.com/google/uuid"
)

// Notifier は学習者への通知 (トースト) の送り先です
type Notifier interface {
	Notify(ctx context.Context, studentID string, notice model.Notice)
	// Drain は未読の通知を古い順に返し、キューを空にします
	Drain(studentID string) []model.Notice
}

// fillNotice は ID と作成日時が無ければ補います
func fillNotice(n model.Notice, now time.Time) model.Notice {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	return n
}

// --- LogNotifier ---
type LogNotifier struct{}

func (n *LogNotifier) Notify(ctx context.Context, studentID string, notice model.Notice) {
	logger := middleware.GetLogger(ctx)
	notice = fillNotice(notice, time.Now())
	logger.Info("--- Notice (LogNotifier) ---",
		"student_id", studentID,
		"level", notice.Level,
		"message", notice.Message,
		"retryable", notice.Retryable,
		"item_id", notice.ItemID,
	)
}

func (n *LogNotifier) Drain(studentID string) []model.Notice {
	return []model.Notice{}
}

// --- NoticeBoard ---

// NoticeBoard は学習者ごとに上限付きのキューで通知を保持します。
// 上限を超えると古いものから捨てます。
type NoticeBoard struct {
	mu       sync.Mutex
	capacity int
	queues   map[string][]model.Notice
	now      func() time.Time
}

func NewNoticeBoard(capacity int) *NoticeBoard {
	if capacity <= 0 {
		capacity = config.DefaultNoticeCapacity
	}
	return &NoticeBoard{
		capacity: capacity,
		queues:   make(map[string][]model.Notice),
		now:      time.Now,
	}
}

func (b *NoticeBoard) Notify(ctx context.Context, studentID string, notice model.Notice) {
	logger := middleware.GetLogger(ctx)
	notice = fillNotice(notice, b.now())

	b.mu.Lock()
	defer b.mu.Unlock()

	q := append(b.queues[studentID], notice)
	if dropped := len(q) - b.capacity; dropped > 0 {
		logger.Debug("Notice queue full, dropping oldest", slog.String("student_id", studentID), slog.Int("dropped", dropped))
		q = q[dropped:]
	}
	b.queues[studentID] = q

	logger.Debug("Notice queued",
		slog.String("student_id", studentID),
		slog.String("level", string(notice.Level)),
		slog.String("item_id", notice.ItemID),
	)
}

func (b *NoticeBoard) Drain(studentID string) []model.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	q := b.queues[studentID]
	delete(b.queues, studentID)
	if q == nil {
		return []model.Notice{}
	}
	return q
}

// --- NewNotifier ファクトリ関数 ---
func NewNotifier(cfg *config.Config) Notifier {
	logger := slog.Default()
	switch cfg.Notices.Sink {
	case "board":
		logger.Info("Initializing notice board...", slog.Int("capacity", cfg.Notices.Capacity))
		return NewNoticeBoard(cfg.Notices.Capacity)
	case "log":
		logger.Info("Initializing log notifier...")
		return &LogNotifier{}
	default:
		logger.Warn("Unknown notice sink, defaulting to notice board", "sink", cfg.Notices.Sink)
		return NewNoticeBoard(cfg.Notices.Capacity)
	}
}
