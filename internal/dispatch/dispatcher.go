// internal/dispatch/dispatcher.go
package dispatch

import (
	"fmt"
	"log/slog"

	"go_5_english_tutor/internal/exercise"
	"go_5_english_tutor/internal/locale"
	"go_5_english_tutor/internal/model"

	"github.com/google/uuid"
)

// Mount はマウント済みの1項目です。
// 練習問題なら Evaluator を持ち、それ以外は表示時にコンテンツを解決します。
type Mount struct {
	ID        string
	Item      model.Item
	Content   model.Content
	Evaluator exercise.Evaluator
}

// Kind は描画結果の種類を返します
func (m *Mount) Kind() RenderKind {
	switch m.Content.(type) {
	case model.UnsupportedExerciseContent, model.UnknownItemContent, model.MalformedContent:
		return RenderNotice
	}
	if m.Evaluator != nil {
		return RenderInteractive
	}
	return RenderStatic
}

// Dispatcher は項目の type / exercise_type から評価器または静的表示を選びます
type Dispatcher struct {
	logger   *slog.Logger
	pairOpts exercise.PairMatchOptions
}

func NewDispatcher(pairOpts exercise.PairMatchOptions, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{logger: logger, pairOpts: pairOpts}
}

// Dispatch は1項目をマウントします。必ず1つの Mount を返し、panic しません。
func (d *Dispatcher) Dispatch(item model.Item, report exercise.ReportFunc) (m *Mount) {
	m = &Mount{ID: uuid.NewString(), Item: item}

	defer func() {
		if rec := recover(); rec != nil {
			d.logger.Error("Recovered while mounting lesson item",
				slog.String("item_id", item.ID), slog.String("type", item.Type), slog.Any("panic", rec))
			m.Content = model.MalformedContent{Type: item.Type, Reason: fmt.Sprint(rec), Raw: item.Content}
			m.Evaluator = nil
		}
	}()

	m.Content = model.ParseContent(item)

	switch c := m.Content.(type) {
	case model.SingleChoiceContent:
		m.Evaluator = exercise.NewSingleChoice(c, report)
	case model.ReadingChoiceContent:
		m.Evaluator = exercise.NewReadingChoice(c, report)
	case model.BlankFillContent:
		m.Evaluator = exercise.NewBlankFill(c, report)
	case model.PairMatchContent:
		m.Evaluator = exercise.NewPairMatch(c, report, d.pairOpts)
	case model.ReorderContent:
		m.Evaluator = exercise.NewReorder(c, report)
	case model.RewriteContent:
		m.Evaluator = exercise.NewRewrite(c, report)
	case model.ReadingPassageContent, model.GrammarRuleContent, model.DialogueContent,
		model.VocabularyContent, model.CulturalTipContent, model.CongratulationsContent:
	case model.UnsupportedExerciseContent:
		d.logger.Warn("Unsupported exercise type", slog.String("item_id", item.ID), slog.String("exercise_type", c.Subtype))
	case model.UnknownItemContent:
		d.logger.Warn("Unknown lesson item type", slog.String("item_id", item.ID), slog.String("type", c.Type))
	case model.MalformedContent:
		d.logger.Warn("Malformed lesson item content",
			slog.String("item_id", item.ID), slog.String("type", c.Type),
			slog.String("exercise_type", c.Subtype), slog.String("reason", c.Reason))
	}
	return m
}

// DispatchLesson はレッスンの全項目を順番どおりにマウントします。
// ID の無い項目はログを出してスキップし、残りの項目は表示します。
func (d *Dispatcher) DispatchLesson(lesson *model.Lesson, reportFor func(itemID string) exercise.ReportFunc) []*Mount {
	mounts := make([]*Mount, 0, len(lesson.Items))
	seen := make(map[string]bool, len(lesson.Items))
	for i, item := range lesson.Items {
		if item.ID == "" {
			d.logger.Warn("Skipping lesson item without id", slog.String("lesson_id", lesson.ID), slog.Int("index", i), slog.String("type", item.Type))
			continue
		}
		if seen[item.ID] {
			d.logger.Warn("Skipping lesson item with duplicate id", slog.String("lesson_id", lesson.ID), slog.String("item_id", item.ID))
			continue
		}
		seen[item.ID] = true
		mounts = append(mounts, d.Dispatch(item, reportFor(item.ID)))
	}
	return mounts
}

// View はマウント済み項目を学習者のロケールで表示モデルにします
func (m *Mount) View(r locale.Resolver) ItemView {
	v := ItemView{
		ItemID:   m.Item.ID,
		ItemType: m.Item.Type,
		MountID:  m.ID,
		Kind:     m.Kind(),
	}

	switch c := m.Content.(type) {
	case model.SingleChoiceContent, model.ReadingChoiceContent, model.BlankFillContent,
		model.PairMatchContent, model.ReorderContent, model.RewriteContent:
		ev := m.Evaluator.View(r)
		v.Exercise = &ev
	case model.ReadingPassageContent:
		v.Static = readingPassageView(c, r)
	case model.GrammarRuleContent:
		v.Static = grammarRuleView(c, r)
	case model.DialogueContent:
		v.Static = dialogueView(c, r)
	case model.VocabularyContent:
		v.Static = vocabularyView(c, r)
	case model.CulturalTipContent:
		v.Static = culturalTipView(c, r)
	case model.CongratulationsContent:
		v.Static = congratulationsView(c, r)
	case model.UnsupportedExerciseContent:
		v.Notice = &NoticeView{
			Code:    NoticeUnsupportedExercise,
			Message: locale.Message(locale.MsgUnsupportedExercise, r.Requested) + ": " + c.Subtype,
			Subtype: c.Subtype,
			Raw:     c.Raw,
		}
	case model.UnknownItemContent:
		v.Notice = &NoticeView{
			Code:    NoticeUnknownItem,
			Message: locale.Message(locale.MsgUnknownItem, r.Requested) + ": " + c.Type,
			RawType: c.Type,
			Raw:     c.Raw,
		}
	case model.MalformedContent:
		v.Notice = &NoticeView{
			Code:    NoticeMalformedContent,
			Message: locale.Message(locale.MsgMalformedContent, r.Requested),
			RawType: c.Type,
			Subtype: c.Subtype,
			Reason:  c.Reason,
			Raw:     c.Raw,
		}
	}
	return v
}
