// internal/dispatch/static.go
package dispatch

import (
	"go_5_english_tutor/internal/locale"
	"go_5_english_tutor/internal/model"
)

// 静的コンテンツの表示。文字列はすべて locale.Resolver で解決する。

func readingPassageView(c model.ReadingPassageContent, r locale.Resolver) *StaticView {
	// 原文は正規ロケール、訳は学習者のロケールで解決する
	canonical := locale.Resolver{Requested: locale.CanonicalDefault, Default: r.Default}
	original := canonical.ResolveOr(c.Passage, "")
	translation := r.ResolveOr(c.Passage, "")
	if translation == original {
		translation = ""
	}
	return &StaticView{
		Kind:        "reading_passage",
		Label:       locale.Message(locale.MsgReadingLabel, r.Requested),
		Title:       r.ResolveOr(c.Title, locale.Message(locale.MsgReadingLabel, r.Requested)),
		Original:    original,
		Translation: translation,
	}
}

func grammarRuleView(c model.GrammarRuleContent, r locale.Resolver) *StaticView {
	return &StaticView{
		Kind:         string(model.ItemTypeGrammarRule),
		Label:        locale.Message(locale.MsgGrammarRuleLabel, r.Requested),
		Title:        r.ResolveOr(c.RuleName, ""),
		Body:         r.ResolveOr(c.Explanation, ""),
		PositiveForm: r.ResolveOr(c.PositiveForm, ""),
		NegativeForm: r.ResolveOr(c.NegativeForm, ""),
	}
}

func dialogueView(c model.DialogueContent, r locale.Resolver) *StaticView {
	lines := make([]LineView, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, LineView{
			Speaker:  l.Speaker,
			Sentence: r.Resolve(l.Sentence),
		})
	}
	return &StaticView{
		Kind:  string(model.ItemTypeDialogue),
		Title: r.ResolveOr(c.Title, locale.Message(locale.MsgDialogueDefaultTitle, r.Requested)),
		Lines: lines,
	}
}

func vocabularyView(c model.VocabularyContent, r locale.Resolver) *StaticView {
	return &StaticView{
		Kind:        string(model.ItemTypeVocabulary),
		Label:       locale.Message(locale.MsgVocabularyLabel, r.Requested),
		Title:       r.Resolve(c.Concept),
		Translation: r.ResolveOr(c.Translations, locale.Message(locale.MsgTranslationUnavailable, r.Requested)),
	}
}

func culturalTipView(c model.CulturalTipContent, r locale.Resolver) *StaticView {
	return &StaticView{
		Kind:  string(model.ItemTypeCulturalTip),
		Title: r.ResolveOr(c.Title, locale.Message(locale.MsgCulturalTipDefaultTitle, r.Requested)),
		Body:  r.Resolve(c.Tip),
	}
}

func congratulationsView(c model.CongratulationsContent, r locale.Resolver) *StaticView {
	return &StaticView{
		Kind:  string(model.ItemTypeCongratulationsMessage),
		Title: r.ResolveOr(c.Title, locale.Message(locale.MsgCongratulationsTitle, r.Requested)),
		Body:  r.ResolveOr(c.Message, locale.Message(locale.MsgCongratulationsDefault, r.Requested)),
	}
}
