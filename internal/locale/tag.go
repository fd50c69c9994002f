// internal/locale/tag.go
package locale

import (
	"golang.org/x/text/language"
)

const (
	// CanonicalDefault はコンテンツの正規ロケールです。教材は英語で作られています。
	CanonicalDefault = "en-US"
	// StudentDefault はプロフィールに母語が無い学習者のロケールです。
	StudentDefault = "pt-BR"
)

// Supported はUIメッセージを用意しているロケールです。先頭がフォールバック先になります。
var Supported = []language.Tag{
	language.BrazilianPortuguese,
	language.AmericanEnglish,
}

var matcher = language.NewMatcher(Supported)

// Canonical はロケールコードを BCP 47 の正規形に揃えます ("pt_br" -> "pt-BR")。
// 解釈できないコードはそのまま返します。
func Canonical(tag string) string {
	if tag == "" {
		return ""
	}
	t, err := language.Parse(tag)
	if err != nil {
		return tag
	}
	return t.String()
}

// Negotiate は Accept-Language ヘッダーから対応ロケールを選びます。
// 何も一致しない場合は fallback を返します。
func Negotiate(acceptLanguage, fallback string) string {
	if acceptLanguage == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	return Supported[index].String()
}
