// internal/locale/text.go
package locale

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// LocalizedText は利用者向けの文字列です。
// APIからは素の文字列か、ロケールコード -> 文字列 のマップのどちらかで届きます。
type LocalizedText struct {
	Plain    string
	ByLocale map[string]string
}

// Text は全ロケール共通の文字列から LocalizedText を作ります。
func Text(s string) LocalizedText {
	return LocalizedText{Plain: s}
}

// Texts はロケール別マップから LocalizedText を作ります。
func Texts(m map[string]string) LocalizedText {
	if m == nil {
		return LocalizedText{}
	}
	cp := make(map[string]string, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return LocalizedText{ByLocale: withCanonicalKeys(cp)}
}

// withCanonicalKeys は "pt_BR" のようなキーを正規形 ("pt-BR") でも引けるようにします。
// 正規形のキーが既にあればそちらを優先します。
func withCanonicalKeys(m map[string]string) map[string]string {
	for k, v := range m {
		if c := Canonical(k); c != k {
			if _, exists := m[c]; !exists {
				m[c] = v
			}
		}
	}
	return m
}

// IsEmpty はどのロケールにも文字列が無い場合に true を返します。
func (t LocalizedText) IsEmpty() bool {
	if t.Plain != "" {
		return false
	}
	for _, v := range t.ByLocale {
		if v != "" {
			return false
		}
	}
	return true
}

func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = LocalizedText{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = LocalizedText{Plain: s}
		return nil
	case '{':
		// 値が文字列以外 (null など) のキーは無視する
		var raw map[string]any
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		m := make(map[string]string, len(raw))
		for k, v := range raw {
			if s, ok := v.(string); ok {
				m[k] = s
			}
		}
		*t = LocalizedText{ByLocale: withCanonicalKeys(m)}
		return nil
	default:
		return fmt.Errorf("localized text must be a string or an object, got %s", string(data))
	}
}

func (t LocalizedText) MarshalJSON() ([]byte, error) {
	if t.ByLocale == nil {
		return json.Marshal(t.Plain)
	}
	return json.Marshal(t.ByLocale)
}

// ResolveText はロケールのフォールバックチェーンで文字列を解決します。
// 共通文字列 -> 要求ロケール (そのまま / 正規化済み) -> デフォルトロケール -> placeholder
// 空文字は未設定として扱います。
func ResolveText(text LocalizedText, requested, defaultLocale, placeholder string) string {
	if text.Plain != "" {
		return text.Plain
	}
	if v := lookup(text.ByLocale, requested); v != "" {
		return v
	}
	if v := lookup(text.ByLocale, defaultLocale); v != "" {
		return v
	}
	return placeholder
}

func lookup(m map[string]string, tag string) string {
	if len(m) == 0 || tag == "" {
		return ""
	}
	if v := m[tag]; v != "" {
		return v
	}
	if canonical := Canonical(tag); canonical != tag {
		if v := m[canonical]; v != "" {
			return v
		}
	}
	return ""
}

// Resolver は要求ロケール・デフォルトロケールを束ねたものです。
// 画面単位で同じチェーンを使い回すために使います。
type Resolver struct {
	Requested   string
	Default     string
	Placeholder string
}

func (r Resolver) Resolve(text LocalizedText) string {
	return ResolveText(text, r.Requested, r.Default, r.Placeholder)
}

// ResolveOr は placeholder の代わりに fallback を使って解決します。
func (r Resolver) ResolveOr(text LocalizedText, fallback string) string {
	return ResolveText(text, r.Requested, r.Default, fallback)
}
