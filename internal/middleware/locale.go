package middleware

import (
	"context"
	"net/http"

	"go_5_english_tutor/internal/locale"
	"go_5_english_tutor/internal/model"
)

// LocaleMiddleware は学習者の表示ロケールを決めてコンテキストに格納します。
// プロフィールの母語 -> Accept-Language -> studentDefault の順に使います。
// 認証ミドルウェアの後に置きます。
func LocaleMiddleware(studentDefault string) func(http.Handler) http.Handler {
	if studentDefault == "" {
		studentDefault = locale.StudentDefault
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ResolveLocale(r, studentDefault)
			ctx := context.WithValue(r.Context(), model.LocaleKey, lang)
			GetLogger(ctx).Debug("Locale resolved", "locale", lang)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ResolveLocale はリクエストから表示ロケールを決めます
func ResolveLocale(r *http.Request, studentDefault string) string {
	if p, ok := model.PrincipalFromContext(r.Context()); ok && p.NativeLanguage != "" {
		return locale.Canonical(p.NativeLanguage)
	}
	return locale.Negotiate(r.Header.Get("Accept-Language"), studentDefault)
}

// GetLocale はコンテキストから表示ロケールを取得します
func GetLocale(ctx context.Context) string {
	if lang, ok := ctx.Value(model.LocaleKey).(string); ok && lang != "" {
		return lang
	}
	return locale.StudentDefault
}

// GetResolver はコンテンツ表示用の Resolver を返します。
// 教材の文字列は正規ロケール (en-US) にフォールバックします。
func GetResolver(ctx context.Context) locale.Resolver {
	return locale.Resolver{Requested: GetLocale(ctx), Default: locale.CanonicalDefault}
}
