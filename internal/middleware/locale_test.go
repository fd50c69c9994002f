package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_5_english_tutor/internal/locale"
	"go_5_english_tutor/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestLocaleMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		nativeLanguage string
		acceptLanguage string
		want           string
	}{
		{name: "プロフィールの母語を優先", nativeLanguage: "pt_br", acceptLanguage: "en-US", want: "pt-BR"},
		{name: "Accept-Language で決める", acceptLanguage: "en-GB,en;q=0.8", want: "en-US"},
		{name: "対応していない言語はデフォルト", acceptLanguage: "ja-JP", want: "pt-BR"},
		{name: "何も無ければデフォルト", want: "pt-BR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			var resolver locale.Resolver
			handler := LocaleMiddleware("pt-BR")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = GetLocale(r.Context())
				resolver = GetResolver(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			if tt.nativeLanguage != "" {
				req = req.WithContext(model.WithPrincipal(req.Context(), &model.Principal{StudentID: "s1", NativeLanguage: tt.nativeLanguage}))
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, resolver.Requested)
			assert.Equal(t, locale.CanonicalDefault, resolver.Default)
		})
	}
}

func TestGetLocale_Default(t *testing.T) {
	assert.Equal(t, locale.StudentDefault, GetLocale(context.Background()))
}
