// internal/model/auth.go
package model

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// ContextKey はコンテキストに値を格納するためのキーの型です
type ContextKey string

const (
	PrincipalKey ContextKey = "principal"
	LocaleKey    ContextKey = "locale"
)

// UserMetadata は IdP がトークンに載せるプロフィール情報です
type UserMetadata struct {
	FullName           string `json:"full_name,omitempty"`
	NativeLanguageCode string `json:"native_language_code,omitempty"`
}

// SessionClaims は IdP のアクセストークンのクレームです
type SessionClaims struct {
	Email        string       `json:"email,omitempty"`
	UserMetadata UserMetadata `json:"user_metadata"`
	jwt.RegisteredClaims
}

// Principal は認証済みの学習者です。
// AccessToken はチューターAPIへの呼び出しにそのまま転送します。
type Principal struct {
	StudentID      string
	Email          string
	NativeLanguage string
	AccessToken    string
}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, p)
}

// PrincipalFromContext は認証ミドルウェアが格納した学習者を返します
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(*Principal)
	return p, ok && p != nil
}
