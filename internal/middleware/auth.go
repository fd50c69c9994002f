package middleware

import (
	"errors"
	"net/http"
	"strings"

	"go_5_english_tutor/internal/model"
	"go_5_english_tutor/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
)

// AuthConfig はアクセストークンの検証設定です
type AuthConfig struct {
	Secret   string
	Audience string
}

// bearerToken は Authorization ヘッダーから Bearer トークンを取り出します
func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", model.NewAppError("UNAUTHENTICATED", "Authorizationヘッダーが必要です。", "", model.ErrUnauthenticated)
	}
	headerParts := strings.Fields(authHeader)
	if len(headerParts) != 2 || !strings.EqualFold(headerParts[0], "bearer") {
		return "", model.NewAppError("UNAUTHENTICATED", "Authorizationヘッダーの形式が正しくありません。", "", model.ErrUnauthenticated)
	}
	return headerParts[1], nil
}

// JWTAuthMiddleware は IdP が発行したアクセストークン (HS256) を検証し、
// 学習者を Principal としてコンテキストに格納します。
// トークンはチューターAPIへの呼び出しにそのまま転送します。
func JWTAuthMiddleware(cfg AuthConfig) func(http.Handler) http.Handler {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			tokenString, err := bearerToken(r)
			if err != nil {
				logger.Warn("JWT auth failed", "error", err)
				webutil.HandleError(w, logger, err)
				return
			}

			claims := &model.SessionClaims{}
			token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if cfg.Secret == "" {
					return nil, errors.New("jwt secret is not configured")
				}
				return []byte(cfg.Secret), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				code := "INVALID_TOKEN"
				if errors.Is(err, jwt.ErrTokenExpired) {
					code = "TOKEN_EXPIRED"
				}
				webutil.HandleError(w, logger, model.NewAppError(code, "セッションが無効か期限切れです。", "", model.ErrUnauthenticated))
				return
			}

			if claims.Subject == "" {
				logger.Warn("JWT auth failed: Subject (sub) claim missing")
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "トークンにユーザー情報が含まれていません。", "", model.ErrUnauthenticated))
				return
			}

			principal := &model.Principal{
				StudentID:      claims.Subject,
				Email:          claims.Email,
				NativeLanguage: claims.UserMetadata.NativeLanguageCode,
				AccessToken:    tokenString,
			}
			ctx := model.WithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
