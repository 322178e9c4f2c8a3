package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nao1215/shophub/pkg/rpc"
)

// JWTClaims はローカル検証モードで使用するJWTトークンのクレーム。
type JWTClaims struct {
	jwt.RegisteredClaims
	// UserID は認証済みユーザーの一意識別子。
	UserID string `json:"user_id"`
	// Email はユーザーのメールアドレス。
	Email string `json:"email"`
}

// GenerateJWT はユーザー情報から開発用のJWTトークンを生成する。
// 認証サービスを起動せずにゲートウェイを動かす際のトークン発行に使用する。
func GenerateJWT(secret, userID, email string) (string, error) {
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "shophub-gateway",
		},
		UserID: userID,
		Email:  email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("JWTトークンの署名に失敗: %w", err)
	}
	return signed, nil
}

// JWTVerifier は認証サービスを経由せずにHS256署名のJWTをローカルで検証する。
// ValidateはValidateFuncとして使用でき、認証サービスが起動していない
// 開発環境でのみ使用する。ログアウト状態を把握できないため、
// 検証結果はOK（200）か認証失敗（401）のいずれかになる。
type JWTVerifier struct {
	// Secret はJWT署名検証用の秘密鍵。
	Secret string
}

// Validate はトークンをローカルで検証し、認証サービスと同じ形式の結果を返す。
func (v *JWTVerifier) Validate(_ context.Context, token string) (*rpc.ValidateResponse, error) {
	claims := &JWTClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(_ *jwt.Token) (any, error) {
		return []byte(v.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return &rpc.ValidateResponse{Status: http.StatusUnauthorized}, nil
	}

	return &rpc.ValidateResponse{
		Status: http.StatusOK,
		UserID: claims.UserID,
		Email:  claims.Email,
	}, nil
}
