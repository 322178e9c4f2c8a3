package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/shophub/pkg/rpc"
)

// ValidateFunc はBearerトークンを検証し、認証サービスの検証結果を返す。
// 通信自体に失敗した場合のみエラーを返し、検証の成否は
// ValidateResponse.Statusで表現する。
type ValidateFunc func(ctx context.Context, token string) (*rpc.ValidateResponse, error)

// Auth は保護されたルートへのアクセスを制御するGinミドルウェアを返す。
//
// Authorizationヘッダーから "<scheme> <token>" 形式のBearerトークンを
// 取り出し、validateで検証する。検証に成功した場合はコンテキストに
// "user_id" と "email" を設定し、後続のハンドラに処理を渡す。
// 検証結果は一切キャッシュせず、保護されたリクエストごとに再検証する。
//
// 失敗時の応答は以下のとおり区別される。
//   - ヘッダー欠落・形式不正: 401（検証RPCは呼び出されない）
//   - ログアウト済みセッション（検証結果400）: 400と再ログインの案内
//   - それ以外の検証失敗: 401
//   - 認証サービスとの通信失敗: rpc.Errorが保持するステータスを中継
func Auth(validate ValidateFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorizationヘッダーが必要です",
			})
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) < 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "認証ヘッダーの形式が不正です",
			})
			return
		}
		token := fields[1]

		resp, err := validate(c.Request.Context(), token)
		if err != nil {
			var rpcErr *rpc.Error
			if errors.As(err, &rpcErr) {
				c.AbortWithStatusJSON(rpcErr.StatusCode, gin.H{"error": rpcErr.Message})
				return
			}
			c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{
				"error": "認証サービスとの通信に失敗しました",
			})
			return
		}

		// 検証結果400はログアウト済みセッションを表し、
		// 一般的な認証失敗（401）と区別して呼び出し元に通知する
		if resp.Status == http.StatusBadRequest {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "ログアウト済みのセッションです。再度ログインしてください",
			})
			return
		}
		if resp.Status != http.StatusOK {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "トークンが無効です",
			})
			return
		}

		c.Set("user_id", resp.UserID)
		c.Set("email", resp.Email)
		c.Request = c.Request.WithContext(rpc.WithUserID(c.Request.Context(), resp.UserID))
		c.Next()
	}
}

// GetUserID はGinコンテキストから認証済みユーザーIDを取得する。
// Authミドルウェアが事前に適用されている必要がある。
func GetUserID(c *gin.Context) string {
	userID, _ := c.Get("user_id")
	if id, ok := userID.(string); ok {
		return id
	}
	return ""
}

// GetEmail はGinコンテキストから認証済みユーザーのメールアドレスを取得する。
// Authミドルウェアが事前に適用されている必要がある。
func GetEmail(c *gin.Context) string {
	email, _ := c.Get("email")
	if e, ok := email.(string); ok {
		return e
	}
	return ""
}
