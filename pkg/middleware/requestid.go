package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nao1215/shophub/pkg/rpc"
)

// headerKeyRequestID はリクエストIDを伝播するためのHTTPヘッダーキー。
const headerKeyRequestID = "X-Request-ID"

// RequestID はリクエストごとに一意のIDを割り当てるGinミドルウェアを返す。
// 呼び出し元がX-Request-IDヘッダーを指定した場合はそれを引き継ぐ。
// IDはレスポンスヘッダーに設定され、バックエンドへのRPC呼び出しにも
// 伝播されるため、サービスをまたいだログの突き合わせに使用できる。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(headerKeyRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Header(headerKeyRequestID, requestID)
		c.Request = c.Request.WithContext(rpc.WithRequestID(c.Request.Context(), requestID))
		c.Next()
	}
}
