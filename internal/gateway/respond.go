package gateway

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/shophub/pkg/rpc"
)

// relayError はRPC呼び出しの失敗をHTTPレスポンスに変換する。
// バックエンドが報告した失敗（*rpc.Error）はステータスとメッセージを
// 解釈せずそのまま中継する。それ以外のエラーは詳細を漏らさず500を返す。
func relayError(c *gin.Context, err error) {
	var rpcErr *rpc.Error
	if errors.As(err, &rpcErr) {
		c.JSON(rpcErr.StatusCode, gin.H{"error": rpcErr.Message})
		return
	}

	log.Printf("RPC呼び出しで予期しないエラー: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "内部サーバーエラーが発生しました"})
}

// bindJSON はリクエストボディをreqにバインドして検証する。
// 失敗した場合は400を返してfalseを返す。バインドに失敗したリクエストが
// バックエンドに到達することはない。
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "リクエストボディが不正です: " + err.Error()})
		return false
	}
	return true
}
