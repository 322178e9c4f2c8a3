package rpc

import "fmt"

// Error はRPC呼び出しの失敗を表す。
// バックエンドが報告したステータスコードとメッセージをそのまま保持し、
// ゲートウェイはこれを解釈せずHTTPレスポンスとして中継する。
type Error struct {
	// StatusCode はバックエンドが返したHTTPステータスコード。
	// 通信自体に失敗した場合はゲートウェイが分類したコード
	// （504: タイムアウト、502: 接続不能）が入る。
	StatusCode int
	// Message はバックエンドが報告したエラーメッセージ。
	Message string
}

// Error はerrorインターフェースを実装する。
func (e *Error) Error() string {
	return fmt.Sprintf("rpcエラー: status=%d, message=%s", e.StatusCode, e.Message)
}
