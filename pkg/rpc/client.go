package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// defaultTimeout はRPC呼び出し1回あたりのタイムアウト。
// この時間内に応答がない場合、呼び出しは504相当のエラーで失敗する。
const defaultTimeout = 10 * time.Second

// Client はバックエンドサービスへのユナリRPC呼び出しを行うHTTPクライアント。
// 型付きサービスクライアント（AuthClient等）の内部で使用する。
type Client struct {
	// httpClient は内部で使用するHTTPクライアント。
	httpClient *http.Client
	// baseURL は接続先サービスのベースURL。
	baseURL string
}

// New は新しいRPCクライアントを生成する。
// baseURLには接続先サービスのベースURL（例: "http://auth:8081"）を指定する。
func New(baseURL string) *Client {
	return NewWithTimeout(baseURL, defaultTimeout)
}

// NewWithTimeout はタイムアウトを指定してRPCクライアントを生成する。
func NewWithTimeout(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
	}
}

// CallJSON は指定パスへユナリRPC呼び出しを実行する。
// bodyをJSONとして送信し、成功レスポンスをresultにデシリアライズする。
// 失敗は常に*Errorとして返す: バックエンドが非2xxを返した場合は
// そのステータスとメッセージを、通信に失敗した場合はタイムアウト（504）
// または接続不能（502）として分類したものを保持する。
func (c *Client) CallJSON(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("リクエストボディのシリアライズに失敗: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("HTTPリクエストの作成に失敗: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// コンテキストからユーザーIDとリクエストIDを伝播する
	if userID, ok := ctx.Value(contextKeyUserID).(string); ok {
		req.Header.Set("X-User-ID", userID)
	}
	if requestID, ok := ctx.Value(contextKeyRequestID).(string); ok {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("レスポンスボディのデシリアライズに失敗: %w", err)
		}
	}
	return nil
}

// classifyTransportError は通信レベルの失敗を分類する。
// 時間内に応答がなかった場合は504、それ以外（接続拒否等）は502を返す。
func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &Error{
			StatusCode: http.StatusGatewayTimeout,
			Message:    "バックエンドサービスが時間内に応答しませんでした",
		}
	}
	return &Error{
		StatusCode: http.StatusBadGateway,
		Message:    "バックエンドサービスに接続できませんでした",
	}
}

// readErrorMessage はエラーレスポンスのボディからメッセージを取り出す。
// {"error": "..."} 形式を期待し、パースできない場合はボディをそのまま返す。
func readErrorMessage(r io.Reader) string {
	body, err := io.ReadAll(r)
	if err != nil || len(body) == 0 {
		return "バックエンドサービスがエラーを返しました"
	}

	var errBody struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &errBody); err == nil && errBody.Error != "" {
		return errBody.Error
	}
	return string(body)
}

// contextKey はコンテキストキーの型。
type contextKey string

// contextKeyUserID はコンテキストにユーザーIDを格納するためのキー。
const contextKeyUserID contextKey = "user_id"

// contextKeyRequestID はコンテキストにリクエストIDを格納するためのキー。
const contextKeyRequestID contextKey = "request_id"

// WithUserID はコンテキストにユーザーIDを設定する。
// バックエンド呼び出し時にX-User-IDヘッダーとして伝播される。
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextKeyUserID, userID)
}

// WithRequestID はコンテキストにリクエストIDを設定する。
// バックエンド呼び出し時にX-Request-IDヘッダーとして伝播される。
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}
