package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/shophub/pkg/rpc"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newGuardedRouter は認証ガードを適用したテスト用ルーターを生成する。
// 保護されたハンドラはコンテキストから取得したユーザー情報を返す。
func newGuardedRouter(validate ValidateFunc) *gin.Engine {
	router := gin.New()
	router.GET("/protected", Auth(validate), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": GetUserID(c),
			"email":   GetEmail(c),
		})
	})
	return router
}

// countingValidator は呼び出し回数を数えるValidateFuncを生成する。
func countingValidator(calls *atomic.Int64, resp *rpc.ValidateResponse, err error) ValidateFunc {
	return func(_ context.Context, _ string) (*rpc.ValidateResponse, error) {
		calls.Add(1)
		return resp, err
	}
}

// TestAuth は認証ガードミドルウェアを検証する。
func TestAuth(t *testing.T) {
	t.Parallel()

	t.Run("Authorizationヘッダーが無い場合は401を返し検証RPCを呼ばないこと", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		router := newGuardedRouter(countingValidator(&calls, &rpc.ValidateResponse{Status: http.StatusOK}, nil))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusUnauthorized)
		}
		if calls.Load() != 0 {
			t.Errorf("検証RPCの呼び出し回数 = %d, want 0", calls.Load())
		}
	})

	t.Run("スキームのみでトークンが無い場合は401を返し検証RPCを呼ばないこと", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		router := newGuardedRouter(countingValidator(&calls, &rpc.ValidateResponse{Status: http.StatusOK}, nil))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusUnauthorized)
		}
		if calls.Load() != 0 {
			t.Errorf("検証RPCの呼び出し回数 = %d, want 0", calls.Load())
		}
	})

	t.Run("検証成功時にユーザーIDとメールアドレスがコンテキストに設定されること", func(t *testing.T) {
		t.Parallel()

		var gotToken string
		validate := func(_ context.Context, token string) (*rpc.ValidateResponse, error) {
			gotToken = token
			return &rpc.ValidateResponse{
				Status: http.StatusOK,
				UserID: "user-1",
				Email:  "user1@example.com",
			}, nil
		}
		router := newGuardedRouter(validate)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer token-abc")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("ステータスコード = %d, want %d", w.Code, http.StatusOK)
		}
		if gotToken != "token-abc" {
			t.Errorf("検証に渡されたトークン = %q, want %q", gotToken, "token-abc")
		}

		var result map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
			t.Fatalf("レスポンスのパースに失敗: %v", err)
		}
		if result["user_id"] != "user-1" {
			t.Errorf("user_id = %q, want %q", result["user_id"], "user-1")
		}
		if result["email"] != "user1@example.com" {
			t.Errorf("email = %q, want %q", result["email"], "user1@example.com")
		}
	})

	t.Run("ログアウト済みセッションは400を返し一般的な認証失敗と区別されること", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		router := newGuardedRouter(countingValidator(&calls, &rpc.ValidateResponse{Status: http.StatusBadRequest}, nil))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer revoked-token")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusBadRequest)
		}
		if calls.Load() != 1 {
			t.Errorf("検証RPCの呼び出し回数 = %d, want 1", calls.Load())
		}
	})

	t.Run("その他の検証失敗ステータスは401を返すこと", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		router := newGuardedRouter(countingValidator(&calls, &rpc.ValidateResponse{Status: http.StatusForbidden}, nil))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("検証RPCがタイムアウトした場合は504が中継されること", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		rpcErr := &rpc.Error{
			StatusCode: http.StatusGatewayTimeout,
			Message:    "バックエンドサービスが時間内に応答しませんでした",
		}
		router := newGuardedRouter(countingValidator(&calls, nil, rpcErr))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer token-abc")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusGatewayTimeout {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusGatewayTimeout)
		}
	})

	t.Run("分類されていない通信エラーは502を返すこと", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		router := newGuardedRouter(countingValidator(&calls, nil, errors.New("unexpected")))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer token-abc")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusBadGateway)
		}
	})
}
