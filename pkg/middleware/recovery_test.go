package middleware

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// newRecoveryRouter はGatewayと同じ順序（Recovery → リクエストID）でミドルウェアを
// 適用したテスト用ルーターを生成する。
func newRecoveryRouter() *gin.Engine {
	router := gin.New()
	router.Use(Recovery())
	router.Use(RequestID())
	router.POST("/order", func(_ *gin.Context) {
		panic("注文ディスパッチでパニック")
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

// TestRecovery はRecoveryミドルウェアを検証する。
func TestRecovery(t *testing.T) {
	t.Parallel()

	t.Run("ハンドラのパニックが詳細を漏らさない500に変換されること", func(t *testing.T) {
		t.Parallel()

		router := newRecoveryRouter()

		req := httptest.NewRequest(http.MethodPost, "/order", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusInternalServerError)
		}

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("レスポンスボディのパースに失敗: %v", err)
		}
		if body["error"] != "内部サーバーエラーが発生しました" {
			t.Errorf("error = %q, want %q", body["error"], "内部サーバーエラーが発生しました")
		}
		if strings.Contains(w.Body.String(), "注文ディスパッチ") {
			t.Errorf("パニックの内容がレスポンスに漏れている: %s", w.Body.String())
		}
	})

	t.Run("パニックが発生しない場合は正常にレスポンスが返ること", func(t *testing.T) {
		t.Parallel()

		router := newRecoveryRouter()

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("文字列以外のパニック値でも500が返ること", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(Recovery())
		router.GET("/panic-error", func(_ *gin.Context) {
			panic(http.ErrAbortHandler)
		})

		req := httptest.NewRequest(http.MethodGet, "/panic-error", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusInternalServerError)
		}
	})

	t.Run("パニック後もサーバーが次のリクエストを処理できること", func(t *testing.T) {
		t.Parallel()

		router := newRecoveryRouter()

		req1 := httptest.NewRequest(http.MethodPost, "/order", nil)
		w1 := httptest.NewRecorder()
		router.ServeHTTP(w1, req1)

		if w1.Code != http.StatusInternalServerError {
			t.Errorf("1回目のステータスコード = %d, want %d", w1.Code, http.StatusInternalServerError)
		}

		req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
		w2 := httptest.NewRecorder()
		router.ServeHTTP(w2, req2)

		if w2.Code != http.StatusOK {
			t.Errorf("2回目のステータスコード = %d, want %d", w2.Code, http.StatusOK)
		}
	})
}

// TestRecoveryPanicLog はパニックログの内容を検証する。
// 標準ロガーの出力先を差し替えるため、並行実行しない。
func TestRecoveryPanicLog(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	router := newRecoveryRouter()

	req := httptest.NewRequest(http.MethodPost, "/order", nil)
	req.Header.Set("X-Request-ID", "req-panic-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("ステータスコード = %d, want %d", w.Code, http.StatusInternalServerError)
	}

	logged := buf.String()
	if !strings.Contains(logged, "[PANIC]") {
		t.Errorf("ログに[PANIC]が含まれない: %q", logged)
	}
	if !strings.Contains(logged, "request_id=req-panic-1") {
		t.Errorf("ログにリクエストIDが含まれない: %q", logged)
	}
	if !strings.Contains(logged, "POST /order") {
		t.Errorf("ログにメソッドとパスが含まれない: %q", logged)
	}
	if !strings.Contains(logged, "注文ディスパッチでパニック") {
		t.Errorf("ログにパニックの内容が含まれない: %q", logged)
	}
}
