package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/shophub/pkg/middleware"
	"github.com/nao1215/shophub/pkg/rpc"
)

// handleCreateOrder は注文作成を注文サービスに中継するハンドラを返す。
// ペイロードは認証ガードが解決したユーザーIDとメールアドレスのみで、
// クライアント入力は一切受け付けない。
func (s *Server) handleCreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		req := rpc.CreateOrderRequest{
			UserID: middleware.GetUserID(c),
			Email:  middleware.GetEmail(c),
		}

		resp, err := s.order.CreateOrder(c.Request.Context(), &req)
		if err != nil {
			relayError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// handleCancelOrder は注文キャンセルを中継するハンドラを返す。
// 対象の注文IDはパスパラメータから取得する。
func (s *Server) handleCancelOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		req := rpc.CancelOrderRequest{
			OrderID: c.Param("orderId"),
			UserID:  middleware.GetUserID(c),
		}

		resp, err := s.order.CancelOrder(c.Request.Context(), &req)
		if err != nil {
			relayError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// handleAddCart はカートへの商品追加を中継するハンドラを返す。
// ボディのuserIdは認証ガードが解決した値で必ず上書きする。
func (s *Server) handleAddCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req rpc.AddCartRequest
		if !bindJSON(c, &req) {
			return
		}
		req.UserID = middleware.GetUserID(c)

		resp, err := s.order.AddCart(c.Request.Context(), &req)
		if err != nil {
			relayError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// handleUpdateCart はカート内商品の数量更新を中継するハンドラを返す。
func (s *Server) handleUpdateCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req rpc.UpdateCartRequest
		if !bindJSON(c, &req) {
			return
		}
		req.UserID = middleware.GetUserID(c)

		resp, err := s.order.UpdateCart(c.Request.Context(), &req)
		if err != nil {
			relayError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// handleGetCartDetails はカート内容の取得を中継するハンドラを返す。
// ペイロードは認証ガードが解決したユーザーIDのみ。
func (s *Server) handleGetCartDetails() gin.HandlerFunc {
	return func(c *gin.Context) {
		req := rpc.GetCartRequest{UserID: middleware.GetUserID(c)}

		resp, err := s.order.GetCartDetails(c.Request.Context(), &req)
		if err != nil {
			relayError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// handleGetOrderDetails は注文一覧の取得を中継するハンドラを返す。
func (s *Server) handleGetOrderDetails() gin.HandlerFunc {
	return func(c *gin.Context) {
		req := rpc.GetOrderDetailsRequest{UserID: middleware.GetUserID(c)}

		resp, err := s.order.GetOrderDetails(c.Request.Context(), &req)
		if err != nil {
			relayError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
