package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/shophub/pkg/middleware"
	"github.com/nao1215/shophub/pkg/rpc"
)

// handleCreateProduct は商品登録を商品サービスに中継するハンドラを返す。
// 出品者IDは認証ガードが解決した値で必ず上書きする。
func (s *Server) handleCreateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req rpc.CreateProductRequest
		if !bindJSON(c, &req) {
			return
		}
		req.UserID = middleware.GetUserID(c)

		resp, err := s.product.CreateProduct(c.Request.Context(), &req)
		if err != nil {
			relayError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// handleFindOne は商品IDによる商品取得を中継するハンドラを返す。認証不要。
func (s *Server) handleFindOne() gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := s.product.FindOne(c.Request.Context(), c.Param("id"))
		if err != nil {
			relayError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// handleSearchProduct は商品名による検索を中継するハンドラを返す。認証不要。
func (s *Server) handleSearchProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := s.product.SearchProduct(c.Request.Context(), c.Param("name"))
		if err != nil {
			relayError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// handleUpdateProduct は商品更新を中継するハンドラを返す。
// ボディで指定されたフィールドだけを転送し、userIdは認証ガードが
// 解決した値で必ず上書きする。
func (s *Server) handleUpdateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req rpc.UpdateProductRequest
		if !bindJSON(c, &req) {
			return
		}
		req.UserID = middleware.GetUserID(c)

		resp, err := s.product.UpdateProduct(c.Request.Context(), &req)
		if err != nil {
			relayError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
