package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/shophub/pkg/middleware"
	"github.com/nao1215/shophub/pkg/rpc"
)

// handleRegister はユーザー登録を認証サービスに中継するハンドラを返す。
// 認証不要ルートのため、検証済みボディをそのまま転送する。
func (s *Server) handleRegister() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req rpc.RegisterRequest
		if !bindJSON(c, &req) {
			return
		}

		resp, err := s.auth.Register(c.Request.Context(), &req)
		if err != nil {
			relayError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// handleLogin はログインを認証サービスに中継するハンドラを返す。
func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req rpc.LoginRequest
		if !bindJSON(c, &req) {
			return
		}

		resp, err := s.auth.Login(c.Request.Context(), &req)
		if err != nil {
			relayError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// handleUpdate はユーザー情報更新を認証サービスに中継するハンドラを返す。
// ボディのuserIdは認証ガードが解決した値で必ず上書きする。
func (s *Server) handleUpdate() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req rpc.UpdateRequest
		if !bindJSON(c, &req) {
			return
		}
		req.UserID = middleware.GetUserID(c)

		resp, err := s.auth.Update(c.Request.Context(), &req)
		if err != nil {
			relayError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// handleForgetPassword はパスワード再設定メールの送信依頼を中継するハンドラを返す。
func (s *Server) handleForgetPassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req rpc.ForgetPasswordRequest
		if !bindJSON(c, &req) {
			return
		}

		resp, err := s.auth.ForgetPassword(c.Request.Context(), &req)
		if err != nil {
			relayError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// handleResetPassword はOTPによるパスワード再設定を中継するハンドラを返す。
func (s *Server) handleResetPassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req rpc.ResetPasswordRequest
		if !bindJSON(c, &req) {
			return
		}

		resp, err := s.auth.ResetPassword(c.Request.Context(), &req)
		if err != nil {
			relayError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// handleChangePassword はパスワード変更を中継するハンドラを返す。
func (s *Server) handleChangePassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req rpc.ChangePasswordRequest
		if !bindJSON(c, &req) {
			return
		}
		req.UserID = middleware.GetUserID(c)

		resp, err := s.auth.ChangePassword(c.Request.Context(), &req)
		if err != nil {
			relayError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// handleLogout はログアウトを中継するハンドラを返す。
// ペイロードは認証ガードが解決したユーザーIDのみで、ボディは読まない。
func (s *Server) handleLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		req := rpc.LogoutRequest{UserID: middleware.GetUserID(c)}

		resp, err := s.auth.Logout(c.Request.Context(), &req)
		if err != nil {
			relayError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// handleAddWalletAmount はウォレット入金を中継するハンドラを返す。
func (s *Server) handleAddWalletAmount() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req rpc.AddWalletAmountRequest
		if !bindJSON(c, &req) {
			return
		}
		req.UserID = middleware.GetUserID(c)

		resp, err := s.auth.AddWalletAmount(c.Request.Context(), &req)
		if err != nil {
			relayError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
