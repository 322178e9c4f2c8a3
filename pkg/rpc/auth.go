package rpc

import (
	"context"
	"net/http"
)

// AuthClient は認証サービスへの型付きRPCクライアント。
type AuthClient struct {
	client *Client
}

// NewAuthClient は認証サービスのクライアントを生成する。
func NewAuthClient(baseURL string) *AuthClient {
	return &AuthClient{client: New(baseURL)}
}

// NewAuthClientWith は生成済みのRPCクライアントから認証クライアントを生成する。
// タイムアウト等を調整したクライアントを使用したい場合に使う。
func NewAuthClientWith(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

// ValidateResponse はトークン検証の結果。
// Statusは認証サービスが報告する検証結果のコードで、
// 200が有効、400がログアウト済み（セッション無効）、それ以外は認証失敗を表す。
type ValidateResponse struct {
	Status int    `json:"status"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Validate はBearerトークンを認証サービスに問い合わせて検証する。
// 検証結果の成否はレスポンスのStatusフィールドで表現され、
// 通信自体に失敗した場合のみエラーを返す。
func (c *AuthClient) Validate(ctx context.Context, token string) (*ValidateResponse, error) {
	req := struct {
		Token string `json:"token"`
	}{Token: token}

	var resp ValidateResponse
	if err := c.client.CallJSON(ctx, http.MethodPost, "/auth/validate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RegisterRequest はユーザー登録のリクエスト。
// bindingタグはゲートウェイでの入力検証に使用する。
type RegisterRequest struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	UserName      string `json:"userName" binding:"required,min=5,max=20"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6,max=20"`
	ContactNumber string `json:"contactNumber" binding:"required,len=10,numeric"`
	Address       string `json:"address" binding:"required"`
}

// RegisterResponse はユーザー登録の結果。
type RegisterResponse struct {
	UserID string `json:"userId"`
}

// Register はユーザー登録RPCを呼び出す。
func (c *AuthClient) Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error) {
	var resp RegisterResponse
	if err := c.client.CallJSON(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LoginRequest はログインのリクエスト。
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse はログインの結果。Tokenは以降のリクエストで使用するBearerトークン。
type LoginResponse struct {
	Token string `json:"token"`
}

// Login はログインRPCを呼び出す。
func (c *AuthClient) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.client.CallJSON(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateRequest はユーザー情報更新のリクエスト。全フィールドが省略可能。
// UserIDはクライアント入力を受け付けず、ゲートウェイが認証結果で必ず上書きする。
type UpdateRequest struct {
	UserID        string `json:"userId"`
	FirstName     string `json:"firstName,omitempty"`
	LastName      string `json:"lastName,omitempty"`
	UserName      string `json:"userName,omitempty" binding:"omitempty,min=5,max=20"`
	Email         string `json:"email,omitempty" binding:"omitempty,email"`
	Password      string `json:"password,omitempty" binding:"omitempty,min=6,max=20"`
	ContactNumber string `json:"contactNumber,omitempty" binding:"omitempty,len=10,numeric"`
	Address       string `json:"address,omitempty"`
}

// UpdateResponse はユーザー情報更新の結果。
type UpdateResponse struct {
	UserID string `json:"userId"`
}

// Update はユーザー情報更新RPCを呼び出す。
func (c *AuthClient) Update(ctx context.Context, req *UpdateRequest) (*UpdateResponse, error) {
	var resp UpdateResponse
	if err := c.client.CallJSON(ctx, http.MethodPost, "/auth/update", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ForgetPasswordRequest はパスワード再設定メール送信のリクエスト。
type ForgetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgetPasswordResponse はパスワード再設定メール送信の結果。
type ForgetPasswordResponse struct {
	Message string `json:"message"`
}

// ForgetPassword はパスワード再設定メール送信RPCを呼び出す。
func (c *AuthClient) ForgetPassword(ctx context.Context, req *ForgetPasswordRequest) (*ForgetPasswordResponse, error) {
	var resp ForgetPasswordResponse
	if err := c.client.CallJSON(ctx, http.MethodPost, "/auth/forgetPassword", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResetPasswordRequest はOTPによるパスワード再設定のリクエスト。
type ResetPasswordRequest struct {
	OTP      string `json:"otp" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=20"`
}

// ResetPasswordResponse はパスワード再設定の結果。
type ResetPasswordResponse struct {
	Message string `json:"message"`
}

// ResetPassword はパスワード再設定RPCを呼び出す。
func (c *AuthClient) ResetPassword(ctx context.Context, req *ResetPasswordRequest) (*ResetPasswordResponse, error) {
	var resp ResetPasswordResponse
	if err := c.client.CallJSON(ctx, http.MethodPost, "/auth/resetPassword", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChangePasswordRequest はパスワード変更のリクエスト。
type ChangePasswordRequest struct {
	UserID      string `json:"userId"`
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6,max=20"`
}

// ChangePasswordResponse はパスワード変更の結果。
type ChangePasswordResponse struct {
	Message string `json:"message"`
}

// ChangePassword はパスワード変更RPCを呼び出す。
func (c *AuthClient) ChangePassword(ctx context.Context, req *ChangePasswordRequest) (*ChangePasswordResponse, error) {
	var resp ChangePasswordResponse
	if err := c.client.CallJSON(ctx, http.MethodPost, "/auth/changePassword", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LogoutRequest はログアウトのリクエスト。ペイロードは認証済みユーザーIDのみ。
type LogoutRequest struct {
	UserID string `json:"userId"`
}

// LogoutResponse はログアウトの結果。
type LogoutResponse struct {
	Message string `json:"message"`
}

// Logout はログアウトRPCを呼び出す。
func (c *AuthClient) Logout(ctx context.Context, req *LogoutRequest) (*LogoutResponse, error) {
	var resp LogoutResponse
	if err := c.client.CallJSON(ctx, http.MethodPost, "/auth/logout", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddWalletAmountRequest はウォレット入金のリクエスト。
type AddWalletAmountRequest struct {
	UserID string  `json:"userId"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// AddWalletAmountResponse はウォレット入金の結果。Balanceは入金後の残高。
type AddWalletAmountResponse struct {
	Balance float64 `json:"balance"`
}

// AddWalletAmount はウォレット入金RPCを呼び出す。
func (c *AuthClient) AddWalletAmount(ctx context.Context, req *AddWalletAmountRequest) (*AddWalletAmountResponse, error) {
	var resp AddWalletAmountResponse
	if err := c.client.CallJSON(ctx, http.MethodPost, "/auth/addWalletAmount", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
