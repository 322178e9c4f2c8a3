package rpc

import (
	"context"
	"net/http"
)

// OrderClient は注文サービスへの型付きRPCクライアント。
type OrderClient struct {
	client *Client
}

// NewOrderClient は注文サービスのクライアントを生成する。
func NewOrderClient(baseURL string) *OrderClient {
	return &OrderClient{client: New(baseURL)}
}

// NewOrderClientWith は生成済みのRPCクライアントから注文クライアントを生成する。
func NewOrderClientWith(client *Client) *OrderClient {
	return &OrderClient{client: client}
}

// CreateOrderRequest は注文作成のリクエスト。
// ペイロードは認証済みユーザーIDとメールアドレスのみで、
// 注文内容はユーザーのカートからバックエンドが組み立てる。
type CreateOrderRequest struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// CreateOrderResponse は注文作成の結果。
type CreateOrderResponse struct {
	OrderID    string  `json:"orderId"`
	TotalPrice float64 `json:"totalPrice"`
}

// CreateOrder は注文作成RPCを呼び出す。
func (c *OrderClient) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*CreateOrderResponse, error) {
	var resp CreateOrderResponse
	if err := c.client.CallJSON(ctx, http.MethodPost, "/order", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CancelOrderRequest は注文キャンセルのリクエスト。
type CancelOrderRequest struct {
	OrderID string `json:"orderId"`
	UserID  string `json:"userId"`
}

// CancelOrderResponse は注文キャンセルの結果。
type CancelOrderResponse struct {
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}

// CancelOrder は注文キャンセルRPCを呼び出す。
func (c *OrderClient) CancelOrder(ctx context.Context, req *CancelOrderRequest) (*CancelOrderResponse, error) {
	var resp CancelOrderResponse
	if err := c.client.CallJSON(ctx, http.MethodPut, "/order/cancelOrder", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddCartRequest はカートへの商品追加のリクエスト。
type AddCartRequest struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required,gte=1"`
}

// AddCartResponse はカートへの商品追加の結果。
type AddCartResponse struct {
	TotalPrice float64 `json:"totalPrice"`
}

// AddCart はカート追加RPCを呼び出す。
func (c *OrderClient) AddCart(ctx context.Context, req *AddCartRequest) (*AddCartResponse, error) {
	var resp AddCartResponse
	if err := c.client.CallJSON(ctx, http.MethodPost, "/order/addCart", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateCartRequest はカート内商品の数量更新のリクエスト。
type UpdateCartRequest struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required,gte=1"`
}

// UpdateCartResponse はカート更新の結果。
type UpdateCartResponse struct {
	TotalPrice float64 `json:"totalPrice"`
}

// UpdateCart はカート更新RPCを呼び出す。
func (c *OrderClient) UpdateCart(ctx context.Context, req *UpdateCartRequest) (*UpdateCartResponse, error) {
	var resp UpdateCartResponse
	if err := c.client.CallJSON(ctx, http.MethodPost, "/order/updateCart", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetCartRequest はカート内容取得のリクエスト。ペイロードは認証済みユーザーIDのみ。
type GetCartRequest struct {
	UserID string `json:"userId"`
}

// CartItem はカート内の1商品。
type CartItem struct {
	ProductID string  `json:"productId"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
}

// GetCartResponse はカート内容取得の結果。
type GetCartResponse struct {
	Items      []CartItem `json:"items"`
	TotalPrice float64    `json:"totalPrice"`
}

// GetCartDetails はカート内容取得RPCを呼び出す。
func (c *OrderClient) GetCartDetails(ctx context.Context, req *GetCartRequest) (*GetCartResponse, error) {
	var resp GetCartResponse
	if err := c.client.CallJSON(ctx, http.MethodPost, "/order/getCartDetails", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetOrderDetailsRequest は注文一覧取得のリクエスト。ペイロードは認証済みユーザーIDのみ。
type GetOrderDetailsRequest struct {
	UserID string `json:"userId"`
}

// Order は注文1件の概要。
type Order struct {
	OrderID    string  `json:"orderId"`
	TotalPrice float64 `json:"totalPrice"`
	Status     string  `json:"status"`
}

// GetOrderDetailsResponse は注文一覧取得の結果。
type GetOrderDetailsResponse struct {
	Orders []Order `json:"orders"`
}

// GetOrderDetails は注文一覧取得RPCを呼び出す。
func (c *OrderClient) GetOrderDetails(ctx context.Context, req *GetOrderDetailsRequest) (*GetOrderDetailsResponse, error) {
	var resp GetOrderDetailsResponse
	if err := c.client.CallJSON(ctx, http.MethodPost, "/order/getOrderDetails", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
