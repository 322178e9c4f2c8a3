package rpc

import (
	"context"
	"net/http"
	"net/url"
)

// ProductClient は商品サービスへの型付きRPCクライアント。
type ProductClient struct {
	client *Client
}

// NewProductClient は商品サービスのクライアントを生成する。
func NewProductClient(baseURL string) *ProductClient {
	return &ProductClient{client: New(baseURL)}
}

// NewProductClientWith は生成済みのRPCクライアントから商品クライアントを生成する。
func NewProductClientWith(client *Client) *ProductClient {
	return &ProductClient{client: client}
}

// CreateProductRequest は商品登録のリクエスト。
// UserIDは出品者のIDで、ゲートウェイが認証結果で必ず上書きする。
type CreateProductRequest struct {
	UserID      string  `json:"userId"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Stock       int64   `json:"stock" binding:"gte=0"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Image       string  `json:"image" binding:"required"`
}

// CreateProductResponse は商品登録の結果。
type CreateProductResponse struct {
	ProductID string `json:"productId"`
}

// CreateProduct は商品登録RPCを呼び出す。
func (c *ProductClient) CreateProduct(ctx context.Context, req *CreateProductRequest) (*CreateProductResponse, error) {
	var resp CreateProductResponse
	if err := c.client.CallJSON(ctx, http.MethodPost, "/product", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Product は商品1件の情報。
type Product struct {
	ProductID   string  `json:"productId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Stock       int64   `json:"stock"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

// FindOne は商品IDによる商品取得RPCを呼び出す。
func (c *ProductClient) FindOne(ctx context.Context, id string) (*Product, error) {
	var resp Product
	if err := c.client.CallJSON(ctx, http.MethodGet, "/product/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchProductResponse は商品名検索の結果。
type SearchProductResponse struct {
	Products []Product `json:"products"`
}

// SearchProduct は商品名による検索RPCを呼び出す。
func (c *ProductClient) SearchProduct(ctx context.Context, name string) (*SearchProductResponse, error) {
	var resp SearchProductResponse
	if err := c.client.CallJSON(ctx, http.MethodGet, "/product/searchProduct/"+url.PathEscape(name), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateProductRequest は商品更新のリクエスト。
// ProductID以外のフィールドは省略可能で、指定されたものだけが更新される。
// 数値フィールドはゼロ値と未指定を区別するためポインタで保持する。
type UpdateProductRequest struct {
	UserID      string   `json:"userId"`
	ProductID   string   `json:"productId" binding:"required"`
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Stock       *int64   `json:"stock,omitempty" binding:"omitempty,gte=0"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gt=0"`
	Image       string   `json:"image,omitempty"`
}

// UpdateProductResponse は商品更新の結果。
type UpdateProductResponse struct {
	ProductID string `json:"productId"`
}

// UpdateProduct は商品更新RPCを呼び出す。
func (c *ProductClient) UpdateProduct(ctx context.Context, req *UpdateProductRequest) (*UpdateProductResponse, error) {
	var resp UpdateProductResponse
	if err := c.client.CallJSON(ctx, http.MethodPost, "/product/updateProduct", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
