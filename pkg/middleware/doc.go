// Package middleware はゲートウェイのGin HTTPサーバーで使用するミドルウェアを提供する。
//
// Bearerトークンの検証を認証サービスに委譲する認証ガード、
// 開発用のローカルJWT検証、リクエストID付与、パニックリカバリ、
// CORS設定を含む。
package middleware
