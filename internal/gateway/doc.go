// Package gateway はAPI Gatewayサービスの内部実装を提供する。
//
// HTTPで受け付けたリクエストを検証し、認証ガードで解決した
// ユーザー識別情報をペイロードに合成した上で、認証・注文・商品の
// 各バックエンドサービスのRPCに1対1で中継する。ビジネスロジックは
// 一切持たず、バックエンドが報告した結果と失敗をそのまま
// 呼び出し元に返す。外部からアクセス可能な唯一のサービスであり、
// セキュリティの境界線として機能する。
package gateway
