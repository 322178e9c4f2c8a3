// Package rpc はバックエンドサービスへの型付きRPCクライアントを提供する。
//
// 各サービスのメソッドに対応する1つのクライアントメソッドを持ち、
// JSON over HTTPのユナリ呼び出しとして実行する。認証・注文・商品の
// 各サービスクライアントは起動時に1度だけ生成し、プロセス全体で
// 共有する。内部状態を持たないため複数リクエストから並行に使用できる。
package rpc
