// Package server は、開発用静的ファイルサーバーを管理します。
//
// このパッケージは、HTTPサーバーの起動、ルーティング、
// 静的ファイルの配信、キャッシュ無効化ヘッダーの付与を担当します。
//
// 責務:
//   - HTTPサーバーの起動と管理
//   - 配信ディレクトリ配下の静的ファイル（HTML/CSS/JS）の配信
//   - 全レスポンスへのキャッシュ無効化ヘッダーの付与
//   - 起動時の既定ブラウザの起動
//   - シグナルによるグレースフルシャットダウン
//
// 仕様:
//   - ルーティングとミドルウェアはgin-gonic/ginを使用
//   - ファイル配信は標準ライブラリのhttp.FileServerに委譲
//   - Cache-Control / Pragma / Expires をすべてのレスポンスに付与
//   - SIGINT / SIGTERM でグレースフルシャットダウン
package server
