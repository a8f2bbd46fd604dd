// Package webroot 配信ディレクトリの決定と起動前提条件の確認を担う
//
// # 責務
// - 実行ファイルが置かれたディレクトリの解決
// - 作業ディレクトリの配信ディレクトリへの固定
// - エントリファイル（index.html）の存在確認
//
// # 仕様
// - 配信ディレクトリは実行ファイルのディレクトリに固定する
// - エントリファイルの確認はリスナーを開く前に行う
// - 前提条件の違反は起動時の致命的エラーとして扱う
package webroot
