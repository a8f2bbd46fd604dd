package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"shiyu/internal/config"
	"shiyu/internal/server"
	"shiyu/internal/webroot"
)

func main() {
	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// ポート番号は位置引数で上書きできる: shiyu [port]
	if len(os.Args) > 1 {
		port, err := config.ParsePort(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		cfg.Server.Port = port
	}

	// 配信ディレクトリを実行ファイルのディレクトリへ固定する
	if cfg.Serve.Root == "" {
		root, err := webroot.Resolve()
		if err != nil {
			log.Fatalf("配信ディレクトリの決定に失敗しました: %v", err)
		}
		cfg.Serve.Root = root
	}
	if err := webroot.Chdir(cfg.Serve.Root); err != nil {
		log.Fatalf("配信ディレクトリへの移動に失敗しました: %v", err)
	}

	// リスナーを開く前にエントリファイルの存在を確認する
	if err := webroot.CheckIndex(cfg.Serve.Root, cfg.Serve.Index); err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		fmt.Fprintf(os.Stderr, "%s のあるディレクトリで実行してください\n", cfg.Serve.Index)
		os.Exit(1)
	}

	// サーバーを作成
	srv := server.New(cfg)

	// コンテキストを作成
	ctx := context.Background()

	// サーバーを起動
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
