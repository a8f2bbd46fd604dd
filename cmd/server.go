// Package main はShiyuサーバーコマンドの実装です
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"shiyu/internal/config"
	"shiyu/internal/server"
	"shiyu/internal/webroot"
)

func main() {
	// コマンドラインオプション
	var (
		host       = flag.String("host", "", "サーバーのホスト (デフォルト: 全インターフェース)")
		port       = flag.Int("port", 0, "サーバーのポート (デフォルト: 8000)")
		dir        = flag.String("dir", "", "配信ディレクトリ (デフォルト: 実行ファイルのディレクトリ)")
		index      = flag.String("index", "", "エントリファイル名 (デフォルト: index.html)")
		configPath = flag.String("config", "", "TOML設定ファイルのパス")
		noOpen     = flag.Bool("no-open", false, "起動時にブラウザを開かない")
		help       = flag.Bool("help", false, "ヘルプを表示")
	)

	flag.Parse()

	// ヘルプ表示
	if *help {
		fmt.Println("Shiyu - 開発用静的ファイルサーバー")
		fmt.Println()
		fmt.Println("使用方法:")
		fmt.Println("  server [オプション]")
		fmt.Println()
		fmt.Println("オプション:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	// 設定を読み込む
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// コマンドラインオプションで設定を上書き
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *dir != "" {
		cfg.Serve.Root = *dir
	}
	if *index != "" {
		cfg.Serve.Index = *index
	}
	if *noOpen {
		cfg.Serve.OpenBrowser = false
	}

	// 配信ディレクトリを決定する
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

	// エントリファイルの存在を確認する
	if err := webroot.CheckIndex(cfg.Serve.Root, cfg.Serve.Index); err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		os.Exit(1)
	}

	// サーバーを作成
	srv := server.New(cfg)

	// コンテキストを作成
	ctx := context.Background()

	// サーバーを起動
	log.Printf("Shiyu サーバーを起動します: %s", cfg.ServerAddress())
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
