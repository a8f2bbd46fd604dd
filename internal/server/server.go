package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shiyu/internal/browser"
	"shiyu/internal/config"

	"github.com/gin-gonic/gin"
)

// Server は開発用静的ファイルサーバーを管理する構造体
type Server struct {
	config     *config.Config
	httpServer *http.Server
	engine     *gin.Engine
	startedAt  time.Time

	// openFn はブラウザ起動処理（テストで差し替え可能）
	openFn func(url string) error
}

// New は新しいServerインスタンスを作成する
func New(cfg *config.Config) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	return &Server{
		config: cfg,
		engine: engine,
		httpServer: &http.Server{
			Addr:         cfg.ServerAddress(),
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		openFn: browser.Open,
	}
}

// setupRoutes はミドルウェアとHTTPルートを設定する
func (s *Server) setupRoutes() {
	s.engine.Use(gin.Recovery())
	s.engine.Use(s.requestLog())
	s.engine.Use(s.noCache())

	// ヘルスチェックエンドポイント
	s.engine.GET("/health", s.handleHealth)

	// ステータス確認エンドポイント
	s.engine.GET("/api/status", s.handleStatus)

	// 上記以外のパスはすべて配信ディレクトリの静的ファイルとして扱う
	fileServer := http.FileServer(http.Dir(s.config.Serve.Root))
	s.engine.NoRoute(func(c *gin.Context) {
		fileServer.ServeHTTP(c.Writer, c.Request)
	})
}

// Start はサーバーを起動する
// シグナル受信またはコンテキストのキャンセルまでブロックする
func (s *Server) Start(ctx context.Context) error {
	// ルートを設定
	s.setupRoutes()
	s.startedAt = time.Now()

	// リスナーを先に確保する（ポート使用中はここで致命的エラーになる）
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("リスナーの作成に失敗: %w", err)
	}

	// シャットダウン用のチャンネル
	shutdownCh := make(chan error, 1)

	// サーバーを別ゴルーチンで起動
	go func() {
		log.Printf("HTTPサーバーを起動しています: %s", listener.Addr())
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			shutdownCh <- fmt.Errorf("サーバーの起動に失敗: %w", err)
		}
	}()

	log.Printf("配信ディレクトリ: %s", s.config.Serve.Root)
	log.Printf("ブラウザで %s を開いてください", s.config.BrowserURL())
	log.Println("Ctrl+C でサーバーを停止します")

	// リスナー確保後にブラウザを開く
	if s.config.Serve.OpenBrowser {
		if err := s.openFn(s.config.BrowserURL()); err != nil {
			log.Printf("ブラウザの起動に失敗しました: %v", err)
		}
	}

	// シグナルハンドリング
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	// コンテキストかシグナルを待つ
	select {
	case <-ctx.Done():
		log.Println("コンテキストがキャンセルされました")
	case sig := <-sigCh:
		log.Printf("シグナルを受信しました: %v", sig)
	case err := <-shutdownCh:
		return err
	}

	// グレースフルシャットダウン
	return s.Shutdown()
}

// Shutdown はサーバーをグレースフルにシャットダウンする
func (s *Server) Shutdown() error {
	log.Println("サーバーをシャットダウンしています...")

	// 5秒のタイムアウトを設定
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("サーバーのシャットダウンに失敗: %w", err)
	}

	log.Println("サーバーを停止しました")
	return nil
}
