package server

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// noCache はすべてのレスポンスにキャッシュ無効化ヘッダーを付与するミドルウェア
// ハンドラが書き込みを行う前にヘッダーを設定する
func (s *Server) noCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")

		c.Next()
	}
}

// requestLog はアクセスログを出力するミドルウェア
func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Printf("%s %s %d %s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
