package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPort はポート指定がない場合に使用するポート番号
const DefaultPort = 8000

// Config はアプリケーション全体の設定を保持する構造体
type Config struct {
	Server ServerConfig `toml:"server"`
	Serve  ServeConfig  `toml:"serve"`
}

// ServerConfig はHTTPサーバーの設定
type ServerConfig struct {
	Host string `toml:"host"` // リッスンするホスト（空文字は全インターフェース）
	Port int    `toml:"port"` // リッスンするポート番号

	// タイムアウト設定（設定ファイルからは変更不可）
	ReadTimeout  time.Duration `toml:"-"` // 読み込みタイムアウト
	WriteTimeout time.Duration `toml:"-"` // 書き込みタイムアウト
}

// ServeConfig は静的ファイル配信の設定
type ServeConfig struct {
	Root        string `toml:"root"`         // 配信ディレクトリ（空文字は実行ファイルのディレクトリ）
	Index       string `toml:"index"`        // 起動前に存在を確認するエントリファイル
	OpenBrowser bool   `toml:"open_browser"` // 起動時にブラウザを開くか
}

// Load は設定を読み込む
// デフォルト値をベースに環境変数で上書きする
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnvOrDefault("SERVER_HOST", ""),
			Port:         getEnvAsIntOrDefault("PORT", DefaultPort),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Serve: ServeConfig{
			Root:        getEnvOrDefault("SERVE_ROOT", ""),
			Index:       "index.html",
			OpenBrowser: os.Getenv("NO_OPEN") == "",
		},
	}

	// 設定の検証
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}

	return cfg, nil
}

// LoadFile はTOML形式の設定ファイルを読み込む
// デフォルト設定の上にファイルの内容を上書きする
func LoadFile(path string) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("設定ファイルの読み込みに失敗: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("設定ファイルの解析に失敗: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}

	return cfg, nil
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("無効なポート番号: %d", c.Server.Port)
	}

	if c.Serve.Index == "" {
		return fmt.Errorf("エントリファイル名が設定されていません")
	}

	return nil
}

// ParsePort はコマンドライン引数のポート番号を解析する
// 整数として解釈できない、または範囲外の場合はエラーを返す
func ParsePort(s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("無効なポート番号: %s", s)
	}

	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("ポート番号が範囲外です: %s", s)
	}

	return port, nil
}

// ServerAddress はサーバーのリッスンアドレスを返す
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// BrowserURL は起動時にブラウザで開くURLを返す
func (c *Config) BrowserURL() string {
	return fmt.Sprintf("http://localhost:%d", c.Server.Port)
}

// getEnvOrDefault は環境変数を取得し、設定されていない場合はデフォルト値を返す
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault は環境変数を整数として取得し、設定されていない場合はデフォルト値を返す
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var intVal int
		if _, err := fmt.Sscanf(value, "%d", &intVal); err == nil {
			return intVal
		}
	}
	return defaultValue
}
