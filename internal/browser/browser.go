// Package browser 既定のウェブブラウザの起動を担う
package browser

import "github.com/pkg/browser"

// Open は既定のブラウザで指定したURLを開く
// 起動できない環境（ヘッドレス等）ではエラーを返すだけで、サーバーの動作には影響しない
func Open(url string) error {
	return browser.OpenURL(url)
}
