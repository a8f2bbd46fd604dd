package webroot

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolve は実行ファイルが置かれたディレクトリを返す
func Resolve() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("実行ファイルパスの取得に失敗: %w", err)
	}

	dir, err := filepath.Abs(filepath.Dir(exe))
	if err != nil {
		return "", fmt.Errorf("ディレクトリの解決に失敗: %w", err)
	}

	return dir, nil
}

// Chdir は作業ディレクトリを配信ディレクトリへ変更する
func Chdir(dir string) error {
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("作業ディレクトリの変更に失敗: %w", err)
	}
	return nil
}

// CheckIndex は配信ディレクトリにエントリファイルが存在することを確認する
// 存在しない場合は起動の前提条件違反としてエラーを返す
func CheckIndex(dir, index string) error {
	path := filepath.Join(dir, index)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s が見つかりません（配信ディレクトリ: %s）", index, dir)
		}
		return fmt.Errorf("%s の確認に失敗: %w", index, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%s はファイルではありません（配信ディレクトリ: %s）", index, dir)
	}

	return nil
}
