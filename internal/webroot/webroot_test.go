package webroot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestResolve は実行ファイルディレクトリの解決をテストする
func TestResolve(t *testing.T) {
	dir, err := Resolve()
	if err != nil {
		t.Fatalf("ディレクトリの解決に失敗しました: %v", err)
	}

	if dir == "" {
		t.Fatal("ディレクトリが空です")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("絶対パスではありません: %s", dir)
	}
}

// TestChdir は作業ディレクトリの変更をテストする
func TestChdir(t *testing.T) {
	// テスト後に元のディレクトリへ戻す
	original, err := os.Getwd()
	if err != nil {
		t.Fatalf("現在のディレクトリの取得に失敗しました: %v", err)
	}
	defer func() {
		_ = os.Chdir(original)
	}()

	dir := t.TempDir()
	if err := Chdir(dir); err != nil {
		t.Fatalf("ディレクトリの変更に失敗しました: %v", err)
	}

	// シンボリックリンクを解決して比較する
	current, err := os.Getwd()
	if err != nil {
		t.Fatalf("現在のディレクトリの取得に失敗しました: %v", err)
	}
	wantDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatalf("パスの解決に失敗しました: %v", err)
	}
	gotDir, err := filepath.EvalSymlinks(current)
	if err != nil {
		t.Fatalf("パスの解決に失敗しました: %v", err)
	}

	if gotDir != wantDir {
		t.Errorf("作業ディレクトリが一致しません: got %s, want %s", gotDir, wantDir)
	}
}

// TestChdirMissing は存在しないディレクトリへの変更をテストする
func TestChdirMissing(t *testing.T) {
	err := Chdir(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Error("エラーが期待されましたが、エラーが発生しませんでした")
	}
}

// TestCheckIndex はエントリファイルの存在確認をテストする
func TestCheckIndex(t *testing.T) {
	t.Run("エントリファイルあり", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "index.html")
		if err := os.WriteFile(path, []byte("<html></html>"), 0o644); err != nil {
			t.Fatalf("テストファイルの作成に失敗しました: %v", err)
		}

		if err := CheckIndex(dir, "index.html"); err != nil {
			t.Errorf("予期しないエラーが発生しました: %v", err)
		}
	})

	t.Run("エントリファイルなし", func(t *testing.T) {
		dir := t.TempDir()

		err := CheckIndex(dir, "index.html")
		if err == nil {
			t.Fatal("エラーが期待されましたが、エラーが発生しませんでした")
		}

		// 診断メッセージにファイル名とディレクトリが含まれること
		if !strings.Contains(err.Error(), "index.html") {
			t.Errorf("エラーメッセージにファイル名が含まれていません: %v", err)
		}
		if !strings.Contains(err.Error(), dir) {
			t.Errorf("エラーメッセージにディレクトリが含まれていません: %v", err)
		}
	})

	t.Run("エントリファイルがディレクトリ", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.Mkdir(filepath.Join(dir, "index.html"), 0o755); err != nil {
			t.Fatalf("テストディレクトリの作成に失敗しました: %v", err)
		}

		if err := CheckIndex(dir, "index.html"); err == nil {
			t.Error("エラーが期待されましたが、エラーが発生しませんでした")
		}
	})
}
