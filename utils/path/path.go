package path

import (
	"os"
	"path/filepath"
	"runtime"
)

// RootPath 傳回專案根目錄的絕對路徑，
// 設定檔搜尋路徑以此為基準。
func RootPath() string {
	// 透過 runtime.Caller(0) 回推到此檔案，再往上兩層：utils/path/path.go → 專案根
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		panic("無法取得 caller 位置")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
}

// Exists 路徑是否存在
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
