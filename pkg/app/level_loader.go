package app

import (
	"fmt"
	"log"
	"os"

	"github.com/decker502/lanehop/pkg/config"
	"github.com/decker502/lanehop/pkg/embedded"
)

// LoadLevel 加载关卡配置
//
// 磁盘上存在该文件时优先读取磁盘（便于调试自定义关卡），
// 否则从嵌入的 data/ 目录读取。
func LoadLevel(path string) (*config.LevelConfig, error) {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		log.Printf("[App] Loading level from disk: %s", path)
		return config.LoadLevelConfig(path)
	}

	if !embedded.Exists(path) {
		return nil, fmt.Errorf("level %s not found on disk or in embedded data", path)
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded level %s: %w", path, err)
	}

	cfg, err := config.ParseLevelConfig(data, config.FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("[App] Loaded embedded level: %s", path)
	return cfg, nil
}
