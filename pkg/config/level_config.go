package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// 默认车道参数
const (
	DefaultStartingRow = 2
	DefaultLaneSpeed   = 15.0
)

// 移动器类型
const (
	// MoverBody 物理体：车道 Y 直接写入，速度移动由物理系统扫掠
	MoverBody = "body"
	// MoverTransform 直接写入位置，不做碰撞
	MoverTransform = "transform"
)

// 配置文件格式
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// DefaultLevelPath 内嵌默认关卡路径
const DefaultLevelPath = "data/levels/default.yaml"

// LevelConfig 关卡配置
//
// 配置文件位置: data/levels/*.yaml（或同结构的 .toml）
type LevelConfig struct {
	Name   string       `yaml:"name" toml:"name"`
	Lanes  LaneConfig   `yaml:"lanes" toml:"lanes"`
	Player PlayerConfig `yaml:"player" toml:"player"`
	Props  []PropConfig `yaml:"props" toml:"props"`

	// Keys 动作到按键名的映射，如 move_up: [ArrowUp, W]
	// 为空时使用默认按键
	Keys map[string][]string `yaml:"keys" toml:"keys"`
}

// LaneConfig 行网格与移动参数
type LaneConfig struct {
	// Rows 每行的世界Y坐标（索引即行号），未配置时为 {2, 1, 0, -1, -2}
	Rows []float64 `yaml:"rows" toml:"rows"`

	// StartingRow 起始行，未配置时为 2；越界值在初始化时被钳制
	StartingRow *int `yaml:"startingRow" toml:"startingRow"`

	// Speed 插值速率（1/秒），未配置时为 15
	Speed float64 `yaml:"speed" toml:"speed"`
}

// PlayerConfig 玩家实体配置
type PlayerConfig struct {
	X      float64 `yaml:"x" toml:"x"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Mover  string  `yaml:"mover" toml:"mover"` // "body" 或 "transform"
	Color  string  `yaml:"color" toml:"color"` // "#rrggbb"
}

// PropConfig 静态道具配置
//
// 道具在场景第一帧被对齐：配置了 Row 时对齐到该行（越界钳制），
// 否则对齐到距离 Y 最近的行。
type PropConfig struct {
	X      float64 `yaml:"x" toml:"x"`
	Y      float64 `yaml:"y" toml:"y"`
	Row    *int    `yaml:"row" toml:"row"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Solid  bool    `yaml:"solid" toml:"solid"`
	Color  string  `yaml:"color" toml:"color"`
}

// DefaultLevelConfig 返回全部使用默认值的关卡配置
func DefaultLevelConfig() *LevelConfig {
	cfg := &LevelConfig{}
	applyDefaults(cfg)
	return cfg
}

// LoadLevelConfig 从文件加载关卡配置
//
// 根据扩展名选择格式：.toml 使用 TOML，其余按 YAML 解析。
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *LevelConfig: 应用默认值并通过验证的配置
//   - error: 读取、解析或验证失败
func LoadLevelConfig(path string) (*LevelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", path, err)
	}

	cfg, err := ParseLevelConfig(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// FormatForPath 根据文件扩展名判断配置格式
func FormatForPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// ParseLevelConfig 解析关卡配置数据
//
// 参数:
//   - data: 文件内容
//   - format: FormatYAML 或 FormatTOML
func ParseLevelConfig(data []byte, format string) (*LevelConfig, error) {
	var cfg LevelConfig

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse level config YAML: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse level config TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported level config format %q", format)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level config: %w", err)
	}
	return &cfg, nil
}

// applyDefaults 为缺失的可选字段设置默认值
//
// 注意：rows 显式写成空列表不会被补默认值，而是在 Validate 中报错。
func applyDefaults(cfg *LevelConfig) {
	if cfg.Name == "" {
		cfg.Name = "default"
	}

	if cfg.Lanes.Rows == nil {
		cfg.Lanes.Rows = []float64{2.0, 1.0, 0.0, -1.0, -2.0}
	}
	if cfg.Lanes.StartingRow == nil {
		start := DefaultStartingRow
		cfg.Lanes.StartingRow = &start
	}
	if cfg.Lanes.Speed == 0 {
		cfg.Lanes.Speed = DefaultLaneSpeed
	}

	if cfg.Player.Mover == "" {
		cfg.Player.Mover = MoverBody
	}
	if cfg.Player.Width == 0 {
		cfg.Player.Width = 0.6
	}
	if cfg.Player.Height == 0 {
		cfg.Player.Height = 0.6
	}
	if cfg.Player.Color == "" {
		cfg.Player.Color = "#3c8cdc"
	}

	for i := range cfg.Props {
		if cfg.Props[i].Width == 0 {
			cfg.Props[i].Width = 0.8
		}
		if cfg.Props[i].Height == 0 {
			cfg.Props[i].Height = 0.8
		}
		if cfg.Props[i].Color == "" {
			cfg.Props[i].Color = "#8c6440"
		}
	}
}

// Validate 验证关卡配置
//
// 检查：
//   - 至少一行（空行网格是配置错误）
//   - 插值速率为正
//   - 移动器类型合法
//   - 尺寸为正、颜色可解析
func (c *LevelConfig) Validate() error {
	if len(c.Lanes.Rows) == 0 {
		return fmt.Errorf("lanes.rows must contain at least one row")
	}
	if c.Lanes.Speed <= 0 {
		return fmt.Errorf("lanes.speed must be positive, got %.2f", c.Lanes.Speed)
	}

	switch c.Player.Mover {
	case MoverBody, MoverTransform:
	default:
		return fmt.Errorf("player.mover must be %q or %q, got %q", MoverBody, MoverTransform, c.Player.Mover)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("player size must be positive, got %.2fx%.2f", c.Player.Width, c.Player.Height)
	}
	if _, err := ParseColor(c.Player.Color); err != nil {
		return fmt.Errorf("player.color: %w", err)
	}

	for i, prop := range c.Props {
		if prop.Width <= 0 || prop.Height <= 0 {
			return fmt.Errorf("prop %d: size must be positive, got %.2fx%.2f", i, prop.Width, prop.Height)
		}
		if _, err := ParseColor(prop.Color); err != nil {
			return fmt.Errorf("prop %d color: %w", i, err)
		}
	}

	for action, keys := range c.Keys {
		if len(keys) == 0 {
			return fmt.Errorf("keys.%s: at least one key is required", action)
		}
	}

	return nil
}

// StartRow 返回起始行（未配置时为默认值）
func (l LaneConfig) StartRow() int {
	if l.StartingRow == nil {
		return DefaultStartingRow
	}
	return *l.StartingRow
}

// ParseColor 解析 "#rrggbb" 或 "#rrggbbaa" 颜色
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q, want #rrggbb", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
