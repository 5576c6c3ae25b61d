// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/lanehop/pkg/config"
	"github.com/decker502/lanehop/pkg/game"
	"github.com/decker502/lanehop/pkg/input"
	"github.com/decker502/lanehop/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// DefaultAppName gdata 存储使用的应用名
const DefaultAppName = "lanehop"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// LevelPath 指定关卡文件（磁盘路径或 data/ 下的嵌入路径），为空则使用上次的关卡或默认关卡
	LevelPath string
	// AppName gdata 存储目录名，为空时使用 DefaultAppName
	AppName string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	verbose                  bool
	controlsHint             string // 屏幕底部的操作提示
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	appName := cfg.AppName
	if appName == "" {
		appName = DefaultAppName
	}

	// 设置存储不可用时降级为内存设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}
	settingsManager := game.NewSettingsManager(gdataManager)

	a := &App{
		sceneManager:    game.NewSceneManager(),
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
		controlsHint:    "Up/Down: change lane  G: guides  R: reload  F11: fullscreen",
	}
	if input.IsMobile() {
		a.controlsHint = "Tap upper / lower half to change lane"
	}
	a.sceneManager.SetSceneFactory(a.newLaneScene)

	// 确定加载哪个关卡：命令行 > 上次关卡 > 默认关卡
	candidates := []string{cfg.LevelPath, settingsManager.GetSettings().LastLevel, config.DefaultLevelPath}
	loaded := false
	for _, levelPath := range candidates {
		if levelPath == "" {
			continue
		}
		if a.sceneManager.LoadLevel(levelPath) {
			loaded = true
			break
		}
		if levelPath == cfg.LevelPath {
			return nil, fmt.Errorf("failed to load level %s", levelPath)
		}
	}
	if !loaded {
		return nil, fmt.Errorf("no playable level found (default %s)", config.DefaultLevelPath)
	}

	settingsManager.SetLastLevel(a.sceneManager.CurrentLevel())
	if err := settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	log.Printf("[App] Starting level: %s", a.sceneManager.CurrentLevel())
	return a, nil
}

// newLaneScene 场景工厂：加载关卡并按关卡的按键配置创建键盘输入
func (a *App) newLaneScene(levelPath string) (game.Scene, error) {
	level, err := LoadLevel(levelPath)
	if err != nil {
		return nil, err
	}

	bindings, err := input.ParseBindings(level.Keys)
	if err != nil {
		return nil, fmt.Errorf("level %s keys: %w", levelPath, err)
	}

	// 键盘和触摸/鼠标同时生效
	intents := input.MultiSource{
		input.NewKeyboardSource(bindings),
		input.NewPointerSource(config.GameWindowHeight),
	}

	scene, err := scenes.NewLaneScene(level, intents)
	if err != nil {
		return nil, err
	}
	scene.SetShowLaneGuides(a.settingsManager.GetSettings().ShowLaneGuides)
	return scene, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// G 切换行参考线
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		a.toggleLaneGuides()
	}

	// R 重新加载当前关卡（编辑关卡文件后无需重启）
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if !a.sceneManager.Reload() {
			log.Printf("[App] Reload failed, keeping current scene")
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settingsManager.SetFullscreen(!a.settingsManager.GetSettings().Fullscreen)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

func (a *App) toggleLaneGuides() {
	show := !a.settingsManager.GetSettings().ShowLaneGuides
	a.settingsManager.SetShowLaneGuides(show)
	if scene, ok := a.sceneManager.GetCurrentScene().(*scenes.LaneScene); ok {
		scene.SetShowLaneGuides(show)
	}
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	log.Printf("[App] Lane guides: %v", show)
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
	ebitenutil.DebugPrintAt(screen, a.controlsHint, 10, config.GameWindowHeight-24)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
