package main

import (
	"flag"
	"log"

	"github.com/decker502/lanehop/pkg/app"
	"github.com/decker502/lanehop/pkg/config"
	"github.com/decker502/lanehop/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	levelPath := flag.String("level", "", "关卡文件路径（磁盘或 data/levels/ 下的嵌入关卡），默认使用上次的关卡")
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		LevelPath: *levelPath,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Lane Hop")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
