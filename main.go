package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/gyruss/pkg/app"
	"github.com/decker502/gyruss/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "外部 YAML 配置文件（默认使用嵌入的 data/gyruss.yaml）")
	tps        = flag.Int("tps", 0, "每秒逻辑帧数（0 表示使用配置值）")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		TPS:        *tps,
	})
	if err != nil {
		// NewApp 在非 verbose 模式下会关闭日志输出
		fmt.Fprintf(os.Stderr, "启动失败: %v\n", err)
		os.Exit(1)
	}

	window := game.GameConfig().Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(window.TPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Printf("[Main] RunGame: %v", err)
		fmt.Fprintf(os.Stderr, "运行错误: %v\n", err)
	}
	game.Close()
}
