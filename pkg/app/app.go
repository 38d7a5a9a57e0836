// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，main.go 只负责解析命令行参数。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/gyruss/pkg/config"
	"github.com/decker502/gyruss/pkg/embedded"
	"github.com/decker502/gyruss/pkg/game"
	"github.com/decker502/gyruss/pkg/scenes"
)

// DefaultConfigPath 嵌入的默认配置文件
const DefaultConfigPath = "data/gyruss.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部 YAML 配置文件路径，为空则使用嵌入的默认配置
	ConfigPath string
	// TPS 覆盖配置中的每秒逻辑帧数（<= 0 表示不覆盖）
	TPS int
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	gameConfig               *config.GameConfig
	sceneManager             *scenes.SceneManager
	ledger                   *game.ScoreLedger
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := LoadConfig(cfg)
	if err != nil {
		return nil, err
	}

	ledger := game.NewScoreLedger()
	input := scenes.NewKeyboardInput()

	sceneManager := scenes.NewSceneManager()
	sceneManager.SetSceneFactory(func() (scenes.Scene, error) {
		scene, err := scenes.NewGameScene(gameConfig, input, ledger)
		if err != nil {
			return nil, err
		}
		scene.Session().SetVerbose(cfg.Verbose)
		return scene, nil
	})

	gameScene, err := scenes.NewGameScene(gameConfig, input, ledger)
	if err != nil {
		return nil, fmt.Errorf("游戏场景创建失败: %w", err)
	}
	gameScene.Session().SetVerbose(cfg.Verbose)
	sceneManager.SwitchTo(gameScene)

	log.Printf("[App] Started: %dx%d @ %d TPS", gameConfig.Window.Width, gameConfig.Window.Height, gameConfig.Window.TPS)
	return &App{
		gameConfig:   gameConfig,
		sceneManager: sceneManager,
		ledger:       ledger,
		verbose:      cfg.Verbose,
	}, nil
}

// LoadConfig 按启动配置加载游戏配置
//
// 优先级：ConfigPath 指定的文件 > 嵌入的 data/gyruss.yaml > 内置默认值
func LoadConfig(cfg Config) (*config.GameConfig, error) {
	var (
		gameConfig *config.GameConfig
		err        error
	)

	switch {
	case cfg.ConfigPath != "":
		gameConfig, err = config.LoadGameConfig(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("配置加载失败: %w", err)
		}
		log.Printf("[Config] 加载配置文件: %s", cfg.ConfigPath)
	case embedded.IsInitialized() && embedded.Exists(DefaultConfigPath):
		data, err := embedded.ReadFile(DefaultConfigPath)
		if err != nil {
			return nil, fmt.Errorf("嵌入配置读取失败: %w", err)
		}
		if gameConfig, err = config.ParseGameConfig(data); err != nil {
			return nil, fmt.Errorf("嵌入配置解析失败: %w", err)
		}
		log.Printf("[Config] 加载嵌入配置: %s", DefaultConfigPath)
	default:
		gameConfig = config.DefaultGameConfig()
		log.Printf("[Config] 使用内置默认配置")
	}

	if cfg.TPS > 0 {
		gameConfig.Window.TPS = cfg.TPS
	}
	return gameConfig, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.gameConfig.Window.Width, a.gameConfig.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.gameConfig.Window.Width, a.gameConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// R 重开一局
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.sceneManager.Restart()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧填充黑色
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
	return a.gameConfig.Window.Width, a.gameConfig.Window.Height
}

// GameConfig 返回生效的游戏配置
func (a *App) GameConfig() *config.GameConfig {
	return a.gameConfig
}

// Ledger 返回记分账本
func (a *App) Ledger() *game.ScoreLedger {
	return a.ledger
}

// Close 关闭当前场景（程序退出时调用）
func (a *App) Close() {
	a.sceneManager.Close()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
