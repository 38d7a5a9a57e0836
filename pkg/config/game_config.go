package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig 游戏可调参数
// 在构造会话时一次性注入，运行期间不修改
//
// 坐标约定：世界坐标单位为"格"（unit），Y 轴向上，轨道中心默认为原点。
// 渲染时通过 World.PixelsPerUnit 转换为屏幕像素（见 utils.WorldToScreen）。
type GameConfig struct {
	Window     WindowConfig     `yaml:"window"`     // 窗口配置
	World      WorldConfig      `yaml:"world"`      // 世界/轨道中心配置
	Physics    PhysicsConfig    `yaml:"physics"`    // 固定步长物理配置
	Ship       ShipConfig       `yaml:"ship"`       // 飞船配置
	Enemy      EnemyConfig      `yaml:"enemy"`      // 敌人配置
	Projectile ProjectileConfig `yaml:"projectile"` // 子弹配置
	Score      ScoreConfig      `yaml:"score"`      // 计分配置
	Waves      WavesConfig      `yaml:"waves"`      // 波次配置
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`  // 逻辑宽度（像素）
	Height int    `yaml:"height"` // 逻辑高度（像素）
	Title  string `yaml:"title"`  // 窗口标题
	TPS    int    `yaml:"tps"`    // 每秒逻辑帧数
}

// WorldConfig 世界配置
type WorldConfig struct {
	CenterX       float64 `yaml:"centerX"`       // 轨道中心X（世界坐标）
	CenterY       float64 `yaml:"centerY"`       // 轨道中心Y（世界坐标）
	PixelsPerUnit float64 `yaml:"pixelsPerUnit"` // 每个世界单位对应的像素数
}

// PhysicsConfig 物理步长配置
type PhysicsConfig struct {
	FixedDelta       float64 `yaml:"fixedDelta"`       // 固定物理步长（秒）
	MaxStepsPerFrame int     `yaml:"maxStepsPerFrame"` // 单帧最多执行的物理步数（防止卡顿后追帧雪崩）
}

// ShipConfig 飞船配置
type ShipConfig struct {
	Radius        float64 `yaml:"radius"`        // 轨道半径
	AngularSpeed  float64 `yaml:"angularSpeed"`  // 角速度（弧度/秒）
	StartPhase    float64 `yaml:"startPhase"`    // 初始相位（弧度），默认 1.5π 即屏幕正下方
	TurnRate      float64 `yaml:"turnRate"`      // 朝向最大转速（度/秒）
	MuzzleOffset  float64 `yaml:"muzzleOffset"`  // 炮口相对飞船中心、指向轨道中心的偏移距离
	CollisionSize float64 `yaml:"collisionSize"` // 碰撞盒边长
}

// EnemyConfig 敌人配置
type EnemyConfig struct {
	InitialRadius float64 `yaml:"initialRadius"` // 生成时的轨道半径（必须大于0，避免原点奇点）
	MaxRadius     float64 `yaml:"maxRadius"`     // 最大轨道半径
	GrowthPerStep float64 `yaml:"growthPerStep"` // 每个物理步长的半径增量
	AngularSpeed  float64 `yaml:"angularSpeed"`  // 角速度（弧度/秒）
	Direction     int     `yaml:"direction"`     // 旋转方向：1 逆时针，-1 顺时针
	TurnRate      float64 `yaml:"turnRate"`      // 朝向最大转速（度/秒）
	CollisionSize float64 `yaml:"collisionSize"` // 碰撞盒边长
}

// ProjectileConfig 子弹配置
type ProjectileConfig struct {
	Speed         float64 `yaml:"speed"`         // 飞行速度（单位/秒）
	CollisionSize float64 `yaml:"collisionSize"` // 碰撞盒边长
}

// ScoreConfig 计分配置
// 半径 r <= NearRadius 为高分档，NearRadius < r <= FarRadius 为中分档，其余为低分档
type ScoreConfig struct {
	NearRadius float64 `yaml:"nearRadius"`
	FarRadius  float64 `yaml:"farRadius"`
	HighPoints int     `yaml:"highPoints"`
	MidPoints  int     `yaml:"midPoints"`
	LowPoints  int     `yaml:"lowPoints"`
}

// WavesConfig 波次配置
type WavesConfig struct {
	Count          int     `yaml:"count"`          // 总波数
	EnemiesPerWave int     `yaml:"enemiesPerWave"` // 每波敌人数
	InitialDelay   float64 `yaml:"initialDelay"`   // 首波前等待时间（秒）
	Interval       float64 `yaml:"interval"`       // 波与波之间的冷却时间（秒）
	SpawnInterval  float64 `yaml:"spawnInterval"`  // 同一波内相邻敌人的生成间隔（秒）
}

// DefaultGameConfig 返回默认配置（与 data/gyruss.yaml 保持一致）
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Width:  GameWindowWidth,
			Height: GameWindowHeight,
			Title:  "Gyruss",
			TPS:    60,
		},
		World: WorldConfig{
			CenterX:       0,
			CenterY:       0,
			PixelsPerUnit: DefaultPixelsPerUnit,
		},
		Physics: PhysicsConfig{
			FixedDelta:       0.02,
			MaxStepsPerFrame: 5,
		},
		Ship: ShipConfig{
			Radius:        4.0,
			AngularSpeed:  4.5,
			StartPhase:    1.5 * math.Pi,
			TurnRate:      700,
			MuzzleOffset:  0.5,
			CollisionSize: 0.5,
		},
		Enemy: EnemyConfig{
			InitialRadius: 0.05,
			MaxRadius:     3.7,
			GrowthPerStep: 0.005,
			AngularSpeed:  2.0,
			Direction:     1,
			TurnRate:      25000,
			CollisionSize: 0.4,
		},
		Projectile: ProjectileConfig{
			Speed:         6.0,
			CollisionSize: 0.15,
		},
		Score: ScoreConfig{
			NearRadius: 1.5,
			FarRadius:  2.5,
			HighPoints: 10,
			MidPoints:  5,
			LowPoints:  1,
		},
		Waves: WavesConfig{
			Count:          10,
			EnemiesPerWave: 5,
			InitialDelay:   2.0,
			Interval:       5.0,
			SpawnInterval:  0.2,
		},
	}
}

// LoadGameConfig 从YAML文件加载游戏配置
// 文件中未出现的字段保留默认值
func LoadGameConfig(filePath string) (*GameConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", filePath, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return cfg, nil
}

// ParseGameConfig 解析YAML数据为游戏配置
// 空数据返回默认配置
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	if err := validateGameConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置的合法性
func (c *GameConfig) Validate() error {
	return validateGameConfig(c)
}

// validateGameConfig 验证配置的合法性
//
// 退化配置（0 波、0 或负速度）是合法的"什么都不做"配置，负速度按 0 处理；
// 相互矛盾或违反不变量的配置（负半径、near >= far）被拒绝。
func validateGameConfig(cfg *GameConfig) error {
	// 窗口
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.TPS <= 0 {
		return fmt.Errorf("window.tps must be > 0, got %d", cfg.Window.TPS)
	}

	// 世界与物理
	if cfg.World.PixelsPerUnit <= 0 {
		return fmt.Errorf("world.pixelsPerUnit must be > 0, got %g", cfg.World.PixelsPerUnit)
	}
	if cfg.Physics.FixedDelta <= 0 {
		return fmt.Errorf("physics.fixedDelta must be > 0, got %g", cfg.Physics.FixedDelta)
	}
	if cfg.Physics.MaxStepsPerFrame < 1 {
		return fmt.Errorf("physics.maxStepsPerFrame must be >= 1, got %d", cfg.Physics.MaxStepsPerFrame)
	}

	// 飞船
	if cfg.Ship.Radius <= 0 {
		return fmt.Errorf("ship.radius must be > 0, got %g", cfg.Ship.Radius)
	}
	if cfg.Ship.TurnRate < 0 {
		return fmt.Errorf("ship.turnRate cannot be negative, got %g", cfg.Ship.TurnRate)
	}
	if cfg.Ship.MuzzleOffset < 0 || cfg.Ship.MuzzleOffset > cfg.Ship.Radius {
		return fmt.Errorf("ship.muzzleOffset must be within [0, radius], got %g", cfg.Ship.MuzzleOffset)
	}
	if cfg.Ship.CollisionSize <= 0 {
		return fmt.Errorf("ship.collisionSize must be > 0, got %g", cfg.Ship.CollisionSize)
	}

	// 敌人
	if cfg.Enemy.InitialRadius <= 0 {
		return fmt.Errorf("enemy.initialRadius must be > 0, got %g", cfg.Enemy.InitialRadius)
	}
	if cfg.Enemy.MaxRadius < cfg.Enemy.InitialRadius {
		return fmt.Errorf("enemy.maxRadius (%g) must be >= initialRadius (%g)", cfg.Enemy.MaxRadius, cfg.Enemy.InitialRadius)
	}
	if cfg.Enemy.GrowthPerStep < 0 {
		return fmt.Errorf("enemy.growthPerStep cannot be negative, got %g", cfg.Enemy.GrowthPerStep)
	}
	if cfg.Enemy.Direction != 1 && cfg.Enemy.Direction != -1 {
		return fmt.Errorf("enemy.direction must be 1 or -1, got %d", cfg.Enemy.Direction)
	}
	if cfg.Enemy.TurnRate < 0 {
		return fmt.Errorf("enemy.turnRate cannot be negative, got %g", cfg.Enemy.TurnRate)
	}
	if cfg.Enemy.CollisionSize <= 0 {
		return fmt.Errorf("enemy.collisionSize must be > 0, got %g", cfg.Enemy.CollisionSize)
	}

	// 子弹
	if cfg.Projectile.CollisionSize <= 0 {
		return fmt.Errorf("projectile.collisionSize must be > 0, got %g", cfg.Projectile.CollisionSize)
	}

	// 计分
	if cfg.Score.NearRadius < 0 {
		return fmt.Errorf("score.nearRadius cannot be negative, got %g", cfg.Score.NearRadius)
	}
	if cfg.Score.NearRadius >= cfg.Score.FarRadius {
		return fmt.Errorf("score.nearRadius (%g) must be < farRadius (%g)", cfg.Score.NearRadius, cfg.Score.FarRadius)
	}
	if cfg.Score.HighPoints < 0 || cfg.Score.MidPoints < 0 || cfg.Score.LowPoints < 0 {
		return fmt.Errorf("score points cannot be negative")
	}

	// 波次
	if cfg.Waves.Count < 0 {
		return fmt.Errorf("waves.count cannot be negative, got %d", cfg.Waves.Count)
	}
	if cfg.Waves.EnemiesPerWave < 0 {
		return fmt.Errorf("waves.enemiesPerWave cannot be negative, got %d", cfg.Waves.EnemiesPerWave)
	}
	if cfg.Waves.InitialDelay < 0 || cfg.Waves.Interval < 0 || cfg.Waves.SpawnInterval < 0 {
		return fmt.Errorf("wave timings cannot be negative")
	}

	return nil
}
