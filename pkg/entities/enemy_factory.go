package entities

import (
	"fmt"
	"math"

	"github.com/decker502/gyruss/pkg/components"
	"github.com/decker502/gyruss/pkg/config"
	"github.com/decker502/gyruss/pkg/ecs"
	"github.com/decker502/gyruss/pkg/game"
	"github.com/decker502/gyruss/pkg/utils"
)

// NewEnemy 创建敌人实体
// 敌人沿固定方向绕中心运动，半径在每个物理步长内增长，直到达到最大半径
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置
//   - radius: 初始半径（必须大于0，避免原点处朝向无定义）
//   - phase: 初始相位（弧度）
//
// 返回:
//   - ecs.EntityID: 创建的敌人实体ID
//   - error: 如果创建失败返回错误信息
func NewEnemy(em *ecs.EntityManager, cfg *config.GameConfig, radius, phase float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}
	if radius <= 0 {
		return 0, fmt.Errorf("enemy radius must be positive, got %g", radius)
	}
	radius = utils.ClampFloat(radius, 0, cfg.Enemy.MaxRadius)

	cx, cy := cfg.World.CenterX, cfg.World.CenterY
	x, y := utils.OrbitPosition(cx, cy, radius, phase)

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})

	// 朝向沿速度方向
	vx, vy := utils.OrbitVelocity(radius, cfg.Enemy.AngularSpeed, cfg.Enemy.Direction, phase)
	facing, _ := utils.DirectionAngle(vx, vy)
	ecs.AddComponent(em, entityID, &components.FacingComponent{
		Angle:       facing,
		TargetAngle: facing,
		TurnRate:    cfg.Enemy.TurnRate,
	})

	ecs.AddComponent(em, entityID, &components.OrbitComponent{
		CenterX:      cx,
		CenterY:      cy,
		Radius:       radius,
		AngularSpeed: math.Max(cfg.Enemy.AngularSpeed, 0),
		Phase:        phase,
		Direction:    cfg.Enemy.Direction,
	})

	tier, points := game.ScoreTierFor(radius, cfg.Score)
	ecs.AddComponent(em, entityID, &components.EnemyComponent{
		SpawnRadius:   radius,
		MaxRadius:     cfg.Enemy.MaxRadius,
		GrowthPerStep: cfg.Enemy.GrowthPerStep,
		Tier:          tier,
		ScoreValue:    points,
	})

	ecs.AddComponent(em, entityID, &components.BehaviorComponent{Type: components.BehaviorEnemy})

	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  cfg.Enemy.CollisionSize,
		Height: cfg.Enemy.CollisionSize,
	})

	return entityID, nil
}
