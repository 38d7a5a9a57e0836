package entities

import (
	"fmt"
	"math"

	"github.com/decker502/gyruss/pkg/components"
	"github.com/decker502/gyruss/pkg/config"
	"github.com/decker502/gyruss/pkg/ecs"
	"github.com/decker502/gyruss/pkg/utils"
)

// NewShip 创建玩家飞船实体
// 飞船位于固定半径的轨道上，初始为 Holding(+1) 状态（不移动，最后方向为逆时针）
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置
//   - phase: 初始相位（弧度）
//
// 返回:
//   - ecs.EntityID: 创建的飞船实体ID
//   - error: 如果创建失败返回错误信息
func NewShip(em *ecs.EntityManager, cfg *config.GameConfig, phase float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	cx, cy := cfg.World.CenterX, cfg.World.CenterY
	x, y := utils.OrbitPosition(cx, cy, cfg.Ship.Radius, phase)

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})

	// 飞船始终朝向轨道中心
	facing, _ := utils.DirectionAngle(cx-x, cy-y)
	ecs.AddComponent(em, entityID, &components.FacingComponent{
		Angle:       facing,
		TargetAngle: facing,
		TurnRate:    cfg.Ship.TurnRate,
	})

	ecs.AddComponent(em, entityID, &components.OrbitComponent{
		CenterX:      cx,
		CenterY:      cy,
		Radius:       cfg.Ship.Radius,
		AngularSpeed: math.Max(cfg.Ship.AngularSpeed, 0),
		Phase:        phase,
		Direction:    1,
	})

	ecs.AddComponent(em, entityID, &components.ShipComponent{
		Mode:         components.DirectionHolding,
		Direction:    1,
		MuzzleOffset: cfg.Ship.MuzzleOffset,
	})

	ecs.AddComponent(em, entityID, &components.BehaviorComponent{Type: components.BehaviorShip})

	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  cfg.Ship.CollisionSize,
		Height: cfg.Ship.CollisionSize,
	})

	return entityID, nil
}
