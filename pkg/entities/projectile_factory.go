package entities

import (
	"fmt"
	"math"

	"github.com/decker502/gyruss/pkg/components"
	"github.com/decker502/gyruss/pkg/config"
	"github.com/decker502/gyruss/pkg/ecs"
	"github.com/decker502/gyruss/pkg/utils"
)

// NewProjectile 创建子弹实体
// 子弹从 (startX, startY) 出发，以恒定速度直线飞向轨道中心，到达后由 ProjectileSystem 移除
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置
//   - startX: 起始世界坐标X
//   - startY: 起始世界坐标Y
//
// 返回:
//   - ecs.EntityID: 创建的子弹实体ID
//   - error: 如果创建失败返回错误信息
func NewProjectile(em *ecs.EntityManager, cfg *config.GameConfig, startX, startY float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	targetX, targetY := cfg.World.CenterX, cfg.World.CenterY

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: startX, Y: startY})

	facing, _ := utils.DirectionAngle(targetX-startX, targetY-startY)
	ecs.AddComponent(em, entityID, &components.FacingComponent{
		Angle:       facing,
		TargetAngle: facing,
	})

	ecs.AddComponent(em, entityID, &components.ProjectileComponent{
		TargetX: targetX,
		TargetY: targetY,
		Speed:   math.Max(cfg.Projectile.Speed, 0),
		Arrived: startX == targetX && startY == targetY,
	})

	ecs.AddComponent(em, entityID, &components.BehaviorComponent{Type: components.BehaviorProjectile})

	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  cfg.Projectile.CollisionSize,
		Height: cfg.Projectile.CollisionSize,
	})

	return entityID, nil
}

// setFacing 覆盖实体的初始朝向
// 飞船和敌人的朝向会在下一个物理步长重新向目标方向逼近
func setFacing(em *ecs.EntityManager, id ecs.EntityID, rotation float64) {
	facing, ok := ecs.GetComponent[*components.FacingComponent](em, id)
	if !ok {
		return
	}
	facing.Angle = utils.NormalizeAngle(rotation)
}
