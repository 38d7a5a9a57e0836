package systems

import (
	"fmt"
	"math"

	"github.com/decker502/gyruss/pkg/components"
	"github.com/decker502/gyruss/pkg/ecs"
	"github.com/decker502/gyruss/pkg/entities"
	"github.com/decker502/gyruss/pkg/utils"
)

// ArrivalEpsilon 子弹与目标距离小于该值即视为到达
const ArrivalEpsilon = 1e-6

// ProjectileSystem 子弹系统
//
//   - 物理帧：以恒定速度直线飞向目标，单步位移被钳制，永不越过目标
//   - 逻辑帧：移除已到达目标的子弹（无论是否命中过敌人）
type ProjectileSystem struct {
	entityManager *ecs.EntityManager
	factory       entities.Factory

	expired int
}

// NewProjectileSystem 创建子弹系统
func NewProjectileSystem(em *ecs.EntityManager, factory entities.Factory) (*ProjectileSystem, error) {
	if em == nil {
		return nil, fmt.Errorf("%w: entity manager", ErrMissingCollaborator)
	}
	if factory == nil {
		return nil, fmt.Errorf("%w: entity factory", ErrMissingCollaborator)
	}
	return &ProjectileSystem{
		entityManager: em,
		factory:       factory,
	}, nil
}

// FixedUpdate 物理帧：移动子弹
func (s *ProjectileSystem) FixedUpdate(dt float64) {
	ids := ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		if s.entityManager.IsMarkedForDestruction(id) {
			continue
		}
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if proj.Arrived || proj.Spent {
			continue
		}

		before := math.Hypot(proj.TargetX-pos.X, proj.TargetY-pos.Y)
		pos.X, pos.Y = utils.MoveTowards(pos.X, pos.Y, proj.TargetX, proj.TargetY, proj.Speed*dt)
		after := math.Hypot(proj.TargetX-pos.X, proj.TargetY-pos.Y)
		utils.Invariant(after <= before+ArrivalEpsilon, "projectile %d moved away from target: %g -> %g", id, before, after)

		if after <= ArrivalEpsilon {
			pos.X, pos.Y = proj.TargetX, proj.TargetY
			proj.Arrived = true
		}
	}
}

// Update 逻辑帧：移除已到达的子弹
func (s *ProjectileSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith1[*components.ProjectileComponent](s.entityManager)
	for _, id := range ids {
		if s.entityManager.IsMarkedForDestruction(id) {
			continue
		}
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)
		if !proj.Arrived || proj.Spent {
			continue
		}
		if s.factory.Destroy(id) {
			s.expired++
		}
	}
}

// HasArrived 子弹是否已到达目标
func (s *ProjectileSystem) HasArrived(id ecs.EntityID) bool {
	proj, ok := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)
	if !ok {
		return false
	}
	return proj.Arrived
}

// ExpiredCount 返回未命中、到达目标后移除的子弹数
func (s *ProjectileSystem) ExpiredCount() int {
	return s.expired
}
