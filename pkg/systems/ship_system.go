package systems

import (
	"fmt"
	"log"

	"github.com/decker502/gyruss/pkg/components"
	"github.com/decker502/gyruss/pkg/ecs"
	"github.com/decker502/gyruss/pkg/entities"
	"github.com/decker502/gyruss/pkg/utils"
)

// ShipSystem 玩家飞船系统
//
// 职责：
//   - 逻辑帧（Update）：轮询输入，驱动方向状态机，在开火键按下沿发射子弹
//   - 物理帧（FixedUpdate）：仅在 Left/Right 状态推进相位，重算位置，朝向向中心缓动
//
// 两个阶段之间只通过 ShipComponent 的方向状态交接，不依赖同一帧内的执行顺序。
type ShipSystem struct {
	entityManager *ecs.EntityManager
	factory       entities.Factory
	input         InputSource
	shipID        ecs.EntityID

	shotsFired int
	verbose    bool
}

// NewShipSystem 创建飞船系统
//
// 参数：
//   - em: 实体管理器
//   - factory: 实体工厂（发射子弹用）
//   - input: 输入服务
//   - shipID: 飞船实体ID（必须拥有 ShipComponent 与 OrbitComponent）
//
// 返回：
//   - error: 缺少依赖时返回 ErrMissingCollaborator
func NewShipSystem(em *ecs.EntityManager, factory entities.Factory, input InputSource, shipID ecs.EntityID) (*ShipSystem, error) {
	if em == nil {
		return nil, fmt.Errorf("%w: entity manager", ErrMissingCollaborator)
	}
	if factory == nil {
		return nil, fmt.Errorf("%w: projectile factory", ErrMissingCollaborator)
	}
	if input == nil {
		return nil, fmt.Errorf("%w: input source", ErrMissingCollaborator)
	}
	if !ecs.HasComponent[*components.ShipComponent](em, shipID) || !ecs.HasComponent[*components.OrbitComponent](em, shipID) {
		return nil, fmt.Errorf("%w: ship entity %d", ErrMissingCollaborator, shipID)
	}

	return &ShipSystem{
		entityManager: em,
		factory:       factory,
		input:         input,
		shipID:        shipID,
	}, nil
}

// HandleDirectionCommand 向方向状态机输入一个事件
// 按住状态从输入服务查询
func (s *ShipSystem) HandleDirectionCommand(event DirectionEvent) {
	ship := s.shipComponent()
	if ship == nil {
		return
	}

	before := DirectionState{Mode: ship.Mode, Direction: ship.Direction}
	after := NextDirection(before, event, s.input.IsHeld(CommandLeft), s.input.IsHeld(CommandRight))
	ship.Mode = after.Mode
	ship.Direction = after.Direction

	if s.verbose && before != after {
		log.Printf("[ShipSystem] %v: %v(%+d) -> %v(%+d)", event, before.Mode, before.Direction, after.Mode, after.Direction)
	}
}

// Update 逻辑帧：处理输入
//
// 同一帧内先处理松开再处理按下，按下优先生效。
// 若方向键已不再按住（例如窗口失焦丢失了松开事件），补发一次松开事件。
func (s *ShipSystem) Update(deltaTime float64) {
	if s.input.IsJustReleased(CommandLeft) {
		s.HandleDirectionCommand(EventReleaseLeft)
	}
	if s.input.IsJustReleased(CommandRight) {
		s.HandleDirectionCommand(EventReleaseRight)
	}
	if s.input.IsJustPressed(CommandLeft) {
		s.HandleDirectionCommand(EventPressLeft)
	}
	if s.input.IsJustPressed(CommandRight) {
		s.HandleDirectionCommand(EventPressRight)
	}

	if ship := s.shipComponent(); ship != nil {
		switch {
		case ship.Mode == components.DirectionLeft && !s.input.IsHeld(CommandLeft):
			s.HandleDirectionCommand(EventReleaseLeft)
		case ship.Mode == components.DirectionRight && !s.input.IsHeld(CommandRight):
			s.HandleDirectionCommand(EventReleaseRight)
		}
	}

	// 开火是边沿触发：按住不会连发
	if s.input.IsJustPressed(CommandFire) {
		if _, err := s.Fire(); err != nil {
			log.Printf("[ShipSystem] Fire failed: %v", err)
		}
	}
}

// FixedUpdate 物理帧：推进相位、更新位置与朝向
func (s *ShipSystem) FixedUpdate(dt float64) {
	ship := s.shipComponent()
	orbit, ok := ecs.GetComponent[*components.OrbitComponent](s.entityManager, s.shipID)
	if ship == nil || !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.shipID)
	if !ok {
		return
	}

	step := dt
	if ship.Mode == components.DirectionHolding {
		// Holding：相位冻结，位置仍按冻结相位计算
		step = 0
	}
	orbit.Direction = ship.Direction
	pos.X, pos.Y = AdvanceOrbit(orbit, step)

	if facing, ok := ecs.GetComponent[*components.FacingComponent](s.entityManager, s.shipID); ok {
		easeFacing(facing, orbit.CenterX-pos.X, orbit.CenterY-pos.Y, dt)
	}
}

// Fire 在炮口位置生成一颗飞向轨道中心的子弹
// 不修改飞船自身的状态
func (s *ShipSystem) Fire() (ecs.EntityID, error) {
	ship := s.shipComponent()
	orbit, okOrbit := ecs.GetComponent[*components.OrbitComponent](s.entityManager, s.shipID)
	pos, okPos := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.shipID)
	if ship == nil || !okOrbit || !okPos {
		return 0, fmt.Errorf("ship entity %d is gone", s.shipID)
	}

	muzzleX, muzzleY := utils.MoveTowards(pos.X, pos.Y, orbit.CenterX, orbit.CenterY, ship.MuzzleOffset)
	rotation, ok := utils.DirectionAngle(orbit.CenterX-muzzleX, orbit.CenterY-muzzleY)
	if !ok {
		if facing, found := ecs.GetComponent[*components.FacingComponent](s.entityManager, s.shipID); found {
			rotation = facing.Angle
		}
	}

	id, err := s.factory.Create(entities.KindProjectile, muzzleX, muzzleY, rotation)
	if err != nil {
		return 0, fmt.Errorf("failed to fire projectile: %w", err)
	}
	s.shotsFired++

	if s.verbose {
		log.Printf("[ShipSystem] Fired projectile %d from (%.2f, %.2f)", id, muzzleX, muzzleY)
	}
	return id, nil
}

// State 返回当前方向状态
func (s *ShipSystem) State() DirectionState {
	ship := s.shipComponent()
	if ship == nil {
		return InitialDirectionState()
	}
	return DirectionState{Mode: ship.Mode, Direction: ship.Direction}
}

// ShipID 返回飞船实体ID
func (s *ShipSystem) ShipID() ecs.EntityID {
	return s.shipID
}

// ShotsFired 返回累计发射的子弹数
func (s *ShipSystem) ShotsFired() int {
	return s.shotsFired
}

// SetVerbose 设置是否输出详细日志
func (s *ShipSystem) SetVerbose(verbose bool) {
	s.verbose = verbose
}

func (s *ShipSystem) shipComponent() *components.ShipComponent {
	ship, ok := ecs.GetComponent[*components.ShipComponent](s.entityManager, s.shipID)
	if !ok {
		return nil
	}
	return ship
}
