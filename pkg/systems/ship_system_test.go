package systems

import (
	"errors"
	"math"
	"testing"

	"github.com/decker502/gyruss/pkg/components"
	"github.com/decker502/gyruss/pkg/ecs"
	"github.com/decker502/gyruss/pkg/entities"
)

const fixedDt = 0.02

func shipOrbit(t *testing.T, w *testWorld, s *ShipSystem) *components.OrbitComponent {
	t.Helper()
	orbit, ok := ecs.GetComponent[*components.OrbitComponent](w.em, s.ShipID())
	if !ok {
		t.Fatal("Ship should have OrbitComponent")
	}
	return orbit
}

// TestNewShipSystem_MissingCollaborators 缺少依赖时在构造阶段报错
func TestNewShipSystem_MissingCollaborators(t *testing.T) {
	w := newTestWorld(t)
	shipID, _ := w.factory.Create(entities.KindShip, 0, 0, 0)
	input := newFakeInput()

	tests := []struct {
		name    string
		factory entities.Factory
		input   InputSource
		shipID  ecs.EntityID
	}{
		{"缺少子弹工厂", nil, input, shipID},
		{"缺少输入服务", w.factory, nil, shipID},
		{"飞船实体不存在", w.factory, input, ecs.EntityID(999)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewShipSystem(w.em, tt.factory, tt.input, tt.shipID)
			if !errors.Is(err, ErrMissingCollaborator) {
				t.Errorf("Expected ErrMissingCollaborator, got %v", err)
			}
		})
	}
}

// TestShipSystem_HoldingFreezesPhase 初始保持状态下相位不变
func TestShipSystem_HoldingFreezesPhase(t *testing.T) {
	w := newTestWorld(t)
	input := newFakeInput()
	s := w.newShipSystem(t, input)
	orbit := shipOrbit(t, w, s)
	start := orbit.Phase

	for i := 0; i < 50; i++ {
		s.Update(0.016)
		s.FixedUpdate(fixedDt)
	}

	if orbit.Phase != start {
		t.Errorf("Phase should stay %g while holding, got %g", start, orbit.Phase)
	}
	if s.State() != InitialDirectionState() {
		t.Errorf("Expected initial state, got %+v", s.State())
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, s.ShipID())
	if math.Abs(pos.X) > 1e-9 || math.Abs(pos.Y+w.cfg.Ship.Radius) > 1e-9 {
		t.Errorf("Expected ship at bottom of orbit, got (%g, %g)", pos.X, pos.Y)
	}
}

// TestShipSystem_PressAdvancesPhase 按住方向键时每步推进 ω·dt
func TestShipSystem_PressAdvancesPhase(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Command
		wantDir float64
	}{
		{"向右逆时针", CommandRight, 1},
		{"向左顺时针", CommandLeft, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			input := newFakeInput()
			s := w.newShipSystem(t, input)
			orbit := shipOrbit(t, w, s)
			start := orbit.Phase

			input.press(tt.cmd)
			s.Update(0.016)
			input.endFrame()

			for i := 0; i < 10; i++ {
				s.FixedUpdate(fixedDt)
			}

			want := start + tt.wantDir*w.cfg.Ship.AngularSpeed*fixedDt*10
			if math.Abs(orbit.Phase-want) > 1e-9 {
				t.Errorf("Expected phase %g, got %g", want, orbit.Phase)
			}
			if orbit.Radius != w.cfg.Ship.Radius {
				t.Errorf("Ship radius should stay %g, got %g", w.cfg.Ship.Radius, orbit.Radius)
			}
		})
	}
}

// TestShipSystem_ReleaseWhileOppositeHeld 松开一个方向键而对向仍按住时切回对向
func TestShipSystem_ReleaseWhileOppositeHeld(t *testing.T) {
	w := newTestWorld(t)
	input := newFakeInput()
	s := w.newShipSystem(t, input)

	input.press(CommandRight)
	s.Update(0.016)
	input.endFrame()

	input.press(CommandLeft)
	s.Update(0.016)
	input.endFrame()
	if s.State() != stateLeft {
		t.Fatalf("Expected Left after pressing left, got %+v", s.State())
	}

	input.release(CommandLeft)
	s.Update(0.016)
	input.endFrame()
	if s.State() != stateRight {
		t.Fatalf("Expected Right after releasing left with right held, got %+v", s.State())
	}

	input.release(CommandRight)
	s.Update(0.016)
	input.endFrame()
	if s.State() != holdingRight {
		t.Fatalf("Expected Holding(+1) after releasing everything, got %+v", s.State())
	}

	orbit := shipOrbit(t, w, s)
	frozen := orbit.Phase
	s.FixedUpdate(fixedDt)
	if orbit.Phase != frozen {
		t.Errorf("Phase should be frozen in Holding, got %g -> %g", frozen, orbit.Phase)
	}
}

// TestShipSystem_LostReleaseEvent 丢失松开事件时根据按住状态补发
func TestShipSystem_LostReleaseEvent(t *testing.T) {
	w := newTestWorld(t)
	input := newFakeInput()
	s := w.newShipSystem(t, input)

	input.press(CommandLeft)
	s.Update(0.016)
	input.endFrame()

	input.held[CommandLeft] = false
	s.Update(0.016)

	if s.State() != holdingLeft {
		t.Errorf("Expected Holding(-1), got %+v", s.State())
	}
}

// TestShipSystem_ReversalContinuity 换向时位置不跳变：单步位移不超过一步的弧长
func TestShipSystem_ReversalContinuity(t *testing.T) {
	w := newTestWorld(t)
	input := newFakeInput()
	s := w.newShipSystem(t, input)
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, s.ShipID())

	maxStep := w.cfg.Ship.Radius*w.cfg.Ship.AngularSpeed*fixedDt + 1e-9
	cmds := []Command{CommandRight, CommandLeft}

	prevX, prevY := pos.X, pos.Y
	for i := 0; i < 100; i++ {
		if i%7 == 0 {
			input.endFrame()
			input.release(cmds[(i/7+1)%2])
			input.press(cmds[(i/7)%2])
			s.Update(0.016)
		}
		s.FixedUpdate(fixedDt)

		step := math.Hypot(pos.X-prevX, pos.Y-prevY)
		if step > maxStep {
			t.Fatalf("step %d: displacement %g exceeds %g", i, step, maxStep)
		}
		prevX, prevY = pos.X, pos.Y
	}
}

// TestShipSystem_FacingEasesTowardCenter 朝向按转速限制逼近中心方向
func TestShipSystem_FacingEasesTowardCenter(t *testing.T) {
	w := newTestWorld(t)
	input := newFakeInput()
	s := w.newShipSystem(t, input)
	facing, _ := ecs.GetComponent[*components.FacingComponent](w.em, s.ShipID())
	facing.Angle = -90 // 背对中心

	s.FixedUpdate(fixedDt)

	maxTurn := w.cfg.Ship.TurnRate * fixedDt
	if math.Abs(facing.Angle-(-90)) > maxTurn+1e-9 {
		t.Errorf("Facing turned more than %g degrees: %g", maxTurn, facing.Angle)
	}
	if math.Abs(facing.TargetAngle-90) > 1e-9 {
		t.Errorf("Expected target 90 (toward center), got %g", facing.TargetAngle)
	}

	for i := 0; i < 50; i++ {
		s.FixedUpdate(fixedDt)
	}
	if math.Abs(facing.Angle-90) > 1e-9 {
		t.Errorf("Expected facing to settle at 90, got %g", facing.Angle)
	}
}

// TestShipSystem_FireEdgeTriggered 开火只在按下沿触发，按住不连发
func TestShipSystem_FireEdgeTriggered(t *testing.T) {
	w := newTestWorld(t)
	input := newFakeInput()
	s := w.newShipSystem(t, input)

	input.press(CommandFire)
	s.Update(0.016)
	input.endFrame()

	for i := 0; i < 10; i++ {
		s.Update(0.016)
	}
	if got := w.factory.AliveCount(entities.KindProjectile); got != 1 {
		t.Fatalf("Expected 1 projectile while fire held, got %d", got)
	}

	input.release(CommandFire)
	s.Update(0.016)
	input.endFrame()
	input.press(CommandFire)
	s.Update(0.016)
	input.endFrame()

	if got := w.factory.AliveCount(entities.KindProjectile); got != 2 {
		t.Errorf("Expected 2 projectiles after second press, got %d", got)
	}
	if s.ShotsFired() != 2 {
		t.Errorf("Expected 2 shots, got %d", s.ShotsFired())
	}
}

// TestShipSystem_FireSpawnsAtMuzzle 子弹从炮口生成，飞船状态不变
func TestShipSystem_FireSpawnsAtMuzzle(t *testing.T) {
	w := newTestWorld(t)
	input := newFakeInput()
	s := w.newShipSystem(t, input)

	orbitBefore := *shipOrbit(t, w, s)
	shipBefore, _ := ecs.GetComponent[*components.ShipComponent](w.em, s.ShipID())
	shipCopy := *shipBefore

	id, err := s.Fire()
	if err != nil {
		t.Fatalf("Fire() error = %v", err)
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	wantY := -(w.cfg.Ship.Radius - w.cfg.Ship.MuzzleOffset)
	if math.Abs(pos.X) > 1e-9 || math.Abs(pos.Y-wantY) > 1e-9 {
		t.Errorf("Expected projectile at (0, %g), got (%g, %g)", wantY, pos.X, pos.Y)
	}

	proj, _ := ecs.GetComponent[*components.ProjectileComponent](w.em, id)
	if proj.TargetX != 0 || proj.TargetY != 0 {
		t.Errorf("Projectile should target the center, got (%g, %g)", proj.TargetX, proj.TargetY)
	}

	if *shipOrbit(t, w, s) != orbitBefore {
		t.Error("Fire should not change ship orbit")
	}
	shipAfter, _ := ecs.GetComponent[*components.ShipComponent](w.em, s.ShipID())
	if *shipAfter != shipCopy {
		t.Error("Fire should not change ship component")
	}
}
