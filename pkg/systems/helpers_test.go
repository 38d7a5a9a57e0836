package systems

import (
	"testing"

	"github.com/decker502/gyruss/pkg/config"
	"github.com/decker502/gyruss/pkg/ecs"
	"github.com/decker502/gyruss/pkg/entities"
	"github.com/decker502/gyruss/pkg/game"
)

// fakeInput 可编程的输入服务
// press/release 设置本帧的边沿事件与按住状态，endFrame 清除边沿事件
type fakeInput struct {
	pressed  map[Command]bool
	released map[Command]bool
	held     map[Command]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		pressed:  make(map[Command]bool),
		released: make(map[Command]bool),
		held:     make(map[Command]bool),
	}
}

func (f *fakeInput) press(cmd Command) {
	f.pressed[cmd] = true
	f.held[cmd] = true
}

func (f *fakeInput) release(cmd Command) {
	f.released[cmd] = true
	f.held[cmd] = false
}

func (f *fakeInput) endFrame() {
	f.pressed = make(map[Command]bool)
	f.released = make(map[Command]bool)
}

func (f *fakeInput) IsJustPressed(cmd Command) bool  { return f.pressed[cmd] }
func (f *fakeInput) IsJustReleased(cmd Command) bool { return f.released[cmd] }
func (f *fakeInput) IsHeld(cmd Command) bool         { return f.held[cmd] }

// recordingSpawner 记录每次生成请求
type recordingSpawner struct {
	calls []spawnCall
	next  ecs.EntityID
}

type spawnCall struct {
	wave  int
	index int
}

func (r *recordingSpawner) SpawnEnemy(waveIndex, index int) (ecs.EntityID, error) {
	r.calls = append(r.calls, spawnCall{wave: waveIndex, index: index})
	r.next++
	return r.next, nil
}

// testWorld 测试用的最小会话
type testWorld struct {
	em      *ecs.EntityManager
	cfg     *config.GameConfig
	factory *entities.EntityFactory
	ledger  *game.ScoreLedger
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()
	factory, err := entities.NewEntityFactory(em, cfg)
	if err != nil {
		t.Fatalf("NewEntityFactory() error = %v", err)
	}
	return &testWorld{
		em:      em,
		cfg:     cfg,
		factory: factory,
		ledger:  game.NewScoreLedger(),
	}
}

// newShipSystem 在轨道底部创建飞船与飞船系统
func (w *testWorld) newShipSystem(t *testing.T, input InputSource) *ShipSystem {
	t.Helper()
	shipID, err := w.factory.Create(entities.KindShip, w.cfg.World.CenterX, w.cfg.World.CenterY, 90)
	if err != nil {
		t.Fatalf("Create(KindShip) error = %v", err)
	}
	system, err := NewShipSystem(w.em, w.factory, input, shipID)
	if err != nil {
		t.Fatalf("NewShipSystem() error = %v", err)
	}
	return system
}

// newEnemySystem 创建敌人系统
func (w *testWorld) newEnemySystem(t *testing.T) *EnemySystem {
	t.Helper()
	system, err := NewEnemySystem(w.em, w.factory, w.ledger, w.cfg.Score)
	if err != nil {
		t.Fatalf("NewEnemySystem() error = %v", err)
	}
	return system
}
