package entities

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/decker502/gyruss/pkg/config"
	"github.com/decker502/gyruss/pkg/ecs"
)

// ErrUnknownKind 不支持的实体种类
var ErrUnknownKind = errors.New("unknown entity kind")

// Kind 工厂可创建的实体种类
type Kind int

const (
	// KindShip 玩家飞船
	KindShip Kind = iota
	// KindEnemy 敌人
	KindEnemy
	// KindProjectile 子弹
	KindProjectile
)

// String 返回种类名称
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Factory 实体创建/销毁接口
//
// 系统只通过该接口生成与移除实体，不直接操作 EntityManager 的生命周期。
// 每个实体只会被真正销毁一次；重复调用 Destroy 返回 false。
type Factory interface {
	// Create 在世界坐标 (x, y) 创建实体，rotation 为初始朝向（度）
	Create(kind Kind, x, y, rotation float64) (ecs.EntityID, error)
	// Destroy 销毁实体，返回本次调用是否真正执行了销毁
	Destroy(id ecs.EntityID) bool
}

// EntityFactory 基于 EntityManager 的 Factory 实现
//
// 销毁只是标记，实体在帧末 RemoveMarkedEntities 时才真正移除；
// 标记之后 IsAlive 立即返回 false，其他系统据此跳过该实体。
type EntityFactory struct {
	em    *ecs.EntityManager
	cfg   *config.GameConfig
	alive map[ecs.EntityID]Kind

	created   map[Kind]int
	destroyed map[Kind]int
}

// NewEntityFactory 创建实体工厂
//
// 参数：
//   - em: 实体管理器
//   - cfg: 游戏配置（提供各类实体的尺寸、速度等参数）
func NewEntityFactory(em *ecs.EntityManager, cfg *config.GameConfig) (*EntityFactory, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return nil, fmt.Errorf("game config cannot be nil")
	}
	return &EntityFactory{
		em:        em,
		cfg:       cfg,
		alive:     make(map[ecs.EntityID]Kind),
		created:   make(map[Kind]int),
		destroyed: make(map[Kind]int),
	}, nil
}

// Create 创建指定种类的实体
//
// 位置的解释因种类而异：
//   - 飞船：取 (x, y) 相对轨道中心的方位作为初始相位，半径固定为配置值
//   - 敌人：取 (x, y) 相对轨道中心的极坐标；半径小于初始半径时抬升到初始半径
//   - 子弹：直接放在 (x, y)，目标为轨道中心
func (f *EntityFactory) Create(kind Kind, x, y, rotation float64) (ecs.EntityID, error) {
	var (
		id  ecs.EntityID
		err error
	)

	cx, cy := f.cfg.World.CenterX, f.cfg.World.CenterY
	switch kind {
	case KindShip:
		phase := f.cfg.Ship.StartPhase
		if x != cx || y != cy {
			phase = math.Atan2(y-cy, x-cx)
		}
		id, err = NewShip(f.em, f.cfg, phase)
	case KindEnemy:
		radius := math.Hypot(x-cx, y-cy)
		phase := 0.0
		if radius > 0 {
			phase = math.Atan2(y-cy, x-cx)
		}
		radius = math.Max(radius, f.cfg.Enemy.InitialRadius)
		id, err = NewEnemy(f.em, f.cfg, radius, phase)
	case KindProjectile:
		id, err = NewProjectile(f.em, f.cfg, x, y)
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to create %v: %w", kind, err)
	}

	setFacing(f.em, id, rotation)
	f.alive[id] = kind
	f.created[kind]++
	return id, nil
}

// Destroy 标记实体待删除
// 未知实体或已销毁实体返回 false
func (f *EntityFactory) Destroy(id ecs.EntityID) bool {
	kind, ok := f.alive[id]
	if !ok {
		log.Printf("[EntityFactory] Ignoring destroy of entity %d (not alive)", id)
		return false
	}
	delete(f.alive, id)
	f.destroyed[kind]++
	f.em.DestroyEntity(id)
	return true
}

// IsAlive 实体是否由本工厂创建且尚未销毁
func (f *EntityFactory) IsAlive(id ecs.EntityID) bool {
	_, ok := f.alive[id]
	return ok
}

// KindOf 返回存活实体的种类
func (f *EntityFactory) KindOf(id ecs.EntityID) (Kind, bool) {
	kind, ok := f.alive[id]
	return kind, ok
}

// AliveCount 返回指定种类的存活实体数
func (f *EntityFactory) AliveCount(kind Kind) int {
	return f.created[kind] - f.destroyed[kind]
}

// CreatedCount 返回指定种类累计创建的实体数
func (f *EntityFactory) CreatedCount(kind Kind) int {
	return f.created[kind]
}

// DestroyedCount 返回指定种类累计销毁的实体数
func (f *EntityFactory) DestroyedCount(kind Kind) int {
	return f.destroyed[kind]
}
