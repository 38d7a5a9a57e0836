package systems

import (
	"fmt"
	"log"
	"sort"

	"github.com/solarlune/resolv"

	"github.com/decker502/gyruss/pkg/components"
	"github.com/decker502/gyruss/pkg/config"
	"github.com/decker502/gyruss/pkg/ecs"
	"github.com/decker502/gyruss/pkg/utils"
)

// 碰撞形状标签
var (
	tagEnemy      = resolv.NewTag("enemy")
	tagProjectile = resolv.NewTag("projectile")
)

// collisionCellSize 空间划分的单元格尺寸（像素）
const collisionCellSize = 32

// TriggerHandler 碰撞触发回调
// 每对 (敌人, 子弹) 在一次持续重叠期间只触发一次
type TriggerHandler func(enemyID, projectileID ecs.EntityID)

type collisionPair struct {
	enemy      ecs.EntityID
	projectile ecs.EntityID
}

// CollisionSystem 子弹与敌人的碰撞检测
//
// 粗检测交给 resolv：每个物理帧把实体位置同步到碰撞形状上，
// 然后让每颗子弹查询与其相邻单元格内带 enemy 标签的形状；
// 细检测对候选形状做 AABB 重叠判断（包含完全包含的情况）。
// 已到达目标的子弹不再参与碰撞。
// resolv 的空间只接受非负坐标，所以形状使用屏幕像素坐标（世界坐标经 WorldToScreen 转换）。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	space         *resolv.Space
	handler       TriggerHandler

	originX, originY float64
	pixelsPerUnit    float64

	shapes      map[ecs.EntityID]resolv.IShape
	owners      map[resolv.IShape]ecs.EntityID
	overlapping map[collisionPair]bool
}

// NewCollisionSystem 创建碰撞系统
//
// 参数：
//   - em: 实体管理器
//   - cfg: 游戏配置（窗口尺寸与坐标换算）
//   - handler: 碰撞触发回调
func NewCollisionSystem(em *ecs.EntityManager, cfg *config.GameConfig, handler TriggerHandler) (*CollisionSystem, error) {
	if em == nil {
		return nil, fmt.Errorf("%w: entity manager", ErrMissingCollaborator)
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: game config", ErrMissingCollaborator)
	}
	if handler == nil {
		return nil, fmt.Errorf("%w: trigger handler", ErrMissingCollaborator)
	}

	originX, originY := cfg.ScreenCenter()
	return &CollisionSystem{
		entityManager: em,
		space:         resolv.NewSpace(cfg.Window.Width, cfg.Window.Height, collisionCellSize, collisionCellSize),
		handler:       handler,
		originX:       originX,
		originY:       originY,
		pixelsPerUnit: cfg.World.PixelsPerUnit,
		shapes:        make(map[ecs.EntityID]resolv.IShape),
		owners:        make(map[resolv.IShape]ecs.EntityID),
		overlapping:   make(map[collisionPair]bool),
	}, nil
}

// FixedUpdate 物理帧：同步形状并检测重叠
func (s *CollisionSystem) FixedUpdate(dt float64) {
	s.Prune()
	s.sync()
	s.detect()
}

// sync 为新实体创建形状，并把所有形状移动到实体当前位置
func (s *CollisionSystem) sync() {
	ids := ecs.GetEntitiesWith3[
		*components.BehaviorComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](s.entityManager)

	for _, id := range ids {
		if s.entityManager.IsMarkedForDestruction(id) {
			continue
		}
		behavior, _ := ecs.GetComponent[*components.BehaviorComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		box, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)

		var tag resolv.Tags
		switch behavior.Type {
		case components.BehaviorEnemy:
			tag = tagEnemy
		case components.BehaviorProjectile:
			tag = tagProjectile
		default:
			continue
		}

		if arrivedProjectile(s.entityManager, id) {
			s.removeShape(id)
			continue
		}

		cx, cy := utils.WorldToScreen(pos.X, pos.Y, s.originX, s.originY, s.pixelsPerUnit)
		shape, exists := s.shapes[id]
		if !exists {
			w, h := box.Width*s.pixelsPerUnit, box.Height*s.pixelsPerUnit
			rect := resolv.NewRectangleTopLeft(cx-w/2, cy-h/2, w, h)
			rect.Tags().Set(tag)
			s.space.Add(rect)
			s.shapes[id] = rect
			s.owners[rect] = id
			continue
		}
		shape.SetPosition(cx, cy)
	}
}

// detect 检测子弹与敌人的重叠，只在重叠开始时触发回调
func (s *CollisionSystem) detect() {
	current := make(map[collisionPair]bool)

	projectiles := ecs.GetEntitiesWith1[*components.ProjectileComponent](s.entityManager)
	for _, projectileID := range projectiles {
		shape, ok := s.shapes[projectileID]
		if !ok || s.entityManager.IsMarkedForDestruction(projectileID) || arrivedProjectile(s.entityManager, projectileID) {
			continue
		}

		var hits []ecs.EntityID
		shape.SelectTouchingCells(0).FilterShapes().ByTags(tagEnemy).ForEach(func(other resolv.IShape) bool {
			enemyID, found := s.owners[other]
			if found && checkAABBOverlap(shape.Bounds(), other.Bounds()) {
				hits = append(hits, enemyID)
			}
			return true
		})
		sort.Slice(hits, func(i, j int) bool { return hits[i] < hits[j] })

		for _, enemyID := range hits {
			pair := collisionPair{enemy: enemyID, projectile: projectileID}
			current[pair] = true
			if s.overlapping[pair] {
				continue
			}
			if s.entityManager.IsMarkedForDestruction(enemyID) || s.entityManager.IsMarkedForDestruction(projectileID) {
				continue
			}
			s.handler(enemyID, projectileID)
		}
	}

	s.overlapping = current
}

// checkAABBOverlap 两个轴对齐边界框是否重叠（边缘接触与完全包含都算重叠）
func checkAABBOverlap(a, b resolv.Bounds) bool {
	return a.Max.X >= b.Min.X &&
		a.Min.X <= b.Max.X &&
		a.Max.Y >= b.Min.Y &&
		a.Min.Y <= b.Max.Y
}

// arrivedProjectile 实体是否为已到达目标的子弹
func arrivedProjectile(em *ecs.EntityManager, id ecs.EntityID) bool {
	proj, ok := ecs.GetComponent[*components.ProjectileComponent](em, id)
	return ok && proj.Arrived
}

// removeShape 从空间中移除实体的碰撞形状
func (s *CollisionSystem) removeShape(id ecs.EntityID) {
	shape, ok := s.shapes[id]
	if !ok {
		return
	}
	s.space.Remove(shape)
	delete(s.shapes, id)
	delete(s.owners, shape)
}

// Prune 移除已销毁实体的碰撞形状
func (s *CollisionSystem) Prune() {
	for id := range s.shapes {
		if s.entityManager.Exists(id) && !s.entityManager.IsMarkedForDestruction(id) {
			continue
		}
		s.removeShape(id)
	}
	for pair := range s.overlapping {
		if _, ok := s.shapes[pair.enemy]; !ok {
			delete(s.overlapping, pair)
			continue
		}
		if _, ok := s.shapes[pair.projectile]; !ok {
			delete(s.overlapping, pair)
		}
	}
}

// ShapeCount 返回当前注册的碰撞形状数量
func (s *CollisionSystem) ShapeCount() int {
	return len(s.shapes)
}

// Reset 清空所有形状（会话重启时调用）
func (s *CollisionSystem) Reset() {
	for _, shape := range s.shapes {
		s.space.Remove(shape)
	}
	s.shapes = make(map[ecs.EntityID]resolv.IShape)
	s.owners = make(map[resolv.IShape]ecs.EntityID)
	s.overlapping = make(map[collisionPair]bool)
	log.Printf("[CollisionSystem] Reset")
}
