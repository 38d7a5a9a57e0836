package session

import (
	"github.com/decker502/gyruss/pkg/components"
	"github.com/decker502/gyruss/pkg/ecs"
)

// ActorView 渲染与报告用的只读实体快照（世界坐标）
type ActorView struct {
	ID     ecs.EntityID
	X, Y   float64
	Facing float64 // 朝向（度）
}

// EnemyView 敌人快照
type EnemyView struct {
	ActorView
	Radius float64
	Tier   components.ScoreTier
	Score  int
}

// Snapshot 一帧的只读快照
type Snapshot struct {
	Ship          ActorView
	ShipMode      components.DirectionMode
	ShipDirection int

	Enemies     []EnemyView
	Projectiles []ActorView

	Score          int
	WaveState      components.WaveState
	WavesRemaining int
	PendingSpawns  int
	Elapsed        float64
	Cleared        bool
}

// Snapshot 返回当前帧的快照
// 已标记销毁但尚未清理的实体不包含在内
func (s *Session) Snapshot() Snapshot {
	ship, mode, dir := s.shipView()
	snap := Snapshot{
		Ship:           ship,
		ShipMode:       mode,
		ShipDirection:  dir,
		Score:          s.ledger.Total(),
		WaveState:      s.waves.State(),
		WavesRemaining: s.waves.WavesRemaining(),
		PendingSpawns:  s.waves.PendingSpawns(),
		Elapsed:        s.state.ElapsedTime,
		Cleared:        s.state.Cleared,
	}

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.OrbitComponent](s.em) {
		if s.em.IsMarkedForDestruction(id) {
			continue
		}
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		orbit, _ := ecs.GetComponent[*components.OrbitComponent](s.em, id)
		snap.Enemies = append(snap.Enemies, EnemyView{
			ActorView: actorView(s.em, id),
			Radius:    orbit.Radius,
			Tier:      enemy.Tier,
			Score:     enemy.ScoreValue,
		})
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](s.em) {
		if s.em.IsMarkedForDestruction(id) {
			continue
		}
		snap.Projectiles = append(snap.Projectiles, actorView(s.em, id))
	}

	return snap
}

func actorView(em *ecs.EntityManager, id ecs.EntityID) ActorView {
	view := ActorView{ID: id}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
		view.X, view.Y = pos.X, pos.Y
	}
	if facing, ok := ecs.GetComponent[*components.FacingComponent](em, id); ok {
		view.Facing = facing.Angle
	}
	return view
}
