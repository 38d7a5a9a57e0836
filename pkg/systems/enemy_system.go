package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/decker502/gyruss/pkg/components"
	"github.com/decker502/gyruss/pkg/config"
	"github.com/decker502/gyruss/pkg/ecs"
	"github.com/decker502/gyruss/pkg/entities"
	"github.com/decker502/gyruss/pkg/game"
	"github.com/decker502/gyruss/pkg/utils"
)

// EnemySystem 敌人系统
//
// 职责：
//   - 物理帧：半径按固定步长增长（封顶），每步按当前半径重算计分档位，
//     推进相位并让朝向跟随速度方向
//   - 碰撞回调：被子弹命中时按当前档位计分（恰好一次），并销毁敌人与子弹
//
// 所有敌人共享同一个 ScoreLedger（由会话注入）。
type EnemySystem struct {
	entityManager *ecs.EntityManager
	factory       entities.Factory
	ledger        *game.ScoreLedger
	score         config.ScoreConfig

	defeated int
	verbose  bool
}

// NewEnemySystem 创建敌人系统
//
// 参数：
//   - em: 实体管理器
//   - factory: 实体工厂（销毁敌人与子弹）
//   - ledger: 共享的记分账本
//   - score: 计分档位配置
func NewEnemySystem(em *ecs.EntityManager, factory entities.Factory, ledger *game.ScoreLedger, score config.ScoreConfig) (*EnemySystem, error) {
	if em == nil {
		return nil, fmt.Errorf("%w: entity manager", ErrMissingCollaborator)
	}
	if factory == nil {
		return nil, fmt.Errorf("%w: entity factory", ErrMissingCollaborator)
	}
	if ledger == nil {
		return nil, fmt.Errorf("%w: score ledger", ErrMissingCollaborator)
	}
	return &EnemySystem{
		entityManager: em,
		factory:       factory,
		ledger:        ledger,
		score:         score,
	}, nil
}

// FixedUpdate 物理帧：推进所有存活敌人
func (s *EnemySystem) FixedUpdate(dt float64) {
	ids := ecs.GetEntitiesWith3[
		*components.EnemyComponent,
		*components.OrbitComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range ids {
		if s.entityManager.IsMarkedForDestruction(id) {
			continue
		}
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		orbit, _ := ecs.GetComponent[*components.OrbitComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if enemy.Defeated {
			continue
		}

		s.grow(id, enemy, orbit)

		pos.X, pos.Y = AdvanceOrbit(orbit, dt)

		if facing, ok := ecs.GetComponent[*components.FacingComponent](s.entityManager, id); ok {
			vx, vy := utils.OrbitVelocity(orbit.Radius, orbit.AngularSpeed, orbit.Direction, orbit.Phase)
			easeFacing(facing, vx, vy, dt)
		}
	}
}

// grow 半径增长一步并重算档位
// 封顶之后档位仍然每步重算（结果不再变化）
func (s *EnemySystem) grow(id ecs.EntityID, enemy *components.EnemyComponent, orbit *components.OrbitComponent) {
	previous := orbit.Radius
	if orbit.Radius < enemy.MaxRadius {
		enemy.GrowthSteps++
		grown := enemy.SpawnRadius + float64(enemy.GrowthSteps)*enemy.GrowthPerStep
		if grown < previous {
			// 半径被外部改动过，退回逐步累加
			grown = previous + enemy.GrowthPerStep
		}
		orbit.Radius = math.Min(grown, enemy.MaxRadius)
	}

	if !utils.Invariant(orbit.Radius >= previous, "enemy %d radius shrank %g -> %g", id, previous, orbit.Radius) {
		orbit.Radius = previous
	}
	if !utils.Invariant(orbit.Radius >= 0 && orbit.Radius <= enemy.MaxRadius, "enemy %d radius %g out of [0, %g]", id, orbit.Radius, enemy.MaxRadius) {
		orbit.Radius = utils.ClampFloat(orbit.Radius, 0, enemy.MaxRadius)
	}

	tier, points := game.ScoreTierFor(orbit.Radius, s.score)
	if tier != enemy.Tier && s.verbose {
		log.Printf("[EnemySystem] Enemy %d tier %v -> %v at r=%.3f", id, enemy.Tier, tier, orbit.Radius)
	}
	enemy.Tier = tier
	enemy.ScoreValue = points
}

// OnProjectileHit 碰撞回调：敌人被子弹命中
//
// 按敌人当前档位计分并销毁双方。已被击败的敌人或已命中过的子弹直接忽略，
// 保证同一次碰撞只计分一次，且不会出现只销毁一方的中间状态。
//
// 返回：
//   - int: 本次得分
//   - bool: 是否处理了本次命中
func (s *EnemySystem) OnProjectileHit(enemyID, projectileID ecs.EntityID) (int, bool) {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, enemyID)
	if !ok || enemy.Defeated || s.entityManager.IsMarkedForDestruction(enemyID) {
		return 0, false
	}
	projectile, ok := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, projectileID)
	if !ok || projectile.Spent || s.entityManager.IsMarkedForDestruction(projectileID) {
		return 0, false
	}

	points := enemy.ScoreValue
	enemy.Defeated = true
	projectile.Spent = true

	if err := s.ledger.Award(points); err != nil {
		log.Printf("[EnemySystem] Failed to award %d points: %v", points, err)
	}

	s.factory.Destroy(enemyID)
	s.factory.Destroy(projectileID)
	s.defeated++

	log.Printf("[EnemySystem] Enemy %d hit by projectile %d: tier=%v points=%d", enemyID, projectileID, enemy.Tier, points)
	return points, true
}

// CurrentScore 返回敌人当前档位对应的分值
func (s *EnemySystem) CurrentScore(enemyID ecs.EntityID) (int, bool) {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, enemyID)
	if !ok {
		return 0, false
	}
	return enemy.ScoreValue, true
}

// DefeatedCount 返回累计击败的敌人数
func (s *EnemySystem) DefeatedCount() int {
	return s.defeated
}

// SetVerbose 设置是否输出详细日志
func (s *EnemySystem) SetVerbose(verbose bool) {
	s.verbose = verbose
}
