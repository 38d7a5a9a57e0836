package systems

import (
	"github.com/decker502/gyruss/pkg/components"
	"github.com/decker502/gyruss/pkg/utils"
)

// AdvanceOrbit 积分轨道相位并返回新的位置
//
// 只改变 Phase，不重置；Radius 为负属于程序缺陷，钳制到 0 后继续。
func AdvanceOrbit(orbit *components.OrbitComponent, dt float64) (x, y float64) {
	if !utils.Invariant(orbit.Radius >= 0, "orbit radius %g < 0", orbit.Radius) {
		orbit.Radius = 0
	}
	orbit.Phase = utils.AdvancePhase(orbit.Phase, orbit.AngularSpeed, orbit.Direction, dt)
	return utils.OrbitPosition(orbit.CenterX, orbit.CenterY, orbit.Radius, orbit.Phase)
}

// easeFacing 把朝向向目标逼近，单步不超过 TurnRate × dt
// 目标方向为零向量（例如位于轨道中心）时保持原朝向
func easeFacing(facing *components.FacingComponent, dirX, dirY, dt float64) {
	if target, ok := utils.DirectionAngle(dirX, dirY); ok {
		facing.TargetAngle = target
	}
	facing.Angle = utils.NormalizeAngle(utils.RotateTowards(facing.Angle, facing.TargetAngle, facing.TurnRate*dt))
}
