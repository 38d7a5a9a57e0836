package components

// PositionComponent 实体在世界坐标系中的位置
// 世界坐标：单位为"格"，Y 轴向上
type PositionComponent struct {
	X float64
	Y float64
}

// FacingComponent 实体朝向
// 朝向始终由速度/目标方向推导，系统每个物理步长把 Angle 向 TargetAngle 逼近，
// 单步转动不超过 TurnRate × 步长
type FacingComponent struct {
	Angle       float64 // 当前朝向（度，相对 +X 轴逆时针）
	TargetAngle float64 // 目标朝向（度）
	TurnRate    float64 // 最大转速（度/秒）
}
