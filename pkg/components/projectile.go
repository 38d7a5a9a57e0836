package components

// ProjectileComponent 子弹数据
// 子弹以恒定速度直线飞向目标点，永不越过目标
type ProjectileComponent struct {
	TargetX float64 // 目标X（轨道中心）
	TargetY float64 // 目标Y（轨道中心）
	Speed   float64 // 速度（单位/秒）
	Arrived bool    // 是否已到达目标
	Spent   bool    // 已命中敌人（等待帧末移除），一颗子弹只能命中一次
}
