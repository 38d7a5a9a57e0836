package components

// CollisionComponent 定义实体的碰撞检测边界框
// 用于碰撞系统检测子弹与敌人的重叠（世界单位，中心对齐实体位置）
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度
	Height float64 // 碰撞盒高度
}
