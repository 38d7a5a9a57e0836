package components

// BehaviorType 定义实体的行为类型
// 用于系统区分实体种类（碰撞过滤、渲染着色）
type BehaviorType int

const (
	// BehaviorShip 玩家飞船：沿固定半径轨道双向移动，向中心发射子弹
	BehaviorShip BehaviorType = iota
	// BehaviorEnemy 敌人：沿单一方向绕中心运动，轨道半径逐步增大
	BehaviorEnemy
	// BehaviorProjectile 子弹：直线飞向轨道中心，到达后自毁
	BehaviorProjectile
)

// String 返回行为类型名称（日志用）
func (b BehaviorType) String() string {
	switch b {
	case BehaviorShip:
		return "ship"
	case BehaviorEnemy:
		return "enemy"
	case BehaviorProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// BehaviorComponent 标识实体种类
type BehaviorComponent struct {
	Type BehaviorType
}
