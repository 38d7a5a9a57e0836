package components

// DirectionMode 飞船方向状态机的状态
//
//	Left / Right：方向键按住中，相位持续推进
//	Holding：无方向键按住，保留最后方向但相位冻结
type DirectionMode int

const (
	// DirectionHolding 保持（冻结）状态，Direction 记录最后一次的方向
	DirectionHolding DirectionMode = iota
	// DirectionLeft 向左（顺时针，相位递减）
	DirectionLeft
	// DirectionRight 向右（逆时针，相位递增）
	DirectionRight
)

// String 返回状态名称
func (m DirectionMode) String() string {
	switch m {
	case DirectionHolding:
		return "holding"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// ShipComponent 玩家飞船数据
type ShipComponent struct {
	Mode         DirectionMode // 方向状态
	Direction    int           // 最后有效方向：-1 左，+1 右
	MuzzleOffset float64       // 炮口相对中心方向的偏移距离
}
