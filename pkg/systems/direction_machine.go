package systems

import "github.com/decker502/gyruss/pkg/components"

// DirectionEvent 方向状态机的输入事件
type DirectionEvent int

const (
	// EventPressLeft 按下左键
	EventPressLeft DirectionEvent = iota
	// EventPressRight 按下右键
	EventPressRight
	// EventReleaseLeft 松开左键
	EventReleaseLeft
	// EventReleaseRight 松开右键
	EventReleaseRight
)

// String 返回事件名称
func (e DirectionEvent) String() string {
	switch e {
	case EventPressLeft:
		return "press-left"
	case EventPressRight:
		return "press-right"
	case EventReleaseLeft:
		return "release-left"
	case EventReleaseRight:
		return "release-right"
	default:
		return "unknown"
	}
}

// DirectionState 方向状态：{Left, Right, Holding(last)}
type DirectionState struct {
	Mode      components.DirectionMode
	Direction int // -1 左（顺时针），+1 右（逆时针）
}

// InitialDirectionState 初始状态 Holding(+1)
func InitialDirectionState() DirectionState {
	return DirectionState{Mode: components.DirectionHolding, Direction: 1}
}

// Moving 当前状态是否推进相位
func (s DirectionState) Moving() bool {
	return s.Mode == components.DirectionLeft || s.Mode == components.DirectionRight
}

// NextDirection 方向状态转移函数
//
//	按下左/右            → Left / Right（立即生效）
//	松开当前方向且对向仍按住 → 切换到对向
//	松开当前方向且无键按住  → Holding(最后方向)，相位冻结
//	松开非当前方向的键     → 不变
//
// leftHeld / rightHeld 为事件发生后各键的按住状态
func NextDirection(state DirectionState, event DirectionEvent, leftHeld, rightHeld bool) DirectionState {
	switch event {
	case EventPressLeft:
		return DirectionState{Mode: components.DirectionLeft, Direction: -1}
	case EventPressRight:
		return DirectionState{Mode: components.DirectionRight, Direction: 1}
	case EventReleaseLeft:
		if state.Mode != components.DirectionLeft {
			return state
		}
		if rightHeld {
			return DirectionState{Mode: components.DirectionRight, Direction: 1}
		}
		return DirectionState{Mode: components.DirectionHolding, Direction: -1}
	case EventReleaseRight:
		if state.Mode != components.DirectionRight {
			return state
		}
		if leftHeld {
			return DirectionState{Mode: components.DirectionLeft, Direction: -1}
		}
		return DirectionState{Mode: components.DirectionHolding, Direction: 1}
	default:
		return state
	}
}
