package systems

// Command 玩家输入命令
// 与具体按键解耦，按键绑定由渲染层的键盘适配器负责
type Command int

const (
	// CommandLeft 向左（顺时针）移动
	CommandLeft Command = iota
	// CommandRight 向右（逆时针）移动
	CommandRight
	// CommandFire 开火
	CommandFire
)

// String 返回命令名称
func (c Command) String() string {
	switch c {
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandFire:
		return "fire"
	default:
		return "unknown"
	}
}

// InputSource 输入服务
// 每个逻辑帧轮询一次：边沿事件只在按下/松开的那一帧为 true
type InputSource interface {
	// IsJustPressed 本帧刚按下
	IsJustPressed(cmd Command) bool
	// IsJustReleased 本帧刚松开
	IsJustReleased(cmd Command) bool
	// IsHeld 当前处于按住状态
	IsHeld(cmd Command) bool
}
