package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/gyruss/pkg/systems"
)

// DefaultKeyBindings 默认按键绑定
// 每个命令可以绑定多个键，任意一个键即可触发
var DefaultKeyBindings = map[systems.Command][]ebiten.Key{
	systems.CommandLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	systems.CommandRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	systems.CommandFire:  {ebiten.KeySpace},
}

// KeyboardInput 基于 ebiten 键盘状态的 systems.InputSource 实现
type KeyboardInput struct {
	bindings map[systems.Command][]ebiten.Key
}

// NewKeyboardInput 使用默认按键绑定创建键盘输入
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{bindings: DefaultKeyBindings}
}

// IsJustPressed 本帧刚按下任意一个绑定键
func (k *KeyboardInput) IsJustPressed(cmd systems.Command) bool {
	for _, key := range k.bindings[cmd] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// IsJustReleased 本帧刚松开某个绑定键，且没有其他绑定键仍被按住
func (k *KeyboardInput) IsJustReleased(cmd systems.Command) bool {
	released := false
	for _, key := range k.bindings[cmd] {
		if inpututil.IsKeyJustReleased(key) {
			released = true
		}
	}
	return released && !k.IsHeld(cmd)
}

// IsHeld 任意一个绑定键处于按住状态
func (k *KeyboardInput) IsHeld(cmd systems.Command) bool {
	for _, key := range k.bindings[cmd] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
