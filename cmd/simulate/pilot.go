package main

import "github.com/decker502/gyruss/pkg/systems"

// scriptedPilot 确定性的自动驾驶输入
//
// 从第 1 帧起每 fireEvery 帧按一次开火键（下一帧松开）；
// sweepEvery > 0 时按住一个方向键 sweepEvery 帧后换向，0 表示一直停在起始相位。
type scriptedPilot struct {
	fireEvery  int
	sweepEvery int

	frame    int
	pressed  map[systems.Command]bool
	released map[systems.Command]bool
	held     map[systems.Command]bool
}

func newScriptedPilot(fireEvery, sweepEvery int) *scriptedPilot {
	return &scriptedPilot{
		fireEvery:  fireEvery,
		sweepEvery: sweepEvery,
		pressed:    make(map[systems.Command]bool),
		released:   make(map[systems.Command]bool),
		held:       make(map[systems.Command]bool),
	}
}

// Advance 进入下一帧并计算本帧的按键边沿
func (p *scriptedPilot) Advance() {
	p.frame++
	clear(p.pressed)
	clear(p.released)

	if p.held[systems.CommandFire] {
		p.release(systems.CommandFire)
	}
	if p.fireEvery > 0 && (p.frame-1)%p.fireEvery == 0 {
		p.press(systems.CommandFire)
	}

	if p.sweepEvery <= 0 {
		return
	}
	if p.frame == 1 {
		p.press(systems.CommandRight)
		return
	}
	if (p.frame-1)%p.sweepEvery == 0 {
		if p.held[systems.CommandRight] {
			p.release(systems.CommandRight)
			p.press(systems.CommandLeft)
		} else {
			p.release(systems.CommandLeft)
			p.press(systems.CommandRight)
		}
	}
}

func (p *scriptedPilot) press(cmd systems.Command) {
	p.pressed[cmd] = true
	p.held[cmd] = true
}

func (p *scriptedPilot) release(cmd systems.Command) {
	p.released[cmd] = true
	p.held[cmd] = false
}

// Frame 当前帧号（从 1 开始）
func (p *scriptedPilot) Frame() int {
	return p.frame
}

func (p *scriptedPilot) IsJustPressed(cmd systems.Command) bool {
	return p.pressed[cmd]
}

func (p *scriptedPilot) IsJustReleased(cmd systems.Command) bool {
	return p.released[cmd]
}

func (p *scriptedPilot) IsHeld(cmd systems.Command) bool {
	return p.held[cmd]
}
