// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 提供世界坐标与屏幕坐标的转换。
//
// # 坐标系统概述
//
//   - **世界坐标**：单位为"格"，原点在轨道中心所在的世界原点，Y 轴向上
//   - **屏幕坐标**：像素，原点在窗口左上角，Y 轴向下
//
// # 核心转换公式
//
//	screenX = originX + worldX × pixelsPerUnit
//	screenY = originY - worldY × pixelsPerUnit
//
// 其中 originX/originY 是世界原点在屏幕上的位置（通常为窗口中心）。
package utils

import "math"

// WorldToScreen 世界坐标转换为屏幕坐标
func WorldToScreen(worldX, worldY, originX, originY, pixelsPerUnit float64) (screenX, screenY float64) {
	return originX + worldX*pixelsPerUnit, originY - worldY*pixelsPerUnit
}

// ScreenToWorld 屏幕坐标转换为世界坐标（WorldToScreen 的逆变换）
func ScreenToWorld(screenX, screenY, originX, originY, pixelsPerUnit float64) (worldX, worldY float64) {
	if pixelsPerUnit == 0 {
		return 0, 0
	}
	return (screenX - originX) / pixelsPerUnit, (originY - screenY) / pixelsPerUnit
}

// ScreenAngle 把世界朝向角（度，逆时针）转换为屏幕旋转角（弧度，顺时针，供 GeoM.Rotate 使用）
func ScreenAngle(worldDeg float64) float64 {
	return -worldDeg * math.Pi / 180
}
