package config

// 布局配置常量
// 本文件定义了窗口尺寸和世界坐标到像素的缩放

const (
	// GameWindowWidth 默认逻辑窗口宽度（像素）
	GameWindowWidth = 600

	// GameWindowHeight 默认逻辑窗口高度（像素）
	GameWindowHeight = 600

	// DefaultPixelsPerUnit 默认每个世界单位的像素数
	// 飞船轨道半径 4.0 × 60 = 240 像素，留出 60 像素边距
	DefaultPixelsPerUnit = 60.0
)

// ScreenCenter 返回窗口中心的屏幕坐标（世界原点渲染位置）
func (c *GameConfig) ScreenCenter() (float64, float64) {
	return float64(c.Window.Width) / 2, float64(c.Window.Height) / 2
}
