package config

// 布局配置常量
// 世界坐标使用与行坐标相同的单位，Y 轴向下（Y 越小越靠上）

const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// PixelsPerUnit 每个世界单位对应的像素数
	// 默认 5 行间距 1.0，总高度 4 个单位 = 400 像素，留出上下边距
	PixelsPerUnit = 100.0

	// LaneGuideWidth 行参考线宽度（像素）
	LaneGuideWidth = 1.0
)

// WorldToScreen 将世界坐标换算为屏幕坐标
//
// 参数：
//   - worldX, worldY: 世界坐标
//   - cameraX, cameraY: 镜头中心（世界坐标）
//
// 返回：
//   - 屏幕坐标（像素），镜头中心位于屏幕中心
func WorldToScreen(worldX, worldY, cameraX, cameraY float64) (float64, float64) {
	screenX := GameWindowWidth/2 + (worldX-cameraX)*PixelsPerUnit
	screenY := GameWindowHeight/2 + (worldY-cameraY)*PixelsPerUnit
	return screenX, screenY
}
