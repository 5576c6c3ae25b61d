package components

import "image/color"

// ShapeComponent 矩形外观
// 以实体位置为中心绘制
type ShapeComponent struct {
	Width  float64 // 宽度（世界单位）
	Height float64 // 高度（世界单位）
	Color  color.RGBA
}
