package components

// PositionComponent 实体的世界坐标
//
// 单位是世界单位（与行坐标一致），渲染时由镜头换算成屏幕像素。
type PositionComponent struct {
	X, Y float64
}

// VelocityComponent 实体速度（世界单位/秒）
//
// 车道实体的 Y 方向由 LaneMover 驱动，VY 只用于不受车道约束的物体。
type VelocityComponent struct {
	VX, VY float64
}
