package components

// CollisionComponent 定义实体的碰撞检测边界框
// 用于物理系统扫掠移动时检测阻挡
type CollisionComponent struct {
	Width   float64 // 碰撞盒宽度（世界单位）
	Height  float64 // 碰撞盒高度（世界单位）
	OffsetX float64 // 碰撞盒中心相对于实体位置的X偏移量
	OffsetY float64 // 碰撞盒中心相对于实体位置的Y偏移量
}

// SolidComponent 标记实体为实心障碍物
// 物理体扫掠移动时会停在实心障碍物的边缘
type SolidComponent struct{}
