package components

// CameraComponent 镜头状态
//
// X/Y 是镜头中心的世界坐标。Framed 为 true 表示已完成一次性的行带居中。
type CameraComponent struct {
	// X 镜头中心X坐标（世界坐标）
	X float64

	// Y 镜头中心Y坐标（世界坐标）
	Y float64

	// Framed 是否已对齐到行带中心
	Framed bool
}
