package components

// RowSnapComponent 一次性对齐标记
//
// 带此组件的静态实体会在场景第一帧被对齐，之后组件被移除，
// 实体不再参与对齐。Row 非空时对齐到该行（越界钳制），否则对齐到最近的行。
type RowSnapComponent struct {
	Row *int
}
