package lanes

// SnapToNearestRow 把目标瞬间对齐到距离 y 最近的行
//
// 返回对齐后的 Y 坐标。用于场景初始化时摆放静态物体。
func SnapToNearestRow(grid *RowGrid, target YMover, y float64) float64 {
	snapped := grid.NearestRow(y)
	target.MoveToY(snapped)
	return snapped
}

// SnapToRow 把目标瞬间对齐到指定行，越界索引钳制到 [0, N-1]
//
// 返回对齐后的 Y 坐标。
func SnapToRow(grid *RowGrid, target YMover, row int) float64 {
	snapped := grid.RowY(row)
	target.MoveToY(snapped)
	return snapped
}

// OneShot 只执行一次的任务
//
// 执行后进入惰性状态，之后的 Do 调用直接返回 false。
type OneShot struct {
	done bool
}

// Do 首次调用时执行 fn 并返回 true
func (o *OneShot) Do(fn func()) bool {
	if o.done {
		return false
	}
	o.done = true
	fn()
	return true
}

// Done 是否已经执行过
func (o *OneShot) Done() bool {
	return o.done
}
