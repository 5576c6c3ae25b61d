// Package lanes 实现离散行（车道）坐标模型与行切换状态机
//
// RowGrid 保存固定的行 Y 坐标表，LaneMover 在行之间做指数插值移动。
// 两者都只在逻辑更新线程上使用；RowGrid 创建后只读，可被多个实体共享。
package lanes

import (
	"errors"
	"math"
)

// ErrEmptyRowGrid 行列表为空（配置错误）
var ErrEmptyRowGrid = errors.New("row grid must contain at least one row")

// DefaultRows 默认的 5 行 Y 坐标（索引 0..4）
var DefaultRows = []float64{2.0, 1.0, 0.0, -1.0, -2.0}

// RowGrid 行网格
//
// rows[i] 是第 i 行的世界 Y 坐标。顺序有语义（索引即行号），
// 但不要求单调，所有查询都按原始数值进行。
type RowGrid struct {
	rows []float64
}

// NewRowGrid 创建行网格
//
// 参数:
//   - rows: 每行的 Y 坐标，至少一行（内部会复制，调用方后续修改不影响网格）
//
// 返回:
//   - *RowGrid: 行网格
//   - error: rows 为空时返回 ErrEmptyRowGrid
func NewRowGrid(rows []float64) (*RowGrid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyRowGrid
	}
	copied := make([]float64, len(rows))
	copy(copied, rows)
	return &RowGrid{rows: copied}, nil
}

// Len 返回行数
func (g *RowGrid) Len() int {
	return len(g.rows)
}

// Rows 返回行坐标的副本
func (g *RowGrid) Rows() []float64 {
	out := make([]float64, len(g.rows))
	copy(out, g.rows)
	return out
}

// ClampIndex 将行索引限制在 [0, N-1]
func (g *RowGrid) ClampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if index >= len(g.rows) {
		return len(g.rows) - 1
	}
	return index
}

// RowY 返回指定行的 Y 坐标，越界索引会被钳制到首行或末行
func (g *RowGrid) RowY(index int) float64 {
	return g.rows[g.ClampIndex(index)]
}

// CenterY 返回首行与末行的中点
//
// 注意：这是两端行的中点，不是所有行的平均值。
func (g *RowGrid) CenterY() float64 {
	return (g.rows[0] + g.rows[len(g.rows)-1]) / 2
}

// NearestRow 返回距离 y 最近的行的 Y 坐标
// 距离相同时取索引最小的行
func (g *RowGrid) NearestRow(y float64) float64 {
	return g.rows[g.NearestIndex(y)]
}

// NearestIndex 返回距离 y 最近的行索引
//
// 线性扫描，只有严格更近才替换当前最优，因此并列时保留先遇到的（最小索引）。
func (g *RowGrid) NearestIndex(y float64) int {
	best := 0
	minDifference := math.Inf(1)
	for i, rowY := range g.rows {
		diff := math.Abs(rowY - y)
		if diff < minDifference {
			minDifference = diff
			best = i
		}
	}
	return best
}
