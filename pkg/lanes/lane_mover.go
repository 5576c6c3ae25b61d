package lanes

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
)

// 配置错误：LaneMover 缺少必需的协作者
var (
	ErrMissingGrid   = errors.New("lane mover has no row grid")
	ErrMissingTarget = errors.New("lane mover has no movable target")
)

// Direction 行切换方向
type Direction int

const (
	// Up 行索引 +1
	Up Direction = iota
	// Down 行索引 -1
	Down
)

// String 返回方向名称
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection 解析方向名称（"up" / "down"，不区分大小写）
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	default:
		return 0, fmt.Errorf("unknown lane direction %q", s)
	}
}

// YMover 把实体的 Y 坐标移动到指定值
//
// LaneMover 只依赖这一个操作，不关心目标是普通变换还是带碰撞的物理体。
type YMover interface {
	MoveToY(y float64)
}

// YReader 可选能力：目标报告自身当前的 Y 坐标
//
// 目标实现该接口时，Tick 从实体的实际 Y 开始插值，
// 外部修改了实体位置后也不会与 currentY 脱节。
type YReader interface {
	WorldY() float64
}

// LaneMover 行切换状态机
//
// rowIndex 是逻辑目标行（输入时立即更新），currentY 是实际位置，
// 每次 Tick 以指数插值逼近 targetY。转换过程中允许随时打断重新选行。
type LaneMover struct {
	grid   *RowGrid
	target YMover
	speed  float64

	rowIndex int
	targetY  float64
	currentY float64

	enabled bool
}

// NewLaneMover 创建行移动器
//
// 参数:
//   - grid: 共享的行网格（不持有所有权）
//   - target: 接收 Y 坐标的实体
//   - speed: 插值速率（1/秒），越大收敛越快
//
// 创建后必须调用 Initialize 才会启用。
func NewLaneMover(grid *RowGrid, target YMover, speed float64) *LaneMover {
	return &LaneMover{
		grid:   grid,
		target: target,
		speed:  speed,
	}
}

// Initialize 设置起始行并立即对齐位置（出生时不滑动）
//
// 缺少网格或目标时记录诊断日志并永久禁用该移动器，之后 Tick 不做任何事。
//
// 返回:
//   - error: ErrMissingGrid / ErrMissingTarget
func (m *LaneMover) Initialize(startingRow int) error {
	if m.grid == nil {
		m.enabled = false
		log.Printf("[LaneMover] 配置错误: %v, 已禁用逐帧更新", ErrMissingGrid)
		return ErrMissingGrid
	}
	if m.target == nil {
		m.enabled = false
		log.Printf("[LaneMover] 配置错误: %v, 已禁用逐帧更新", ErrMissingTarget)
		return ErrMissingTarget
	}

	m.rowIndex = m.grid.ClampIndex(startingRow)
	m.targetY = m.grid.RowY(m.rowIndex)
	m.currentY = m.targetY
	m.target.MoveToY(m.currentY)
	m.enabled = true

	log.Printf("[LaneMover] Initialized at row %d (Y=%.2f)", m.rowIndex, m.currentY)
	return nil
}

// OnLaneIntent 处理一次行切换意图
//
// 必须由边沿触发的输入调用（每次物理按下一次），长按不能每帧重复调用。
// Up 使索引 +1，Down 使索引 -1，结果钳制在 [0, N-1]。
// targetY 立即更新，currentY 要等下一次 Tick 才变化。
//
// 返回:
//   - bool: 行索引是否发生变化
func (m *LaneMover) OnLaneIntent(dir Direction) bool {
	if !m.enabled {
		return false
	}

	next := m.rowIndex
	switch dir {
	case Up:
		next++
	case Down:
		next--
	default:
		return false
	}

	next = m.grid.ClampIndex(next)
	if next == m.rowIndex {
		return false
	}

	m.rowIndex = next
	m.targetY = m.grid.RowY(m.rowIndex)
	return true
}

// Tick 推进一帧插值并把结果提交给目标
//
// currentY = lerp(currentY, targetY, min(speed*dt, 1))
// 插值系数不超过 1，掉帧时直接到位而不会越过目标。
// 负数或 NaN 的系数按 0 处理。
func (m *LaneMover) Tick(deltaTime float64) {
	if !m.enabled {
		return
	}

	if r, ok := m.target.(YReader); ok {
		if y := r.WorldY(); !math.IsNaN(y) {
			m.currentY = y
		}
	}

	factor := m.speed * deltaTime
	if factor > 1.0 {
		factor = 1.0
	}
	if !(factor > 0) {
		factor = 0
	}

	if factor == 1.0 {
		m.currentY = m.targetY
	} else {
		m.currentY = lerp(m.currentY, m.targetY, factor)
	}
	m.target.MoveToY(m.currentY)
}

// RowIndex 返回当前逻辑行
func (m *LaneMover) RowIndex() int {
	return m.rowIndex
}

// TargetY 返回目标行的 Y 坐标
func (m *LaneMover) TargetY() float64 {
	return m.targetY
}

// CurrentY 返回当前位置
func (m *LaneMover) CurrentY() float64 {
	return m.currentY
}

// Speed 返回插值速率
func (m *LaneMover) Speed() float64 {
	return m.speed
}

// Enabled 返回是否已成功初始化
func (m *LaneMover) Enabled() bool {
	return m.enabled
}

// IsSettled 是否已停在目标行
func (m *LaneMover) IsSettled() bool {
	return m.currentY == m.targetY
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
