package systems

import (
	"math"

	"github.com/decker502/lanehop/pkg/components"
	"github.com/decker502/lanehop/pkg/ecs"
)

// PhysicsSystem 处理物理体移动
//
// 提供沿单轴的 AABB 扫掠：移动中的实体遇到实心障碍物时停在其边缘。
// 已经重叠的障碍物不会阻挡（避免卡死）。
type PhysicsSystem struct {
	em *ecs.EntityManager
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器，用于查询和操作实体组件
func NewPhysicsSystem(em *ecs.EntityManager) *PhysicsSystem {
	return &PhysicsSystem{em: em}
}

// aabb 轴对齐边界框
type aabb struct {
	left, right, top, bottom float64
}

// boundsOf 计算实体的碰撞盒（中心为 位置+偏移）
func boundsOf(pos *components.PositionComponent, col *components.CollisionComponent) aabb {
	cx := pos.X + col.OffsetX
	cy := pos.Y + col.OffsetY
	return aabb{
		left:   cx - col.Width/2,
		right:  cx + col.Width/2,
		top:    cy - col.Height/2,
		bottom: cy + col.Height/2,
	}
}

// overlaps 两个区间是否严格重叠（相切不算）
func overlaps(minA, maxA, minB, maxB float64) bool {
	return maxA > minB && minA < maxB
}

// MoveAndCollide 先沿 X 再沿 Y 移动实体，遇到实心障碍物时停在接触点
//
// 没有碰撞组件的实体直接移动。
//
// 返回:
//   - movedX, movedY: 实际位移
//   - hit: 最后一次阻挡本次移动的实体ID，0 表示没有阻挡
func (ps *PhysicsSystem) MoveAndCollide(id ecs.EntityID, dx, dy float64) (movedX, movedY float64, hit ecs.EntityID) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](ps.em, id)
	if !ok {
		return 0, 0, 0
	}

	col, hasCol := ecs.GetComponent[*components.CollisionComponent](ps.em, id)
	if !hasCol {
		pos.X += dx
		pos.Y += dy
		return dx, dy, 0
	}

	if dx != 0 {
		var blocker ecs.EntityID
		movedX, blocker = ps.sweep(id, pos, col, dx, true)
		pos.X += movedX
		if blocker != 0 {
			hit = blocker
		}
	}
	if dy != 0 {
		var blocker ecs.EntityID
		movedY, blocker = ps.sweep(id, pos, col, dy, false)
		pos.Y += movedY
		if blocker != 0 {
			hit = blocker
		}
	}
	return movedX, movedY, hit
}

// sweep 计算沿单轴可移动的最大距离
func (ps *PhysicsSystem) sweep(
	id ecs.EntityID,
	pos *components.PositionComponent,
	col *components.CollisionComponent,
	delta float64,
	horizontal bool,
) (float64, ecs.EntityID) {
	box := boundsOf(pos, col)
	allowed := delta
	var blocker ecs.EntityID

	solids := ecs.GetEntitiesWith3[
		*components.SolidComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](ps.em)

	for _, other := range solids {
		if other == id {
			continue
		}
		otherPos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, other)
		otherCol, _ := ecs.GetComponent[*components.CollisionComponent](ps.em, other)
		ob := boundsOf(otherPos, otherCol)

		var gap float64
		if horizontal {
			if !overlaps(box.top, box.bottom, ob.top, ob.bottom) {
				continue
			}
			if delta > 0 {
				if ob.left < box.right {
					continue
				}
				gap = ob.left - box.right
			} else {
				if ob.right > box.left {
					continue
				}
				gap = ob.right - box.left
			}
		} else {
			if !overlaps(box.left, box.right, ob.left, ob.right) {
				continue
			}
			if delta > 0 {
				if ob.top < box.bottom {
					continue
				}
				gap = ob.top - box.bottom
			} else {
				if ob.bottom > box.top {
					continue
				}
				gap = ob.bottom - box.top
			}
		}

		if math.Abs(gap) < math.Abs(allowed) {
			allowed = gap
			blocker = other
		}
	}

	return allowed, blocker
}

// Update 按速度移动所有物理体
//
// 车道实体的 Y 由 LaneMovementSystem 驱动，这里只处理速度组件。
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
func (ps *PhysicsSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[
		*components.VelocityComponent,
		*components.PositionComponent,
	](ps.em)

	for _, id := range entities {
		vel, _ := ecs.GetComponent[*components.VelocityComponent](ps.em, id)
		if vel.VX == 0 && vel.VY == 0 {
			continue
		}
		ps.MoveAndCollide(id, vel.VX*deltaTime, vel.VY*deltaTime)
	}
}
