package systems

import (
	"math"

	"github.com/decker502/lanehop/pkg/components"
	"github.com/decker502/lanehop/pkg/ecs"
)

// TransformMover 直接写入位置组件的 Y 坐标（无碰撞）
type TransformMover struct {
	Position *components.PositionComponent
}

// MoveToY 实现 lanes.YMover
func (t *TransformMover) MoveToY(y float64) {
	t.Position.Y = y
}

// WorldY 实现 lanes.YReader
func (t *TransformMover) WorldY() float64 {
	return t.Position.Y
}

// BodyMover 移动物理体实体的 Y 坐标
//
// 车道 Y 直接写入位置组件，不经过扫掠；碰撞由本帧稍后的
// PhysicsSystem.Update 单独处理，因此移动器的 CurrentY 始终等于实体的 Y。
type BodyMover struct {
	Physics *PhysicsSystem
	Entity  ecs.EntityID
}

func (b *BodyMover) position() *components.PositionComponent {
	pos, ok := ecs.GetComponent[*components.PositionComponent](b.Physics.em, b.Entity)
	if !ok {
		return nil
	}
	return pos
}

// MoveToY 实现 lanes.YMover
func (b *BodyMover) MoveToY(y float64) {
	if pos := b.position(); pos != nil {
		pos.Y = y
	}
}

// WorldY 实现 lanes.YReader，实体已不存在时返回 NaN
func (b *BodyMover) WorldY() float64 {
	if pos := b.position(); pos != nil {
		return pos.Y
	}
	return math.NaN()
}
