package systems

import (
	"log"

	"github.com/decker502/lanehop/pkg/components"
	"github.com/decker502/lanehop/pkg/ecs"
	"github.com/decker502/lanehop/pkg/lanes"
)

// RowSnapSystem 一次性行对齐系统
//
// 把带 RowSnapComponent 的实体对齐到指定行或最近的行，然后移除该组件，
// 实体此后不再被处理。
type RowSnapSystem struct {
	entityManager *ecs.EntityManager
	grid          *lanes.RowGrid
}

// NewRowSnapSystem 创建行对齐系统
func NewRowSnapSystem(em *ecs.EntityManager, grid *lanes.RowGrid) *RowSnapSystem {
	if grid == nil {
		log.Printf("[RowSnapSystem] 配置错误: 没有行网格, 对齐功能已禁用")
	}
	return &RowSnapSystem{
		entityManager: em,
		grid:          grid,
	}
}

// Update 对齐所有待处理的实体
//
// 返回本次对齐的实体数量。
func (s *RowSnapSystem) Update() int {
	if s.grid == nil {
		return 0
	}

	entities := ecs.GetEntitiesWith2[
		*components.RowSnapComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, entityID := range entities {
		snap, _ := ecs.GetComponent[*components.RowSnapComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		from := pos.Y
		target := &TransformMover{Position: pos}

		var snapped float64
		if snap.Row != nil {
			snapped = lanes.SnapToRow(s.grid, target, *snap.Row)
		} else {
			snapped = lanes.SnapToNearestRow(s.grid, target, from)
		}
		ecs.RemoveComponent[*components.RowSnapComponent](s.entityManager, entityID)

		log.Printf("[RowSnapSystem] Entity %d snapped Y %.2f -> %.2f", entityID, from, snapped)
	}
	return len(entities)
}
