package entities

import (
	"fmt"

	"github.com/decker502/lanehop/pkg/components"
	"github.com/decker502/lanehop/pkg/config"
	"github.com/decker502/lanehop/pkg/ecs"
)

// NewPropEntity 创建静态道具
//
// 道具带 RowSnapComponent，会在场景第一帧对齐到指定行或最近的行。
// Solid 道具会阻挡物理体的速度移动，不阻挡车道移动。
func NewPropEntity(em *ecs.EntityManager, prop config.PropConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	shapeColor, err := config.ParseColor(prop.Color)
	if err != nil {
		return 0, fmt.Errorf("prop color: %w", err)
	}

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: prop.X, Y: prop.Y})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  prop.Width,
		Height: prop.Height,
	})
	ecs.AddComponent(em, entityID, &components.ShapeComponent{
		Width:  prop.Width,
		Height: prop.Height,
		Color:  shapeColor,
	})
	ecs.AddComponent(em, entityID, &components.RowSnapComponent{Row: prop.Row})

	if prop.Solid {
		ecs.AddComponent(em, entityID, &components.SolidComponent{})
	}

	return entityID, nil
}
