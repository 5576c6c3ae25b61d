package entities

import (
	"fmt"
	"log"

	"github.com/decker502/lanehop/pkg/components"
	"github.com/decker502/lanehop/pkg/config"
	"github.com/decker502/lanehop/pkg/ecs"
	"github.com/decker502/lanehop/pkg/lanes"
	"github.com/decker502/lanehop/pkg/systems"
)

// NewPlayerEntity 创建玩家车道实体
//
// 参数:
//   - em: 实体管理器
//   - grid: 共享行网格
//   - physics: 物理系统（mover 为 "body" 时必需）
//   - player: 玩家配置
//   - laneCfg: 车道参数（起始行、插值速率）
//
// 返回:
//   - ecs.EntityID: 创建的实体ID
//   - error: 实体管理器为空、颜色无效或移动方式未知；失败时实体已被标记删除
//
// 缺少网格或物理系统不算致命错误：记录日志后挂上已禁用的移动器，
// 玩家停留在原地，关卡继续运行。
func NewPlayerEntity(
	em *ecs.EntityManager,
	grid *lanes.RowGrid,
	physics *systems.PhysicsSystem,
	player config.PlayerConfig,
	laneCfg config.LaneConfig,
) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	shapeColor, err := config.ParseColor(player.Color)
	if err != nil {
		return 0, fmt.Errorf("player color: %w", err)
	}

	entityID := em.CreateEntity()

	pos := &components.PositionComponent{X: player.X}
	ecs.AddComponent(em, entityID, pos)
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  player.Width,
		Height: player.Height,
	})
	ecs.AddComponent(em, entityID, &components.ShapeComponent{
		Width:  player.Width,
		Height: player.Height,
		Color:  shapeColor,
	})

	// 选择位移方式：物理体或直接写变换
	var target lanes.YMover
	switch player.Mover {
	case config.MoverBody:
		if physics != nil {
			target = &systems.BodyMover{Physics: physics, Entity: entityID}
		}
	case config.MoverTransform:
		target = &systems.TransformMover{Position: pos}
	default:
		em.DestroyEntity(entityID)
		return 0, fmt.Errorf("unknown mover kind %q", player.Mover)
	}

	mover := lanes.NewLaneMover(grid, target, laneCfg.Speed)
	if err := mover.Initialize(laneCfg.StartRow()); err != nil {
		log.Printf("[PlayerFactory] Player %d lane mover disabled: %v", entityID, err)
	}
	ecs.AddComponent(em, entityID, &components.LaneMoverComponent{Mover: mover})

	log.Printf("[PlayerFactory] Created player %d (mover=%s, row=%d, Y=%.2f)",
		entityID, player.Mover, mover.RowIndex(), pos.Y)
	return entityID, nil
}
