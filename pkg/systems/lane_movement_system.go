package systems

import (
	"log"

	"github.com/decker502/lanehop/pkg/components"
	"github.com/decker502/lanehop/pkg/ecs"
	"github.com/decker502/lanehop/pkg/input"
)

// LaneMovementSystem 车道移动系统
//
// 每帧固定顺序：
//  1. 读取本帧的边沿输入（只读一次）
//  2. 把意图应用到每个 LaneMover 的行索引
//  3. 推进插值并提交 Y 坐标
//
// 本帧的输入在同一帧的插值中生效，不会延迟到下一帧。
type LaneMovementSystem struct {
	entityManager *ecs.EntityManager
	intents       input.IntentSource
}

// NewLaneMovementSystem 创建车道移动系统
//
// 参数：
//   - em: 实体管理器
//   - intents: 动作来源，nil 表示只做插值不响应输入
func NewLaneMovementSystem(em *ecs.EntityManager, intents input.IntentSource) *LaneMovementSystem {
	return &LaneMovementSystem{
		entityManager: em,
		intents:       intents,
	}
}

// Update 更新所有车道实体
//
// 参数：
//
//	deltaTime - 自上一帧以来经过的时间（秒）
func (s *LaneMovementSystem) Update(deltaTime float64) {
	intents := input.Intents(s.intents)

	entities := ecs.GetEntitiesWith1[*components.LaneMoverComponent](s.entityManager)
	for _, entityID := range entities {
		comp, _ := ecs.GetComponent[*components.LaneMoverComponent](s.entityManager, entityID)
		if comp.Mover == nil {
			continue
		}

		for _, dir := range intents {
			if comp.Mover.OnLaneIntent(dir) {
				log.Printf("[LaneMovementSystem] Entity %d -> row %d (intent=%s, targetY=%.2f)",
					entityID, comp.Mover.RowIndex(), dir, comp.Mover.TargetY())
			}
		}

		comp.Mover.Tick(deltaTime)
	}
}
