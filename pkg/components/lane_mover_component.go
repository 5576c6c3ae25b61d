package components

import "github.com/decker502/lanehop/pkg/lanes"

// LaneMoverComponent 车道移动组件
//
// 持有实体专属的 LaneMover，由 LaneMovementSystem 每帧驱动。
type LaneMoverComponent struct {
	Mover *lanes.LaneMover
}
