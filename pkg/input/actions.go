// Package input 把物理按键映射为离散的车道动作
//
// 只提供"本帧是否刚刚按下"的边沿语义，长按不会重复触发。
package input

import (
	"github.com/decker502/lanehop/pkg/lanes"
)

// Action 命名的离散动作
type Action string

// 车道动作
const (
	ActionMoveUp   Action = "move_up"
	ActionMoveDown Action = "move_down"
)

// laneActions 每帧读取动作的固定顺序
var laneActions = []struct {
	action    Action
	direction lanes.Direction
}{
	{ActionMoveUp, lanes.Up},
	{ActionMoveDown, lanes.Down},
}

// IntentSource 边沿触发的动作来源
type IntentSource interface {
	// IsActionJustPressed 动作是否在本帧刚刚被激活
	IsActionJustPressed(action Action) bool
}

// Intents 收集本帧的车道意图（先 up 后 down）
func Intents(src IntentSource) []lanes.Direction {
	if src == nil {
		return nil
	}
	var intents []lanes.Direction
	for _, la := range laneActions {
		if src.IsActionJustPressed(la.action) {
			intents = append(intents, la.direction)
		}
	}
	return intents
}
