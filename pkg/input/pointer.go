package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSource 触摸/鼠标点击输入
//
// 点击屏幕上半部分为 move_up，下半部分为 move_down。
// 同时支持触摸和鼠标左键，优先检测触摸。
type PointerSource struct {
	screenHeight int
}

// NewPointerSource 创建指针输入源
//
// 参数：
//   - screenHeight: 逻辑屏幕高度（像素），用于划分上下半区
func NewPointerSource(screenHeight int) *PointerSource {
	return &PointerSource{screenHeight: screenHeight}
}

// IsActionJustPressed 实现 IntentSource
func (p *PointerSource) IsActionJustPressed(action Action) bool {
	pressed, _, y := justPressedPointer()
	if !pressed {
		return false
	}
	return ActionForPointerY(y, p.screenHeight) == action
}

// ActionForPointerY 根据点击位置判断车道动作
func ActionForPointerY(y, screenHeight int) Action {
	if y < screenHeight/2 {
		return ActionMoveUp
	}
	return ActionMoveDown
}

// justPressedPointer 检查本帧是否刚刚按下指针（触摸或鼠标）
// 返回是否按下以及按下位置
func justPressedPointer() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// MultiSource 合并多个输入源，任一来源激活即视为激活
type MultiSource []IntentSource

// IsActionJustPressed 实现 IntentSource
func (m MultiSource) IsActionJustPressed(action Action) bool {
	for _, src := range m {
		if src != nil && src.IsActionJustPressed(action) {
			return true
		}
	}
	return false
}
