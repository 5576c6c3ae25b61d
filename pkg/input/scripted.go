package input

// ScriptedSource 按帧预设的动作来源
//
// 用于测试和无界面模拟：Press 登记某一帧的按下，Advance 进入下一帧。
type ScriptedSource struct {
	frame   int
	presses map[int][]Action
}

// NewScriptedSource 创建空脚本
func NewScriptedSource() *ScriptedSource {
	return &ScriptedSource{presses: make(map[int][]Action)}
}

// Press 在指定帧按下动作
func (s *ScriptedSource) Press(frame int, action Action) {
	s.presses[frame] = append(s.presses[frame], action)
}

// Frame 返回当前帧号
func (s *ScriptedSource) Frame() int {
	return s.frame
}

// Advance 进入下一帧
func (s *ScriptedSource) Advance() {
	s.frame++
}

// IsActionJustPressed 实现 IntentSource
func (s *ScriptedSource) IsActionJustPressed(action Action) bool {
	for _, a := range s.presses[s.frame] {
		if a == action {
			return true
		}
	}
	return false
}
