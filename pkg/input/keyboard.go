package input

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultBindings 默认按键绑定
func DefaultBindings() map[Action][]ebiten.Key {
	return map[Action][]ebiten.Key{
		ActionMoveUp:   {ebiten.KeyArrowUp, ebiten.KeyW},
		ActionMoveDown: {ebiten.KeyArrowDown, ebiten.KeyS},
	}
}

// KeyboardSource 键盘动作来源
//
// 使用 inpututil.IsKeyJustPressed，一次物理按下只触发一次。
type KeyboardSource struct {
	bindings map[Action][]ebiten.Key
}

// NewKeyboardSource 创建键盘动作来源
//
// 参数：
//   - bindings: 动作到按键的映射，nil 时使用 DefaultBindings
func NewKeyboardSource(bindings map[Action][]ebiten.Key) *KeyboardSource {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &KeyboardSource{bindings: bindings}
}

// IsActionJustPressed 实现 IntentSource
func (k *KeyboardSource) IsActionJustPressed(action Action) bool {
	for _, key := range k.bindings[action] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// Bindings 返回当前绑定
func (k *KeyboardSource) Bindings() map[Action][]ebiten.Key {
	return k.bindings
}

// ParseBindings 解析配置中的按键名
//
// 按键名使用 ebiten.Key 的文本形式（如 "ArrowUp"、"W"）。
// 配置中没有出现的动作保留默认绑定。
//
// 参数：
//   - names: 动作名 -> 按键名列表（来自关卡配置 keys 字段）
func ParseBindings(names map[string][]string) (map[Action][]ebiten.Key, error) {
	bindings := DefaultBindings()
	for actionName, keyNames := range names {
		action := Action(actionName)
		if _, known := bindings[action]; !known {
			return nil, fmt.Errorf("unknown action %q", actionName)
		}

		keys := make([]ebiten.Key, 0, len(keyNames))
		for _, name := range keyNames {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("action %s: invalid key %q: %w", actionName, name, err)
			}
			keys = append(keys, key)
		}
		bindings[action] = keys
		log.Printf("[Input] Bound %s -> %v", action, keyNames)
	}
	return bindings, nil
}
