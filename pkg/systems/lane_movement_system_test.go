package systems

import (
	"math"
	"testing"

	"github.com/decker502/lanehop/pkg/components"
	"github.com/decker502/lanehop/pkg/ecs"
	"github.com/decker502/lanehop/pkg/input"
	"github.com/decker502/lanehop/pkg/lanes"
)

// newTestGrid 默认 5 行网格
func newTestGrid(t *testing.T) *lanes.RowGrid {
	t.Helper()
	grid, err := lanes.NewRowGrid(lanes.DefaultRows)
	if err != nil {
		t.Fatalf("NewRowGrid failed: %v", err)
	}
	return grid
}

// createTransformLaneEntity 创建一个由 TransformMover 驱动的车道实体
func createTransformLaneEntity(t *testing.T, em *ecs.EntityManager, grid *lanes.RowGrid, row int) (ecs.EntityID, *components.PositionComponent, *lanes.LaneMover) {
	t.Helper()
	id := em.CreateEntity()
	pos := &components.PositionComponent{X: 3, Y: 99}
	ecs.AddComponent(em, id, pos)

	mover := lanes.NewLaneMover(grid, &TransformMover{Position: pos}, 15)
	if err := mover.Initialize(row); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	ecs.AddComponent(em, id, &components.LaneMoverComponent{Mover: mover})
	return id, pos, mover
}

// TestLaneMovementSystem_IntentThenTickSameFrame 本帧输入在本帧插值中生效
func TestLaneMovementSystem_IntentThenTickSameFrame(t *testing.T) {
	em := ecs.NewEntityManager()
	grid := newTestGrid(t)
	_, pos, mover := createTransformLaneEntity(t, em, grid, 2)

	if pos.Y != 0 {
		t.Fatalf("spawn Y = %v, want 0 (no initial slide)", pos.Y)
	}

	src := input.NewScriptedSource()
	src.Press(0, input.ActionMoveDown)
	sys := NewLaneMovementSystem(em, src)

	sys.Update(1.0 / 60.0)

	if mover.RowIndex() != 1 {
		t.Errorf("RowIndex = %d, want 1", mover.RowIndex())
	}
	if pos.Y <= 0 || pos.Y >= 1 {
		t.Errorf("position Y = %v, want already moving toward 1 in the same frame", pos.Y)
	}
	if pos.X != 3 {
		t.Errorf("X must be untouched, got %v", pos.X)
	}
}

// TestLaneMovementSystem_HoldDoesNotRepeat 一次按下只移动一行
func TestLaneMovementSystem_HoldDoesNotRepeat(t *testing.T) {
	em := ecs.NewEntityManager()
	grid := newTestGrid(t)
	_, pos, mover := createTransformLaneEntity(t, em, grid, 2)

	src := input.NewScriptedSource()
	src.Press(0, input.ActionMoveUp)
	sys := NewLaneMovementSystem(em, src)

	for i := 0; i < 120; i++ {
		sys.Update(1.0 / 60.0)
		src.Advance()
	}

	if mover.RowIndex() != 3 {
		t.Errorf("RowIndex = %d, want 3 after a single press", mover.RowIndex())
	}
	if math.Abs(pos.Y+1.0) > 1e-6 {
		t.Errorf("position Y = %v, want settled near -1", pos.Y)
	}
}

// TestLaneMovementSystem_AllMoversShareIntents 同一帧输入作用于所有车道实体
func TestLaneMovementSystem_AllMoversShareIntents(t *testing.T) {
	em := ecs.NewEntityManager()
	grid := newTestGrid(t)
	_, _, a := createTransformLaneEntity(t, em, grid, 0)
	_, _, b := createTransformLaneEntity(t, em, grid, 4)

	src := input.NewScriptedSource()
	src.Press(0, input.ActionMoveUp)
	NewLaneMovementSystem(em, src).Update(1.0 / 60.0)

	if a.RowIndex() != 1 {
		t.Errorf("mover a row = %d, want 1", a.RowIndex())
	}
	if b.RowIndex() != 4 {
		t.Errorf("mover b row = %d, want 4 (clamped)", b.RowIndex())
	}
}

// TestLaneMovementSystem_NilSourceAndDisabledMover 没有输入源或移动器被禁用时不崩溃
func TestLaneMovementSystem_NilSourceAndDisabledMover(t *testing.T) {
	em := ecs.NewEntityManager()

	id := em.CreateEntity()
	broken := lanes.NewLaneMover(nil, nil, 15)
	_ = broken.Initialize(0)
	ecs.AddComponent(em, id, &components.LaneMoverComponent{Mover: broken})

	empty := em.CreateEntity()
	ecs.AddComponent(em, empty, &components.LaneMoverComponent{})

	sys := NewLaneMovementSystem(em, nil)
	sys.Update(1.0 / 60.0)

	if broken.Enabled() {
		t.Error("mover without collaborators must stay disabled")
	}
}
