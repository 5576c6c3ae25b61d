package entities

import (
	"testing"

	"github.com/decker502/lanehop/pkg/components"
	"github.com/decker502/lanehop/pkg/config"
	"github.com/decker502/lanehop/pkg/ecs"
	"github.com/decker502/lanehop/pkg/lanes"
	"github.com/decker502/lanehop/pkg/systems"
)

func newTestGrid(t *testing.T) *lanes.RowGrid {
	t.Helper()
	grid, err := lanes.NewRowGrid(lanes.DefaultRows)
	if err != nil {
		t.Fatalf("NewRowGrid failed: %v", err)
	}
	return grid
}

func TestNewPlayerEntity(t *testing.T) {
	for _, kind := range []string{config.MoverBody, config.MoverTransform} {
		t.Run(kind, func(t *testing.T) {
			em := ecs.NewEntityManager()
			cfg := config.DefaultLevelConfig()
			cfg.Player.Mover = kind
			cfg.Player.X = -2

			id, err := NewPlayerEntity(em, newTestGrid(t), systems.NewPhysicsSystem(em), cfg.Player, cfg.Lanes)
			if err != nil {
				t.Fatalf("NewPlayerEntity failed: %v", err)
			}

			pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
			if !ok {
				t.Fatal("PositionComponent missing")
			}
			// 出生时直接位于起始行，不滑动
			if pos.X != -2 || pos.Y != 0 {
				t.Errorf("spawn position = (%v, %v), want (-2, 0)", pos.X, pos.Y)
			}

			laneComp, ok := ecs.GetComponent[*components.LaneMoverComponent](em, id)
			if !ok || laneComp.Mover == nil {
				t.Fatal("LaneMoverComponent missing")
			}
			if laneComp.Mover.RowIndex() != 2 || !laneComp.Mover.Enabled() {
				t.Errorf("mover row=%d enabled=%v", laneComp.Mover.RowIndex(), laneComp.Mover.Enabled())
			}
			if !ecs.HasComponent[*components.ShapeComponent](em, id) {
				t.Error("ShapeComponent missing")
			}
		})
	}
}

func TestNewPlayerEntity_MissingCollaborators(t *testing.T) {
	cfg := config.DefaultLevelConfig()

	tests := []struct {
		name    string
		noGrid  bool
		physics bool
	}{
		{"no grid", true, true},
		{"body without physics", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			var grid *lanes.RowGrid
			if !tt.noGrid {
				grid = newTestGrid(t)
			}
			var ps *systems.PhysicsSystem
			if tt.physics {
				ps = systems.NewPhysicsSystem(em)
			}

			id, err := NewPlayerEntity(em, grid, ps, cfg.Player, cfg.Lanes)
			if err != nil {
				t.Fatalf("missing collaborator should not fail level load: %v", err)
			}
			em.RemoveMarkedEntities()
			if em.EntityCount() != 1 {
				t.Fatalf("player entity should be kept, %d entities", em.EntityCount())
			}

			comp, ok := ecs.GetComponent[*components.LaneMoverComponent](em, id)
			if !ok {
				t.Fatal("player should still carry a LaneMoverComponent")
			}
			if comp.Mover.Enabled() {
				t.Error("mover should be disabled")
			}
			if comp.Mover.OnLaneIntent(lanes.Up) {
				t.Error("disabled mover accepted an intent")
			}
			comp.Mover.Tick(1)

			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			if pos.Y != 0 {
				t.Errorf("disabled player moved to Y=%v", pos.Y)
			}
		})
	}

	t.Run("unknown mover", func(t *testing.T) {
		em := ecs.NewEntityManager()
		p := cfg.Player
		p.Mover = "teleport"
		if _, err := NewPlayerEntity(em, newTestGrid(t), nil, p, cfg.Lanes); err == nil {
			t.Error("expected error for unknown mover")
		}
	})
}

func TestNewPropEntity(t *testing.T) {
	em := ecs.NewEntityManager()

	solid, err := NewPropEntity(em, config.PropConfig{X: 1, Y: 0.7, Width: 1, Height: 1, Solid: true, Color: "#ffffff"})
	if err != nil {
		t.Fatalf("NewPropEntity failed: %v", err)
	}
	if !ecs.HasComponent[*components.SolidComponent](em, solid) {
		t.Error("solid prop should have SolidComponent")
	}
	if !ecs.HasComponent[*components.RowSnapComponent](em, solid) {
		t.Error("prop should be marked for row snapping")
	}

	decor, err := NewPropEntity(em, config.PropConfig{Width: 1, Height: 1, Color: "#000000"})
	if err != nil {
		t.Fatalf("NewPropEntity failed: %v", err)
	}
	if ecs.HasComponent[*components.SolidComponent](em, decor) {
		t.Error("non-solid prop must not block")
	}

	row := 7
	pinned, err := NewPropEntity(em, config.PropConfig{Row: &row, Width: 1, Height: 1, Color: "#000000"})
	if err != nil {
		t.Fatalf("NewPropEntity failed: %v", err)
	}
	snap, _ := ecs.GetComponent[*components.RowSnapComponent](em, pinned)
	if snap.Row == nil || *snap.Row != 7 {
		t.Errorf("RowSnapComponent.Row = %v, want 7", snap.Row)
	}

	if _, err := NewPropEntity(em, config.PropConfig{Color: "nope"}); err == nil {
		t.Error("expected error for bad color")
	}
}
