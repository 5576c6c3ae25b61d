package ecs

import (
	"reflect"
	"testing"
)

func TestGenericAPI(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testLane{Row: 3})

	t.Run("GetComponent", func(t *testing.T) {
		lane, ok := GetComponent[*testLane](em, id)
		if !ok {
			t.Fatal("GetComponent 失败：组件不存在")
		}
		if lane.Row != 3 {
			t.Errorf("Row = %d, want 3", lane.Row)
		}
	})

	t.Run("missing component", func(t *testing.T) {
		tr, ok := GetComponent[*testTransform](em, id)
		if ok || tr != nil {
			t.Error("expected missing transform component")
		}
	})

	t.Run("interop with reflect API", func(t *testing.T) {
		if !em.HasComponent(id, reflect.TypeOf(&testLane{})) {
			t.Error("generic AddComponent must be visible to reflect HasComponent")
		}
		em.AddComponent(id, &testTransform{Y: 2})
		tr, ok := GetComponent[*testTransform](em, id)
		if !ok || tr.Y != 2 {
			t.Error("reflect AddComponent must be visible to generic GetComponent")
		}
	})

	t.Run("RemoveComponent", func(t *testing.T) {
		RemoveComponent[*testLane](em, id)
		if HasComponent[*testLane](em, id) {
			t.Error("component should be removed")
		}
		if !HasComponent[*testTransform](em, id) {
			t.Error("other components must survive")
		}
	})
}

func TestGetEntitiesWithN(t *testing.T) {
	em := NewEntityManager()

	a := em.CreateEntity()
	AddComponent(em, a, &testTransform{})
	AddComponent(em, a, &testLane{})

	b := em.CreateEntity()
	AddComponent(em, b, &testTransform{})

	if got := GetEntitiesWith1[*testTransform](em); len(got) != 2 {
		t.Errorf("GetEntitiesWith1: got %d entities, want 2", len(got))
	}
	got := GetEntitiesWith2[*testTransform, *testLane](em)
	if len(got) != 1 || got[0] != a {
		t.Errorf("GetEntitiesWith2: got %v, want [%d]", got, a)
	}
	if got := GetEntitiesWith3[*testTransform, *testLane, *testLane](em); len(got) != 1 {
		t.Errorf("GetEntitiesWith3: got %d entities, want 1", len(got))
	}
}
