package systems

import (
	"testing"

	"github.com/decker502/lanehop/pkg/components"
	"github.com/decker502/lanehop/pkg/config"
	"github.com/decker502/lanehop/pkg/ecs"
	"github.com/decker502/lanehop/pkg/lanes"
)

// TestCameraSystem_NewCameraSystem 测试镜头系统的创建
func TestCameraSystem_NewCameraSystem(t *testing.T) {
	em := ecs.NewEntityManager()
	cs := NewCameraSystem(em, newTestGrid(t))

	if cs.CameraEntity() == 0 {
		t.Fatal("Camera entity not created")
	}
	cameraComp, ok := ecs.GetComponent[*components.CameraComponent](em, cs.CameraEntity())
	if !ok {
		t.Fatal("CameraComponent not added to camera entity")
	}
	if cameraComp.Framed {
		t.Error("camera must not be framed before the first Update")
	}
}

// TestCameraSystem_FramesOnce 居中只执行一次
func TestCameraSystem_FramesOnce(t *testing.T) {
	em := ecs.NewEntityManager()
	grid, _ := lanes.NewRowGrid([]float64{4, 3, 2, 1, -2})
	cs := NewCameraSystem(em, grid)

	cs.Update()
	_, y := cs.Position()
	if y != 1.0 {
		t.Errorf("camera Y = %v, want CenterY 1.0", y)
	}

	cameraComp, _ := ecs.GetComponent[*components.CameraComponent](em, cs.CameraEntity())
	if !cameraComp.Framed {
		t.Error("camera should be marked framed")
	}

	// 之后的调整不会被覆盖
	cameraComp.Y = 42
	cs.Update()
	if _, y := cs.Position(); y != 42 {
		t.Errorf("camera re-framed after first use, Y = %v", y)
	}
}

// TestCameraSystem_NoGrid 没有网格时不崩溃
func TestCameraSystem_NoGrid(t *testing.T) {
	em := ecs.NewEntityManager()
	cs := NewCameraSystem(em, nil)
	cs.Update()

	cameraComp, _ := ecs.GetComponent[*components.CameraComponent](em, cs.CameraEntity())
	if cameraComp.Framed {
		t.Error("camera without grid must not report framed")
	}
}

// TestCameraSystem_WorldToScreen 镜头中心对应屏幕中心
func TestCameraSystem_WorldToScreen(t *testing.T) {
	em := ecs.NewEntityManager()
	grid, _ := lanes.NewRowGrid([]float64{3, 1})
	cs := NewCameraSystem(em, grid)
	cs.Update()

	sx, sy := cs.WorldToScreen(0, grid.CenterY())
	if sx != config.GameWindowWidth/2 || sy != config.GameWindowHeight/2 {
		t.Errorf("center maps to (%v, %v), want screen center", sx, sy)
	}
}
