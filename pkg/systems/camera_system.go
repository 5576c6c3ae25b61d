package systems

import (
	"log"

	"github.com/decker502/lanehop/pkg/components"
	"github.com/decker502/lanehop/pkg/config"
	"github.com/decker502/lanehop/pkg/ecs"
	"github.com/decker502/lanehop/pkg/lanes"
)

// CameraSystem 镜头系统
//
// 场景开始时把镜头一次性对齐到行带中心（首末行中点），之后不再调整。
type CameraSystem struct {
	entityManager *ecs.EntityManager
	grid          *lanes.RowGrid
	cameraEntity  ecs.EntityID // 镜头实体ID
	framing       lanes.OneShot
}

// NewCameraSystem 创建镜头系统并生成镜头实体
func NewCameraSystem(em *ecs.EntityManager, grid *lanes.RowGrid) *CameraSystem {
	cs := &CameraSystem{
		entityManager: em,
		grid:          grid,
	}

	cs.cameraEntity = em.CreateEntity()
	ecs.AddComponent(em, cs.cameraEntity, &components.CameraComponent{})

	return cs
}

// Update 执行一次性的居中
func (cs *CameraSystem) Update() {
	cs.framing.Do(func() {
		if cs.grid == nil {
			log.Printf("[CameraSystem] 配置错误: 没有行网格, 跳过镜头居中")
			return
		}

		cameraComp, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
		if !ok {
			return
		}
		cameraComp.Y = cs.grid.CenterY()
		cameraComp.Framed = true
		log.Printf("[CameraSystem] Framed on row band center Y=%.2f", cameraComp.Y)
	})
}

// CameraEntity 返回镜头实体ID
func (cs *CameraSystem) CameraEntity() ecs.EntityID {
	return cs.cameraEntity
}

// Position 返回镜头中心（世界坐标）
func (cs *CameraSystem) Position() (float64, float64) {
	cameraComp, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return 0, 0
	}
	return cameraComp.X, cameraComp.Y
}

// WorldToScreen 把世界坐标换算为当前镜头下的屏幕坐标
func (cs *CameraSystem) WorldToScreen(x, y float64) (float64, float64) {
	camX, camY := cs.Position()
	return config.WorldToScreen(x, y, camX, camY)
}
