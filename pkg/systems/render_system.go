package systems

import (
	"image/color"

	"github.com/decker502/lanehop/pkg/components"
	"github.com/decker502/lanehop/pkg/config"
	"github.com/decker502/lanehop/pkg/ecs"
	"github.com/decker502/lanehop/pkg/lanes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{R: 24, G: 28, B: 36, A: 255}
	laneGuideColor  = color.RGBA{R: 90, G: 100, B: 120, A: 255}
)

// RenderSystem 绘制行参考线和矩形实体
type RenderSystem struct {
	entityManager *ecs.EntityManager
	camera        *CameraSystem
	grid          *lanes.RowGrid

	// ShowLaneGuides 是否绘制行参考线
	ShowLaneGuides bool
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, camera *CameraSystem, grid *lanes.RowGrid) *RenderSystem {
	return &RenderSystem{
		entityManager:  em,
		camera:         camera,
		grid:           grid,
		ShowLaneGuides: true,
	}
}

// Draw 绘制一帧
func (rs *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	if rs.ShowLaneGuides && rs.grid != nil {
		for _, rowY := range rs.grid.Rows() {
			_, sy := rs.camera.WorldToScreen(0, rowY)
			vector.StrokeLine(screen, 0, float32(sy), config.GameWindowWidth, float32(sy),
				config.LaneGuideWidth, laneGuideColor, false)
		}
	}

	entities := ecs.GetEntitiesWith2[
		*components.ShapeComponent,
		*components.PositionComponent,
	](rs.entityManager)

	for _, id := range entities {
		shape, _ := ecs.GetComponent[*components.ShapeComponent](rs.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](rs.entityManager, id)

		sx, sy := rs.camera.WorldToScreen(pos.X, pos.Y)
		w := shape.Width * config.PixelsPerUnit
		h := shape.Height * config.PixelsPerUnit
		vector.DrawFilledRect(screen, float32(sx-w/2), float32(sy-h/2), float32(w), float32(h), shape.Color, false)
	}
}
