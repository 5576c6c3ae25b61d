package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/lanehop/pkg/components"
	"github.com/decker502/lanehop/pkg/config"
	"github.com/decker502/lanehop/pkg/ecs"
	"github.com/decker502/lanehop/pkg/entities"
	"github.com/decker502/lanehop/pkg/game"
	"github.com/decker502/lanehop/pkg/input"
	"github.com/decker502/lanehop/pkg/lanes"
	"github.com/decker502/lanehop/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var _ game.Scene = (*LaneScene)(nil)

// LaneScene 车道关卡场景
//
// 持有行网格、实体管理器和全部系统，按固定顺序推进一帧：
// 行对齐 -> 镜头 -> 车道移动（输入 + 插值）-> 物理 -> 清理实体。
type LaneScene struct {
	level         *config.LevelConfig
	entityManager *ecs.EntityManager
	grid          *lanes.RowGrid
	playerEntity  ecs.EntityID

	// 系统
	rowSnapSystem      *systems.RowSnapSystem
	cameraSystem       *systems.CameraSystem
	laneMovementSystem *systems.LaneMovementSystem
	physicsSystem      *systems.PhysicsSystem
	renderSystem       *systems.RenderSystem

	frame int
}

// NewLaneScene 根据关卡配置创建场景
//
// 参数：
//   - level: 已通过验证的关卡配置
//   - intents: 动作来源（键盘或脚本），nil 表示不响应输入
//
// 返回：
//   - error: 行网格为空或玩家实体创建失败
func NewLaneScene(level *config.LevelConfig, intents input.IntentSource) (*LaneScene, error) {
	if level == nil {
		return nil, fmt.Errorf("level config cannot be nil")
	}

	grid, err := lanes.NewRowGrid(level.Lanes.Rows)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", level.Name, err)
	}

	em := ecs.NewEntityManager()
	s := &LaneScene{
		level:         level,
		entityManager: em,
		grid:          grid,
	}

	s.physicsSystem = systems.NewPhysicsSystem(em)
	s.rowSnapSystem = systems.NewRowSnapSystem(em, grid)
	s.cameraSystem = systems.NewCameraSystem(em, grid)
	s.laneMovementSystem = systems.NewLaneMovementSystem(em, intents)
	s.renderSystem = systems.NewRenderSystem(em, s.cameraSystem, grid)

	// 玩家先于道具创建，出生吸附时场上还没有实心障碍物
	s.playerEntity, err = entities.NewPlayerEntity(em, grid, s.physicsSystem, level.Player, level.Lanes)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", level.Name, err)
	}

	for i, prop := range level.Props {
		if _, err := entities.NewPropEntity(em, prop); err != nil {
			return nil, fmt.Errorf("level %q prop %d: %w", level.Name, i, err)
		}
	}

	log.Printf("[LaneScene] Level %q ready: %d rows, %d props, player=%d",
		level.Name, grid.Len(), len(level.Props), s.playerEntity)
	return s, nil
}

// Update 推进一帧
func (s *LaneScene) Update(deltaTime float64) {
	s.rowSnapSystem.Update()
	s.cameraSystem.Update()
	s.laneMovementSystem.Update(deltaTime)
	s.physicsSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
	s.frame++
}

// Draw 绘制场景和左上角状态信息
func (s *LaneScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)

	if mover := s.PlayerMover(); mover != nil {
		hud := fmt.Sprintf("%s  row %d/%d  Y %.2f -> %.2f",
			s.level.Name, mover.RowIndex(), s.grid.Len()-1, mover.CurrentY(), mover.TargetY())
		ebitenutil.DebugPrintAt(screen, hud, 10, 10)
	}
}

// SetShowLaneGuides 开关行参考线
func (s *LaneScene) SetShowLaneGuides(show bool) {
	s.renderSystem.ShowLaneGuides = show
}

// ShowLaneGuides 返回是否绘制行参考线
func (s *LaneScene) ShowLaneGuides() bool {
	return s.renderSystem.ShowLaneGuides
}

// Level 返回场景使用的关卡配置
func (s *LaneScene) Level() *config.LevelConfig {
	return s.level
}

// Grid 返回场景共享的行网格
func (s *LaneScene) Grid() *lanes.RowGrid {
	return s.grid
}

// EntityManager 返回场景的实体管理器
func (s *LaneScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// PlayerEntity 返回玩家实体ID
func (s *LaneScene) PlayerEntity() ecs.EntityID {
	return s.playerEntity
}

// PlayerMover 返回玩家的车道移动器，实体已不存在时返回 nil
func (s *LaneScene) PlayerMover() *lanes.LaneMover {
	comp, ok := ecs.GetComponent[*components.LaneMoverComponent](s.entityManager, s.playerEntity)
	if !ok {
		return nil
	}
	return comp.Mover
}

// PlayerPosition 返回玩家当前世界坐标
func (s *LaneScene) PlayerPosition() (float64, float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.playerEntity)
	if !ok {
		return 0, 0
	}
	return pos.X, pos.Y
}

// Camera 返回镜头中心
func (s *LaneScene) Camera() (float64, float64) {
	return s.cameraSystem.Position()
}

// Frame 返回已推进的帧数
func (s *LaneScene) Frame() int {
	return s.frame
}
