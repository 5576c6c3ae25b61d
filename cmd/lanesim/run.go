package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/decker502/lanehop/pkg/config"
	"github.com/decker502/lanehop/pkg/input"
	"github.com/decker502/lanehop/pkg/scenes"
)

// runOpts run 子命令的参数
type runOpts struct {
	level  string    // 关卡文件，为空时使用下面的参数
	rows   []float64 // 行坐标
	start  int       // 起始行
	speed  float64   // 插值速率
	dt     float64   // 固定时间步（秒）
	frames int       // 模拟帧数
	press  string    // 按键脚本 "帧:方向,..."
}

func newRunCmd() *cobra.Command {
	defaults := config.DefaultLevelConfig()
	opts := runOpts{
		rows:   defaults.Lanes.Rows,
		start:  config.DefaultStartingRow,
		speed:  config.DefaultLaneSpeed,
		dt:     1.0 / 60.0,
		frames: 30,
	}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate a player on the lanes and print its position every frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := opts.levelConfig(cmd)
			if err != nil {
				return err
			}
			script, err := parsePressScript(opts.press)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debugf("simulating %d frames (dt=%.4f) on level %q",
				opts.frames, opts.dt, level.Name)
			return runSimulation(cmd.OutOrStdout(), level, script, opts.dt, opts.frames)
		},
	}

	cmd.Flags().StringVar(&opts.level, "level", "", "level file (.yaml or .toml); lane flags override it when set")
	cmd.Flags().Float64SliceVar(&opts.rows, "rows", opts.rows, "world Y of each row, index order")
	cmd.Flags().IntVar(&opts.start, "start", opts.start, "starting row (clamped to the grid)")
	cmd.Flags().Float64Var(&opts.speed, "speed", opts.speed, "interpolation rate per second")
	cmd.Flags().Float64Var(&opts.dt, "dt", opts.dt, "fixed time step in seconds")
	cmd.Flags().IntVar(&opts.frames, "frames", opts.frames, "number of frames to simulate")
	cmd.Flags().StringVar(&opts.press, "press", "", "scripted presses, e.g. 0:up,10:down")

	return cmd
}

// levelConfig 组合关卡文件和命令行参数
func (o *runOpts) levelConfig(cmd *cobra.Command) (*config.LevelConfig, error) {
	level := config.DefaultLevelConfig()
	if o.level != "" {
		loaded, err := config.LoadLevelConfig(o.level)
		if err != nil {
			return nil, err
		}
		level = loaded
	}

	// 模拟只关心车道，默认用直接位移的玩家
	if o.level == "" {
		level.Player.Mover = config.MoverTransform
	}

	flags := cmd.Flags()
	if o.level == "" || flags.Changed("rows") {
		level.Lanes.Rows = o.rows
	}
	if o.level == "" || flags.Changed("start") {
		start := o.start
		level.Lanes.StartingRow = &start
	}
	if o.level == "" || flags.Changed("speed") {
		level.Lanes.Speed = o.speed
	}

	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("invalid lane parameters: %w", err)
	}
	return level, nil
}

// parsePressScript 解析 "0:up,10:down" 形式的按键脚本
func parsePressScript(s string) (*input.ScriptedSource, error) {
	script := input.NewScriptedSource()
	if strings.TrimSpace(s) == "" {
		return script, nil
	}

	for _, entry := range strings.Split(s, ",") {
		frameStr, dirStr, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok {
			return nil, fmt.Errorf("invalid press %q (want frame:direction)", entry)
		}
		frame, err := strconv.Atoi(frameStr)
		if err != nil || frame < 0 {
			return nil, fmt.Errorf("invalid press frame %q", frameStr)
		}

		switch strings.ToLower(strings.TrimSpace(dirStr)) {
		case "up":
			script.Press(frame, input.ActionMoveUp)
		case "down":
			script.Press(frame, input.ActionMoveDown)
		default:
			return nil, fmt.Errorf("invalid press direction %q (want up or down)", dirStr)
		}
	}
	return script, nil
}

// runSimulation 按固定时间步推进场景并逐帧输出
func runSimulation(w io.Writer, level *config.LevelConfig, script *input.ScriptedSource, dt float64, frames int) error {
	if dt <= 0 {
		return fmt.Errorf("dt must be positive, got %v", dt)
	}

	scene, err := scenes.NewLaneScene(level, script)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%5s %4s %9s %9s %9s\n", "frame", "row", "targetY", "currentY", "y")
	for frame := 0; frame < frames; frame++ {
		scene.Update(dt)
		script.Advance()

		mover := scene.PlayerMover()
		if mover == nil {
			return fmt.Errorf("player lane mover disappeared at frame %d", frame)
		}
		_, y := scene.PlayerPosition()
		fmt.Fprintf(w, "%5d %4d %9.4f %9.4f %9.4f\n",
			frame, mover.RowIndex(), mover.TargetY(), mover.CurrentY(), y)
	}
	return nil
}
