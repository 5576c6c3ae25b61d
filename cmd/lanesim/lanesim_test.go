package main

import (
	"bytes"
	"context"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/decker502/lanehop/pkg/input"
	"github.com/decker502/lanehop/pkg/lanes"
)

func TestParsePressScript(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"empty", "", false},
		{"single", "0:up", false},
		{"multiple", "0:up, 10:DOWN,10:up", false},
		{"missing colon", "0up", true},
		{"bad frame", "x:up", true},
		{"negative frame", "-1:up", true},
		{"bad direction", "3:left", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parsePressScript(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("parsePressScript(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}

	script, err := parsePressScript("0:up,2:down")
	if err != nil {
		t.Fatal(err)
	}
	if !script.IsActionJustPressed(input.ActionMoveUp) {
		t.Error("frame 0 should press move_up")
	}
	script.Advance()
	script.Advance()
	if !script.IsActionJustPressed(input.ActionMoveDown) || script.IsActionJustPressed(input.ActionMoveUp) {
		t.Error("frame 2 should press only move_down")
	}
}

// executeRoot 以给定参数运行命令并返回标准输出
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	out, err := executeRoot(t, "run", "--frames", "3", "--dt", "0.1", "--press", "0:down")
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, out)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 frames, got %d lines:\n%s", len(lines), out)
	}

	// speed*dt = 1.5 >= 1，第一帧直接到达第 1 行
	fields := strings.Fields(lines[1])
	if fields[0] != "0" || fields[1] != "1" || fields[2] != "1.0000" || fields[3] != "1.0000" {
		t.Errorf("frame 0 = %q, want row 1 settled on 1.0", lines[1])
	}
}

func TestRunCommand_Errors(t *testing.T) {
	tests := [][]string{
		{"run", "--dt", "0"},
		{"run", "--speed", "-1"},
		{"run", "--press", "1:sideways"},
		{"run", "--level", "does-not-exist.yaml"},
	}
	for _, args := range tests {
		if _, err := executeRoot(t, args...); err == nil {
			t.Errorf("expected error for %v", args)
		}
	}
}

func TestGridCommand(t *testing.T) {
	out, err := executeRoot(t, "grid", "--rows", "3,1,0", "--y", "0.4")
	if err != nil {
		t.Fatalf("grid failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "center 1.5000") {
		t.Errorf("missing center line:\n%s", out)
	}
	if !strings.Contains(out, "row 2 (y 0.0000)") {
		t.Errorf("missing nearest row line:\n%s", out)
	}
}

func TestPrintGrid_NoQuery(t *testing.T) {
	grid, err := lanes.NewRowGrid([]float64{1, -1})
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	printGrid(&out, grid, nil)
	if strings.Contains(out.String(), "nearest") {
		t.Errorf("nearest line printed without a query:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "center 0.0000") {
		t.Errorf("missing center line:\n%s", out.String())
	}
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	badKeys := filepath.Join(dir, "keys.yaml")
	badRows := filepath.Join(dir, "rows.toml")

	files := map[string]string{
		good:    "name: good\nlanes:\n  rows: [1, 0]\n",
		badKeys: "keys:\n  move_up: [NotAKey]\n",
		badRows: "[lanes]\nrows = []\n",
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	out, err := executeRoot(t, "validate", good)
	if err != nil {
		t.Fatalf("validate good level failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, `"good", 2 rows`) {
		t.Errorf("unexpected output:\n%s", out)
	}

	out, err = executeRoot(t, "validate", good, badKeys, badRows)
	if err == nil {
		t.Fatalf("expected failure, output:\n%s", out)
	}
	if !strings.Contains(err.Error(), "2 of 3") {
		t.Errorf("error = %v, want 2 of 3 invalid", err)
	}
}

func TestValidateCommand_ShippedLevels(t *testing.T) {
	levels, err := filepath.Glob("../../data/levels/*")
	if err != nil {
		t.Fatal(err)
	}
	if len(levels) == 0 {
		t.Skip("no shipped levels found")
	}
	var out bytes.Buffer
	if failed := validateLevels(&out, levels); failed != 0 {
		t.Errorf("%d shipped levels are invalid:\n%s", failed, out.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Fatal("expected default logger")
	}

	var buf bytes.Buffer
	logger := newLogger(&buf, log.DebugLevel)
	ctx := withLogger(context.Background(), logger)
	if loggerFromContext(ctx) != logger {
		t.Error("loggerFromContext did not return the attached logger")
	}

	// 标准库日志被转发到 debug 级别
	bridgeStdLog(logger)
	stdlog.Printf("[Test] bridged message")
	if !strings.Contains(buf.String(), "bridged message") {
		t.Errorf("std log not forwarded, got %q", buf.String())
	}
	stdlog.SetOutput(io.Discard)
}
