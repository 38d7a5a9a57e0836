package main

import (
	"strings"
	"testing"

	"github.com/decker502/gyruss/pkg/config"
	"github.com/decker502/gyruss/pkg/systems"
)

func TestScriptedPilot_FireEdges(t *testing.T) {
	p := newScriptedPilot(3, 0)

	var pressedFrames, releasedFrames []int
	for i := 0; i < 7; i++ {
		p.Advance()
		if p.IsJustPressed(systems.CommandFire) {
			pressedFrames = append(pressedFrames, p.Frame())
		}
		if p.IsJustReleased(systems.CommandFire) {
			releasedFrames = append(releasedFrames, p.Frame())
		}
		if p.IsHeld(systems.CommandLeft) || p.IsHeld(systems.CommandRight) {
			t.Fatalf("sweepEvery=0 时不应按住方向键 (frame %d)", p.Frame())
		}
	}

	if want := []int{1, 4, 7}; !equalInts(pressedFrames, want) {
		t.Errorf("fire pressed at %v, want %v", pressedFrames, want)
	}
	if want := []int{2, 5}; !equalInts(releasedFrames, want) {
		t.Errorf("fire released at %v, want %v", releasedFrames, want)
	}
}

func TestScriptedPilot_Sweep(t *testing.T) {
	p := newScriptedPilot(0, 2)

	// 帧:      1      2      3     4     5
	// 按住:  Right  Right  Left  Left  Right
	want := []systems.Command{
		systems.CommandRight, systems.CommandRight,
		systems.CommandLeft, systems.CommandLeft,
		systems.CommandRight,
	}
	for i, cmd := range want {
		p.Advance()
		if !p.IsHeld(cmd) {
			t.Fatalf("frame %d: expected %v held", p.Frame(), cmd)
		}
		if i == 2 {
			if !p.IsJustReleased(systems.CommandRight) || !p.IsJustPressed(systems.CommandLeft) {
				t.Errorf("frame 3: expected Right released and Left pressed")
			}
		}
	}
}

func TestRunOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    runOptions
		wantErr bool
	}{
		{name: "合法参数", opts: runOptions{frames: 10, tps: 60, fireEvery: 5}},
		{name: "帧数为0", opts: runOptions{frames: 0, tps: 60}, wantErr: true},
		{name: "TPS为0", opts: runOptions{frames: 10, tps: 0}, wantErr: true},
		{name: "负的开火间隔", opts: runOptions{frames: 10, tps: 60, fireEvery: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.validate(); (err != nil) != tt.wantErr {
				t.Errorf("validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestRun_ClearsShortSession 原地开火即可清掉从中心飞出的全部敌人
func TestRun_ClearsShortSession(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Waves.Count = 2
	cfg.Waves.EnemiesPerWave = 2
	cfg.Waves.InitialDelay = 0.1
	cfg.Waves.Interval = 1
	cfg.Waves.SpawnInterval = 0.2

	opts := runOptions{frames: 3000, tps: 50, fireEvery: 10}
	report, err := run(cfg, opts)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if !report.cleared {
		t.Fatalf("Expected cleared, report = %+v", report)
	}
	if report.enemiesSpawned != 4 || report.enemiesDestroyed != 4 {
		t.Errorf("spawned/destroyed = %d/%d, want 4/4", report.enemiesSpawned, report.enemiesDestroyed)
	}
	if report.scoreEvents != 4 {
		t.Errorf("scoreEvents = %d, want 4", report.scoreEvents)
	}
	if report.score <= 0 {
		t.Errorf("score = %d, want > 0", report.score)
	}
	if report.framesRun != report.clearedFrame {
		t.Errorf("framesRun = %d, clearedFrame = %d", report.framesRun, report.clearedFrame)
	}

	text := formatReport(cfg, opts, report)
	if !strings.Contains(text, "CLEARED at frame") {
		t.Errorf("report missing result line:\n%s", text)
	}
}

func TestRun_NoFireDoesNotClear(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Waves.Count = 1
	cfg.Waves.EnemiesPerWave = 1
	cfg.Waves.InitialDelay = 0

	report, err := run(cfg, runOptions{frames: 120, tps: 60})
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if report.cleared {
		t.Error("没有开火不应清场")
	}
	if report.shotsFired != 0 || report.score != 0 {
		t.Errorf("shots/score = %d/%d, want 0/0", report.shotsFired, report.score)
	}
	if report.framesRun != 120 {
		t.Errorf("framesRun = %d, want 120", report.framesRun)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
