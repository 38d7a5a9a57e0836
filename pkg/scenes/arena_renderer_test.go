package scenes

import (
	"math"
	"strings"
	"testing"

	"github.com/decker502/gyruss/pkg/components"
	"github.com/decker502/gyruss/pkg/config"
	"github.com/decker502/gyruss/pkg/session"
)

func TestArenaRenderer_ToScreen(t *testing.T) {
	cfg := config.DefaultGameConfig()
	r := NewArenaRenderer(cfg)

	tests := []struct {
		name  string
		x, y  float64
		wantX float32
		wantY float32
	}{
		{name: "原点位于窗口中心", x: 0, y: 0, wantX: 300, wantY: 300},
		{name: "Y 轴向上", x: 0, y: 1, wantX: 300, wantY: 240},
		{name: "飞船初始位置在下方", x: 0, y: -4, wantX: 300, wantY: 540},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gx, gy := r.ToScreen(tt.x, tt.y)
			if math.Abs(float64(gx-tt.wantX)) > 1e-4 || math.Abs(float64(gy-tt.wantY)) > 1e-4 {
				t.Errorf("ToScreen(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, gx, gy, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestStatusLines(t *testing.T) {
	snap := &session.Snapshot{
		WavesRemaining: 3,
		WaveState:      components.WaveStateCooldown,
		Enemies:        make([]session.EnemyView, 2),
	}

	lines := StatusLines(snap, false)
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "WAVES LEFT 3") {
		t.Errorf("lines[0] = %q", lines[0])
	}
	if !strings.Contains(lines[1], "ENEMIES 2") {
		t.Errorf("lines[1] = %q", lines[1])
	}

	if got := StatusLines(snap, true); !strings.HasPrefix(got[len(got)-1], "PAUSED") {
		t.Errorf("暂停时最后一行应为 PAUSED, got %q", got[len(got)-1])
	}

	snap.Cleared = true
	if got := StatusLines(snap, false); !strings.HasPrefix(got[len(got)-1], "CLEARED") {
		t.Errorf("清场后最后一行应为 CLEARED, got %q", got[len(got)-1])
	}
}
