package utils

import (
	"math"
	"testing"
)

// TestNormalizeAngle 角度规整
func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{180, 180},
		{-180, 180},
		{190, -170},
		{-190, 170},
		{720, 0},
		{540, 180},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); math.Abs(got-tt.want) > floatTolerance {
			t.Errorf("NormalizeAngle(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

// TestSignedAngle 有符号夹角
func TestSignedAngle(t *testing.T) {
	tests := []struct {
		name                   string
		fromX, fromY, toX, toY float64
		want                   float64
	}{
		{"右到上逆时针90", 1, 0, 0, 1, 90},
		{"右到下顺时针90", 1, 0, 0, -1, -90},
		{"同向", 1, 1, 2, 2, 0},
		{"上到左", 0, 1, -1, 0, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SignedAngle(tt.fromX, tt.fromY, tt.toX, tt.toY)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SignedAngle() = %g, want %g", got, tt.want)
			}
		})
	}
}

// TestDirectionAngle 零向量无方向
func TestDirectionAngle(t *testing.T) {
	if _, ok := DirectionAngle(0, 0); ok {
		t.Error("Zero vector should have no direction")
	}
	if deg, ok := DirectionAngle(0, 1); !ok || math.Abs(deg-90) > floatTolerance {
		t.Errorf("Expected 90, got %g (ok=%v)", deg, ok)
	}
}

// TestRotateTowards_BoundedRate 单步转动不超过上限
func TestRotateTowards_BoundedRate(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		target   float64
		maxDelta float64
		want     float64
	}{
		{"可一步到达", 10, 20, 15, 20},
		{"受限逆时针", 0, 90, 14, 14},
		{"受限顺时针", 0, -90, 14, -14},
		{"跨越±180取最短弧", 170, -170, 5, 175},
		{"零速率不转动", 30, 60, 0, 30},
		{"恰好等于上限", 0, 45, 45, 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotateTowards(tt.current, tt.target, tt.maxDelta)
			if math.Abs(got-tt.want) > floatTolerance {
				t.Errorf("RotateTowards() = %g, want %g", got, tt.want)
			}
		})
	}
}

// TestRotateTowards_ConvergesWithoutOvershoot 多步逼近不越过目标
func TestRotateTowards_ConvergesWithoutOvershoot(t *testing.T) {
	angle := 0.0
	target := 135.0
	for i := 0; i < 20; i++ {
		next := RotateTowards(angle, target, 14)
		if step := math.Abs(NormalizeAngle(next - angle)); step > 14+floatTolerance {
			t.Fatalf("Step %d rotated %g degrees, exceeds 14", i, step)
		}
		angle = next
	}
	if angle != target {
		t.Errorf("Expected to converge to %g, got %g", target, angle)
	}
}

// TestMoveTowards 直线移动永不越过目标
func TestMoveTowards(t *testing.T) {
	x, y := MoveTowards(0, -3, 0, 0, 1)
	if math.Abs(x) > floatTolerance || math.Abs(y+2) > floatTolerance {
		t.Errorf("Expected (0, -2), got (%g, %g)", x, y)
	}

	x, y = MoveTowards(0, -0.5, 0, 0, 1)
	if x != 0 || y != 0 {
		t.Errorf("Expected clamp to target (0, 0), got (%g, %g)", x, y)
	}

	x, y = MoveTowards(1, 1, 3, 3, 0)
	if x != 1 || y != 1 {
		t.Errorf("Zero distance should not move, got (%g, %g)", x, y)
	}
}

// TestWorldScreenRoundTrip 坐标互转
func TestWorldScreenRoundTrip(t *testing.T) {
	sx, sy := WorldToScreen(0, -4, 300, 300, 60)
	if sx != 300 || sy != 540 {
		t.Errorf("Expected (300, 540), got (%g, %g)", sx, sy)
	}

	wx, wy := ScreenToWorld(sx, sy, 300, 300, 60)
	if math.Abs(wx) > floatTolerance || math.Abs(wy+4) > floatTolerance {
		t.Errorf("Round trip failed: (%g, %g)", wx, wy)
	}

	if got := ScreenAngle(90); math.Abs(got+math.Pi/2) > floatTolerance {
		t.Errorf("ScreenAngle(90) = %g, want -π/2", got)
	}
}

// TestClampFloat 钳制
func TestClampFloat(t *testing.T) {
	if got := ClampFloat(5, 0, 3.7); got != 3.7 {
		t.Errorf("Expected 3.7, got %g", got)
	}
	if got := ClampFloat(-1, 0, 3.7); got != 0 {
		t.Errorf("Expected 0, got %g", got)
	}
}
