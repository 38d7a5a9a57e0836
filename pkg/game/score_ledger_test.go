package game

import (
	"errors"
	"sync"
	"testing"

	"github.com/decker502/gyruss/pkg/components"
	"github.com/decker502/gyruss/pkg/config"
)

// TestScoreLedger_AwardNotifiesInOrder award(5) 再 award(3)：总分 8，监听器依次收到 5、8
func TestScoreLedger_AwardNotifiesInOrder(t *testing.T) {
	ledger := NewScoreLedger()

	var received []int
	ledger.Subscribe(func(total int) {
		received = append(received, total)
	})

	if err := ledger.Award(5); err != nil {
		t.Fatalf("Award(5) error = %v", err)
	}
	if err := ledger.Award(3); err != nil {
		t.Fatalf("Award(3) error = %v", err)
	}

	if ledger.Total() != 8 {
		t.Errorf("Expected total 8, got %d", ledger.Total())
	}
	if len(received) != 2 || received[0] != 5 || received[1] != 8 {
		t.Errorf("Expected notifications [5 8], got %v", received)
	}
}

// TestScoreLedger_NegativeAwardRejected 分数不能减少
func TestScoreLedger_NegativeAwardRejected(t *testing.T) {
	ledger := NewScoreLedger()
	calls := 0
	ledger.Subscribe(func(int) { calls++ })

	_ = ledger.Award(4)
	err := ledger.Award(-2)
	if !errors.Is(err, ErrNegativeAward) {
		t.Fatalf("Expected ErrNegativeAward, got %v", err)
	}
	if ledger.Total() != 4 {
		t.Errorf("Total should stay 4, got %d", ledger.Total())
	}
	if calls != 1 {
		t.Errorf("Listener should be called once, got %d", calls)
	}
}

// TestScoreLedger_ResetAndUnsubscribe 重置与取消订阅
func TestScoreLedger_ResetAndUnsubscribe(t *testing.T) {
	ledger := NewScoreLedger()

	var first, second []int
	unsubscribe := ledger.Subscribe(func(total int) { first = append(first, total) })
	ledger.Subscribe(func(total int) { second = append(second, total) })

	_ = ledger.Award(10)
	unsubscribe()
	ledger.Reset()
	if ledger.Total() != 0 {
		t.Fatalf("Expected total 0 after reset, got %d", ledger.Total())
	}
	_ = ledger.Award(1)

	if len(first) != 1 || first[0] != 10 {
		t.Errorf("Unsubscribed listener got %v", first)
	}
	if len(second) != 2 || second[1] != 1 {
		t.Errorf("Remaining listener got %v", second)
	}
	if ledger.ListenerCount() != 1 {
		t.Errorf("Expected 1 listener, got %d", ledger.ListenerCount())
	}

	// 重复取消订阅是安全的
	unsubscribe()
}

// TestScoreLedger_ListenerCanReadTotal 监听器内部读取总分不会死锁
func TestScoreLedger_ListenerCanReadTotal(t *testing.T) {
	ledger := NewScoreLedger()
	var seen int
	ledger.Subscribe(func(total int) {
		seen = ledger.Total()
	})
	_ = ledger.Award(7)
	if seen != 7 {
		t.Errorf("Expected listener to read 7, got %d", seen)
	}
}

// TestScoreLedger_ConcurrentAwardsSerialised 并发加分时通知序列单调递增
func TestScoreLedger_ConcurrentAwardsSerialised(t *testing.T) {
	ledger := NewScoreLedger()

	var notifications []int
	ledger.Subscribe(func(total int) {
		notifications = append(notifications, total)
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = ledger.Award(2)
		}()
	}
	wg.Wait()

	if ledger.Total() != 100 {
		t.Fatalf("Expected total 100, got %d", ledger.Total())
	}
	if len(notifications) != 50 {
		t.Fatalf("Expected 50 notifications, got %d", len(notifications))
	}
	for i, total := range notifications {
		if total != (i+1)*2 {
			t.Fatalf("Notification %d = %d, want %d", i, total, (i+1)*2)
		}
	}
}

// TestScoreTierFor 档位边界
func TestScoreTierFor(t *testing.T) {
	score := config.ScoreConfig{
		NearRadius: 1.5,
		FarRadius:  2.5,
		HighPoints: 10,
		MidPoints:  5,
		LowPoints:  1,
	}
	const eps = 1e-9

	tests := []struct {
		name       string
		radius     float64
		wantTier   components.ScoreTier
		wantPoints int
	}{
		{"中心附近", 0.05, components.ScoreTierHigh, 10},
		{"恰好等于近阈值", 1.5, components.ScoreTierHigh, 10},
		{"略大于近阈值", 1.5 + eps, components.ScoreTierMid, 5},
		{"恰好等于远阈值", 2.5, components.ScoreTierMid, 5},
		{"略大于远阈值", 2.5 + eps, components.ScoreTierLow, 1},
		{"最大半径", 3.7, components.ScoreTierLow, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, points := ScoreTierFor(tt.radius, score)
			if tier != tt.wantTier || points != tt.wantPoints {
				t.Errorf("ScoreTierFor(%g) = (%v, %d), want (%v, %d)", tt.radius, tier, points, tt.wantTier, tt.wantPoints)
			}
		})
	}
}

// TestGameState_Accuracy 命中率
func TestGameState_Accuracy(t *testing.T) {
	gs := NewGameState()
	if gs.Accuracy() != 0 {
		t.Errorf("Expected 0 accuracy with no shots, got %g", gs.Accuracy())
	}
	gs.ShotsFired = 4
	gs.EnemiesDestroyed = 1
	if gs.Accuracy() != 0.25 {
		t.Errorf("Expected 0.25, got %g", gs.Accuracy())
	}
}
