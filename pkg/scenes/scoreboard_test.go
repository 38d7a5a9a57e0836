package scenes

import (
	"testing"

	"github.com/decker502/gyruss/pkg/game"
)

func TestScoreboard_FollowsLedger(t *testing.T) {
	ledger := game.NewScoreLedger()
	if err := ledger.Award(7); err != nil {
		t.Fatalf("Award: %v", err)
	}

	sb := NewScoreboard(ledger)
	if sb.Shown() != 7 {
		t.Fatalf("初始显示值 = %d, want 7", sb.Shown())
	}
	if sb.Flashing() {
		t.Error("未得分前不应高亮")
	}

	if err := ledger.Award(10); err != nil {
		t.Fatalf("Award: %v", err)
	}
	if sb.Shown() != 17 {
		t.Errorf("得分后显示值 = %d, want 17", sb.Shown())
	}
	if !sb.Flashing() {
		t.Error("得分后应高亮")
	}
	if got := sb.Text(); got != "Score: 17" {
		t.Errorf("Text() = %q, want %q", got, "Score: 17")
	}

	sb.Update(ScoreFlashDuration + 0.01)
	if sb.Flashing() {
		t.Error("高亮应在持续时间后结束")
	}
}

func TestScoreboard_CloseUnsubscribes(t *testing.T) {
	ledger := game.NewScoreLedger()
	sb := NewScoreboard(ledger)
	if ledger.ListenerCount() != 1 {
		t.Fatalf("ListenerCount = %d, want 1", ledger.ListenerCount())
	}

	sb.Close()
	sb.Close()
	if ledger.ListenerCount() != 0 {
		t.Errorf("关闭后 ListenerCount = %d, want 0", ledger.ListenerCount())
	}

	_ = ledger.Award(5)
	if sb.Shown() != 0 {
		t.Errorf("取消订阅后不应更新, shown = %d", sb.Shown())
	}
}
