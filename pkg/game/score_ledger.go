package game

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
)

// ErrNegativeAward 分数只能增加
var ErrNegativeAward = errors.New("score award cannot be negative")

// ScoreListener 分数变化监听器，参数为新的累计总分
type ScoreListener func(total int)

// ScoreLedger 累计玩家得分并通知监听器
//
// 每个会话只有一个实例，以依赖注入的方式共享给所有敌人，不使用全局变量。
// Award 在互斥锁内完成累加与通知，监听器收到的总分顺序与 Award 调用顺序严格一致；
// Total 读取原子值，监听器内部可以安全调用。
// 监听器内部不能再调用 Award/Reset/Subscribe（会死锁）。
type ScoreLedger struct {
	mu        sync.Mutex
	total     atomic.Int64
	listeners []*listenerEntry
	nextID    int
}

type listenerEntry struct {
	id int
	fn ScoreListener
}

// NewScoreLedger 创建一个总分为 0 的账本
func NewScoreLedger() *ScoreLedger {
	return &ScoreLedger{}
}

// Award 增加分数并同步通知所有监听器
//
// 参数：
//   - points: 增加的分数（>= 0）
//
// 返回：
//   - error: points 为负时返回 ErrNegativeAward，总分不变、不通知
func (l *ScoreLedger) Award(points int) error {
	if points < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeAward, points)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	total := int(l.total.Add(int64(points)))
	log.Printf("[ScoreLedger] +%d => %d", points, total)

	for _, entry := range l.listeners {
		entry.fn(total)
	}
	return nil
}

// Reset 把总分清零（会话开始时调用一次）
// 不通知监听器：新会话的显示由订阅方自行初始化
func (l *ScoreLedger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.total.Store(0)
}

// Subscribe 注册监听器，返回取消订阅函数
// 监听器按注册顺序被调用；nil 监听器被忽略
func (l *ScoreLedger) Subscribe(listener ScoreListener) (unsubscribe func()) {
	if listener == nil {
		return func() {}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	id := l.nextID
	l.listeners = append(l.listeners, &listenerEntry{id: id, fn: listener})

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		for i, entry := range l.listeners {
			if entry.id == id {
				l.listeners = append(l.listeners[:i], l.listeners[i+1:]...)
				return
			}
		}
	}
}

// Total 返回当前累计总分
func (l *ScoreLedger) Total() int {
	return int(l.total.Load())
}

// ListenerCount 返回当前监听器数量
func (l *ScoreLedger) ListenerCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.listeners)
}
