package moderation

import (
	"sync"
	"time"
)

// CooldownGate 记录每个用户下一次允许投稿的时间。
// 旧用户的条目不会被清理，每个用户只占一条固定大小的记录。
type CooldownGate struct {
	mu     sync.Mutex
	window time.Duration
	next   map[string]time.Time
}

func NewCooldownGate(window time.Duration) *CooldownGate {
	return &CooldownGate{
		window: window,
		next:   make(map[string]time.Time),
	}
}

// CanSubmit reports whether the user may submit at the given time.
// 不允许时返回剩余等待时间。
func (g *CooldownGate) CanSubmit(userID string, now time.Time) (bool, time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	end, ok := g.next[userID]
	if !ok || !now.Before(end) {
		return true, 0
	}
	return false, end.Sub(now)
}

// Record sets the user's next allowed submission time to now plus the
// cooldown window, overwriting any prior entry.
func (g *CooldownGate) Record(userID string, now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.next[userID] = now.Add(g.window)
}
