package moderation

import (
	"log"
	"time"
)

const sweepInterval = 5 * time.Minute

// Sweeper 定期清理超时未审核的投稿
type Sweeper struct {
	service *Service
	timeout time.Duration
	stop    chan struct{}
}

func NewSweeper(service *Service, timeout time.Duration) *Sweeper {
	return &Sweeper{
		service: service,
		timeout: timeout,
		stop:    make(chan struct{}),
	}
}

// Start runs the sweep loop in a background goroutine.
func (w *Sweeper) Start() {
	go w.run()
}

func (w *Sweeper) Stop() {
	close(w.stop)
}

func (w *Sweeper) run() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.sweepOnce(time.Now())
		case <-w.stop:
			return
		}
	}
}

func (w *Sweeper) sweepOnce(now time.Time) {
	if n := w.service.ExpireOlderThan(now.Add(-w.timeout)); n > 0 {
		log.Printf("已自动失效 %d 条超时投稿", n)
	}
}
