package status

import (
	"context"
	"sync"
	"time"

	"github.com/mkhattab22/Schedule/internal/models"
)

// DefaultInterval is how often a display surface refreshes its view.
const DefaultInterval = 5 * time.Second

// UpdateFunc receives each status snapshot. On a fetch failure shifts is nil
// and err carries the cause; the loop keeps polling on its fixed interval
// and never retries early.
type UpdateFunc func(shifts []models.Shift, err error)

// Watcher holds one display surface's poll state: the selected date and the
// active timer. Watching a new date cancels the prior loop before starting
// the next, so a watcher never has more than one loop running.
type Watcher struct {
	client   *Client
	interval time.Duration

	mu     sync.Mutex
	date   time.Time
	cancel context.CancelFunc
	done   chan struct{}
}

func NewWatcher(client *Client, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Watcher{client: client, interval: interval}
}

// Watch selects a date and begins polling it: one immediate fetch, then one
// per interval, each delivered to fn. Any previously watched date stops
// first. The lock spans stop-and-replace, so concurrent Watch calls cannot
// leave a second loop running.
func (w *Watcher) Watch(date time.Time, fn UpdateFunc) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopLocked()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	w.date = date
	w.cancel = cancel
	w.done = done

	go w.run(ctx, date, fn, done)
}

// Stop tears the watcher down. Safe to call repeatedly or before any Watch.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopLocked()
}

// Date returns the currently selected date; zero when nothing is watched.
func (w *Watcher) Date() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.date
}

// stopLocked cancels the active loop and waits for it to drain. The run
// goroutine never takes the lock, so waiting here cannot deadlock.
func (w *Watcher) stopLocked() {
	if w.cancel != nil {
		w.cancel()
		<-w.done
	}
	w.cancel = nil
	w.done = nil
	w.date = time.Time{}
}

func (w *Watcher) run(ctx context.Context, date time.Time, fn UpdateFunc, done chan struct{}) {
	defer close(done)

	w.fetch(ctx, date, fn)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.fetch(ctx, date, fn)
		}
	}
}

func (w *Watcher) fetch(ctx context.Context, date time.Time, fn UpdateFunc) {
	shifts, err := w.client.EmployeesByDate(ctx, date)
	if ctx.Err() != nil {
		return
	}
	fn(shifts, err)
}
