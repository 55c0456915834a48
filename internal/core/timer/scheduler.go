package timer

import (
	"sort"
	"sync"
	"time"
)

// Scheduler delivers the fixed-rate tick and the one-shot auto-resume.
// Callbacks must not be invoked while the scheduler holds its own locks.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (stop func())
	After(delay time.Duration, fn func()) (cancel func())
}

// WallClock schedules callbacks on real time.
type WallClock struct{}

// Every calls fn on a ticker goroutine until stop is called.
func (WallClock) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	stopCh := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(stopCh) })
	}
}

// After calls fn once after delay unless cancelled first.
func (WallClock) After(delay time.Duration, fn func()) func() {
	timer := time.AfterFunc(delay, fn)
	return func() {
		timer.Stop()
	}
}

// ManualScheduler is a Scheduler driven by Advance. Due callbacks run
// synchronously on the caller's goroutine in due-time order.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	nextID int
	tasks  map[int]*manualTask
}

type manualTask struct {
	id       int
	due      time.Duration
	interval time.Duration
	fn       func()
}

// NewManualScheduler returns a scheduler whose clock starts at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{tasks: make(map[int]*manualTask)}
}

func (scheduler *ManualScheduler) Every(interval time.Duration, fn func()) func() {
	if interval <= 0 {
		interval = time.Nanosecond
	}
	return scheduler.add(interval, interval, fn)
}

func (scheduler *ManualScheduler) After(delay time.Duration, fn func()) func() {
	return scheduler.add(delay, 0, fn)
}

func (scheduler *ManualScheduler) add(delay, interval time.Duration, fn func()) func() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	scheduler.nextID++
	id := scheduler.nextID
	scheduler.tasks[id] = &manualTask{
		id:       id,
		due:      scheduler.now + delay,
		interval: interval,
		fn:       fn,
	}
	return func() {
		scheduler.mu.Lock()
		delete(scheduler.tasks, id)
		scheduler.mu.Unlock()
	}
}

// Advance moves the clock forward by delta, firing every callback that comes due.
func (scheduler *ManualScheduler) Advance(delta time.Duration) {
	scheduler.mu.Lock()
	target := scheduler.now + delta
	scheduler.mu.Unlock()

	for {
		scheduler.mu.Lock()
		task := scheduler.nextDueLocked(target)
		if task == nil {
			scheduler.now = target
			scheduler.mu.Unlock()
			return
		}
		scheduler.now = task.due
		if task.interval > 0 {
			task.due += task.interval
		} else {
			delete(scheduler.tasks, task.id)
		}
		fn := task.fn
		scheduler.mu.Unlock()

		fn()
	}
}

// Pending returns the number of scheduled callbacks.
func (scheduler *ManualScheduler) Pending() int {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return len(scheduler.tasks)
}

// Now returns the elapsed manual time.
func (scheduler *ManualScheduler) Now() time.Duration {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return scheduler.now
}

func (scheduler *ManualScheduler) nextDueLocked(target time.Duration) *manualTask {
	due := make([]*manualTask, 0, len(scheduler.tasks))
	for _, task := range scheduler.tasks {
		if task.due <= target {
			due = append(due, task)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due == due[j].due {
			return due[i].id < due[j].id
		}
		return due[i].due < due[j].due
	})
	return due[0]
}
