package turntimer

import "time"

// ManualScheduler is a Scheduler driven by Advance() rather than the wall clock
// It is intended for tests
type ManualScheduler struct {
	now   time.Duration
	tasks []*manualTask
}

type manualTask struct {
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

// Stop prevents the task from running
func (m *manualTask) Stop() bool {
	if m.stopped || m.fired {
		return false
	}

	m.stopped = true
	return true
}

// NewManualScheduler returns a scheduler whose clock starts at zero
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc schedules fn to run once the clock has advanced by d
func (m *ManualScheduler) AfterFunc(d time.Duration, fn func()) Stopper {
	task := &manualTask{
		at: m.now + d,
		fn: fn,
	}

	m.tasks = append(m.tasks, task)
	return task
}

// Advance moves the clock forward, running every task that becomes due in order
// Tasks scheduled by a running task also run if they become due in the window
func (m *ManualScheduler) Advance(d time.Duration) {
	target := m.now + d
	for {
		task := m.nextDue(target)
		if task == nil {
			break
		}

		m.now = task.at
		task.fired = true
		task.fn()
	}

	m.now = target
	m.compact()
}

// Pending returns how many tasks are waiting to run
func (m *ManualScheduler) Pending() int {
	n := 0
	for _, task := range m.tasks {
		if !task.stopped && !task.fired {
			n++
		}
	}

	return n
}

func (m *ManualScheduler) nextDue(target time.Duration) *manualTask {
	var next *manualTask
	for _, task := range m.tasks {
		if task.stopped || task.fired || task.at > target {
			continue
		}

		if next == nil || task.at < next.at {
			next = task
		}
	}

	return next
}

func (m *ManualScheduler) compact() {
	tasks := m.tasks[:0]
	for _, task := range m.tasks {
		if !task.stopped && !task.fired {
			tasks = append(tasks, task)
		}
	}

	m.tasks = tasks
}
