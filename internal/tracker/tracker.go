// Package tracker combines the task store and the urgent stack into the
// operations offered to the menu and TUI.
package tracker

import (
	"context"
	"fmt"
	"sync"

	"github.com/metalagman/taskstack/internal/task"
	"github.com/metalagman/taskstack/internal/urgent"
	"github.com/rs/zerolog/log"
)

// ErrAlreadyUrgent is returned by MarkUrgent under DuplicatesReject.
var ErrAlreadyUrgent = fmt.Errorf("%w: task is already urgent", task.ErrInvalidInput)

// Tracker owns a task backend and the urgent stack. Every method holds one
// mutex for its whole duration, so combined operations never interleave.
type Tracker struct {
	mu         sync.Mutex
	tasks      task.Backend
	stack      *urgent.Stack
	duplicates DuplicatePolicy
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithDuplicatePolicy sets how repeated MarkUrgent calls are handled.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(t *Tracker) {
		if p != "" {
			t.duplicates = p
		}
	}
}

// New creates a tracker. Duplicate urgent marks are allowed by default.
func New(tasks task.Backend, stack *urgent.Stack, opts ...Option) *Tracker {
	t := &Tracker{
		tasks:      tasks,
		stack:      stack,
		duplicates: DuplicatesAllow,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// CreateTask adds a task and returns its id.
func (t *Tracker) CreateTask(ctx context.Context, title, priority string) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tasks.Create(ctx, title, priority)
}

// ListTasks returns every task in creation order.
func (t *Tracker) ListTasks(ctx context.Context) ([]task.Task, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tasks.List(ctx)
}

// ChangeStatus sets a new status on an existing task.
func (t *Tracker) ChangeStatus(ctx context.Context, id int, status string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tasks.ChangeStatus(ctx, id, status)
}

// GetTask fetches one task.
func (t *Tracker) GetTask(ctx context.Context, id int) (task.Task, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tasks.Get(ctx, id)
}

// ProjectTable returns the table view of all tasks.
func (t *Tracker) ProjectTable(ctx context.Context) ([]task.Row, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tasks.Table(ctx)
}

// MarkUrgent flags the task urgent and pushes its id. Nothing is pushed
// unless the flag was set.
func (t *Tracker) MarkUrgent(ctx context.Context, id int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	item, err := t.tasks.Get(ctx, id)
	if err != nil {
		return err
	}
	if item.Urgent && t.duplicates == DuplicatesReject {
		return fmt.Errorf("task %d: %w", id, ErrAlreadyUrgent)
	}
	if err := t.tasks.SetUrgent(ctx, id, true); err != nil {
		return fmt.Errorf("mark task %d urgent: %w", id, err)
	}
	t.stack.Push(id)
	log.Debug().Int("task_id", id).Int("depth", t.stack.Len()).Msg("task marked urgent")
	return nil
}

// PopUrgent takes the most recently marked id off the stack, clears the
// task's urgent flag and returns the task. On any error the stack and the
// task are left as they were.
func (t *Tracker) PopUrgent(ctx context.Context) (task.Task, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id, err := t.stack.Pop()
	if err != nil {
		return task.Task{}, err
	}
	// Read first so a failure leaves both the stack and the flag untouched.
	item, err := t.tasks.Get(ctx, id)
	if err != nil {
		t.stack.Push(id)
		return task.Task{}, fmt.Errorf("read popped task %d: %w", id, err)
	}
	if err := t.tasks.SetUrgent(ctx, id, false); err != nil {
		t.stack.Push(id)
		return task.Task{}, fmt.Errorf("clear urgent on task %d: %w", id, err)
	}
	item.Urgent = false
	log.Debug().Int("task_id", id).Int("depth", t.stack.Len()).Msg("urgent task popped")
	return item, nil
}

// UrgentCount reports how many entries are on the urgent stack.
func (t *Tracker) UrgentCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stack.Len()
}
