package tracker

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/metalagman/taskstack/internal/db"
	"github.com/metalagman/taskstack/internal/task"
	"github.com/metalagman/taskstack/internal/urgent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrackers(t *testing.T, opts ...Option) map[string]*Tracker {
	t.Helper()
	database, err := db.Open(db.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return map[string]*Tracker{
		"memory": New(task.NewStore(), urgent.New(), opts...),
		"sqlite": New(task.NewSQLStore(database), urgent.New(), opts...),
	}
}

func mustCreate(t *testing.T, tr *Tracker, title, priority string) int {
	t.Helper()
	id, err := tr.CreateTask(context.Background(), title, priority)
	require.NoError(t, err)
	return id
}

func TestTracker_EndToEndScenario(t *testing.T) {
	for name, tr := range newTrackers(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			id, err := tr.CreateTask(ctx, "Buy milk", "low")
			require.NoError(t, err)
			assert.Equal(t, 1, id)

			_, err = tr.CreateTask(ctx, "", "high")
			require.ErrorIs(t, err, task.ErrInvalidInput)

			id, err = tr.CreateTask(ctx, "Ship release", "high")
			require.NoError(t, err)
			assert.Equal(t, 2, id)

			require.NoError(t, tr.MarkUrgent(ctx, 2))
			require.NoError(t, tr.MarkUrgent(ctx, 1))

			popped, err := tr.PopUrgent(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, popped.ID)
			assert.Equal(t, "Buy milk", popped.Title)
			assert.False(t, popped.Urgent)

			first, err := tr.GetTask(ctx, 1)
			require.NoError(t, err)
			assert.False(t, first.Urgent)
			second, err := tr.GetTask(ctx, 2)
			require.NoError(t, err)
			assert.True(t, second.Urgent)

			popped, err = tr.PopUrgent(ctx)
			require.NoError(t, err)
			assert.Equal(t, 2, popped.ID)

			_, err = tr.PopUrgent(ctx)
			assert.ErrorIs(t, err, urgent.ErrEmptyStack)
		})
	}
}

func TestTracker_LIFOOrder(t *testing.T) {
	for name, tr := range newTrackers(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			a := mustCreate(t, tr, "A", "low")
			b := mustCreate(t, tr, "B", "medium")
			c := mustCreate(t, tr, "C", "high")

			for _, id := range []int{a, b, c} {
				require.NoError(t, tr.MarkUrgent(ctx, id))
			}
			assert.Equal(t, 3, tr.UrgentCount())

			var got []int
			for i := 0; i < 3; i++ {
				item, err := tr.PopUrgent(ctx)
				require.NoError(t, err)
				got = append(got, item.ID)
			}
			assert.Equal(t, []int{c, b, a}, got)
			assert.Equal(t, 0, tr.UrgentCount())
		})
	}
}

func TestTracker_MarkUnknownPushesNothing(t *testing.T) {
	for name, tr := range newTrackers(t) {
		t.Run(name, func(t *testing.T) {
			err := tr.MarkUrgent(context.Background(), 42)
			require.ErrorIs(t, err, task.ErrNotFound)
			assert.Equal(t, 0, tr.UrgentCount())
		})
	}
}

func TestTracker_PopEmptyLeavesTasksAlone(t *testing.T) {
	for name, tr := range newTrackers(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			mustCreate(t, tr, "idle", "medium")

			before, err := tr.ProjectTable(ctx)
			require.NoError(t, err)

			_, err = tr.PopUrgent(ctx)
			require.ErrorIs(t, err, urgent.ErrEmptyStack)

			after, err := tr.ProjectTable(ctx)
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}
}

func TestTracker_ChangeStatusErrorsLeaveStoreUnchanged(t *testing.T) {
	for name, tr := range newTrackers(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			id := mustCreate(t, tr, "review", "high")

			before, err := tr.ListTasks(ctx)
			require.NoError(t, err)

			require.ErrorIs(t, tr.ChangeStatus(ctx, id+10, "completed"), task.ErrNotFound)
			require.ErrorIs(t, tr.ChangeStatus(ctx, id, "finished"), task.ErrInvalidInput)

			after, err := tr.ListTasks(ctx)
			require.NoError(t, err)
			assert.Equal(t, before, after)

			require.NoError(t, tr.ChangeStatus(ctx, id, "completed"))
			item, err := tr.GetTask(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, task.StatusCompleted, item.Status)
		})
	}
}

func TestTracker_DuplicatesAllowed(t *testing.T) {
	for name, tr := range newTrackers(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			id := mustCreate(t, tr, "flaky test", "high")

			require.NoError(t, tr.MarkUrgent(ctx, id))
			require.NoError(t, tr.MarkUrgent(ctx, id))
			assert.Equal(t, 2, tr.UrgentCount())

			_, err := tr.PopUrgent(ctx)
			require.NoError(t, err)
			item, err := tr.GetTask(ctx, id)
			require.NoError(t, err)
			assert.False(t, item.Urgent, "a single pop clears the flag")
			assert.Equal(t, 1, tr.UrgentCount(), "the duplicate entry stays on the stack")

			popped, err := tr.PopUrgent(ctx)
			require.NoError(t, err)
			assert.Equal(t, id, popped.ID)
		})
	}
}

func TestTracker_DuplicatesRejected(t *testing.T) {
	for name, tr := range newTrackers(t, WithDuplicatePolicy(DuplicatesReject)) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			id := mustCreate(t, tr, "flaky test", "high")

			require.NoError(t, tr.MarkUrgent(ctx, id))
			err := tr.MarkUrgent(ctx, id)
			require.ErrorIs(t, err, ErrAlreadyUrgent)
			require.ErrorIs(t, err, task.ErrInvalidInput)
			assert.Equal(t, 1, tr.UrgentCount())

			_, err = tr.PopUrgent(ctx)
			require.NoError(t, err)
			require.NoError(t, tr.MarkUrgent(ctx, id), "can be marked again once popped")
		})
	}
}

func TestTracker_ConcurrentMarkAndPop(t *testing.T) {
	tr := New(task.NewStore(), urgent.New())
	ctx := context.Background()
	const n = 50
	for i := 0; i < n; i++ {
		mustCreate(t, tr, "task", []string{"high", "medium", "low"}[i%3])
	}

	var wg sync.WaitGroup
	for id := 1; id <= n; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			assert.NoError(t, tr.MarkUrgent(ctx, id))
		}(id)
	}
	wg.Wait()
	require.Equal(t, n, tr.UrgentCount())

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := tr.PopUrgent(ctx)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, tr.UrgentCount())
	rows, err := tr.ProjectTable(ctx)
	require.NoError(t, err)
	for _, row := range rows {
		assert.False(t, row.Urgent, "task %d still urgent", row.ID)
	}
}

func TestDuplicatePolicy_UnmarshalText(t *testing.T) {
	t.Parallel()

	var p DuplicatePolicy
	require.NoError(t, p.UnmarshalText([]byte(" Reject ")))
	assert.Equal(t, DuplicatesReject, p)
	require.NoError(t, p.UnmarshalText(nil))
	assert.Equal(t, DuplicatesAllow, p)
	assert.Error(t, p.UnmarshalText([]byte("dedupe")))
}

// failingBackend wraps a backend and fails selected calls once armed.
type failingBackend struct {
	task.Backend
	failGet       bool
	failSetUrgent bool
}

var errBackend = errors.New("backend unavailable")

func (b *failingBackend) Get(ctx context.Context, id int) (task.Task, error) {
	if b.failGet {
		return task.Task{}, errBackend
	}
	return b.Backend.Get(ctx, id)
}

func (b *failingBackend) SetUrgent(ctx context.Context, id int, urgent bool) error {
	if b.failSetUrgent {
		return errBackend
	}
	return b.Backend.SetUrgent(ctx, id, urgent)
}

func TestTracker_PopUrgentFailureKeepsState(t *testing.T) {
	tests := []struct {
		name string
		arm  func(*failingBackend)
	}{
		{name: "get fails", arm: func(b *failingBackend) { b.failGet = true }},
		{name: "set urgent fails", arm: func(b *failingBackend) { b.failSetUrgent = true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			inner := task.NewStore()
			backend := &failingBackend{Backend: inner}
			tr := New(backend, urgent.New())

			id := mustCreate(t, tr, "Buy milk", "low")
			require.NoError(t, tr.MarkUrgent(ctx, id))

			tt.arm(backend)
			_, err := tr.PopUrgent(ctx)
			require.ErrorIs(t, err, errBackend)

			assert.Equal(t, 1, tr.UrgentCount(), "stack entry is restored")
			item, err := inner.Get(ctx, id)
			require.NoError(t, err)
			assert.True(t, item.Urgent, "urgent flag is unchanged")

			*backend = failingBackend{Backend: inner}
			popped, err := tr.PopUrgent(ctx)
			require.NoError(t, err)
			assert.Equal(t, id, popped.ID)
			assert.False(t, popped.Urgent)
		})
	}
}
