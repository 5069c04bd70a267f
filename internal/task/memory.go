package task

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Store keeps task records in memory for the lifetime of the process.
type Store struct {
	tasks  map[int]*Task
	order  []int
	nextID int
}

// NewStore creates an empty in-memory task store. Ids start at 1.
func NewStore() *Store {
	return &Store{
		tasks:  make(map[int]*Task),
		nextID: 1,
	}
}

// Create validates the input and stores a new pending task.
// A rejected call does not consume an id.
func (s *Store) Create(_ context.Context, title, priority string) (int, error) {
	t, err := ParseTitle(title)
	if err != nil {
		return 0, err
	}
	p, err := ParsePriority(priority)
	if err != nil {
		return 0, err
	}
	id := s.nextID
	s.tasks[id] = &Task{
		ID:       id,
		Title:    t,
		Status:   StatusPending,
		Priority: p,
	}
	s.order = append(s.order, id)
	s.nextID++
	log.Debug().Int("task_id", id).Str("priority", string(p)).Msg("task created")
	return id, nil
}

// List returns all tasks in id order.
func (s *Store) List(_ context.Context) ([]Task, error) {
	out := make([]Task, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.tasks[id])
	}
	return out, nil
}

// ChangeStatus overwrites the status of an existing task.
func (s *Store) ChangeStatus(_ context.Context, id int, status string) error {
	t, ok := s.tasks[id]
	if !ok {
		return notFound(id)
	}
	st, err := ParseStatus(status)
	if err != nil {
		return err
	}
	t.Status = st
	log.Debug().Int("task_id", id).Str("status", string(st)).Msg("task status changed")
	return nil
}

// SetUrgent overwrites the urgent flag of an existing task.
func (s *Store) SetUrgent(_ context.Context, id int, urgent bool) error {
	t, ok := s.tasks[id]
	if !ok {
		return notFound(id)
	}
	t.Urgent = urgent
	return nil
}

// Get fetches a task by id.
func (s *Store) Get(_ context.Context, id int) (Task, error) {
	t, ok := s.tasks[id]
	if !ok {
		return Task{}, notFound(id)
	}
	return *t, nil
}

// Table projects all tasks into rows.
func (s *Store) Table(ctx context.Context) ([]Row, error) {
	tasks, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return project(tasks), nil
}
