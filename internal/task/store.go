package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// SQLStore manages task records in a SQL database opened by internal/db.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore creates a task store on top of db.
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Create validates the input and inserts a new pending task.
func (s *SQLStore) Create(ctx context.Context, title, priority string) (int, error) {
	t, err := ParseTitle(title)
	if err != nil {
		return 0, err
	}
	p, err := ParsePriority(priority)
	if err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx, `INSERT INTO tasks(title, status, priority, urgent) VALUES(?, ?, ?, 0)`,
		t, string(StatusPending), string(p))
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read task id: %w", err)
	}
	log.Debug().Int64("task_id", id).Str("priority", string(p)).Msg("task created")
	return int(id), nil
}

// List returns all tasks in id order.
func (s *SQLStore) List(ctx context.Context) ([]Task, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, status, priority, urgent FROM tasks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()
	out := []Task{}
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Status, &t.Priority, &t.Urgent); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return out, nil
}

// ChangeStatus overwrites the status of an existing task. The id is checked
// before the status value.
func (s *SQLStore) ChangeStatus(ctx context.Context, id int, status string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	st, err := ParseStatus(status)
	if err != nil {
		return err
	}
	if err := s.update(ctx, `UPDATE tasks SET status=? WHERE id=?`, string(st), id); err != nil {
		return err
	}
	log.Debug().Int("task_id", id).Str("status", string(st)).Msg("task status changed")
	return nil
}

// SetUrgent overwrites the urgent flag of an existing task.
func (s *SQLStore) SetUrgent(ctx context.Context, id int, urgent bool) error {
	flag := 0
	if urgent {
		flag = 1
	}
	return s.update(ctx, `UPDATE tasks SET urgent=? WHERE id=?`, flag, id)
}

// Get fetches a task by id.
func (s *SQLStore) Get(ctx context.Context, id int) (Task, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, title, status, priority, urgent FROM tasks WHERE id=?`, id)
	var t Task
	if err := row.Scan(&t.ID, &t.Title, &t.Status, &t.Priority, &t.Urgent); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, notFound(id)
		}
		return Task{}, fmt.Errorf("read task: %w", err)
	}
	return t, nil
}

// Table projects all tasks into rows.
func (s *SQLStore) Table(ctx context.Context) ([]Row, error) {
	tasks, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return project(tasks), nil
}

func (s *SQLStore) update(ctx context.Context, query string, value any, id int) error {
	res, err := s.db.ExecContext(ctx, query, value, id)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound(id)
	}
	return nil
}
