// Package task holds the task record, its validation rules and the stores
// that own task records.
package task

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidInput is returned for empty titles, unknown enum values and
	// ids that are not integers.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when no task has the requested id.
	ErrNotFound = errors.New("task not found")
)

// Status is the progress state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Priority is fixed at creation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Statuses returns every valid status in display order.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// Priorities returns every valid priority in display order.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// ParseStatus validates a status typed by the user. Surrounding whitespace
// is ignored; the value itself must match exactly.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.TrimSpace(raw))
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return s, nil
	default:
		return "", fmt.Errorf("%w: status %q", ErrInvalidInput, raw)
	}
}

// ParsePriority validates a priority typed by the user and normalizes it to
// lower case.
func ParsePriority(raw string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(raw)))
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p, nil
	default:
		return "", fmt.Errorf("%w: priority %q", ErrInvalidInput, raw)
	}
}

// ParseTitle trims the title and rejects it when nothing is left.
func ParseTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", fmt.Errorf("%w: title is empty", ErrInvalidInput)
	}
	return title, nil
}

// ParseID converts user text to a task id.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: id %q is not an integer", ErrInvalidInput, raw)
	}
	return id, nil
}

// Task describes a task record.
type Task struct {
	ID       int
	Title    string
	Status   Status
	Priority Priority
	Urgent   bool
}

// Row is one line of the table projection.
type Row struct {
	ID       int
	Title    string
	Status   Status
	Priority Priority
	Urgent   bool
}

// Cells returns the row as display strings in column order.
func (r Row) Cells() []string {
	return []string{
		strconv.Itoa(r.ID),
		r.Title,
		string(r.Status),
		string(r.Priority),
		strconv.FormatBool(r.Urgent),
	}
}

// TableHeaders names the columns of Row.Cells.
var TableHeaders = []string{"id", "title", "status", "priority", "urgent"}

// Backend defines the operations every task store provides.
type Backend interface {
	Create(ctx context.Context, title, priority string) (int, error)
	List(ctx context.Context) ([]Task, error)
	ChangeStatus(ctx context.Context, id int, status string) error
	SetUrgent(ctx context.Context, id int, urgent bool) error
	Get(ctx context.Context, id int) (Task, error)
	Table(ctx context.Context) ([]Row, error)
}

func notFound(id int) error {
	return fmt.Errorf("%w: id %d", ErrNotFound, id)
}

func project(tasks []Task) []Row {
	rows := make([]Row, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, Row(t))
	}
	return rows
}
