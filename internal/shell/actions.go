// Package shell implements the numbered text menu on top of a tracker.
// The same actions drive the full-screen TUI in internal/ui.
package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/metalagman/taskstack/internal/render"
	"github.com/metalagman/taskstack/internal/task"
	"github.com/metalagman/taskstack/internal/tracker"
	"github.com/metalagman/taskstack/internal/urgent"
)

// ExitKey ends the menu.
const ExitKey = "0"

// Prompt asks the user for one value. Check, when set, runs as soon as the
// answer is given so the action can stop before asking the next question.
type Prompt struct {
	Label string
	Check func(ctx context.Context, answer string) error
}

// Action is one menu entry.
type Action struct {
	Key     string
	Label   string
	Heading string
	Prompts []Prompt
	Run     func(ctx context.Context, answers []string) (string, error)
}

// Options controls presentation.
type Options struct {
	TableFormat string
	TableStyle  string
	NoBanner    bool
}

// Session exposes the tracker as menu actions.
type Session struct {
	tracker *tracker.Tracker
	opts    Options
	actions []Action
}

// NewSession builds the menu for tr.
func NewSession(tr *tracker.Tracker, opts Options) *Session {
	s := &Session{tracker: tr, opts: opts}
	s.actions = []Action{
		{
			Key: "1", Label: "Add task", Heading: "ADD TASK",
			Prompts: []Prompt{
				{Label: "Title: "},
				{Label: "Priority (high, medium, low): "},
			},
			Run: s.addTask,
		},
		{Key: "2", Label: "List tasks", Heading: "TASK LIST", Run: s.listTasks},
		{
			Key: "3", Label: "Change status", Heading: "CHANGE STATUS",
			Prompts: []Prompt{
				{Label: "Task ID: ", Check: s.checkID},
				{Label: "New status (pending, in_progress, completed): "},
			},
			Run: s.changeStatus,
		},
		{
			Key: "4", Label: "Mark as urgent", Heading: "MARK URGENT",
			Prompts: []Prompt{{Label: "Task ID: "}},
			Run:     s.markUrgent,
		},
		{Key: "5", Label: "Pop urgent task (stack)", Heading: "POP URGENT (STACK)", Run: s.popUrgent},
		{Key: "6", Label: "Show 2D table", Heading: "2D TASK TABLE", Run: s.table},
	}
	return s
}

// Actions returns the menu entries in display order.
func (s *Session) Actions() []Action {
	return s.actions
}

// Lookup finds the action bound to key.
func (s *Session) Lookup(key string) (Action, bool) {
	for _, a := range s.actions {
		if a.Key == key {
			return a, true
		}
	}
	return Action{}, false
}

// Describe turns an operation error into the line shown to the user.
func Describe(err error) string {
	switch {
	case errors.Is(err, urgent.ErrEmptyStack):
		return "No urgent tasks."
	case errors.Is(err, tracker.ErrAlreadyUrgent):
		return "Task is already urgent."
	case errors.Is(err, task.ErrNotFound):
		return "No task with that ID."
	case errors.Is(err, task.ErrInvalidInput):
		return "Error: " + err.Error() + "."
	default:
		return "Unexpected error: " + err.Error()
	}
}

func (s *Session) addTask(ctx context.Context, answers []string) (string, error) {
	id, err := s.tracker.CreateTask(ctx, answers[0], answers[1])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Task added with ID %d.", id), nil
}

func (s *Session) listTasks(ctx context.Context, _ []string) (string, error) {
	items, err := s.tracker.ListTasks(ctx)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "No tasks registered.", nil
	}
	return render.List(items), nil
}

func (s *Session) checkID(ctx context.Context, answer string) error {
	id, err := task.ParseID(answer)
	if err != nil {
		return err
	}
	_, err = s.tracker.GetTask(ctx, id)
	return err
}

func (s *Session) changeStatus(ctx context.Context, answers []string) (string, error) {
	id, err := task.ParseID(answers[0])
	if err != nil {
		return "", err
	}
	if err := s.tracker.ChangeStatus(ctx, id, answers[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Task %d status updated.", id), nil
}

func (s *Session) markUrgent(ctx context.Context, answers []string) (string, error) {
	id, err := task.ParseID(answers[0])
	if err != nil {
		return "", err
	}
	if err := s.tracker.MarkUrgent(ctx, id); err != nil {
		return "", err
	}
	return fmt.Sprintf("Task %d marked as urgent.", id), nil
}

func (s *Session) popUrgent(ctx context.Context, _ []string) (string, error) {
	item, err := s.tracker.PopUrgent(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Urgent task popped: %s (ID %d)", item.Title, item.ID), nil
}

func (s *Session) table(ctx context.Context, _ []string) (string, error) {
	rows, err := s.tracker.ProjectTable(ctx)
	if err != nil {
		return "", err
	}
	return render.Table(rows, s.opts.TableFormat, s.opts.TableStyle)
}
