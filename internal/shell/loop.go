package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
)

const rule = "==============================="

// Banner renders the menu header and options.
func (s *Session) Banner() string {
	var b strings.Builder
	b.WriteString("\n" + rule + "\n   TASK MANAGEMENT SYSTEM\n" + rule + "\n\n")
	for _, a := range s.actions {
		fmt.Fprintf(&b, "%s. %s\n", a.Key, a.Label)
	}
	fmt.Fprintf(&b, "%s. Exit\n", ExitKey)
	return b.String()
}

// Run reads menu choices and answers from in until the exit option or end
// of input. Operation errors are printed and the loop continues; only I/O
// errors are returned.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	p := &printer{w: out}
	scanner := bufio.NewScanner(in)
	read := func(label string) (string, bool) {
		p.print(label)
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !s.opts.NoBanner {
			p.print(s.Banner() + "\n")
		}
		choice, ok := read("Choose an option: ")
		if !ok {
			p.println("")
			p.println("Exiting...")
			break
		}
		choice = strings.TrimSpace(choice)
		if choice == ExitKey {
			p.println("Exiting...")
			break
		}
		action, found := s.Lookup(choice)
		if !found {
			p.println("Invalid option.")
			continue
		}
		log.Debug().Str("action", action.Label).Msg("menu action selected")

		p.println("\n--- " + action.Heading + " ---")
		answers, eof := s.ask(ctx, action, read, p)
		if eof {
			p.println("")
			p.println("Exiting...")
			break
		}
		if answers == nil {
			continue
		}
		msg, err := action.Run(ctx, answers)
		if err != nil {
			log.Debug().Err(err).Str("action", action.Label).Msg("menu action failed")
			p.println(Describe(err))
			continue
		}
		p.println(strings.TrimRight(msg, "\n"))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return p.err
}

// ask collects the answers for action. It returns nil answers when a check
// rejected one of them, and eof when input ran out.
func (s *Session) ask(ctx context.Context, action Action, read func(string) (string, bool), p *printer) (answers []string, eof bool) {
	answers = make([]string, 0, len(action.Prompts))
	for _, prompt := range action.Prompts {
		answer, ok := read(prompt.Label)
		if !ok {
			return nil, true
		}
		if prompt.Check != nil {
			if err := prompt.Check(ctx, answer); err != nil {
				p.println(Describe(err))
				return nil, false
			}
		}
		answers = append(answers, answer)
	}
	return answers, false
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) print(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) println(s string) {
	p.print(s + "\n")
}
