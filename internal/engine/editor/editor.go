// Package editor implements the interactive schedule editing loop.
package editor

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/tasker/internal/core/ports"
	"go.trai.ch/tasker/internal/ui/output"
	"go.trai.ch/zerr"
)

// Prompt is the label shown when asking for the next edit.
const Prompt = "Edits?: "

// Editor lets a user delete entries and move start times of a proposed schedule.
type Editor struct {
	prompter ports.Prompter
	renderer ports.ScheduleRenderer
	out      io.Writer
	width    int
}

// New creates an Editor that reads commands from prompter and writes to out.
func New(prompter ports.Prompter, renderer ports.ScheduleRenderer, out io.Writer) *Editor {
	return &Editor{
		prompter: prompter,
		renderer: renderer,
		out:      out,
		width:    output.Width(out),
	}
}

// Run edits s in place until the user quits and returns it.
// If the input ends first, the schedule is returned with ErrEditorInputClosed.
func (e *Editor) Run(s *domain.Schedule) (*domain.Schedule, error) {
	separator := output.Separator(e.width)

	for {
		e.println("Proposed Schedule:")
		if err := e.renderer.Render(e.out, s.FilledGaps()); err != nil {
			return s, zerr.Wrap(err, "failed to render schedule")
		}
		e.println(separator)

		line, err := e.prompter.Prompt(Prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return s, zerr.Wrap(domain.ErrEditorInputClosed, "schedule editor")
			}
			return s, zerr.Wrap(err, "failed to read edit")
		}

		quit := e.apply(s, strings.Fields(line))
		e.println(separator)
		if quit {
			return s, nil
		}
	}
}

// apply runs one edit command against s and reports whether the user quit.
func (e *Editor) apply(s *domain.Schedule, args []string) bool {
	quit := false
	root := e.commands(s, &quit)
	root.SetArgs(args)

	cmd, err := root.ExecuteC()
	if err != nil {
		e.println("Error: " + err.Error())
		_ = cmd.Usage()
	}
	return quit
}

func (e *Editor) commands(s *domain.Schedule, quit *bool) *cobra.Command {
	root := &cobra.Command{
		Use:           "edits",
		Short:         "Edit the proposed schedule",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(e.out)
	root.SetErr(e.out)

	root.AddCommand(
		&cobra.Command{
			Use:   "quit",
			Short: "Accept the schedule",
			Args:  cobra.NoArgs,
			Run: func(_ *cobra.Command, _ []string) {
				*quit = true
			},
		},
		&cobra.Command{
			Use:                "delete <index>",
			Short:              "Delete a task",
			Args:               cobra.ExactArgs(1),
			DisableFlagParsing: true,
			RunE: func(_ *cobra.Command, args []string) error {
				index, err := parseIndex(args[0])
				if err != nil {
					return err
				}
				if err := s.Delete(index); err != nil {
					return e.report(index, err)
				}
				e.println(fmt.Sprintf("Deleted task %d", index))
				return nil
			},
		},
		&cobra.Command{
			Use:                "edit_start <index> <HH:MM[:SS]>",
			Short:              "Edit the start time of a task",
			Args:               cobra.ExactArgs(2),
			DisableFlagParsing: true,
			RunE: func(_ *cobra.Command, args []string) error {
				index, err := parseIndex(args[0])
				if err != nil {
					return err
				}
				start, err := domain.ParseTimeOfDay(args[1])
				if err != nil {
					return err
				}
				if err := s.EditStart(index, start); err != nil {
					return e.report(index, err)
				}
				e.println(fmt.Sprintf("Updated start time of task %d", index))
				return nil
			},
		},
	)

	return root
}

// report prints out-of-range and validation failures to the user.
// Anything else is returned as a command error.
func (e *Editor) report(index int, err error) error {
	switch {
	case errors.Is(err, domain.ErrEntryIndexOutOfRange):
		e.println(fmt.Sprintf("Selected task %d is out of range", index))
		return nil
	case errors.Is(err, domain.ErrEntryEndsBeforeStart):
		e.println(err.Error())
		return nil
	default:
		return err
	}
}

func (e *Editor) println(s string) {
	_, _ = fmt.Fprintln(e.out, s)
}

func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrInvalidEntryIndex, strconv.Quote(arg)), "index", arg)
	}
	return index, nil
}
