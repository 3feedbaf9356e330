package main

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"sgspell/internal/driver"
	"sgspell/internal/ui"
)

type checkOutcome struct {
	result *driver.RunResult
	err    error
}

var errInterrupted = errors.New("interrupted")

// runCheckWithUI runs the check in the background and drives the progress
// view on stderr until every file has reported. Quitting the view early
// cancels the remaining work.
func runCheckWithUI(ctx context.Context, title string, files, paths []string, baseDir string, opts driver.Options, jobs int) (*driver.RunResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		res, err := driver.CheckPaths(ctx, paths, baseDir, opts, jobs, driver.ChannelSink{Ch: events})
		outcomeCh <- checkOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()

	select {
	case outcome := <-outcomeCh:
		if uiErr != nil {
			return outcome.result, uiErr
		}
		return outcome.result, outcome.err
	default:
	}

	// the view quit before the run finished
	cancel()
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	if outcome.err != nil {
		return outcome.result, errInterrupted
	}
	return outcome.result, nil
}
