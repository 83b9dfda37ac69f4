package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"feelscope/internal/driver"
	"feelscope/internal/ui"
)

type checkOutcome struct {
	results []*driver.Result
	err     error
}

func runCheckWithUI(ctx context.Context, title string, files, paths []string, opts driver.Options) ([]*driver.Result, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		res, err := driver.CheckAll(ctx, paths, opts, driver.ChannelSink{Ch: events})
		outcomeCh <- checkOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
