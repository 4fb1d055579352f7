package main

import (
	"fmt"
	"io"

	"enigmasim/internal/display"
	"enigmasim/internal/engine"
)

// writeStatistics prints every processed message grouped by the code it was
// processed under, followed by the session totals.
func writeStatistics(w io.Writer, e *engine.Engine, mode display.Mode) error {
	history, err := e.Statistics()
	if err != nil {
		return err
	}
	data, err := e.MachineData()
	if err != nil {
		return err
	}

	t := display.NewTable(mode)
	t.Header("Code", "#", "Input", "Output", "Time")
	t.AlignRight(2, 5)
	for i, h := range history {
		if i > 0 {
			t.Separator()
		}
		for j, entry := range h.Entries {
			code := ""
			if j == 0 {
				code = h.Code
			}
			t.Row(code, j+1, entry.Input, entry.Output, entry.Duration.String())
		}
	}
	fmt.Fprintln(w, t.String())
	fmt.Fprintf(w, "Messages processed: %d\n", data.MessagesProcessed)
	fmt.Fprintf(w, "Current code:       %s\n", data.CurrentCode)
	return nil
}
