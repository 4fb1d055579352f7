package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"enigmasim/internal/definition"
	"enigmasim/internal/display"
	"enigmasim/internal/engine"
)

type inspectOptions struct {
	machine string
	format  string
}

func newInspectCmd() *cobra.Command {
	var o inspectOptions
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show what a machine definition offers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, &o)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.machine, "machine", "m", "", "Machine definition file, .yaml or .xml (required)")
	f.StringVar(&o.format, "format", "ascii", "Table format: ascii or markdown")
	_ = cmd.MarkFlagRequired("machine")
	return cmd
}

func runInspect(cmd *cobra.Command, o *inspectOptions) error {
	e := engine.New()
	if err := e.Load(o.machine); err != nil {
		return err
	}
	specs, err := e.Specs()
	if err != nil {
		return err
	}
	mode := display.ParseMode(o.format)
	out := cmd.OutOrStdout()

	summary := display.NewTable(mode)
	summary.Header("Property", "Value")
	summary.Row("Definition", e.Definition().Name())
	summary.Row("Alphabet", specs.Alphabet)
	summary.Row("Alphabet size", len([]rune(specs.Alphabet)))
	summary.Row("Rotors", joinInts(specs.RotorIDs))
	summary.Row("Rotors in use", specs.RequiredRotors)
	summary.Row("Reflectors", strings.Join(specs.ReflectorLabels, ","))
	fmt.Fprintln(out, summary.String())

	rotors, err := rotorTable(e.Definition(), specs.RotorIDs, mode)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, rotors.String())
	return nil
}

// rotorTable lists each rotor's window order and notch letter.
func rotorTable(def *definition.Definition, ids []int, mode display.Mode) (*display.Table, error) {
	t := display.NewTable(mode)
	t.Header("Rotor", "Window order", "Notch")
	t.AlignRight(1)
	size := def.Alphabet().Size()
	for _, id := range ids {
		r, err := def.Rotor(id)
		if err != nil {
			return nil, err
		}
		window := make([]rune, size)
		for i := range window {
			if window[i], err = def.PositionLetter(id, i); err != nil {
				return nil, err
			}
		}
		t.Row(id, string(window), string(window[r.Notch()]))
	}
	return t, nil
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}
