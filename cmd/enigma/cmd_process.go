package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"enigmasim/internal/codeconfig"
	"enigmasim/internal/display"
	"enigmasim/internal/engine"
	"enigmasim/internal/machine"
)

type processOptions struct {
	machine   string
	rotors    []int
	positions string
	reflector string
	plugs     string

	auto bool
	seed uint64

	resetEachLine bool
	stats         bool
	foldCase      bool
	format        string
}

func newProcessCmd() *cobra.Command {
	var o processOptions
	cmd := &cobra.Command{
		Use:   "process",
		Short: "Encipher standard input line by line",
		Long: "process installs a code, either from --rotors/--positions/--reflector\n" +
			"or chosen at random with --auto, and writes one enciphered line to\n" +
			"standard output for every line read. The installed code is printed\n" +
			"to standard error.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProcess(cmd, &o)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.machine, "machine", "m", "", "Machine definition file, .yaml or .xml (required)")
	f.IntSliceVar(&o.rotors, "rotors", nil, "Rotor ids, leftmost first (e.g. 3,1,2)")
	f.StringVar(&o.positions, "positions", "", "Starting window letters, leftmost first (e.g. ABC)")
	f.StringVar(&o.reflector, "reflector", "", "Reflector id, Roman or decimal (e.g. I or 1)")
	f.StringVar(&o.plugs, "plugs", "", "Plugboard pairs as consecutive letters (e.g. ABCD)")
	f.BoolVar(&o.auto, "auto", false, "Choose a random code")
	f.Uint64Var(&o.seed, "seed", 0, "Seed for --auto (random when unset)")
	f.BoolVar(&o.resetEachLine, "reset-each-line", false, "Rewind to the configured code before every line")
	f.BoolVar(&o.stats, "stats", false, "Print processing statistics when input ends")
	f.BoolVar(&o.foldCase, "fold-case", false, "Upper-case input before enciphering")
	f.StringVar(&o.format, "format", "ascii", "Statistics table format: ascii or markdown")

	_ = cmd.MarkFlagRequired("machine")
	cmd.MarkFlagsMutuallyExclusive("auto", "rotors")
	cmd.MarkFlagsMutuallyExclusive("auto", "positions")
	cmd.MarkFlagsMutuallyExclusive("auto", "reflector")
	cmd.MarkFlagsMutuallyExclusive("auto", "plugs")
	cmd.MarkFlagsRequiredTogether("rotors", "positions", "reflector")
	return cmd
}

func runProcess(cmd *cobra.Command, o *processOptions) error {
	var opts []engine.Option
	if cmd.Flags().Changed("seed") {
		opts = append(opts, engine.WithRand(rand.New(rand.NewPCG(o.seed, o.seed))))
	}
	e := engine.New(opts...)
	if err := e.Load(o.machine); err != nil {
		return err
	}

	code, err := configure(e, o)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "code:", code)

	if err := processIO(e, cmd.InOrStdin(), cmd.OutOrStdout(), o); err != nil {
		return err
	}
	if o.stats {
		return writeStatistics(cmd.OutOrStdout(), e, display.ParseMode(o.format))
	}
	return nil
}

func configure(e *engine.Engine, o *processOptions) (string, error) {
	if o.auto {
		return e.ConfigureAutomatic()
	}
	if len(o.rotors) == 0 {
		return "", machine.Errorf(machine.InvalidConfiguration, "either --auto or --rotors, --positions and --reflector are required")
	}
	reflector, err := e.Definition().ReflectorID(o.reflector)
	if err != nil {
		return "", err
	}
	return e.ConfigureManual(codeconfig.Request{
		RotorIDs:    o.rotors,
		Positions:   o.positions,
		ReflectorID: reflector,
		Plugs:       o.plugs,
	})
}

// processIO writes one output line per input line. Empty lines pass through.
func processIO(e *engine.Engine, reader io.Reader, writer io.Writer, o *processOptions) error {
	scanner := bufio.NewScanner(reader)
	for n := 1; scanner.Scan(); n++ {
		input := scanner.Text()
		if o.foldCase {
			input = strings.ToUpper(input)
		}
		output := ""
		if input != "" {
			if o.resetEachLine {
				if err := e.Reset(); err != nil {
					return err
				}
			}
			var err error
			if output, err = e.Process(input); err != nil {
				return fmt.Errorf("line %d: %w", n, err)
			}
		}
		if _, err := fmt.Fprintln(writer, output); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
	}
	return scanner.Err()
}
