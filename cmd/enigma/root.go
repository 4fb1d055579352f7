// enigma simulates a rotor cipher machine described by a definition file.
//
// Usage:
//
//	enigma inspect -m <definition>
//	enigma process -m <definition> --rotors 1,2,3 --positions ABC --reflector I [--plugs ABCD]
//	enigma process -m <definition> --auto [--seed N]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"enigmasim/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	var logLevel, logFormat string

	root := &cobra.Command{
		Use:   "enigma",
		Short: "Rotor cipher machine simulator",
		Long: "enigma loads a machine definition (rotors, reflectors, alphabet),\n" +
			"installs a code and enciphers standard input line by line.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			if logFormat != "text" && logFormat != "json" {
				return fmt.Errorf("log format %q: want text or json", logFormat)
			}
			logging.Init(level, logFormat, cmd.ErrOrStderr())
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&logFormat, "log-format", "text", "Log format: text or json")

	root.AddCommand(newInspectCmd())
	root.AddCommand(newProcessCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
