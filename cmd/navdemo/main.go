// Command navdemo replays navigation scripts against the coordinator and
// prints what a presentation layer would render after every step.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/navcoord/pkg/navcoord"
	"github.com/BrandonKowalski/navcoord/pkg/navcoord/catalog"
	"github.com/BrandonKowalski/navcoord/pkg/navcoord/constants"
	"github.com/BrandonKowalski/navcoord/pkg/navcoord/coordinator"
	"github.com/BrandonKowalski/navcoord/pkg/navcoord/script"
)

var (
	cfg *Config

	flagLocale   string
	flagLogLevel string
	flagDebug    bool
)

var rootCmd = &cobra.Command{
	Use:           "navdemo",
	Short:         "Replay navigation scripts against a coordinator",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded

		if cmd.Flags().Changed("locale") {
			cfg.Locale = flagLocale
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = flagLogLevel
		}
		if flagDebug {
			cfg.Debug = true
		}

		navcoord.Init(navcoord.Options{
			LogPath:  cfg.LogPath,
			LogLevel: cfg.LogLevel,
			Debug:    cfg.Debug,
		})
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run <script.toml>",
	Short: "Replay a navigation script",
	Args:  cobra.ExactArgs(1),
	RunE:  runScript,
}

var screensCmd = &cobra.Command{
	Use:   "screens",
	Short: "List the screens of the book flow and their titles",
	RunE:  listScreens,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", constants.DefaultLocale, "locale for screen titles")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "log ignored coordinator transitions")

	rootCmd.AddCommand(runCmd, screensCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	titles, err := catalog.New(cfg.Locale)
	if err != nil {
		return err
	}

	s, err := script.Load(args[0])
	if err != nil {
		return err
	}
	root := s.Root
	if root == "" {
		root = constants.ScreenOrangeBook
	}

	r := script.NewRunner(script.WithLogger(navcoord.GetLogger()))
	transcript, runErr := r.Run(s)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", s.Name, titles.Locale())
	for _, e := range transcript {
		indent := strings.Repeat("  ", e.Level)
		flowRoot := e.Root
		if flowRoot == "" {
			flowRoot = root
		}
		line := titles.Describe(flowRoot, coordinator.State[string]{
			Path:     e.Path,
			Modal:    e.Modal,
			HasModal: e.HasModal,
		})
		fmt.Fprintf(out, "%3d %-12s %s%s\n", e.Step+1, e.Op, indent, line)
		for _, f := range e.Fired {
			fmt.Fprintf(out, "    %-12s %s  ↳ %s\n", "", indent, f)
		}
	}

	snap := r.Stats().Snapshot()
	fmt.Fprintf(out, "%d transitions, %d ignored unwinds, %d segue actions\n",
		snap.Transitions(), snap.UnwindsIgnored, snap.ActionsFired)

	return runErr
}

func listScreens(cmd *cobra.Command, args []string) error {
	titles, err := catalog.New(cfg.Locale)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, s := range catalog.Screens() {
		fmt.Fprintf(out, "%-12s %s\n", s, titles.Title(s))
	}
	return nil
}

func main() {
	defer navcoord.Close()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		navcoord.Close()
		os.Exit(1)
	}
}
