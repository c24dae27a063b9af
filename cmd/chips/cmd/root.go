// Package cmd implements the chips CLI commands.
//
// The root command dispatches to subcommands (inspect, run, search), each of
// which loads a chip pool file into a chip.ListDataSource.
package cmd

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/go-drift/chips/pkg/chip"
	"github.com/go-drift/chips/pkg/chipfile"
	"github.com/go-drift/chips/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = struct {
	Long        string
	Usage       string
	SubCommands []*Command
}{
	Long: `chips loads chip pools and replays selections against a chip data source.

Use "chips <command> --help" for more information about a command.`,
	Usage: "chips <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// stdout receives command output.
var stdout io.Writer = os.Stdout

// Per-invocation state, reset by Execute.
var (
	// verbose enables debug logging of data source mutations.
	verbose bool
	// logger is handed to every data source the command opens.
	logger = zap.NewNop()
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute(args []string) error {
	verbose = false
	logger = zap.NewNop()

	var filteredArgs []string
	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp()
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(stdout, "chips version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			verbose = true
		default:
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if verbose {
		logger = newLogger()
		defer func() { _ = logger.Sync() }()
		defer errors.SetHandler(errors.SetHandler(errors.NewLogHandler(true)))
	}

	if len(args) == 0 {
		printHelp()
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args[0])
		printHelp()
		return fmt.Errorf("unknown command: %s", args[0])
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

// openPool loads the pool file at path into a new data source. Observers
// are registered before the pool is set, so they see the initial bulk
// notification.
func openPool(path string, observers ...chip.Observer) (*chip.ListDataSource, error) {
	pool, err := chipfile.Load(path)
	if err != nil {
		return nil, err
	}
	ds := chip.NewListDataSource(chip.WithLogger(logger))
	for _, o := range observers {
		ds.RegisterObserver(o)
	}
	ds.SetFilterableChips(pool)
	return ds, nil
}

func newLogger() *zap.Logger {
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func printChips(label string, chips []chip.Chip) {
	fmt.Fprintf(stdout, "%s (%d):\n", label, len(chips))
	for i, c := range chips {
		line := fmt.Sprintf("  %2d  %-12s %s", i, c.ID(), c.Title())
		if c.Subtitle() != "" {
			line += " <" + c.Subtitle() + ">"
		}
		if !c.Filterable() {
			line += " [fixed]"
		}
		fmt.Fprintln(stdout, line)
	}
}

func printHelp() {
	fmt.Fprintln(stdout, rootCmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", rootCmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range rootCmd.SubCommands {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version        Show version information")
	fmt.Fprintln(stdout, "  --verbose            Log data source changes")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  chips inspect people.yaml              List the pool")
	fmt.Fprintln(stdout, "  chips run people.yaml take:ada take@0  Select chips")
	fmt.Fprintln(stdout, "  chips search people.yaml lov           Fuzzy search available chips")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
