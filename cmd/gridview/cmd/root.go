// Package cmd implements the gridview CLI commands.
//
// A root command dispatches to subcommands (render, hit, preview, version).
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"github.com/go-drift/gridview/pkg/errors"
	"github.com/go-drift/gridview/pkg/gridview"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "gridview",
	Short: "gridview - a tappable grid of shapes and images",
	Long: `gridview lays out a rows x columns grid of cells, draws a shape or an
image in each one and reports which cell a tap lands in.

Grids are described in YAML or TOML files. Without --config the default
3x3 grid of white squares is used.

Use "gridview <command> --help" for more information about a command.`,
	Usage: "gridview <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// stdout receives command output.
var stdout io.Writer = os.Stdout

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return execute(os.Args[1:])
}

func execute(args []string) error {
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	verbose := false
	var filteredArgs []string
	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version":
			if len(filteredArgs) == 0 {
				printVersion()
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

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	setupLogging(os.Stderr, verbose)

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
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

// setupLogging routes widget, error-handler and rasteriser logs to w.
// Only warnings are shown unless verbose is set.
func setupLogging(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	gridview.SetLogger(logger)
	gg.SetLogger(logger)
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: verbose})
	return logger
}

func printVersion() {
	fmt.Fprintf(stdout, "gridview version %s (built %s)\n", Version, BuildTime)
}

func printHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version        Show version information")
	fmt.Fprintln(stdout, "  --verbose            Log debug output to stderr")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  gridview render --config grid.yaml -o grid.png")
	fmt.Fprintln(stdout, "  gridview hit --config grid.yaml 45 45")
	fmt.Fprintln(stdout, "  gridview preview --config grid.toml")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
