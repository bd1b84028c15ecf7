// ABOUTME: CLI entrypoint for pong with an interactive terminal mode and a headless simulation mode.
// ABOUTME: Wires config loading, the match, the tick driver, the Bubble Tea frontend, and signal handling.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/2389-research/pong/config"
	"github.com/2389-research/pong/driver"
	"github.com/2389-research/pong/engine"
	"github.com/2389-research/pong/tui"
)

var version = "dev"

// defaultMaxTicks bounds headless runs: ten minutes of play at 60 Hz.
const defaultMaxTicks = 36000

// options holds all CLI configuration parsed from flags.
type options struct {
	configPath  string
	seed        *uint64
	headless    bool
	maxTicks    int
	logFile     string
	verbose     bool
	showVersion bool
}

func main() {
	loadDotEnvAuto()

	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if opts.showVersion {
		fmt.Printf("pong %s\n", version)
		os.Exit(0)
	}

	os.Exit(run(opts))
}

// parseFlags parses command-line flags into options.
func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("pong", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to a YAML config file (default: $XDG_CONFIG_HOME/pong/config.yaml)")
	fs.Func("seed", "Seed for the match's random source", func(s string) error {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed %q: %w", s, err)
		}
		opts.seed = &seed
		return nil
	})
	fs.BoolVar(&opts.headless, "headless", false, "Run without the terminal UI, serving automatically")
	fs.IntVar(&opts.maxTicks, "max-ticks", defaultMaxTicks, "Headless step limit, 0 for no limit")
	fs.StringVar(&opts.logFile, "log", "", "Write the interactive mode's log to this file")
	fs.BoolVar(&opts.verbose, "verbose", false, "Log every match event in headless mode")
	fs.BoolVar(&opts.showVersion, "version", false, "Print version and exit")

	fs.Usage = func() {
		printHelp(stderr, version)
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.maxTicks < 0 {
		fmt.Fprintf(stderr, "error: -max-ticks must not be negative, got %d\n", opts.maxTicks)
		return options{}, fmt.Errorf("negative max-ticks %d", opts.maxTicks)
	}
	return opts, nil
}

// run loads settings and dispatches to the interactive or headless mode.
// Returns an exit code: 0 for success, 1 for failure.
func run(opts options) int {
	settings, err := loadSettings(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	if opts.headless || !term.IsTerminal(int(os.Stdout.Fd())) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if _, err := runHeadless(ctx, os.Stdout, settings, opts.maxTicks, opts.verbose); err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	return runTUI(settings, opts.logFile)
}

// loadSettings resolves the config path and applies the -seed override. An
// explicit -config must exist; the default location is optional.
func loadSettings(opts options) (config.Settings, error) {
	path := opts.configPath
	required := path != ""
	if !required {
		p, err := config.DefaultPath()
		if err != nil {
			log.Printf("component=cli action=config_path_unavailable err=%v", err)
		}
		path = p
	}

	settings, err := config.Load(path, required)
	if err != nil {
		return config.Settings{}, err
	}
	if opts.seed != nil {
		settings.Seed = opts.seed
	}
	return settings, nil
}

// matchOptions converts settings into engine options.
func matchOptions(s config.Settings, handler engine.EventHandler) []engine.Option {
	var opts []engine.Option
	if s.Seed != nil {
		opts = append(opts, engine.WithSeed(*s.Seed))
	}
	if handler != nil {
		opts = append(opts, engine.WithEventHandler(handler))
	}
	return opts
}

// runTUI plays one session in the Bubble Tea frontend. Mouse motion drives
// the player's paddle and a left click serves.
func runTUI(settings config.Settings, logFile string) int {
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "pong")
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	// The program does not exist until the model is built, and the model
	// needs the match. Events are only sent once the driver runs, which is
	// after p.Run starts.
	var p *tea.Program
	bridge := tui.NewBridge(func(msg tea.Msg) { p.Send(msg) })

	match, err := engine.NewMatch(settings.Engine, matchOptions(settings, bridge.HandleEvent)...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	d := driver.New(match, driver.WithSnapshotHandler(bridge.HandleSnapshot))

	// Cancelling stops the driver when the TUI quits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := tui.NewAppModel(match.Snapshot(), d, tui.RunDriverCmd(ctx, d))
	p = tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	log.Printf("component=cli action=tui_started match_id=%s", match.ID())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if app, ok := final.(tui.AppModel); ok && app.Err() != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", app.Err())
		return 1
	}
	return 0
}
