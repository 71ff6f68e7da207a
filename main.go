package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/llmit/llmit-term/infra/auth"
	"github.com/llmit/llmit-term/infra/config"
	"github.com/llmit/llmit-term/infra/editor"
	"github.com/llmit/llmit-term/infra/llmit"
	"github.com/llmit/llmit-term/tui"
)

// version is set at link time; otherwise the build info decides.
var version = "dev"

type cliMode int

const (
	cliRun cliMode = iota
	cliPlain
	cliVersion
	cliHelp
)

// parseArgs maps the command line to a mode. At most one flag is accepted,
// with one or two leading dashes.
func parseArgs(args []string) (cliMode, error) {
	switch len(args) {
	case 0:
		return cliRun, nil
	case 1:
	default:
		return cliRun, fmt.Errorf("expected at most one flag, got %q", strings.Join(args, " "))
	}
	switch strings.TrimPrefix(strings.TrimPrefix(args[0], "-"), "-") {
	case "version", "v":
		return cliVersion, nil
	case "help", "h":
		return cliHelp, nil
	case "plain":
		return cliPlain, nil
	}
	return cliRun, fmt.Errorf("unknown flag %q", args[0])
}

const usage = `Usage: llmit [--plain | --version | --help]

  --plain    print the first frontpage page and exit
             (also used when stdout is not a terminal)

Environment:
  LLMIT_URL      server base URL (default http://localhost:5000)
  LLMIT_SESSION  file holding a session cookie to forward (optional)
  LLMIT_LOG      log file (default $TMPDIR/llmit.log)
  LLMIT_TIMEOUT  request timeout (default 15s)`

// buildVersion reports v, or the module version when v was not set at link
// time, with the short VCS revision appended when the toolchain recorded it.
func buildVersion(v string, info *debug.BuildInfo) string {
	if info == nil {
		return v
	}
	if mv := info.Main.Version; v == "dev" && mv != "" && mv != "(devel)" {
		v = mv
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return v + " (" + s.Value[:7] + ")"
		}
	}
	return v
}

func main() {
	mode, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "llmit: %v\n\n%s\n", err, usage)
		os.Exit(2)
	}
	switch mode {
	case cliVersion:
		info, _ := debug.ReadBuildInfo()
		fmt.Println("llmit", buildVersion(version, info))
		return
	case cliHelp:
		fmt.Println(usage)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs go to a file.
	logFile, err := tea.LogToFile(cfg.LogPath, "llmit")
	if err != nil {
		fmt.Fprintf(os.Stderr, "log: %v\n", err)
		os.Exit(1)
	}
	log.Printf("starting: server=%s timeout=%s", cfg.BaseURL, cfg.Timeout)

	if err := run(mode, cfg); err != nil {
		log.Printf("exit: %v", err)
		logFile.Close()
		fmt.Fprintf(os.Stderr, "llmit: %v\n", err)
		os.Exit(1)
	}
	logFile.Close()
}

func run(mode cliMode, cfg config.Config) error {
	client := llmit.NewClient(cfg.BaseURL, auth.NewFileSessionProvider(cfg.SessionPath), cfg.Timeout)

	groupSvc := llmit.NewGroupService(client)
	postSvc := llmit.NewPostService(client)
	commentSvc := llmit.NewCommentService(client)
	voteSvc := llmit.NewVoteService(client)

	// Piped output gets plain text instead of the UI.
	if mode == cliPlain || !isTerminal(os.Stdout.Fd()) {
		return runPlain(context.Background(), os.Stdout, postSvc)
	}

	rootModel := tui.NewApp(tui.Deps{
		Groups:   groupSvc,
		Posts:    postSvc,
		Comments: commentSvc,
		Votes:    voteSvc,
		Editor:   editor.NewEnvEditor(),
		BaseURL:  client.BaseURL(),
	})

	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
