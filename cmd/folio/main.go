package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/folio/internal/app"
	"github.com/sadopc/folio/internal/config"
	"github.com/sadopc/folio/internal/core/catalog"
	"github.com/sadopc/folio/internal/core/prefs"
	"github.com/sadopc/folio/internal/core/state"
	"github.com/sadopc/folio/pkg/version"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "list":
			os.Exit(listCmd(os.Args[2:], os.Stdout, os.Stderr))
		case "domains":
			os.Exit(domainsCmd(os.Args[2:], os.Stdout, os.Stderr))
		case "show":
			os.Exit(showCmd(os.Args[2:], os.Stdout, os.Stderr))
		case "completion":
			os.Exit(completionCmd(os.Args[2:], os.Stdout, os.Stderr))
		case "version":
			fmt.Println(version.String())
			return
		case "help":
			printHelp(os.Stderr)
			return
		}
	}
	tuiCmd()
}

func printHelp(w io.Writer) {
	fmt.Fprintf(w, `folio - a terminal portfolio

Usage:
  folio [flags]                    Launch TUI (interactive mode)
  folio <command> [args] [flags]   Run a subcommand

Commands:
  list        List projects, optionally filtered by domain
  domains     List project domains in catalog order
  show        Show one project in full
  completion  Generate shell completion scripts (bash, zsh, fish)
  version     Print version information
  help        Show this help message

TUI Flags:
  --theme <light|dark>  Start with this theme
  --no-persist          Do not read or save the theme choice
  --version             Print version and exit

Run 'folio <command> --help' for more information about a command.
`)
}

func tuiCmd() {
	versionFlag := flag.Bool("version", false, "Print version and exit")
	themeFlag := flag.String("theme", "", "Start with this theme: light or dark")
	noPersistFlag := flag.Bool("no-persist", false, "Do not read or save the theme choice")
	flag.Parse()

	if *versionFlag {
		fmt.Println(version.String())
		os.Exit(0)
	}

	cfg := config.Load()

	logPath := cfg.LogFile
	if env := os.Getenv("FOLIO_LOG"); env != "" {
		logPath = env
	}
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "folio")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	var store *prefs.Store
	if !*noPersistFlag && cfg.PersistTheme {
		store = openPrefs()
		if store != nil {
			defer store.Close()
		}
	}

	initial := app.InitialTheme(cfg, store)
	if *themeFlag != "" {
		t, err := state.ParseTheme(*themeFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		initial = t
	}

	model := app.New(app.Options{
		Catalog: catalog.Default(),
		Profile: catalog.DefaultProfile(),
		Config:  cfg,
		Prefs:   store,
		Theme:   initial,
		Flag:    state.LipglossFlag{},
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openPrefs opens the preferences database. Failures are logged and the
// app runs without persistence.
func openPrefs() *prefs.Store {
	dir := config.DataDir()
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("prefs: %v", err)
		return nil
	}
	s, err := prefs.NewStore(filepath.Join(dir, "folio.db"))
	if err != nil {
		log.Printf("prefs: %v", err)
		return nil
	}
	return s
}
