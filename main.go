package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nconklindev/gradecalc/internal/loader"
	"github.com/nconklindev/gradecalc/internal/runner"
	"github.com/nconklindev/gradecalc/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	log := newLogger(os.Getenv("LOG_LEVEL"))
	args := os.Args[1:]

	if len(args) > 0 {
		switch args[0] {
		case "--version", "-v":
			fmt.Printf("gradecalc %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
			os.Exit(0)
		case "--tui":
			p := tea.NewProgram(ui.InitialModel(loader.New(io.Discard, log)), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				log.Fatalf("tui: %v", err)
			}
			return
		}
	}

	r := runner.New(loader.New(os.Stdout, log), os.Stdin, os.Stdout)
	if err := r.Run(args); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	log.SetLevel(logrus.WarnLevel)

	if level == "" {
		return log
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.WithField("LOG_LEVEL", level).Warn("unknown log level, using warn")
		return log
	}
	log.SetLevel(lvl)
	return log
}
