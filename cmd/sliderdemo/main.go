package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/Dicklesworthstone/slider/pkg/slider"
	"github.com/Dicklesworthstone/slider/pkg/theme"
	"github.com/Dicklesworthstone/slider/pkg/watcher"
)

func main() {
	helpFlag := flag.Bool("help", false, "Show help")
	version := flag.Bool("version", false, "Show version")
	themePath := flag.String("theme", "", "Theme YAML file (watched for live reload)")
	configure := flag.Bool("configure", false, "Configure bounds interactively before starting")
	flag.Parse()

	if *helpFlag {
		fmt.Println("Usage: sliderdemo [options]")
		fmt.Println("\nAn interactive demo of the slider component.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *version {
		fmt.Println("sliderdemo version 0.1.0")
		os.Exit(0)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "sliderdemo needs an interactive terminal")
		os.Exit(1)
	}

	cfg := slider.Config{Min: 0, Max: 100, Step: 1}
	th := slider.DefaultTheme()

	if *configure {
		if err := runConfigForm(&cfg, &th); err != nil {
			fmt.Fprintf(os.Stderr, "configuration failed: %v\n", err)
			os.Exit(1)
		}
	}

	if *themePath != "" {
		loaded, err := theme.Load(*themePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading theme: %v\n", err)
			os.Exit(1)
		}
		th = loaded
	}

	m := newApp(cfg, th)

	if *themePath != "" {
		ch := make(chan slider.Theme, 1)
		m.themeCh = ch
		w, err := watcher.New(*themePath, 0, func() {
			t, err := theme.Load(*themePath)
			if err != nil {
				return // keep the current theme on a bad edit
			}
			select {
			case ch <- t:
			default:
			}
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "error watching theme: %v\n", err)
			os.Exit(1)
		}
		defer w.Close()
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running slider demo: %v\n", err)
		os.Exit(1)
	}
}

// runConfigForm edits the slider bounds through a short form.
func runConfigForm(cfg *slider.Config, th *slider.Theme) error {
	minS := strconv.FormatFloat(cfg.Min, 'g', -1, 64)
	maxS := strconv.FormatFloat(cfg.Max, 'g', -1, 64)
	stepS := strconv.FormatFloat(cfg.Step, 'g', -1, 64)
	gradient := th.Gradient

	validFloat := func(s string) error {
		if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return fmt.Errorf("not a number")
		}
		return nil
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Minimum").Value(&minS).Validate(validFloat),
		huh.NewInput().Title("Maximum").Value(&maxS).Validate(validFloat),
		huh.NewInput().Title("Step").Value(&stepS).Validate(validFloat),
		huh.NewConfirm().Title("Gradient fill?").Value(&gradient),
	))
	if err := form.Run(); err != nil {
		return err
	}

	cfg.Min, _ = strconv.ParseFloat(strings.TrimSpace(minS), 64)
	cfg.Max, _ = strconv.ParseFloat(strings.TrimSpace(maxS), 64)
	cfg.Step, _ = strconv.ParseFloat(strings.TrimSpace(stepS), 64)
	th.Gradient = gradient

	if cfg.Max <= cfg.Min {
		return fmt.Errorf("max (%g) must be greater than min (%g)", cfg.Max, cfg.Min)
	}
	return nil
}
