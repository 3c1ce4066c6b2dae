package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/jask/onboarding/internal/assets"
	"github.com/jask/onboarding/internal/slides"
	"github.com/jask/onboarding/internal/tui"
)

func (a *app) runScreen(cmd *cobra.Command) error {
	deck, source, err := a.loadDeck(cmd.Context())
	if err != nil {
		return err
	}
	a.log.Info("deck loaded", zap.String("source", source), zap.Int("slides", len(deck)))

	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		return printDeck(out, deck)
	}

	lib := assets.NewLibrary(a.cfg.Assets.Dir, assets.WithLogger(a.log))
	screen, err := tui.NewScreen(deck, lib, a.cfg.UI, tui.WithLogger(a.log))
	if err != nil {
		return err
	}
	host := tui.NewHost(screen)

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(cmd.Context())}
	if a.cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(host, opts...).Run(); err != nil {
		return fmt.Errorf("run screen: %w", err)
	}

	if host.Finished() {
		a.log.Info("onboarding finished")
		fmt.Fprintf(out, "Onboarding complete (%d slides).\n", len(deck))
		return nil
	}
	a.log.Info("onboarding dismissed", zap.Int("page", host.Page()))
	fmt.Fprintf(out, "Onboarding closed on slide %d of %d.\n", host.Page()+1, len(deck))
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printDeck writes the slides as plain text for pipes and dumb terminals.
func printDeck(w io.Writer, deck []slides.Slide) error {
	for i, s := range deck {
		if _, err := fmt.Fprintf(w, "%d/%d  %s\n", i+1, len(deck), s.Title); err != nil {
			return err
		}
		if strings.TrimSpace(s.Subtitle) == "" {
			continue
		}
		body, err := glamour.Render(s.Subtitle, "notty")
		if err != nil {
			body = s.Subtitle
		}
		for _, line := range strings.Split(strings.Trim(body, "\n"), "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			if _, err := fmt.Fprintf(w, "    %s\n", strings.TrimSpace(line)); err != nil {
				return err
			}
		}
	}
	return nil
}
