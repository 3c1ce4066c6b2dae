package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jask/onboarding/internal/slides"
)

func (a *app) slidesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slides",
		Short: "Inspect and edit the slide catalog",
	}
	cmd.AddCommand(a.slidesListCmd(), a.slidesDecksCmd(), a.slidesImportCmd())
	return cmd
}

func (a *app) slidesListCmd() *cobra.Command {
	var deck string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the slides of a catalog deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if deck == "" {
				deck = a.cfg.Catalog.Deck
			}
			db, repo, err := a.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			rows, err := repo.ListDeck(cmd.Context(), deck)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				return fmt.Errorf("deck %q: %w", deck, slides.ErrEmptyDeck)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tTITLE\tIMAGE\tSUBTITLE")
			for _, r := range rows {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.Position+1, r.Title, r.ImageID, r.Subtitle)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&deck, "deck", "", "catalog deck (default catalog.deck)")
	return cmd
}

func (a *app) slidesDecksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decks",
		Short: "List catalog decks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, repo, err := a.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			decks, err := repo.Decks(cmd.Context())
			if err != nil {
				return err
			}
			for _, d := range decks {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d slides\n", d.Name, d.Slides)
			}
			return nil
		},
	}
}

func (a *app) slidesImportCmd() *cobra.Command {
	var deck string
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace a catalog deck with the slides in a TOML or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if deck == "" {
				deck = a.cfg.Catalog.Deck
			}
			loaded, err := slides.LoadFile(args[0])
			if err != nil {
				return err
			}
			db, repo, err := a.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			if err := repo.ReplaceDeck(cmd.Context(), deck, loaded); err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d slides into deck %q\n", len(loaded), deck)
			return nil
		},
	}
	cmd.Flags().StringVar(&deck, "deck", "", "catalog deck (default catalog.deck)")
	return cmd
}
