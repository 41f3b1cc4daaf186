// Package cli implements the landmarks command line tool. Every invocation
// loads its own Store, so favorite changes last for that process only.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"landmark-explorer/internal/assets"
	"landmark-explorer/internal/models"
	"landmark-explorer/internal/repository"
	"landmark-explorer/internal/services"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

type app struct {
	assetPath string
	service   services.LandmarkService
}

func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "landmarks",
		Short:         "Browse the bundled landmark collection",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}
	root.PersistentFlags().StringVar(&a.assetPath, "asset", "", "path to a landmark JSON file (default: bundled asset)")

	root.AddCommand(a.listCmd(), a.showCmd(), a.favoriteCmd(), linksCmd())
	return root
}

func (a *app) load() error {
	fsys, name := assets.Source(a.assetPath)
	landmarks, err := repository.LoadLandmarks(fsys, name)
	if err != nil {
		return err
	}
	repo, err := repository.NewLandmarkRepository(landmarks)
	if err != nil {
		return err
	}
	a.service = services.NewLandmarkService(repo)
	return nil
}

func (a *app) listCmd() *cobra.Command {
	var favoritesOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List landmarks in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			landmarks, err := a.service.ListLandmarks(cmd.Context(), favoritesOnly)
			if err != nil {
				return err
			}
			return writeTable(cmd.OutOrStdout(), landmarks)
		},
	}
	cmd.Flags().BoolVar(&favoritesOnly, "favorites", false, "show favorites only")
	return cmd
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one landmark with its map region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			detail, err := a.service.GetLandmark(cmd.Context(), id)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(detail)
		},
	}
}

func (a *app) favoriteCmd() *cobra.Command {
	var unset bool

	cmd := &cobra.Command{
		Use:   "favorite <id>",
		Short: "Mark a landmark as favorite and print the resulting favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			change, err := a.service.SetFavorite(cmd.Context(), id, !unset)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%d): favorite %t -> %t\n", change.Landmark.Name, id, change.Previous, change.Landmark.IsFavorite)

			favorites, err := a.service.ListLandmarks(cmd.Context(), true)
			if err != nil {
				return err
			}
			return writeTable(out, favorites)
		},
	}
	cmd.Flags().BoolVar(&unset, "unset", false, "clear the favorite flag instead")
	return cmd
}

func linksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "links",
		Short: "List the demo links",
		Args:  cobra.NoArgs,
		// No landmark data needed.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, l := range models.DemoLinks() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", l.Title, l.Destination)
			}
			return nil
		},
	}
}

var cellStyle = lipgloss.NewStyle().PaddingRight(2)

func writeTable(w io.Writer, landmarks []models.Landmark) error {
	headers := []string{"ID", "NAME", "PARK", "STATE", "FAVORITE"}
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == len(headers)-1 {
				return lipgloss.NewStyle()
			}
			return cellStyle
		})

	for _, l := range landmarks {
		fav := ""
		if l.IsFavorite {
			fav = "*"
		}
		t.Row(strconv.Itoa(l.ID), l.Name, l.Park, l.State, fav)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid landmark id %q", arg)
	}
	return id, nil
}
