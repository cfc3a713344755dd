package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nikbrunner/lcl/internal/catalog"
	"github.com/nikbrunner/lcl/internal/i18n"
	"github.com/nikbrunner/lcl/internal/model"
	"github.com/nikbrunner/lcl/internal/picker"
	"github.com/nikbrunner/lcl/internal/render"
	"github.com/nikbrunner/lcl/internal/route"
	"github.com/nikbrunner/lcl/internal/search"
)

const maxSuggestions = 3

func (c *cli) openCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <uri>",
		Short: "Open the browser at a deep link",
		Long: `Open the interactive browser at a deep link such as

  https://linuxcommandlibrary.com/man/tar
  https://linuxcommandlibrary.com/basic/oneliners
  lcl://tips`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := route.ParseDeepLink(args[0])
			c.logger.Debug("deep link", zap.String("uri", args[0]), zap.Stringer("destination", dest))
			return c.runTUI(cmd.Context(), dest)
		},
	}
}

func (c *cli) showCmd() *cobra.Command {
	var raw bool
	var width int

	cmd := &cobra.Command{
		Use:   "show <command>",
		Short: "Print the page of a command",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := c.page(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.printPage(cmd, *page, raw, width)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without rendering")
	cmd.Flags().IntVar(&width, "width", 0, "word-wrap width (default from config)")
	return cmd
}

// page looks up a command page. A miss is ErrNotFound with close names.
func (c *cli) page(ctx context.Context, name string) (*model.CommandPage, error) {
	page, err := c.catalog.GetPage(ctx, name)
	if err != nil {
		return nil, err
	}
	if page != nil {
		return page, nil
	}

	commands, err := c.catalog.GetCommands(ctx)
	if err != nil {
		return nil, err
	}
	if suggestions := search.Suggest(name, commands, maxSuggestions); len(suggestions) > 0 {
		return nil, fmt.Errorf("command %q: %w (did you mean %s?)", name, catalog.ErrNotFound, strings.Join(suggestions, ", "))
	}
	return nil, fmt.Errorf("command %q: %w", name, catalog.ErrNotFound)
}

func (c *cli) printPage(cmd *cobra.Command, page model.CommandPage, raw bool, width int) error {
	out := cmd.OutOrStdout()
	if raw {
		_, err := fmt.Fprint(out, render.CommandMarkdown(page))
		return err
	}

	r, err := c.renderer(width)
	if err != nil {
		return err
	}
	text, err := r.CommandPage(page)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, text)
	return err
}

func (c *cli) searchCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy search commands and show the chosen one",
		Long: `Fuzzy search command names. A single match is shown directly; several
matches open a picker unless --list is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			query := strings.Join(args, " ")

			commands, err := c.catalog.GetCommands(ctx)
			if err != nil {
				return err
			}
			results := search.FuzzySearchCommands(commands, query)
			out := cmd.OutOrStdout()

			switch {
			case len(results) == 0:
				fmt.Fprintf(out, "%s: '%s'\n", c.localizer.T(i18n.ListEmpty), query)
				return nil
			case list:
				for _, r := range results {
					fmt.Fprintf(out, "%-14s %s\n", r.Command.Name, r.Command.Description)
				}
				return nil
			}

			selected := results[0].Command
			if len(results) > 1 {
				finalModel, err := tea.NewProgram(picker.New(results, query), tea.WithContext(ctx)).Run()
				if err != nil {
					return fmt.Errorf("run picker: %w", err)
				}
				selected = finalModel.(picker.Picker).SelectedCommand()
				if selected == nil {
					return nil
				}
			}

			page, err := c.page(ctx, selected.Name)
			if err != nil {
				return err
			}
			return c.printPage(cmd, *page, false, 0)
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "l", false, "print all matches instead of picking one")
	return cmd
}

func (c *cli) basicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "basics [category]",
		Short: "List basics categories or print one by slug",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				categories, err := c.catalog.GetBasics(ctx)
				if err != nil {
					return err
				}
				for _, cat := range categories {
					fmt.Fprintf(out, "%-28s %s\n", cat.Slug(), cat.Title)
				}
				return nil
			}

			cat, err := c.catalog.GetBasicCategoryBySlug(ctx, model.Slugify(args[0]))
			if err != nil {
				return err
			}
			if cat == nil {
				return fmt.Errorf("basics category %q: %w", args[0], catalog.ErrNotFound)
			}
			groups, err := c.catalog.GetBasicGroups(ctx, cat.ID)
			if err != nil {
				return err
			}

			r, err := c.renderer(0)
			if err != nil {
				return err
			}
			text, err := r.BasicGroups(cat.Title, groups)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, text)
			return err
		},
	}
}

func (c *cli) tipsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tips",
		Short: "Print all tips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tips, err := c.catalog.GetTips(cmd.Context())
			if err != nil {
				return err
			}

			r, err := c.renderer(0)
			if err != nil {
				return err
			}
			text, err := r.Tips(tips)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}
}
