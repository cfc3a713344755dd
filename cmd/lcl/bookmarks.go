package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nikbrunner/lcl/internal/bookmark"
	"github.com/nikbrunner/lcl/internal/exporter"
	"github.com/nikbrunner/lcl/internal/i18n"
	"github.com/nikbrunner/lcl/internal/importer"
)

func (c *cli) bookmarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookmark",
		Short: "Manage bookmarked commands",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <command>",
			Short: "Bookmark a command",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				page, err := c.page(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if err := c.store.AddBookmark(cmd.Context(), page.Command.ID); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), c.localizer.T(i18n.MessageBookmarkAdd, page.Command.Name))
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <command>",
			Short: "Remove a bookmark",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				page, err := c.page(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if err := c.store.RemoveBookmark(cmd.Context(), page.Command.ID); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), c.localizer.T(i18n.MessageBookmarkDrop, page.Command.Name))
				return nil
			},
		},
		&cobra.Command{
			Use:   "toggle <command>",
			Short: "Flip the bookmark of a command",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				page, err := c.page(ctx, args[0])
				if err != nil {
					return err
				}
				toggle, err := bookmark.New(ctx, c.store, page.Command.ID)
				if err != nil {
					return err
				}
				change, err := toggle.Flip(ctx)
				if err != nil {
					return err
				}

				key := i18n.MessageBookmarkDrop
				if change.Bookmarked {
					key = i18n.MessageBookmarkAdd
				}
				fmt.Fprintln(cmd.OutOrStdout(), c.localizer.T(key, page.Command.Name))
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List bookmarked commands, oldest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				entries, err := c.bookmarkEntries(cmd)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, c.localizer.T(i18n.ListBookmarks))
				for _, e := range entries {
					fmt.Fprintf(out, "  %-14s %s\n", e.Command.Name, e.Command.Description)
				}
				return nil
			},
		},
	)
	return cmd
}

// bookmarkEntries pairs every bookmark with its command. Bookmarks of
// commands no longer in the catalog are skipped.
func (c *cli) bookmarkEntries(cmd *cobra.Command) ([]exporter.Entry, error) {
	ctx := cmd.Context()
	bookmarks, err := c.store.Bookmarks(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]exporter.Entry, 0, len(bookmarks))
	for _, b := range bookmarks {
		command, err := c.catalog.GetCommandByID(ctx, b.CommandID)
		if err != nil {
			return nil, err
		}
		if command == nil {
			c.logger.Warn("bookmark of unknown command", zap.Int64("command_id", b.CommandID))
			continue
		}
		entries = append(entries, exporter.Entry{Command: *command, Bookmark: b})
	}
	return entries, nil
}

func (c *cli) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <path>",
		Short: "Import command pages into the catalog",
		Long: `Import command pages from an HTML page, a YAML dataset or a directory
of both. Commands are matched by name; existing pages are replaced and keep
their bookmarks.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := importer.ParseFile(args[0])
			if err != nil {
				return err
			}
			stats, err := c.catalog.Import(cmd.Context(), ds)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d commands (%d updated), %d basics, %d tips\n",
				stats.Commands, stats.Updated, stats.Basics, stats.Tips)
			return nil
		},
	}
}

func (c *cli) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Export bookmarks as a browser bookmarks file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var outputPath string
			if len(args) == 1 {
				outputPath = args[0]
			} else {
				var err error
				outputPath, err = exporter.DefaultExportPath()
				if err != nil {
					return fmt.Errorf("default export path: %w", err)
				}
			}

			entries, err := c.bookmarkEntries(cmd)
			if err != nil {
				return err
			}

			html := exporter.ExportHTML(entries, c.cfg.Export.BaseURL)
			if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d bookmarks to %s\n", len(entries), outputPath)
			return nil
		},
	}
}
