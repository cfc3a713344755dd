package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/nikbrunner/lcl/internal/model"
)

// ImportStats reports what an Import touched.
type ImportStats struct {
	Commands int // commands written
	Updated  int // of those, commands that already existed
	Basics   int
	Tips     int
}

// Import merges a dataset into the catalog in one transaction.
// Commands are matched by name and keep their ID, so bookmarks stay valid;
// their sections are replaced. Basics categories and tips are matched by
// title and their contents replaced.
func (c *Catalog) Import(ctx context.Context, ds Dataset) (ImportStats, error) {
	if err := ds.Validate(); err != nil {
		return ImportStats{}, err
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportStats{}, err
	}
	defer tx.Rollback()

	var stats ImportStats

	for _, entry := range ds.Commands {
		existed, err := importCommand(ctx, tx, entry)
		if err != nil {
			return ImportStats{}, err
		}
		stats.Commands++
		if existed {
			stats.Updated++
		}
	}

	for _, entry := range ds.Basics {
		if err := importBasics(ctx, tx, entry); err != nil {
			return ImportStats{}, err
		}
		stats.Basics++
	}

	for _, entry := range ds.Tips {
		if err := importTip(ctx, tx, entry); err != nil {
			return ImportStats{}, err
		}
		stats.Tips++
	}

	if err := tx.Commit(); err != nil {
		return ImportStats{}, fmt.Errorf("commit import: %w", err)
	}

	c.logger.Debug("imported dataset",
		zap.Int("commands", stats.Commands),
		zap.Int("updated", stats.Updated),
		zap.Int("basics", stats.Basics),
		zap.Int("tips", stats.Tips))
	return stats, nil
}

func importCommand(ctx context.Context, tx *sql.Tx, entry CommandEntry) (existed bool, err error) {
	name := strings.TrimSpace(entry.Name)

	var id int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM commands WHERE name = ?`, name).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		res, err := tx.ExecContext(ctx, `
			INSERT INTO commands (name, category, description) VALUES (?, ?, ?)
		`, name, entry.Category, entry.Description)
		if err != nil {
			return false, fmt.Errorf("insert command %q: %w", name, err)
		}
		if id, err = res.LastInsertId(); err != nil {
			return false, err
		}
	case err != nil:
		return false, fmt.Errorf("look up command %q: %w", name, err)
	default:
		existed = true
		if _, err := tx.ExecContext(ctx, `
			UPDATE commands SET category = ?, description = ? WHERE id = ?
		`, entry.Category, entry.Description, id); err != nil {
			return false, fmt.Errorf("update command %q: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM command_sections WHERE command_id = ?`, id); err != nil {
			return false, fmt.Errorf("clear sections of %q: %w", name, err)
		}
	}

	for i, section := range entry.Sections {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO command_sections (command_id, position, title, content)
			VALUES (?, ?, ?, ?)
		`, id, i, section.Title, strings.TrimRight(section.Content, "\n")); err != nil {
			return false, fmt.Errorf("insert section %q of %q: %w", section.Title, name, err)
		}
	}

	return existed, nil
}

// upsertTitled returns the ID of the row with title in table, appending a new
// row at the end of the display order if there is none.
func upsertTitled(ctx context.Context, tx *sql.Tx, table, title string) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, `SELECT id FROM `+table+` WHERE title = ?`, title).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("look up %s %q: %w", table, title, err)
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO `+table+` (position, title)
		VALUES ((SELECT COALESCE(MAX(position), -1) + 1 FROM `+table+`), ?)
	`, title)
	if err != nil {
		return 0, fmt.Errorf("insert %s %q: %w", table, title, err)
	}
	return res.LastInsertId()
}

func importBasics(ctx context.Context, tx *sql.Tx, entry BasicsEntry) error {
	title := strings.TrimSpace(entry.Title)
	categoryID, err := upsertTitled(ctx, tx, "basic_categories", title)
	if err != nil {
		return err
	}

	// Groups cascade to their commands.
	if _, err := tx.ExecContext(ctx, `DELETE FROM basic_groups WHERE category_id = ?`, categoryID); err != nil {
		return fmt.Errorf("clear groups of %q: %w", title, err)
	}

	for i, group := range entry.Groups {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO basic_groups (category_id, position, description) VALUES (?, ?, ?)
		`, categoryID, i, group.Description)
		if err != nil {
			return fmt.Errorf("insert group of %q: %w", title, err)
		}
		groupID, err := res.LastInsertId()
		if err != nil {
			return err
		}

		for j, line := range group.Commands {
			man := line.Man
			if man == nil {
				man = []string{}
			}
			manJSON, _ := json.Marshal(man)
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO basic_commands (group_id, position, command, man_pages) VALUES (?, ?, ?, ?)
			`, groupID, j, line.Command, string(manJSON)); err != nil {
				return fmt.Errorf("insert line of %q: %w", title, err)
			}
		}
	}
	return nil
}

func importTip(ctx context.Context, tx *sql.Tx, entry TipEntry) error {
	title := strings.TrimSpace(entry.Title)
	tipID, err := upsertTitled(ctx, tx, "tips", title)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM tip_sections WHERE tip_id = ?`, tipID); err != nil {
		return fmt.Errorf("clear sections of tip %q: %w", title, err)
	}

	for i, part := range entry.Sections {
		kind := model.ParseTipSectionKind(part.Kind)
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO tip_sections (tip_id, position, kind, data) VALUES (?, ?, ?, ?)
		`, tipID, i, kind.String(), part.Data); err != nil {
			return fmt.Errorf("insert section of tip %q: %w", title, err)
		}
	}
	return nil
}
