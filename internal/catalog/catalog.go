// Package catalog serves the bundled command documentation: commands with
// their page sections, basics categories and tips.
package catalog

import (
	"bytes"
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/nikbrunner/lcl/internal/model"
	"github.com/nikbrunner/lcl/internal/sqlitedb"
)

// ErrNotFound is returned by lookups that require a match.
var ErrNotFound = errors.New("not found")

//go:embed migrations/*.sql
var migrations embed.FS

//go:embed seed.yaml
var seed []byte

// Counts summarizes the catalog contents.
type Counts struct {
	Commands int
	Basics   int
	Tips     int
}

// Catalog is the read side of the command database plus Import.
type Catalog struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
}

// Open opens the catalog at path. An empty catalog is seeded from the
// embedded dataset.
func Open(ctx context.Context, path string, logger *zap.Logger) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sqlitedb.Open(path, migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}

	c := &Catalog{db: db, path: path, logger: logger}

	counts, err := c.Counts(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}
	if counts.Commands == 0 {
		if err := c.seed(ctx); err != nil {
			db.Close()
			return nil, err
		}
	}

	return c, nil
}

func (c *Catalog) seed(ctx context.Context) error {
	ds, err := DecodeDataset(bytes.NewReader(seed))
	if err != nil {
		return fmt.Errorf("embedded seed: %w", err)
	}
	stats, err := c.Import(ctx, ds)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	c.logger.Info("seeded catalog",
		zap.String("path", c.path),
		zap.Int("commands", stats.Commands),
		zap.Int("basics", stats.Basics),
		zap.Int("tips", stats.Tips))
	return nil
}

// Path returns the database file path.
func (c *Catalog) Path() string {
	return c.path
}

// Close closes the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Counts returns how many commands, basics categories and tips exist.
func (c *Catalog) Counts(ctx context.Context) (Counts, error) {
	var counts Counts
	err := c.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM commands),
			(SELECT COUNT(*) FROM basic_categories),
			(SELECT COUNT(*) FROM tips)
	`).Scan(&counts.Commands, &counts.Basics, &counts.Tips)
	if err != nil {
		return Counts{}, fmt.Errorf("count catalog: %w", err)
	}
	return counts, nil
}

// GetCommand finds a command by exact name, returns nil if not found.
func (c *Catalog) GetCommand(ctx context.Context, name string) (*model.Command, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT id, name, category, description FROM commands WHERE name = ?
	`, name)
	return scanCommand(row)
}

// GetCommandByID finds a command by ID, returns nil if not found.
func (c *Catalog) GetCommandByID(ctx context.Context, id int64) (*model.Command, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT id, name, category, description FROM commands WHERE id = ?
	`, id)
	return scanCommand(row)
}

func scanCommand(row *sql.Row) (*model.Command, error) {
	var cmd model.Command
	err := row.Scan(&cmd.ID, &cmd.Name, &cmd.Category, &cmd.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query command: %w", err)
	}
	return &cmd, nil
}

// GetCommands returns every command sorted by name.
func (c *Catalog) GetCommands(ctx context.Context) ([]model.Command, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, name, category, description FROM commands ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list commands: %w", err)
	}
	defer rows.Close()

	commands := []model.Command{}
	for rows.Next() {
		var cmd model.Command
		if err := rows.Scan(&cmd.ID, &cmd.Name, &cmd.Category, &cmd.Description); err != nil {
			return nil, err
		}
		commands = append(commands, cmd)
	}
	return commands, rows.Err()
}

// GetSections returns the page sections of a command in order.
func (c *Catalog) GetSections(ctx context.Context, commandID int64) ([]model.CommandSection, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, command_id, position, title, content
		FROM command_sections
		WHERE command_id = ?
		ORDER BY position
	`, commandID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()

	sections := []model.CommandSection{}
	for rows.Next() {
		var s model.CommandSection
		if err := rows.Scan(&s.ID, &s.CommandID, &s.Position, &s.Title, &s.Content); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

// GetPage returns the command and its sections, or nil if there is no such command.
func (c *Catalog) GetPage(ctx context.Context, name string) (*model.CommandPage, error) {
	cmd, err := c.GetCommand(ctx, name)
	if err != nil || cmd == nil {
		return nil, err
	}
	sections, err := c.GetSections(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	return &model.CommandPage{Command: *cmd, Sections: sections}, nil
}

// GetBasics returns all basics categories in display order.
func (c *Catalog) GetBasics(ctx context.Context) ([]model.BasicCategory, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, position, title FROM basic_categories ORDER BY position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list basics: %w", err)
	}
	defer rows.Close()

	categories := []model.BasicCategory{}
	for rows.Next() {
		var cat model.BasicCategory
		if err := rows.Scan(&cat.ID, &cat.Position, &cat.Title); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

// GetBasicCategoryBySlug finds the category whose slug equals slug, returns
// nil if none does.
func (c *Catalog) GetBasicCategoryBySlug(ctx context.Context, slug string) (*model.BasicCategory, error) {
	categories, err := c.GetBasics(ctx)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].Slug() == slug {
			return &categories[i], nil
		}
	}
	return nil, nil
}

// GetBasicGroups returns the groups of a category with their shell lines.
func (c *Catalog) GetBasicGroups(ctx context.Context, categoryID int64) ([]model.BasicGroup, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT g.id, g.category_id, g.position, g.description,
			bc.id, bc.command, bc.man_pages
		FROM basic_groups g
		LEFT JOIN basic_commands bc ON bc.group_id = g.id
		WHERE g.category_id = ?
		ORDER BY g.position, g.id, bc.position, bc.id
	`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list basic groups: %w", err)
	}
	defer rows.Close()

	groups := []model.BasicGroup{}
	for rows.Next() {
		var g model.BasicGroup
		var cmdID sql.NullInt64
		var line, manJSON sql.NullString
		if err := rows.Scan(&g.ID, &g.CategoryID, &g.Position, &g.Description, &cmdID, &line, &manJSON); err != nil {
			return nil, err
		}

		if n := len(groups); n == 0 || groups[n-1].ID != g.ID {
			g.Commands = []model.BasicCommand{}
			groups = append(groups, g)
		}
		if !cmdID.Valid {
			continue
		}

		bc := model.BasicCommand{ID: cmdID.Int64, GroupID: g.ID, Command: line.String}
		if err := json.Unmarshal([]byte(manJSON.String), &bc.ManPages); err != nil {
			bc.ManPages = []string{}
		}
		last := &groups[len(groups)-1]
		last.Commands = append(last.Commands, bc)
	}
	return groups, rows.Err()
}

// GetTips returns all tips with their sections in display order.
func (c *Catalog) GetTips(ctx context.Context) ([]model.Tip, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT t.id, t.position, t.title,
			s.id, s.position, s.kind, s.data
		FROM tips t
		LEFT JOIN tip_sections s ON s.tip_id = t.id
		ORDER BY t.position, t.id, s.position, s.id
	`)
	if err != nil {
		return nil, fmt.Errorf("list tips: %w", err)
	}
	defer rows.Close()

	tips := []model.Tip{}
	for rows.Next() {
		var tip model.Tip
		var secID, secPos sql.NullInt64
		var kind, data sql.NullString
		if err := rows.Scan(&tip.ID, &tip.Position, &tip.Title, &secID, &secPos, &kind, &data); err != nil {
			return nil, err
		}

		if n := len(tips); n == 0 || tips[n-1].ID != tip.ID {
			tip.Sections = []model.TipSection{}
			tips = append(tips, tip)
		}
		if !secID.Valid {
			continue
		}

		last := &tips[len(tips)-1]
		last.Sections = append(last.Sections, model.TipSection{
			ID:       secID.Int64,
			TipID:    tip.ID,
			Position: int(secPos.Int64),
			Kind:     model.ParseTipSectionKind(kind.String),
			Data:     data.String,
		})
	}
	return tips, rows.Err()
}
