package route

import (
	"context"

	"go.uber.org/zap"

	"github.com/nikbrunner/lcl/internal/i18n"
	"github.com/nikbrunner/lcl/internal/model"
)

// BasicsSource lists the basics categories.
type BasicsSource interface {
	GetBasics(ctx context.Context) ([]model.BasicCategory, error)
}

// TitleResolver maps a destination to the title shown in the top bar.
type TitleResolver struct {
	basics    BasicsSource
	localizer *i18n.Localizer
	logger    *zap.Logger
}

// NewTitleResolver creates a TitleResolver.
func NewTitleResolver(basics BasicsSource, localizer *i18n.Localizer, logger *zap.Logger) *TitleResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TitleResolver{basics: basics, localizer: localizer, logger: logger}
}

// Title returns the title for d. A nil destination gets the default title,
// an unrecognized route an empty one.
func (r *TitleResolver) Title(ctx context.Context, d *Destination) string {
	switch d.Kind() {
	case KindNone:
		return r.localizer.T(i18n.TitleDefault)
	case KindCommands:
		return r.localizer.T(i18n.TitleCommands)
	case KindBasics:
		return r.localizer.T(i18n.TitleBasics)
	case KindTips:
		return r.localizer.T(i18n.TitleTips)
	case KindCommand:
		return d.Arg(ArgCommandName)
	case KindBasicGroups:
		return r.basicGroupsTitle(ctx, d)
	default:
		return ""
	}
}

func (r *TitleResolver) basicGroupsTitle(ctx context.Context, d *Destination) string {
	slug := d.Arg(ArgDeepLinkCategoryName)
	if slug == "" {
		return d.Arg(ArgCategoryName)
	}

	if category := r.lookup(ctx, slug); category != nil {
		return category.Title
	}
	return r.localizer.T(i18n.TitleNotFound)
}

// lookup finds the basics category with slug, or nil.
func (r *TitleResolver) lookup(ctx context.Context, slug string) *model.BasicCategory {
	categories, err := r.basics.GetBasics(ctx)
	if err != nil {
		r.logger.Warn("list basics for title", zap.String("slug", slug), zap.Error(err))
		return nil
	}
	for i := range categories {
		if categories[i].Slug() == slug {
			return &categories[i]
		}
	}
	return nil
}

// Category resolves the basics category a basicgroups destination points at:
// by slug for deep links, otherwise by its categoryId argument. It returns
// nil when there is none.
func (r *TitleResolver) Category(ctx context.Context, d *Destination) *model.BasicCategory {
	if d.Kind() != KindBasicGroups {
		return nil
	}
	if slug := d.Arg(ArgDeepLinkCategoryName); slug != "" {
		return r.lookup(ctx, slug)
	}

	id := d.IntArg(ArgCategoryID)
	categories, err := r.basics.GetBasics(ctx)
	if err != nil {
		r.logger.Warn("list basics", zap.Int64("category_id", id), zap.Error(err))
		return nil
	}
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i]
		}
	}
	return nil
}
