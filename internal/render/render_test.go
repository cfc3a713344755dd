package render_test

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/nikbrunner/lcl/internal/model"
	"github.com/nikbrunner/lcl/internal/render"
)

func lsPage() model.CommandPage {
	return model.CommandPage{
		Command: model.Command{Name: "ls", Description: "List directory contents."},
		Sections: []model.CommandSection{
			{Title: "SYNOPSIS", Content: "```\nls [OPTION]... [FILE]...\n```\n"},
			{Title: "EXAMPLES", Content: "Long format:\n\n```\nls -la\n```"},
		},
	}
}

func TestCommandMarkdown(t *testing.T) {
	want := "# ls\n" +
		"\n> List directory contents.\n" +
		"\n## SYNOPSIS\n\n```\nls [OPTION]... [FILE]...\n```\n" +
		"\n## EXAMPLES\n\nLong format:\n\n```\nls -la\n```\n"

	assert.Equal(t, render.CommandMarkdown(lsPage()), want)
}

func TestCommandMarkdown_NoDescription(t *testing.T) {
	md := render.CommandMarkdown(model.CommandPage{Command: model.Command{Name: "cd"}})

	assert.Equal(t, md, "# cd\n")
}

func TestBasicGroupsMarkdown(t *testing.T) {
	groups := []model.BasicGroup{
		{Description: "Copy and move", Commands: []model.BasicCommand{
			{Command: "cp a b", ManPages: []string{"cp"}},
			{Command: "mv a b", ManPages: []string{"mv", "cp"}},
		}},
		{Description: "Empty group"},
	}

	want := "# Files\n" +
		"\n## Copy and move\n" +
		"\n```sh\ncp a b\nmv a b\n```\n" +
		"\nSee `cp`, `mv`\n" +
		"\n## Empty group\n"

	assert.Equal(t, render.BasicGroupsMarkdown("Files", groups), want)
}

func TestTipsMarkdown(t *testing.T) {
	tips := []model.Tip{
		{Title: "Previous directory", Sections: []model.TipSection{
			{Kind: model.TipText, Data: "Use a dash."},
			{Kind: model.TipCode, Data: "cd -\n"},
		}},
		{Title: "History", Sections: []model.TipSection{
			{Kind: model.TipText, Data: "Press Ctrl+R."},
		}},
	}

	want := "## Previous directory\n" +
		"\nUse a dash.\n" +
		"\n```sh\ncd -\n```\n" +
		"\n## History\n" +
		"\nPress Ctrl+R.\n"

	assert.Equal(t, render.TipsMarkdown(tips), want)
}

func TestRenderer_NoTTY(t *testing.T) {
	r, err := render.New("notty", 80)
	assert.NilError(t, err)
	assert.Equal(t, r.Width(), 80)

	out, err := r.CommandPage(lsPage())
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(out, "SYNOPSIS"))
	assert.Assert(t, is.Contains(out, "List directory contents."))
}

func TestRenderer_WithWidth(t *testing.T) {
	r, err := render.New("notty", 5)
	assert.NilError(t, err)
	assert.Equal(t, r.Width(), 20, "width is clamped")

	same, err := r.WithWidth(20)
	assert.NilError(t, err)
	assert.Assert(t, same == r)

	wider, err := r.WithWidth(60)
	assert.NilError(t, err)
	assert.Equal(t, wider.Width(), 60)
}

func TestNew_UnknownStyle(t *testing.T) {
	_, err := render.New("/no/such/style.json", 80)
	assert.ErrorContains(t, err, "markdown renderer")
}
