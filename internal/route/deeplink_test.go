package route_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/nikbrunner/lcl/internal/route"
)

func TestParseDeepLink(t *testing.T) {
	tests := []struct {
		uri      string
		kind     route.Kind
		argKey   string
		argValue string
	}{
		{"https://linuxcommandlibrary.com/man/ls", route.KindCommand, route.ArgCommandName, "ls"},
		{"https://linuxcommandlibrary.com/man/tar.html", route.KindCommand, route.ArgCommandName, "tar"},
		{"https://linuxcommandlibrary.com/basic/oneliners", route.KindBasicGroups, route.ArgDeepLinkCategoryName, "oneliners"},
		{"lcl://man/grep", route.KindCommand, route.ArgCommandName, "grep"},
		{"man/cp", route.KindCommand, route.ArgCommandName, "cp"},
		{"https://linuxcommandlibrary.com/basics", route.KindBasics, "", ""},
		{"https://linuxcommandlibrary.com/tips", route.KindTips, "", ""},
		{"https://linuxcommandlibrary.com/", route.KindCommands, "", ""},
		{"https://linuxcommandlibrary.com/man/", route.KindCommands, "", ""},
		{"https://example.com/whatever", route.KindCommands, "", ""},
		{"%zz", route.KindCommands, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			d := route.ParseDeepLink(tt.uri)
			assert.Equal(t, d.Kind(), tt.kind)
			if tt.argKey != "" {
				assert.Equal(t, d.Arg(tt.argKey), tt.argValue)
			}
		})
	}
}

func TestRouter(t *testing.T) {
	r := route.NewRouter(route.Commands())
	assert.Equal(t, r.Depth(), 1)
	assert.Assert(t, !r.CanGoBack())
	assert.Assert(t, r.Pop() == nil, "root must not be popped")
	assert.Equal(t, r.Current().Kind(), route.KindCommands)

	r.Push(route.Command(1, "ls"))
	assert.Equal(t, r.Depth(), 2)
	assert.Assert(t, r.CanGoBack())
	assert.Equal(t, r.Current().Arg(route.ArgCommandName), "ls")

	prev := r.Pop()
	assert.Equal(t, prev.Kind(), route.KindCommands)
	assert.Equal(t, r.Depth(), 1)

	r.Push(route.Command(2, "cd"))
	r.Reset(route.Basics())
	assert.Equal(t, r.Depth(), 1)
	assert.Equal(t, r.Root().Kind(), route.KindBasics)
	assert.Equal(t, r.Current().Kind(), route.KindBasics)
}
