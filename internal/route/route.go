// Package route describes navigation destinations: which screen is shown and
// with which arguments, how it is titled and how the back stack behaves.
package route

import (
	"strconv"
	"strings"
)

// Literal routes and parameterized route patterns.
const (
	RouteCommands      = "commands"
	RouteBasics        = "basics"
	RouteTips          = "tips"
	CommandPattern     = "command?commandId={commandId}&commandName={commandName}"
	BasicGroupsPattern = "basicgroups?categoryId={categoryId}&categoryName={categoryName}&deepLinkCategoryName={deepLinkCategoryName}"
)

// Route arguments.
const (
	ArgCommandID            = "commandId"
	ArgCommandName          = "commandName"
	ArgCategoryID           = "categoryId"
	ArgCategoryName         = "categoryName"
	ArgDeepLinkCategoryName = "deepLinkCategoryName"
)

// Kind classifies a route string once so callers switch over an enum.
type Kind int

const (
	KindNone Kind = iota
	KindCommands
	KindBasics
	KindTips
	KindCommand
	KindBasicGroups
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindCommands:
		return "commands"
	case KindBasics:
		return "basics"
	case KindTips:
		return "tips"
	case KindCommand:
		return "command"
	case KindBasicGroups:
		return "basicgroups"
	default:
		return "unknown"
	}
}

// KindOf classifies a route string.
func KindOf(route string) Kind {
	switch {
	case route == "":
		return KindNone
	case route == RouteCommands:
		return KindCommands
	case route == RouteBasics:
		return KindBasics
	case route == RouteTips:
		return KindTips
	case strings.HasPrefix(route, "command?"):
		return KindCommand
	case strings.HasPrefix(route, "basicgroups?"):
		return KindBasicGroups
	default:
		return KindUnknown
	}
}

// Destination is a route plus its arguments.
type Destination struct {
	Route string
	Args  map[string]string
}

// Kind returns the kind of the destination; a nil destination is KindNone.
func (d *Destination) Kind() Kind {
	if d == nil {
		return KindNone
	}
	return KindOf(d.Route)
}

// Arg returns the argument for key, or "" if it is absent.
func (d *Destination) Arg(key string) string {
	if d == nil {
		return ""
	}
	return d.Args[key]
}

// IntArg returns the argument for key as an integer, or 0.
func (d *Destination) IntArg(key string) int64 {
	n, err := strconv.ParseInt(d.Arg(key), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// String fills the route pattern with the arguments. Absent arguments are
// left empty.
func (d *Destination) String() string {
	if d == nil {
		return ""
	}

	var b strings.Builder
	rest := d.Route
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			break
		}
		b.WriteString(rest[:open])
		b.WriteString(d.Args[rest[open+1:open+end]])
		rest = rest[open+end+1:]
	}
	b.WriteString(rest)
	return b.String()
}

// Commands is the command list.
func Commands() *Destination {
	return &Destination{Route: RouteCommands}
}

// Basics is the basics category list.
func Basics() *Destination {
	return &Destination{Route: RouteBasics}
}

// Tips is the tips page.
func Tips() *Destination {
	return &Destination{Route: RouteTips}
}

// Command is the page of one command.
func Command(id int64, name string) *Destination {
	return &Destination{
		Route: CommandPattern,
		Args: map[string]string{
			ArgCommandID:   strconv.FormatInt(id, 10),
			ArgCommandName: name,
		},
	}
}

// BasicGroups is the group page of a basics category opened from the list.
func BasicGroups(categoryID int64, categoryName string) *Destination {
	return &Destination{
		Route: BasicGroupsPattern,
		Args: map[string]string{
			ArgCategoryID:           strconv.FormatInt(categoryID, 10),
			ArgCategoryName:         categoryName,
			ArgDeepLinkCategoryName: "",
		},
	}
}

// BasicGroupsDeepLink is the group page of the basics category with slug,
// resolved when shown.
func BasicGroupsDeepLink(slug string) *Destination {
	return &Destination{
		Route: BasicGroupsPattern,
		Args: map[string]string{
			ArgDeepLinkCategoryName: slug,
		},
	}
}
