package route

import (
	"net/url"
	"strings"
)

// ParseDeepLink maps a web URL of the command library to a destination:
//
//	.../man/<name>     command page (name only)
//	.../basic/<slug>   basics category
//	.../basics         basics list
//	.../tips           tips
//
// Anything else opens the command list.
func ParseDeepLink(uri string) *Destination {
	u, err := url.Parse(strings.TrimSpace(uri))
	if err != nil {
		return Commands()
	}

	path := u.Path
	if u.Scheme != "http" && u.Scheme != "https" && u.Host != "" {
		// lcl://man/ls
		path = u.Host + "/" + path
	}

	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) == 0 {
		return Commands()
	}

	last := strings.TrimSuffix(segments[len(segments)-1], ".html")
	if len(segments) >= 2 {
		switch segments[len(segments)-2] {
		case "man":
			if last != "" {
				return Command(0, last)
			}
		case "basic":
			if last != "" {
				return BasicGroupsDeepLink(last)
			}
		}
	}

	switch last {
	case "basics":
		return Basics()
	case "tips":
		return Tips()
	}
	return Commands()
}
