// Package templates holds the server's page components.
package templates

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"

	"thirdcoast.systems/hydra/cmd/web/ctxkeys"
	c "thirdcoast.systems/hydra/pkg/components"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

func username(ctx context.Context) string {
	s, _ := ctx.Value(ctxkeys.Username).(string)
	return s
}

func nav(ctx context.Context) templ.Component {
	links := []templ.Component{
		c.Tag("a", templ.Attributes{"href": "/"}, c.Text("Gallery")),
		c.Text(" | "),
		c.Tag("a", templ.Attributes{"href": "/admin/clientlog"}, c.Text("Client log")),
		c.Text(" | "),
	}
	if u := username(ctx); u != "" {
		attrs := templ.Attributes{}
		if started, _ := ctx.Value(ctxkeys.SessionStarted).(time.Time); !started.IsZero() {
			attrs["title"] = "signed in " + humanize.Time(started)
		}
		links = append(links,
			c.Tag("span", attrs, c.Text(u)),
			c.Text(" "),
			c.Tag("a", templ.Attributes{"href": "/logout"}, c.Text("Sign out")))
	} else {
		links = append(links, c.Tag("a", templ.Attributes{"href": "/login"}, c.Text("Sign in")))
	}
	return c.Tag("nav", templ.Attributes{"class": "mb-3"}, links...)
}

// Layout wraps body in the page shell.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
			return err
		}
		page := c.Tag("html", templ.Attributes{"lang": "en"},
			c.Tag("head", nil,
				c.Tag("meta", templ.Attributes{"charset": "utf-8"}),
				c.Tag("title", nil, c.Text(title+" · Hydra")),
				c.Tag("link", templ.Attributes{"rel": "stylesheet", "href": "/static/css/hydra.css"}),
				c.Tag("script", templ.Attributes{"type": "module", "src": datastarScript}),
			),
			c.Tag("body", nil,
				c.Tag("div", templ.Attributes{"class": "container"}, nav(ctx), body),
			),
		)
		return page.Render(ctx, w)
	})
}
