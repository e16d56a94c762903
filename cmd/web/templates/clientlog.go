package templates

import (
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"

	"thirdcoast.systems/hydra/cmd/web/internal/logsink"
	"thirdcoast.systems/hydra/cmd/web/viewtypes"
	c "thirdcoast.systems/hydra/pkg/components"
)

const ClientLogBodyID = "clientlog-rows"

func statusText(code *int) string {
	if code == nil {
		return ""
	}
	return strconv.Itoa(*code)
}

// ClientLogRow renders one entry. Warnings and errors are coloured apart.
func ClientLogRow(e logsink.Entry, now time.Time) templ.Component {
	class := viewtypes.ErrorText
	if e.IsWarning() {
		class = viewtypes.WarningText
	}
	return c.Tag("tr", templ.Attributes{"id": "log-" + e.ID.String(), "class": class},
		c.Tag("td", templ.Attributes{"title": e.ReceivedAt.Format(time.RFC3339)}, c.Text(humanize.RelTime(e.ReceivedAt, now, "ago", "from now"))),
		c.Tag("td", nil, c.Text(e.Message)),
		c.Tag("td", nil, c.Text(e.URL)),
		c.Tag("td", nil, c.Text(statusText(e.StatusCode))),
		c.Tag("td", nil, c.Text(e.CorrelationID)),
	)
}

// ClientLogPage lists entries newest first and follows the live stream.
func ClientLogPage(entries []logsink.Entry, now time.Time) templ.Component {
	rows := make([]templ.Component, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, ClientLogRow(e, now))
	}
	return c.Tag("main", templ.Attributes{"data-init": "@get('/admin/clientlog/stream')"},
		c.Tag("h1", templ.Attributes{"class": viewtypes.PageHeading}, c.Text("Client log")),
		c.Tag("p", templ.Attributes{"class": viewtypes.SectionLabel},
			c.Text(humanize.Comma(int64(len(entries)))+" recent entries")),
		c.Tag("table", templ.Attributes{"class": "table table-sm"},
			c.Tag("thead", nil, c.HeaderRow("Received", "Message", "URL", "Status", "Correlation")),
			c.Tag("tbody", templ.Attributes{"id": ClientLogBodyID}, rows...),
		),
	)
}
