package httpclient

import (
	"net/url"
	"sort"
	"strings"
)

// BuildURL joins controller, action and pathParam with "/" and appends
// params (sorted by key, query-escaped) followed by rawQuery.
//
//	BuildURL("Exam", "Details", nil, "123", "")               // Exam/Details/123
//	BuildURL("Exam", "Search", nil, "", "status=active")      // Exam/Search?status=active
func BuildURL(controller, action string, params map[string]string, pathParam, rawQuery string) string {
	var b strings.Builder
	b.WriteString(controller)
	if action != "" {
		b.WriteString("/")
		b.WriteString(action)
	}
	if pathParam != "" {
		b.WriteString("/")
		b.WriteString(pathParam)
	}

	var parts []string
	if len(params) > 0 {
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, url.QueryEscape(k)+"="+url.QueryEscape(params[k]))
		}
		parts = append(parts, strings.Join(pairs, "&"))
	}
	if rawQuery != "" {
		parts = append(parts, rawQuery)
	}
	if len(parts) > 0 {
		b.WriteString("?")
		b.WriteString(strings.Join(parts, "&"))
	}

	return b.String()
}
