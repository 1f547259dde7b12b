package web

// views.go builds the view models consumed by the page templates. All URL
// and sort-indicator computation happens here so the templates stay dumb.

import (
	"net/url"
	"strconv"

	"profilebook/internal/core"
)

// columnLabels maps sort keys to their table header labels, in the
// original column order.
var columnLabels = map[string]string{
	"name":     "Name",
	"email":    "Email",
	"phone":    "Phone",
	"dob":      "Dob",
	"city":     "City",
	"district": "District",
	"province": "Province",
	"country":  "Country",
}

// columnHeader is one sortable table header.
type columnHeader struct {
	Key       string
	Label     string
	URL       string // link that toggles the sort on this column
	Indicator string // direction marker when this column is active
}

// tableView is the data the shared table partial renders.
type tableView struct {
	Records       []core.Record
	TotalCount    int
	TotalPages    int
	PageNumber    int
	Columns       []columnHeader
	Countries     []string
	SearchTerm    string
	FilterCountry string
	SortKey       string
	SortDir       core.SortDirection
	BasePath      string
	PrevURL       string
	NextURL       string
	SwitchURL     string
	SwitchLabel   string
}

// homeView is the data for the create-form + table surface.
type homeView struct {
	Form      core.Record
	Errors    core.FieldErrors
	Countries []string
	Provinces []string
	Table     tableView
}

// editView is the data for the edit-form surface.
type editView struct {
	Form      core.Record
	Errors    core.FieldErrors
	Countries []string
	Provinces []string
}

// profilesView is the data for the full-listing surface.
type profilesView struct {
	Table tableView
}

// buildTableView assembles the table partial's view model for a surface.
func buildTableView(basePath string, cfg core.ViewConfig, page core.ViewPage, countries []string, switchURL, switchLabel string) tableView {
	columns := make([]columnHeader, 0, len(core.SortableKeys))
	for _, key := range core.SortableKeys {
		toggled := cfg.Toggle(key)
		toggled.PageNumber = 1

		indicator := ""
		if cfg.SortKey == key {
			if cfg.SortDir == core.SortDesc {
				indicator = "▼"
			} else {
				indicator = "▲"
			}
		}

		columns = append(columns, columnHeader{
			Key:       key,
			Label:     columnLabels[key],
			URL:       viewURL(basePath, toggled),
			Indicator: indicator,
		})
	}

	prev := cfg
	prev.PageNumber = core.ClampPage(cfg.PageNumber-1, page.TotalPages)
	next := cfg
	next.PageNumber = core.ClampPage(cfg.PageNumber+1, page.TotalPages)

	return tableView{
		Records:       page.Records,
		TotalCount:    page.TotalCount,
		TotalPages:    page.TotalPages,
		PageNumber:    cfg.PageNumber,
		Columns:       columns,
		Countries:     countries,
		SearchTerm:    cfg.SearchTerm,
		FilterCountry: cfg.FilterCountry,
		SortKey:       cfg.SortKey,
		SortDir:       cfg.SortDir,
		BasePath:      basePath,
		PrevURL:       viewURL(basePath, prev),
		NextURL:       viewURL(basePath, next),
		SwitchURL:     switchURL,
		SwitchLabel:   switchLabel,
	}
}

// viewURL encodes a view configuration as a surface URL, omitting values
// that match the defaults to keep links clean.
func viewURL(basePath string, cfg core.ViewConfig) string {
	q := url.Values{}
	if cfg.SearchTerm != "" {
		q.Set("q", cfg.SearchTerm)
	}
	if cfg.FilterCountry != "" {
		q.Set("country", cfg.FilterCountry)
	}
	if cfg.SortKey != "" {
		q.Set("sort", cfg.SortKey)
		q.Set("dir", string(cfg.SortDir))
	}
	if cfg.PageNumber > 1 {
		q.Set("page", strconv.Itoa(cfg.PageNumber))
	}
	if len(q) == 0 {
		return basePath
	}
	return basePath + "?" + q.Encode()
}
