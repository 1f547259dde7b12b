package core

// query.go derives the visible page of records from the full collection.
//
// The pipeline applies, in fixed order: free-text search, exact country
// filter, sort, pagination. Sorting uses an explicit comparator table keyed
// by field name; unknown sort keys are ignored rather than trusted. Ties on
// the sort key fall back to id so the resulting order is reproducible.

import (
	"sort"
	"strings"
)

// SortDirection is the direction of an active sort.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ViewConfig is the tuple of search/filter/sort/page parameters driving the
// view pipeline.
type ViewConfig struct {
	SearchTerm    string
	FilterCountry string
	SortKey       string
	SortDir       SortDirection
	PageSize      int
	PageNumber    int
}

// Toggle returns the configuration after a click on a column header:
// clicking the active key flips asc/desc, clicking a new key sorts
// ascending by it.
func (c ViewConfig) Toggle(key string) ViewConfig {
	if c.SortKey == key && c.SortDir == SortAsc {
		c.SortDir = SortDesc
		return c
	}
	c.SortKey = key
	c.SortDir = SortAsc
	return c
}

// ViewPage is the result of running the pipeline: the visible slice plus
// the pagination totals the table footer needs.
type ViewPage struct {
	Records    []Record `json:"records"`
	TotalCount int      `json:"totalCount"`
	TotalPages int      `json:"totalPages"`
}

// comparators maps a sort key to its field comparator. The table is the
// whole set of sortable columns; anything else leaves the order untouched.
var comparators = map[string]func(a, b Record) int{
	"name":     func(a, b Record) int { return strings.Compare(a.Name, b.Name) },
	"email":    func(a, b Record) int { return strings.Compare(a.Email, b.Email) },
	"phone":    func(a, b Record) int { return strings.Compare(a.Phone, b.Phone) },
	"dob":      func(a, b Record) int { return strings.Compare(a.DOB, b.DOB) },
	"city":     func(a, b Record) int { return strings.Compare(a.City, b.City) },
	"district": func(a, b Record) int { return strings.Compare(a.District, b.District) },
	"province": func(a, b Record) int { return strings.Compare(a.Province, b.Province) },
	"country":  func(a, b Record) int { return strings.Compare(a.Country, b.Country) },
}

// SortableKeys lists the sort keys in table column order.
var SortableKeys = []string{"name", "email", "phone", "dob", "city", "district", "province", "country"}

// QueryView produces the visible page for the given configuration.
//
// A requested page beyond the last yields an empty slice; clamping the page
// number for navigation is the presentation layer's job.
func QueryView(records []Record, cfg ViewConfig) ViewPage {
	matched := searchRecords(records, cfg.SearchTerm)
	matched = filterCountry(matched, cfg.FilterCountry)
	sortRecords(matched, cfg.SortKey, cfg.SortDir)
	return paginate(matched, cfg.PageSize, cfg.PageNumber)
}

// searchRecords keeps records where the case-insensitive term is a
// substring of any searchable field. Phone is digit-only so it is compared
// literally. The date of birth is not searched.
func searchRecords(records []Record, term string) []Record {
	term = strings.ToLower(term)
	if term == "" {
		// Still copy: the later sort must not reorder the caller's slice.
		out := make([]Record, len(records))
		copy(out, records)
		return out
	}

	matched := make([]Record, 0, len(records))
	for _, r := range records {
		if containsFold(r.Name, term) ||
			containsFold(r.Email, term) ||
			strings.Contains(r.Phone, term) ||
			containsFold(r.City, term) ||
			containsFold(r.District, term) ||
			containsFold(r.Province, term) ||
			containsFold(r.Country, term) {
			matched = append(matched, r)
		}
	}
	return matched
}

// containsFold reports whether the already-lowercased term is a substring
// of s, ignoring case on s.
func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), term)
}

// filterCountry keeps records whose country matches exactly. An empty
// filter is a no-op.
func filterCountry(records []Record, country string) []Record {
	if country == "" {
		return records
	}
	matched := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Country == country {
			matched = append(matched, r)
		}
	}
	return matched
}

// sortRecords orders records in place by the comparator for key. An unset
// or unknown key preserves the incoming order. Equal keys are ordered by id
// ascending regardless of direction.
func sortRecords(records []Record, key string, dir SortDirection) {
	cmp, ok := comparators[key]
	if !ok {
		return
	}

	sort.Slice(records, func(i, j int) bool {
		c := cmp(records[i], records[j])
		if c == 0 {
			return records[i].ID < records[j].ID
		}
		if dir == SortDesc {
			return c > 0
		}
		return c < 0
	})
}

// paginate slices out the requested page and computes the page count.
func paginate(records []Record, pageSize, pageNumber int) ViewPage {
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(records)
	totalPages := (total + pageSize - 1) / pageSize

	start := (pageNumber - 1) * pageSize
	if start < 0 || start >= total {
		return ViewPage{Records: []Record{}, TotalCount: total, TotalPages: totalPages}
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	page := make([]Record, end-start)
	copy(page, records[start:end])
	return ViewPage{Records: page, TotalCount: total, TotalPages: totalPages}
}

// ClampPage clamps a requested page number into [1, max(1, totalPages)].
// Used by the presentation layer when the user navigates.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
