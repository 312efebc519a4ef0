package view

import "github.com/user/wispmon/internal/model"

// Page holds the pagination cursor. Size is a positive constant for the
// lifetime of a view.
type Page struct {
	Current int
	Size    int
}

// PageLink is one entry in the pagination control strip. A Gap entry
// renders as an ellipsis between non-adjacent page numbers.
type PageLink struct {
	Number int
	Gap    bool
}

// Pagination is the control metadata derived for the current page.
// Links is empty when there is at most one page (no controls shown).
type Pagination struct {
	TotalPages int
	Current    int
	HasPrev    bool
	HasNext    bool
	Links      []PageLink
}

// Window returns the contiguous slice of records for the current page.
func Window(records []model.RouterRecord, p Page) []model.RouterRecord {
	start := (p.Current - 1) * p.Size
	if start >= len(records) || start < 0 {
		return nil
	}
	end := start + p.Size
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// Paginate computes the control metadata for total records under p.
func Paginate(total int, p Page) Pagination {
	totalPages := (total + p.Size - 1) / p.Size

	meta := Pagination{
		TotalPages: totalPages,
		Current:    p.Current,
	}
	if totalPages <= 1 {
		return meta
	}

	meta.HasPrev = p.Current > 1
	meta.HasNext = p.Current < totalPages

	start := p.Current - 2
	if start < 1 {
		start = 1
	}
	end := p.Current + 2
	if end > totalPages {
		end = totalPages
	}

	if start > 1 {
		meta.Links = append(meta.Links, PageLink{Number: 1})
		if start > 2 {
			meta.Links = append(meta.Links, PageLink{Gap: true})
		}
	}
	for i := start; i <= end; i++ {
		meta.Links = append(meta.Links, PageLink{Number: i})
	}
	if end < totalPages {
		if end < totalPages-1 {
			meta.Links = append(meta.Links, PageLink{Gap: true})
		}
		meta.Links = append(meta.Links, PageLink{Number: totalPages})
	}

	return meta
}
