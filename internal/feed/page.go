// Package feed holds the pure building blocks of viewer-relative feed
// construction: reaction aggregation, owner projection and the
// pagination/sort vocabulary shared by the repositories and services.
package feed

// Sort determines feed ordering. Every ordering breaks ties by content
// ID ascending so pagination stays deterministic across requests.
type Sort string

const (
	// SortNewest orders by creation time descending. Default.
	SortNewest Sort = "newest"
	// SortOldest orders by creation time ascending.
	SortOldest Sort = "oldest"
	// SortMostViewed orders by view count descending. Videos only.
	SortMostViewed Sort = "most_viewed"
)

func (s Sort) IsValid() bool {
	switch s {
	case SortNewest, SortOldest, SortMostViewed:
		return true
	default:
		return false
	}
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is a 1-based page request.
type Page struct {
	Number int
	Size   int
}

// Clamp forces the page into valid bounds instead of rejecting it:
// number >= 1, size in [1, MaxPageSize], zero size meaning the default.
func (p Page) Clamp() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size == 0 {
		p.Size = DefaultPageSize
	}
	if p.Size < 1 {
		p.Size = 1
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Offset returns the number of items preceding this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}
