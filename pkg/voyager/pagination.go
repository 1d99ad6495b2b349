package voyager

// Pagination defaults and limits. The upstream rejects windows larger than
// 100 items.
const (
	DefaultPageCount = 10
	MaxPageCount     = 100
)

// PagingInfo describes one fetched window of a paginated collection.
type PagingInfo struct {
	Start int `json:"start" yaml:"start"`
	Count int `json:"count" yaml:"count"`
	Total int `json:"total" yaml:"total"`
}

// HasNextPage reports whether another window exists after this one.
func (p PagingInfo) HasNextPage() bool {
	return p.Start+p.Count < p.Total
}

// NextPageStart returns the start offset of the window after this one.
func (p PagingInfo) NextPageStart() int {
	return p.Start + p.Count
}

// PageOptions selects a window of a paginated collection. Zero values mean
// "use the default".
type PageOptions struct {
	Start int `json:"start" yaml:"start"`
	Count int `json:"count" yaml:"count"`
}

// BuildPaginationParams produces the concrete start and count for a request:
// start defaults to 0, count defaults to 10 and is clamped to 100.
func BuildPaginationParams(opts PageOptions) (start, count int) {
	start = opts.Start
	if start < 0 {
		start = 0
	}

	count = opts.Count
	if count <= 0 {
		count = DefaultPageCount
	}

	if count > MaxPageCount {
		count = MaxPageCount
	}

	return start, count
}
