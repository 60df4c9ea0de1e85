package response

type PaginatedResponse[T any] struct {
	Count   int64 `json:"count"`
	Results []T   `json:"results"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
}

func NewPaginatedResponse[T any](results []T, limit, offset int, count int64) *PaginatedResponse[T] {
	if results == nil {
		results = []T{}
	}
	return &PaginatedResponse[T]{
		Count:   count,
		Results: results,
		Limit:   limit,
		Offset:  offset,
	}
}
