package paginator

// PaginateSlice applies pagination to a slice, returning the items for the
// requested page and the resulting metadata.
func PaginateSlice[T any](slice []T, query PaginateQuery) ([]T, Paginator) {
	query.Adjust()

	total := int64(len(slice))

	start := query.Offset()
	if start > total {
		start = total
	}
	end := start + query.Limit
	if end > total {
		end = total
	}

	page := slice[start:end]

	return page, Paginator{
		Total:       total,
		Count:       int64(len(page)),
		PerPage:     query.Limit,
		CurrentPage: query.Page,
	}
}
