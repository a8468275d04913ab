package api

// DefaultPageSize matches the backend's default list page size
const DefaultPageSize = 10

// OffsetForPage converts a 1-based page number into the offset the list
// endpoints expect: offset = (page-1) * pageSize.
func OffsetForPage(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}

// PageCount derives the number of page buttons from the total reported by
// the first page response: ceil(total/pageSize).
func PageCount(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
