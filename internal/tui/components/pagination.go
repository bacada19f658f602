package components

import (
	"strconv"
	"strings"

	"trendhub/internal/tui/styles"
)

// Ellipsis marks a gap in the visible page window.
const Ellipsis = "..."

// PageNumbers returns the visible page window for a pager: at most five
// numbered entries, with ellipsis markers standing in for the gaps.
func PageNumbers(currentPage, totalPages int) []string {
	if totalPages < 1 {
		return []string{}
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	if totalPages <= 5 {
		pages := make([]string, 0, totalPages)
		for p := 1; p <= totalPages; p++ {
			pages = append(pages, strconv.Itoa(p))
		}
		return pages
	}

	if currentPage <= 3 {
		return []string{"1", "2", "3", "4", Ellipsis, strconv.Itoa(totalPages)}
	}

	if currentPage >= totalPages-2 {
		return []string{
			"1", Ellipsis,
			strconv.Itoa(totalPages - 3),
			strconv.Itoa(totalPages - 2),
			strconv.Itoa(totalPages - 1),
			strconv.Itoa(totalPages),
		}
	}

	return []string{
		"1", Ellipsis,
		strconv.Itoa(currentPage - 1),
		strconv.Itoa(currentPage),
		strconv.Itoa(currentPage + 1),
		Ellipsis,
		strconv.Itoa(totalPages),
	}
}

// RenderPagination renders the page window with the current page highlighted.
func RenderPagination(currentPage, totalPages int) string {
	pages := PageNumbers(currentPage, totalPages)
	if len(pages) == 0 {
		return ""
	}

	var b strings.Builder
	current := strconv.Itoa(currentPage)
	for _, page := range pages {
		switch page {
		case Ellipsis:
			b.WriteString(styles.PageStyle.Render(Ellipsis))
		case current:
			b.WriteString(styles.PageActiveStyle.Render(page))
		default:
			b.WriteString(styles.PageStyle.Render(page))
		}
	}
	return b.String()
}
