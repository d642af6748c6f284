package news

// DefaultPageSize is the number of All News cards per page.
const DefaultPageSize = 6

type PageButton struct {
	Number int
	Active bool
}

// Page is one slice of a filtered list plus the pagination controls for it.
type Page struct {
	Items        []Article
	Number       int
	TotalPages   int
	Buttons      []PageButton
	PrevDisabled bool
	NextDisabled bool
}

// TotalPages is ceil(n/size). A non-positive size falls back to
// DefaultPageSize.
func TotalPages(n, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	return (n + size - 1) / size
}

// Paginate slices articles to the given 1-based page. Pages past the end
// yield no items; the controls still reflect the requested page.
func Paginate(articles []Article, page, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	total := TotalPages(len(articles), size)

	start := (page - 1) * size
	end := page * size
	if start > len(articles) {
		start = len(articles)
	}
	if end > len(articles) {
		end = len(articles)
	}

	p := Page{
		Items:        articles[start:end],
		Number:       page,
		TotalPages:   total,
		PrevDisabled: total == 0 || page <= 1,
		NextDisabled: total == 0 || page >= total,
	}
	for i := 1; i <= total; i++ {
		p.Buttons = append(p.Buttons, PageButton{Number: i, Active: i == page})
	}
	return p
}
