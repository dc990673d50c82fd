package contact

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type (
	// PageRequest describes the slice of a contact list a caller wants.
	// Page is zero-based.
	PageRequest struct {
		Page     int
		Size     int
		SortBy   string
		SortDesc bool
	}

	Page struct {
		Items         Contacts
		Page          int
		Size          int
		TotalElements uint64
		TotalPages    int
	}
)

func (r PageRequest) Offset() int { return r.Page * r.Size }

func NewPage(items Contacts, req PageRequest, total uint64) *Page {
	pages := 0
	if req.Size > 0 {
		pages = int((total + uint64(req.Size) - 1) / uint64(req.Size))
	}
	return &Page{
		Items:         items,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}
