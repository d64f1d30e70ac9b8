package domain

// Page is a limit/offset window over a listing.
type Page struct {
	Limit  int32
	Offset int32
}

// Normalize clamps paging to sane bounds.
func (p Page) Normalize() Page {
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 50
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
