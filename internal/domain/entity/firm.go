package entity

// Firm is an investable real-estate entity. Firms are seeded at bootstrap and
// referenced, not owned, by investments.
type Firm struct {
	ID          uint64
	Name        string
	Description string
	ImageURL    string
}
