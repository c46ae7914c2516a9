package domain

// Service represents a bookable barbershop service
// Prices are integer minor-currency units (cents), never floating point
type Service struct {
	ID         int64
	Name       string
	PriceCents int64
}
