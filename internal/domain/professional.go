package domain

// Professional represents a service provider that belongs to a company
type Professional struct {
	ID        int64
	CompanyID int64
	Name      string
}

// BelongsTo returns true if the professional is owned by the given company
func (p *Professional) BelongsTo(companyID int64) bool {
	return p.CompanyID == companyID
}

// Service represents a bookable service of a company
type Service struct {
	ID              int64
	CompanyID       int64
	Name            string
	Price           float64
	DurationMinutes *int // NULL = duration not configured
}

// HasDuration returns true if the service has a positive duration configured
func (s *Service) HasDuration() bool {
	return s.DurationMinutes != nil && *s.DurationMinutes > 0
}
