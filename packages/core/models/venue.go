package models

// Venue is a bookable facility shown on the venue-booking screen. Read-only
// in this application; bookings happen off-platform.
type Venue struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	Prefecture    string `json:"prefecture"`
	City          string `json:"city"`
	CourtCount    int    `json:"court_count"`
	PricePerHour  int    `json:"price_per_hour"`
	Availability  string `json:"availability"`
	ImageURL      string `json:"image_url,omitempty"`
}
