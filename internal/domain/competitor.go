package domain

import "time"

// DefaultPlatform is assumed when a competitor is added without an explicit
// platform.
const DefaultPlatform = "instagram"

// Competitor is a social media account tracked against a brand. Handles are
// unique per brand.
type Competitor struct {
	ID       string    `json:"id"`
	BrandID  string    `json:"brand_id"`
	Handle   string    `json:"handle"`
	Platform string    `json:"platform"`
	AddedAt  time.Time `json:"added_at"`
}
