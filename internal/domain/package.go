package domain

import "time"

// Package — пакет фотосъемки (тариф).
type Package struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SessionType string    `json:"session_type"`
	Price       float64   `json:"price"`
	Duration    string    `json:"duration"`
	Includes    []string  `json:"includes"`
	Popular     bool      `json:"popular"`
	Active      bool      `json:"active"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
}

// DefaultPackages — стартовый прайс студии, записывается при пустой таблице.
func DefaultPackages() []Package {
	return []Package{
		{ID: "mat-essential", Name: "Essential", SessionType: "maternity", Price: 3500, Duration: "1-2 hours", Includes: []string{"Studio session", "10 edited digital images", "Online gallery", "2 outfit changes", "Outfits provided"}, Active: true, Order: 0},
		{ID: "mat-signature", Name: "Signature", SessionType: "maternity", Price: 5500, Duration: "2-3 hours", Includes: []string{"Full studio session", "25 edited digital images", "Online gallery", "4 outfit changes", "Outfits provided", "Partner included"}, Popular: true, Active: true, Order: 1},
		{ID: "mat-luxury", Name: "Luxury Collection", SessionType: "maternity", Price: 8500, Duration: "3+ hours", Includes: []string{"Premium studio session", "50+ edited digital images", "Online gallery", "Unlimited outfit changes", "Premium outfits", "Professional makeup included"}, Active: true, Order: 2},
		{ID: "new-precious", Name: "Precious Moments", SessionType: "newborn", Price: 4500, Duration: "2-3 hours", Includes: []string{"Baby-led studio session", "15 edited digital images", "Online gallery", "3-4 setups", "Props & wraps provided"}, Active: true, Order: 3},
		{ID: "new-complete", Name: "Complete Collection", SessionType: "newborn", Price: 7000, Duration: "3-4 hours", Includes: []string{"Extended baby-led session", "30 edited digital images", "Online gallery", "6+ setups", "Premium props", "Family portraits"}, Popular: true, Active: true, Order: 4},
		{ID: "new-heirloom", Name: "Heirloom", SessionType: "newborn", Price: 10000, Duration: "4+ hours", Includes: []string{"Full newborn experience", "50+ edited digital images", "Online gallery", "Unlimited setups", "Premium props", "Fine art album"}, Active: true, Order: 5},
		{ID: "studio-mini", Name: "Mini Session", SessionType: "studio", Price: 2500, Duration: "30-45 min", Includes: []string{"Quick studio session", "8 edited digital images", "Online gallery", "1-2 setups"}, Active: true, Order: 6},
		{ID: "studio-classic", Name: "Classic", SessionType: "studio", Price: 4000, Duration: "1-1.5 hours", Includes: []string{"Full studio session", "20 edited digital images", "Online gallery", "3-4 setups", "Props included"}, Popular: true, Active: true, Order: 7},
		{ID: "studio-premium", Name: "Premium", SessionType: "studio", Price: 6500, Duration: "2+ hours", Includes: []string{"Extended studio session", "40 edited digital images", "Online gallery", "6+ setups", "Fine art print"}, Active: true, Order: 8},
	}
}

type CreatePackageDTO struct {
	Name        string   `json:"name" binding:"required"`
	SessionType string   `json:"session_type" binding:"required"`
	Price       float64  `json:"price" binding:"required"`
	Duration    string   `json:"duration"`
	Includes    []string `json:"includes"`
	Popular     bool     `json:"popular"`
	Active      bool     `json:"active"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Order       int      `json:"order"`
}

type UpdatePackageDTO struct {
	Name        *string   `json:"name,omitempty"`
	SessionType *string   `json:"session_type,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Duration    *string   `json:"duration,omitempty"`
	Includes    *[]string `json:"includes,omitempty"`
	Popular     *bool     `json:"popular,omitempty"`
	Active      *bool     `json:"active,omitempty"`
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Order       *int      `json:"order,omitempty"`
}

type PackageFilter struct {
	SessionType *string
	ActiveOnly  bool
}
