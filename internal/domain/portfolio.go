package domain

import "time"

type PortfolioItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description"`
	Featured    bool      `json:"featured"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreatePortfolioItemDTO struct {
	Title       string `json:"title"`
	Category    string `json:"category" binding:"required"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
	Featured    bool   `json:"featured"`
	Order       int    `json:"order"`
}

type UpdatePortfolioItemDTO struct {
	Title       *string `json:"title,omitempty"`
	Category    *string `json:"category,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Description *string `json:"description,omitempty"`
	Featured    *bool   `json:"featured,omitempty"`
	Order       *int    `json:"order,omitempty"`
}

type PortfolioFilter struct {
	Category     *string
	FeaturedOnly bool
}
