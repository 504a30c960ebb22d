package domain

import "time"

// Addon — дополнительная услуга к пакету. Пустой список категорий означает
// "подходит для любого типа съемки".
type Addon struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Categories  []string  `json:"categories"`
	Active      bool      `json:"active"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
}

func (a Addon) AppliesTo(sessionType string) bool {
	if len(a.Categories) == 0 {
		return true
	}
	for _, c := range a.Categories {
		if c == sessionType {
			return true
		}
	}
	return false
}

type CreateAddonDTO struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required"`
	Categories  []string `json:"categories"`
	Active      bool     `json:"active"`
	Order       int      `json:"order"`
}

type UpdateAddonDTO struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Categories  *[]string `json:"categories,omitempty"`
	Active      *bool     `json:"active,omitempty"`
	Order       *int      `json:"order,omitempty"`
}
