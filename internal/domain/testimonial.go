package domain

import "time"

type Testimonial struct {
	ID          string    `json:"id"`
	ClientName  string    `json:"client_name"`
	Content     string    `json:"content"`
	SessionType string    `json:"session_type"`
	Rating      int       `json:"rating"`
	Approved    bool      `json:"approved"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateTestimonialDTO struct {
	ClientName  string `json:"client_name" binding:"required"`
	Content     string `json:"content" binding:"required"`
	SessionType string `json:"session_type"`
	Rating      int    `json:"rating" binding:"omitempty,min=1,max=5"`
}
