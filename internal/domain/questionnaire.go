package domain

import "time"

type QuestionOption struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Value string `json:"value"`
}

type Question struct {
	ID          string           `json:"id"`
	Text        string           `json:"text"`
	Type        string           `json:"type"`
	Required    bool             `json:"required"`
	Options     []QuestionOption `json:"options"`
	Placeholder string           `json:"placeholder"`
	HelpText    string           `json:"help_text"`
	MaxLength   int              `json:"max_length"`
	Order       int              `json:"order"`
}

// Questionnaire — анкета клиента, одна активная на тип съемки.
type Questionnaire struct {
	ID          string     `json:"id"`
	SessionType string     `json:"session_type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
}

type CreateQuestionnaireDTO struct {
	SessionType string     `json:"session_type" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
	Active      bool       `json:"active"`
}

type UpdateQuestionnaireDTO struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Questions   *[]Question `json:"questions,omitempty"`
	Active      *bool       `json:"active,omitempty"`
}
