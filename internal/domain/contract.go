package domain

import "time"

type ContractSmartField struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Label    string   `json:"label"`
	Required bool     `json:"required"`
	Options  []string `json:"options"`
}

// ContractTemplate — единственный шаблон договора со смарт-полями.
type ContractTemplate struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Content     string               `json:"content"`
	SmartFields []ContractSmartField `json:"smart_fields"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func DefaultContractTemplate() ContractTemplate {
	return ContractTemplate{
		ID:          "default",
		Title:       "Photography Session Contract",
		SmartFields: []ContractSmartField{},
	}
}

type UpdateContractTemplateDTO struct {
	Title       *string               `json:"title,omitempty"`
	Content     *string               `json:"content,omitempty"`
	SmartFields *[]ContractSmartField `json:"smart_fields,omitempty"`
}
