package dto

type CreateClientDTO struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Phone   string `json:"phone" validate:"omitempty,br_phone"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"omitempty,max=500"`
	CTO     string `json:"cto" validate:"omitempty,max=50"`
	Plan    string `json:"plan" validate:"omitempty,max=50"`
}
