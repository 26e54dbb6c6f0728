package dto

type CreateTechnicianDTO struct {
	Name      string `json:"name" validate:"required,min=2,max=255"`
	Specialty string `json:"specialty" validate:"required,service_category"`
	Region    string `json:"region" validate:"required,region"`
	Level     string `json:"level" validate:"required,technician_level"`
	Phone     string `json:"phone" validate:"omitempty,br_phone"`
}
