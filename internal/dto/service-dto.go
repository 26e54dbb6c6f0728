package dto

type CreateServiceDTO struct {
	Name              string  `json:"name" validate:"required,min=2,max=255"`
	Category          string  `json:"category" validate:"required,service_category"`
	BasePrice         float64 `json:"base_price" validate:"gte=0"`
	EstimatedDuration int     `json:"estimated_duration" validate:"gte=0,lte=72"`
}
