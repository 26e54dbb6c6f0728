package dto

type CreateEquipmentDTO struct {
	Name      string  `json:"name" validate:"required,min=2,max=255"`
	Type      string  `json:"type" validate:"required,max=100"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

// ImportResultDTO - итог импорта оборудования из xlsx.
type ImportResultDTO struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
