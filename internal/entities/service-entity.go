package entities

import "time"

// Service - позиция каталога услуг (установка, ремонт и т.д.).
type Service struct {
	ID                uint64    `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	BasePrice         float64   `json:"base_price"`
	EstimatedDuration int       `json:"estimated_duration"` // часы
	CreatedAt         time.Time `json:"created_at"`
}

func (s Service) GetID() uint64 { return s.ID }
