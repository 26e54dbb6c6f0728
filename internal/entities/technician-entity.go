package entities

import "time"

type Technician struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	Region    string    `json:"region"`
	Level     string    `json:"level"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func (t Technician) GetID() uint64 { return t.ID }
