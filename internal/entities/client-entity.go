package entities

import "time"

type Client struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	CTO       string    `json:"cto"`
	Plan      string    `json:"plan"`
	CreatedAt time.Time `json:"created_at"`
}

func (c Client) GetID() uint64 { return c.ID }
