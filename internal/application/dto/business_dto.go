package dto

import "time"

// CreateBusinessRequest body para POST /businesses/new/:userId.
type CreateBusinessRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// BusinessResponse negocio en respuestas.
type BusinessResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
