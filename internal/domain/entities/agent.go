package entities

import "time"

// Agent representa un agente inmobiliario, siempre ligado 1 a 1 a un usuario
type Agent struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	RealEstateID *string   `json:"real_estate_id"`
	Phone        *string   `json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AgentWithDetails agrega los campos de display del usuario y la inmobiliaria
type AgentWithDetails struct {
	Agent
	UserName       *string `json:"user_name"`
	UserEmail      *string `json:"user_email"`
	RealEstateName *string `json:"real_estate_name"`
}

// AgentStats agrupa los contadores del endpoint de estadísticas
type AgentStats struct {
	TotalClients      int64 `json:"total_clients"`
	TotalVisits       int64 `json:"total_visits"`
	TotalInteractions int64 `json:"total_interactions"`
}
