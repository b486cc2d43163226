package entities

import "time"

// RealEstate representa una inmobiliaria
type RealEstate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Website   *string   `json:"website"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RealEstateWithDetails es la vista de lectura con totales agregados.
// Se construye únicamente desde la consulta de enriquecimiento, nunca se persiste.
type RealEstateWithDetails struct {
	RealEstate
	TotalAgents     int64 `json:"total_agents"`
	TotalProperties int64 `json:"total_properties"`
}

// RealEstateStats agrupa los contadores del endpoint de estadísticas
type RealEstateStats struct {
	TotalProjects   int64 `json:"total_projects"`
	TotalProperties int64 `json:"total_properties"`
	TotalAgents     int64 `json:"total_agents"`
}
