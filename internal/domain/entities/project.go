package entities

import "time"

// Estados posibles de un proyecto
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusCancelled = "cancelled"
)

// Project representa un proyecto inmobiliario
type Project struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	RealEstateID string    `json:"real_estate_id"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProjectWithDetails agrega el nombre de la inmobiliaria y el total de propiedades
type ProjectWithDetails struct {
	Project
	RealEstateName  *string `json:"real_estate_name"`
	TotalProperties int64   `json:"total_properties"`
}

// PropertyStatusCount es una fila del conteo de propiedades por estado
type PropertyStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// ProjectStats agrupa las estadísticas de un proyecto
type ProjectStats struct {
	PropertiesByStatus []PropertyStatusCount `json:"properties_by_status"`
	TotalProperties    int64                 `json:"total_properties"`
}
