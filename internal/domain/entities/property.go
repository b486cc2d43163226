package entities

import "time"

// Estados posibles de una propiedad
const (
	PropertyStatusAvailable = "available"
	PropertyStatusSold      = "sold"
	PropertyStatusReserved  = "reserved"
)

// Property representa una propiedad en venta o alquiler
type Property struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Address      string    `json:"address"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	RealEstateID string    `json:"real_estate_id"`
	ProjectID    *string   `json:"project_id"`
	AgentID      *string   `json:"agent_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PropertyWithDetails agrega los nombres de la inmobiliaria, el proyecto y el agente
type PropertyWithDetails struct {
	Property
	RealEstateName *string `json:"real_estate_name"`
	ProjectName    *string `json:"project_name"`
	AgentName      *string `json:"agent_name"`
}

// PropertyStats es la fila única del agregado global de propiedades
type PropertyStats struct {
	TotalProperties     int64 `json:"total_properties"`
	TotalRealEstates    int64 `json:"total_real_estates"`
	TotalProjects       int64 `json:"total_projects"`
	TotalAgents         int64 `json:"total_agents"`
	AvailableProperties int64 `json:"available_properties"`
	SoldProperties      int64 `json:"sold_properties"`
	ReservedProperties  int64 `json:"reserved_properties"`
}
