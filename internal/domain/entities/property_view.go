package entities

import "time"

// PropertyView registra una visita a una propiedad. El visitante puede
// ser un usuario, un cliente o un agente, todos opcionales.
type PropertyView struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id"`
	UserID     *string   `json:"user_id"`
	ClientID   *string   `json:"client_id"`
	AgentID    *string   `json:"agent_id"`
	Source     string    `json:"source"`
	IPAddress  string    `json:"ip_address"`
	ViewDate   time.Time `json:"view_date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PropertyViewWithDetails agrega los campos de display de la propiedad
// y de cada posible visitante.
type PropertyViewWithDetails struct {
	PropertyView
	PropertyTitle   *string `json:"property_title"`
	PropertyAddress *string `json:"property_address"`
	PropertyType    *string `json:"property_type"`
	PropertyStatus  *string `json:"property_status"`
	UserName        *string `json:"user_name"`
	UserEmail       *string `json:"user_email"`
	UserPhone       *string `json:"user_phone"`
	ClientName      *string `json:"client_name"`
	ClientEmail     *string `json:"client_email"`
	ClientPhone     *string `json:"client_phone"`
	AgentName       *string `json:"agent_name"`
	AgentEmail      *string `json:"agent_email"`
	AgentPhone      *string `json:"agent_phone"`
}

// PropertyViewDailyStat es una fila del agregado diario de visitas
type PropertyViewDailyStat struct {
	TotalViews       int64  `json:"total_views"`
	UniqueProperties int64  `json:"unique_properties"`
	UniqueClients    int64  `json:"unique_clients"`
	UniqueAgents     int64  `json:"unique_agents"`
	ViewDate         string `json:"view_date"`
}
