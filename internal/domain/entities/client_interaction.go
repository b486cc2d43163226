package entities

import "time"

// Tipos y estados posibles de una interacción
const (
	InteractionStatusPending   = "pending"
	InteractionStatusCompleted = "completed"
	InteractionStatusCancelled = "cancelled"
)

// ClientInteraction registra un contacto entre un agente y un cliente,
// opcionalmente asociado a una propiedad.
type ClientInteraction struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"client_id"`
	AgentID    string    `json:"agent_id"`
	PropertyID *string   `json:"property_id"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	Notes      *string   `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ClientInteractionWithDetails agrega documento del cliente, nombre del
// agente y título de la propiedad.
type ClientInteractionWithDetails struct {
	ClientInteraction
	ClientDocument *string `json:"client_document"`
	AgentName      *string `json:"agent_name"`
	PropertyTitle  *string `json:"property_title"`
}

// ClientInteractionStat es una fila del agregado por tipo y estado
type ClientInteractionStat struct {
	TotalInteractions int64  `json:"total_interactions"`
	UniqueClients     int64  `json:"unique_clients"`
	UniqueAgents      int64  `json:"unique_agents"`
	UniqueProperties  int64  `json:"unique_properties"`
	Type              string `json:"type"`
	Status            string `json:"status"`
}
