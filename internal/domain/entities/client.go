package entities

import "time"

// Estados posibles de un cliente
const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
)

// Client representa un cliente captado por una inmobiliaria
type Client struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	DocumentType   string    `json:"document_type"`
	DocumentNumber string    `json:"document_number"`
	Address        *string   `json:"address"`
	RealEstateID   string    `json:"real_estate_id"`
	AgentID        string    `json:"agent_id"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ClientWithDetails agrega los campos de display del agente asignado
// (a través de su usuario), la inmobiliaria y el total de interacciones.
type ClientWithDetails struct {
	Client
	AgentName         *string `json:"agent_name"`
	AgentEmail        *string `json:"agent_email"`
	AgentPhone        *string `json:"agent_phone"`
	RealEstateName    *string `json:"real_estate_name"`
	TotalInteractions int64   `json:"total_interactions"`
}

// Filas de los conteos agrupados de clientes
type ClientStatusCount struct {
	Status string `json:"status"`
	Total  int64  `json:"total"`
}

type ClientDocumentTypeCount struct {
	DocumentType string `json:"document_type"`
	Total        int64  `json:"total"`
}

type ClientRealEstateCount struct {
	RealEstateName string `json:"real_estate_name"`
	Total          int64  `json:"total"`
}

// ClientStats agrupa los conteos globales de clientes
type ClientStats struct {
	ByStatus       []ClientStatusCount       `json:"byStatus"`
	ByDocumentType []ClientDocumentTypeCount `json:"byDocumentType"`
	ByRealEstate   []ClientRealEstateCount   `json:"byRealEstate"`
}
