package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base agrupa las columnas comunes a todas las tablas. El identificador
// es un UUID generado en la aplicación, no por la base de datos.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (b *Base) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// RealEstateModel es el model GORM para inmobiliarias
type RealEstateModel struct {
	Base
	Name    string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Address string  `gorm:"type:varchar(500);not null"`
	Phone   string  `gorm:"type:varchar(50);not null"`
	Email   string  `gorm:"type:varchar(255);not null"`
	Website *string `gorm:"type:varchar(500)"`
}

func (RealEstateModel) TableName() string { return "real_estates" }

// RoleModel es el model GORM para roles
type RoleModel struct {
	Base
	Name        string  `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description *string `gorm:"type:varchar(500)"`
}

func (RoleModel) TableName() string { return "roles" }

// PermissionModel es el model GORM para permisos
type PermissionModel struct {
	Base
	Name        string  `gorm:"type:varchar(100);not null"`
	Description *string `gorm:"type:varchar(500)"`
}

func (PermissionModel) TableName() string { return "permissions" }

// ModuleModel es el model GORM para módulos funcionales
type ModuleModel struct {
	Base
	Name        string  `gorm:"type:varchar(100);not null"`
	Description *string `gorm:"type:varchar(500)"`
}

func (ModuleModel) TableName() string { return "modules" }

// RolePermissionModel es la tabla join rol→permiso→módulo
type RolePermissionModel struct {
	Base
	RoleID       string `gorm:"type:uuid;not null;index"`
	PermissionID string `gorm:"type:uuid;not null"`
	ModuleID     string `gorm:"type:uuid;not null"`
}

func (RolePermissionModel) TableName() string { return "role_permissions" }

// UserModel es el model GORM para usuarios
type UserModel struct {
	Base
	Username string  `gorm:"type:varchar(100);not null"`
	Email    string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password string  `gorm:"type:varchar(255);not null"`
	Phone    *string `gorm:"type:varchar(50)"`
	RoleID   *string `gorm:"type:uuid;index"`
	Status   string  `gorm:"type:varchar(20);not null;default:active"`
}

func (UserModel) TableName() string { return "users" }

// AgentModel es el model GORM para agentes
type AgentModel struct {
	Base
	UserID       string  `gorm:"type:uuid;uniqueIndex;not null"`
	RealEstateID *string `gorm:"type:uuid;index"`
	Phone        *string `gorm:"type:varchar(50)"`
}

func (AgentModel) TableName() string { return "agents" }

// ClientModel es el model GORM para clientes
type ClientModel struct {
	Base
	Name           string  `gorm:"type:varchar(255);not null"`
	Email          string  `gorm:"type:varchar(255);not null"`
	Phone          string  `gorm:"type:varchar(50);not null"`
	DocumentType   string  `gorm:"type:varchar(20);not null;uniqueIndex:idx_clients_document"`
	DocumentNumber string  `gorm:"type:varchar(50);not null;uniqueIndex:idx_clients_document"`
	Address        *string `gorm:"type:varchar(500)"`
	RealEstateID   string  `gorm:"type:uuid;not null;index"`
	AgentID        string  `gorm:"type:uuid;not null;index"`
	Status         string  `gorm:"type:varchar(20);not null;default:active"`
}

func (ClientModel) TableName() string { return "clients" }

// ProjectModel es el model GORM para proyectos
type ProjectModel struct {
	Base
	Name         string `gorm:"type:varchar(255);not null"`
	Description  string `gorm:"type:text;not null"`
	RealEstateID string `gorm:"type:uuid;not null;index"`
	Status       string `gorm:"type:varchar(20);not null"`
}

func (ProjectModel) TableName() string { return "projects" }

// PropertyModel es el model GORM para propiedades
type PropertyModel struct {
	Base
	Title        string  `gorm:"type:varchar(255);not null"`
	Description  string  `gorm:"type:text;not null"`
	Price        float64 `gorm:"type:numeric(14,2);not null"`
	Address      string  `gorm:"type:varchar(500);not null"`
	Type         string  `gorm:"type:varchar(50);not null"`
	Status       string  `gorm:"type:varchar(20);not null;default:available;index"`
	RealEstateID string  `gorm:"type:uuid;not null;index"`
	ProjectID    *string `gorm:"type:uuid;index"`
	AgentID      *string `gorm:"type:uuid;index"`
}

func (PropertyModel) TableName() string { return "properties" }

// PropertyFavoriteModel es el model GORM para favoritos
type PropertyFavoriteModel struct {
	Base
	PropertyID string `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_property_user"`
	UserID     string `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_property_user"`
}

func (PropertyFavoriteModel) TableName() string { return "property_favorites" }

// PropertyViewModel es el model GORM para visitas a propiedades
type PropertyViewModel struct {
	Base
	PropertyID string    `gorm:"type:uuid;not null;index"`
	UserID     *string   `gorm:"type:uuid"`
	ClientID   *string   `gorm:"type:uuid;index"`
	AgentID    *string   `gorm:"type:uuid;index"`
	Source     string    `gorm:"type:varchar(100);not null"`
	IPAddress  string    `gorm:"type:varchar(64);not null"`
	ViewDate   time.Time `gorm:"not null;index"`
}

func (PropertyViewModel) TableName() string { return "property_views" }

// ClientInteractionModel es el model GORM para interacciones
type ClientInteractionModel struct {
	Base
	ClientID   string  `gorm:"type:uuid;not null;index"`
	AgentID    string  `gorm:"type:uuid;not null;index"`
	PropertyID *string `gorm:"type:uuid;index"`
	Type       string  `gorm:"type:varchar(20);not null"`
	Status     string  `gorm:"type:varchar(20);not null"`
	Notes      *string `gorm:"type:text"`
}

func (ClientInteractionModel) TableName() string { return "client_interactions" }

// AllModels lista los models de negocio, en orden de dependencias.
// Lo usan las suites de test para levantar el esquema con AutoMigrate.
func AllModels() []any {
	return []any{
		&RealEstateModel{},
		&RoleModel{},
		&PermissionModel{},
		&ModuleModel{},
		&RolePermissionModel{},
		&UserModel{},
		&AgentModel{},
		&ClientModel{},
		&ProjectModel{},
		&PropertyModel{},
		&PropertyFavoriteModel{},
		&PropertyViewModel{},
		&ClientInteractionModel{},
	}
}
