package entities

import "time"

// PropertyFavorite marca una propiedad como favorita de un usuario.
// El par (property_id, user_id) es único.
type PropertyFavorite struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id"`
	UserID     string    `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PropertyFavoriteWithDetails agrega los campos de display de la propiedad y el usuario
type PropertyFavoriteWithDetails struct {
	PropertyFavorite
	PropertyTitle   *string `json:"property_title"`
	PropertyAddress *string `json:"property_address"`
	PropertyType    *string `json:"property_type"`
	PropertyStatus  *string `json:"property_status"`
	UserName        *string `json:"user_name"`
	UserEmail       *string `json:"user_email"`
	UserPhone       *string `json:"user_phone"`
}

// PropertyFavoriteStats agrupa los conteos globales de favoritos
type PropertyFavoriteStats struct {
	TotalFavorites   int64 `json:"total_favorites"`
	UniqueUsers      int64 `json:"unique_users"`
	UniqueProperties int64 `json:"unique_properties"`
}
