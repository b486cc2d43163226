package services

import (
	"context"
	stderrors "errors"

	"github.com/inmocrm/backend/internal/domain/entities"
	"github.com/inmocrm/backend/internal/domain/errors"
	"github.com/inmocrm/backend/internal/domain/ports"
	"github.com/inmocrm/backend/internal/domain/repositories"
)

const msgFavoriteNotFound = "Favorito no encontrado"
const msgFavoriteDuplicated = "La propiedad ya está en favoritos"

// PropertyFavoriteService contiene la lógica de negocio de favoritos
type PropertyFavoriteService struct {
	favoriteRepo repositories.PropertyFavoriteRepository
	propertyRepo repositories.PropertyRepository
	userRepo     repositories.UserRepository
	logger       ports.Logger
}

// NewPropertyFavoriteService crea un nuevo PropertyFavoriteService
func NewPropertyFavoriteService(
	favoriteRepo repositories.PropertyFavoriteRepository,
	propertyRepo repositories.PropertyRepository,
	userRepo repositories.UserRepository,
	logger ports.Logger,
) *PropertyFavoriteService {
	return &PropertyFavoriteService{
		favoriteRepo: favoriteRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// CreatePropertyFavoriteInput representa los datos para crear un favorito
type CreatePropertyFavoriteInput struct {
	PropertyID string
	UserID     string
}

// UpdatePropertyFavoriteInput representa una actualización parcial
type UpdatePropertyFavoriteInput struct {
	PropertyID *string
	UserID     *string
}

// ListFavorites lista los favoritos enriquecidos
func (s *PropertyFavoriteService) ListFavorites(ctx context.Context) ([]entities.PropertyFavoriteWithDetails, error) {
	return s.favoriteRepo.ListDetailed(ctx)
}

// ListFavoritesByUser lista los favoritos de un usuario
func (s *PropertyFavoriteService) ListFavoritesByUser(ctx context.Context, userID string) ([]entities.PropertyFavoriteWithDetails, error) {
	return s.favoriteRepo.ListDetailedByUser(ctx, userID)
}

// ListFavoritesByProperty lista los favoritos sobre una propiedad
func (s *PropertyFavoriteService) ListFavoritesByProperty(ctx context.Context, propertyID string) ([]entities.PropertyFavoriteWithDetails, error) {
	return s.favoriteRepo.ListDetailedByProperty(ctx, propertyID)
}

// GetFavorite busca un favorito por ID
func (s *PropertyFavoriteService) GetFavorite(ctx context.Context, id string) (*entities.PropertyFavoriteWithDetails, error) {
	favorite, err := s.favoriteRepo.FindDetailedByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if favorite == nil {
		return nil, errors.NotFound(msgFavoriteNotFound)
	}
	return favorite, nil
}

// CreateFavorite marca una propiedad como favorita de un usuario
func (s *PropertyFavoriteService) CreateFavorite(ctx context.Context, input CreatePropertyFavoriteInput) (*entities.PropertyFavoriteWithDetails, error) {
	propertyExists, err := s.propertyRepo.Exists(ctx, input.PropertyID)
	if err != nil {
		return nil, err
	}
	if !propertyExists {
		return nil, errors.NotFound(msgPropertyNotFound)
	}

	userExists, err := s.userRepo.Exists(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if !userExists {
		return nil, errors.NotFound(msgUserNotFound)
	}

	dup, err := s.favoriteRepo.ExistsPair(ctx, input.PropertyID, input.UserID, "")
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, errors.Validation(msgFavoriteDuplicated)
	}

	favorite := &entities.PropertyFavorite{
		PropertyID: input.PropertyID,
		UserID:     input.UserID,
	}
	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		if stderrors.Is(err, errors.ErrDuplicated) {
			return nil, errors.Validation(msgFavoriteDuplicated)
		}
		return nil, err
	}

	return s.favoriteRepo.FindDetailedByID(ctx, favorite.ID)
}

// UpdateFavorite actualiza un favorito. Cuando cambia alguno de los dos
// campos se reverifica la unicidad contra el par efectivo resultante.
func (s *PropertyFavoriteService) UpdateFavorite(ctx context.Context, id string, input UpdatePropertyFavoriteInput) (*entities.PropertyFavoriteWithDetails, error) {
	current, err := s.favoriteRepo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errors.NotFound(msgFavoriteNotFound)
	}

	if input.PropertyID != nil {
		propertyExists, err := s.propertyRepo.Exists(ctx, *input.PropertyID)
		if err != nil {
			return nil, err
		}
		if !propertyExists {
			return nil, errors.NotFound(msgPropertyNotFound)
		}
	}
	if input.UserID != nil {
		userExists, err := s.userRepo.Exists(ctx, *input.UserID)
		if err != nil {
			return nil, err
		}
		if !userExists {
			return nil, errors.NotFound(msgUserNotFound)
		}
	}

	if input.PropertyID != nil || input.UserID != nil {
		propertyID := current.PropertyID
		if input.PropertyID != nil {
			propertyID = *input.PropertyID
		}
		userID := current.UserID
		if input.UserID != nil {
			userID = *input.UserID
		}

		dup, err := s.favoriteRepo.ExistsPair(ctx, propertyID, userID, id)
		if err != nil {
			return nil, err
		}
		if dup {
			return nil, errors.Validation(msgFavoriteDuplicated)
		}
	}

	fields := map[string]any{}
	if input.PropertyID != nil {
		fields["property_id"] = *input.PropertyID
	}
	if input.UserID != nil {
		fields["user_id"] = *input.UserID
	}

	if len(fields) > 0 {
		if err := s.favoriteRepo.Update(ctx, id, fields); err != nil {
			if stderrors.Is(err, errors.ErrDuplicated) {
				return nil, errors.Validation(msgFavoriteDuplicated)
			}
			return nil, err
		}
	}

	return s.favoriteRepo.FindDetailedByID(ctx, id)
}

// DeleteFavorite elimina un favorito
func (s *PropertyFavoriteService) DeleteFavorite(ctx context.Context, id string) error {
	rows, err := s.favoriteRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.NotFound(msgFavoriteNotFound)
	}
	return nil
}

// GetFavoriteStats devuelve los conteos globales de favoritos
func (s *PropertyFavoriteService) GetFavoriteStats(ctx context.Context) (*entities.PropertyFavoriteStats, error) {
	return s.favoriteRepo.Stats(ctx)
}
