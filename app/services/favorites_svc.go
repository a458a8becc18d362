package services

import (
	"context"
	"fmt"

	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/repositories"
)

// FavoritesService alterna favoritos por produto (variantes nunca entram).
// Usuário logado: linhas por usuário no banco. Visitante: a lista fica na
// sessão do dispositivo; ao logar a lista remota é a que vale, sem mesclar.
type FavoritesService struct {
	favRepo repositories.FavoriteRepositoryImpl
}

func NewFavoritesService(favRepo repositories.FavoriteRepositoryImpl) *FavoritesService {
	return &FavoritesService{favRepo: favRepo}
}

// Toggle inverte o favorito remoto e devolve o estado final.
func (s *FavoritesService) Toggle(ctx context.Context, userID, productID string) (bool, error) {
	exists, err := s.favRepo.Exists(ctx, userID, productID)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	if exists {
		if err := s.favRepo.Remove(ctx, userID, productID); err != nil {
			return true, fmt.Errorf("failed to remove favorite: %w", err)
		}
		return false, nil
	}
	if err := s.favRepo.Add(ctx, userID, productID); err != nil {
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}
	return true, nil
}

func (s *FavoritesService) ListProductIDs(ctx context.Context, userID string) ([]string, error) {
	return s.favRepo.ListProductIDs(ctx, userID)
}

func (s *FavoritesService) IsFavorite(ctx context.Context, userID, productID string) (bool, error) {
	return s.favRepo.Exists(ctx, userID, productID)
}

// ToggleLocal inverte o favorito numa lista guardada na sessão do visitante.
// Devolve uma lista nova; a lista recebida não é modificada.
func ToggleLocal(favorites []string, productID string) ([]string, bool) {
	for i, id := range favorites {
		if id == productID {
			next := make([]string, 0, len(favorites)-1)
			next = append(next, favorites[:i]...)
			next = append(next, favorites[i+1:]...)
			return next, false
		}
	}
	return append(favorites[:len(favorites):len(favorites)], productID), true
}

func ContainsProduct(favorites []string, productID string) bool {
	for _, id := range favorites {
		if id == productID {
			return true
		}
	}
	return false
}
