package app

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo FavoriteRepo
}

func NewService(repo FavoriteRepo) *Service {
	return &Service{repo: repo}
}

// AddFavorite marks a product as favorited. Favoriting the same product
// twice keeps a single entry.
func (s *Service) AddFavorite(ctx context.Context, userID, productID string) (Favorite, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(productID) == "" {
		return Favorite{}, ErrInvalidInput
	}
	return s.repo.Add(ctx, userID, productID)
}

// RemoveFavorite unfavorites a product; removing an absent favorite is a
// no-op.
func (s *Service) RemoveFavorite(ctx context.Context, userID, productID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrInvalidInput
	}
	return s.repo.Remove(ctx, userID, productID)
}

func (s *Service) ListFavorites(ctx context.Context, userID string) ([]Favorite, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.List(ctx, userID)
}

func (s *Service) IsFavorited(ctx context.Context, userID, productID string) (bool, error) {
	favs, err := s.ListFavorites(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, f := range favs {
		if f.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}
