package service

import (
	"context"

	"bookatlas/book-discovery/internal/api/models"
	"bookatlas/book-discovery/internal/api/repository"
)

// AdminService exposes the global read-only views. By design no
// authorization gate exists in front of it.
type AdminService interface {
	AllUsers(ctx context.Context) ([]models.User, error)
	AllFavorites(ctx context.Context) ([]models.FavoriteWithOwner, error)
	AllHistory(ctx context.Context) ([]models.SearchHistoryWithOwner, error)
	Stats(ctx context.Context) (*models.Stats, error)
}

type adminService struct {
	adminRepo repository.AdminRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(adminRepo repository.AdminRepository) AdminService {
	return &adminService{adminRepo: adminRepo}
}

func (s *adminService) AllUsers(ctx context.Context) ([]models.User, error) {
	return s.adminRepo.AllUsers(ctx)
}

func (s *adminService) AllFavorites(ctx context.Context) ([]models.FavoriteWithOwner, error) {
	return s.adminRepo.AllFavorites(ctx)
}

func (s *adminService) AllHistory(ctx context.Context) ([]models.SearchHistoryWithOwner, error) {
	return s.adminRepo.AllHistory(ctx)
}

func (s *adminService) Stats(ctx context.Context) (*models.Stats, error) {
	return s.adminRepo.Stats(ctx)
}
