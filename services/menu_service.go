package services

import (
	"errors"

	"github.com/BillyRonico412/brestau-sub000/entity"
	"github.com/BillyRonico412/brestau-sub000/repository"

	"gorm.io/gorm"
)

// MenuService exposes the read-only catalog the client-side order builder
// browses.
type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) ListMenu() ([]entity.Category, error) {
	return s.Repo.ListCategoriesWithFoods()
}

func (s *MenuService) GetFood(id uint) (*entity.Food, error) {
	f, err := s.Repo.GetFoodWithIngredients(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}
	return f, nil
}
