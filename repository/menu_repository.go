package repository

import (
	"github.com/BillyRonico412/brestau-sub000/entity"

	"gorm.io/gorm"
)

// MenuRepository reads the catalog (categories, foods, ingredients).
// Catalog management happens elsewhere; this side only reads.
type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// GET /menu → categories with their foods
func (r *MenuRepository) ListCategoriesWithFoods() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Preload("Foods").Order("display_order ASC").Find(&cats).Error
	return cats, err
}

// GET /menu/foods/:id → food with its ingredient set
func (r *MenuRepository) GetFoodWithIngredients(id uint) (*entity.Food, error) {
	var f entity.Food
	if err := r.DB.Preload("Ingredients").First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// GetFoodBasics loads id, name and price only — what order creation and the
// payment gateway need.
func (r *MenuRepository) GetFoodBasics(id uint) (entity.Food, error) {
	var f entity.Food
	err := r.DB.Select("id, name, price").First(&f, id).Error
	return f, err
}

// GetIngredients resolves a set of ingredient ids; the second return is
// false when at least one id does not exist.
func (r *MenuRepository) GetIngredients(ids []uint) ([]entity.Ingredient, bool, error) {
	if len(ids) == 0 {
		return nil, true, nil
	}
	var ings []entity.Ingredient
	if err := r.DB.Where("id IN ?", ids).Find(&ings).Error; err != nil {
		return nil, false, err
	}
	return ings, len(ings) == len(ids), nil
}
