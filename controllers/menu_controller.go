package controllers

import (
	"errors"
	"strconv"

	"github.com/BillyRonico412/brestau-sub000/pkg/resp"
	"github.com/BillyRonico412/brestau-sub000/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{Service: service}
}

// GET /menu
func (mc *MenuController) List(c *gin.Context) {
	cats, err := mc.Service.ListMenu()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"categories": cats})
}

// GET /menu/foods/:id
func (mc *MenuController) FoodDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid food id")
		return
	}

	f, err := mc.Service.GetFood(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrFoodNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, f)
}
