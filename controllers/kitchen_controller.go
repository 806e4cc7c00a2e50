package controllers

import (
	"errors"

	"github.com/BillyRonico412/brestau-sub000/pkg/resp"
	"github.com/BillyRonico412/brestau-sub000/services"
	"github.com/BillyRonico412/brestau-sub000/utils"

	"github.com/gin-gonic/gin"
)

// KitchenController drives the fulfillment workflow for cooks and servers.
type KitchenController struct {
	Service *services.FulfillmentService
}

func NewKitchenController(service *services.FulfillmentService) *KitchenController {
	return &KitchenController{Service: service}
}

type updateItemStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /kitchen/items/:id/status
func (kc *KitchenController) UpdateItemStatus(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	itemID := c.Param("id")

	var req updateItemStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := kc.Service.UpdateItemStatus(itemID, req.Status, uid)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrItemAlreadyClaimed):
			resp.Conflict(c, err.Error())
		case errors.Is(err, services.ErrInvalidTransition):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, item)
}

// PATCH /kitchen/orders/:id/complete
func (kc *KitchenController) CompleteOrder(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	orderID := c.Param("id")

	order, err := kc.Service.CompleteOrder(orderID, uid)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrItemsNotCompleted):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, order)
}
