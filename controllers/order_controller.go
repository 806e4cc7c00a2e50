package controllers

import (
	"errors"

	"github.com/BillyRonico412/brestau-sub000/pkg/resp"
	"github.com/BillyRonico412/brestau-sub000/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

type createOrderReq struct {
	Items []services.CartLine `json:"items" binding:"required,min=1,dive"`
}

// POST /orders → checkout URL to redirect the payer to
func (oc *OrderController) Create(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Service.Create(c.Request.Context(), req.Items)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart),
			errors.Is(err, services.ErrInvalidQuantity),
			errors.Is(err, services.ErrFoodNotFound),
			errors.Is(err, services.ErrIngredientNotFound):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, out)
}

// GET /orders/:id → order with items and foods, gated on the live payment
// session
func (oc *OrderController) Detail(c *gin.Context) {
	orderID := c.Param("id")

	order, err := oc.Service.GetWithPaymentCheck(c.Request.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound),
			errors.Is(err, services.ErrSessionNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrPaymentNotCompleted):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, order)
}
