package controllers

import (
	"github.com/BillyRonico412/brestau-sub000/pkg/resp"
	"github.com/BillyRonico412/brestau-sub000/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Auth *services.AuthService
}

func NewAdminController(auth *services.AuthService) *AdminController {
	return &AdminController{Auth: auth}
}

type createStaffReq struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role" binding:"required,oneof=cooker server admin"`
}

// POST /admin/staff
func (ac *AdminController) CreateStaff(c *gin.Context) {
	var req createStaffReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ac.Auth.CreateStaff(req.Email, req.Password, req.FirstName, req.LastName, req.Role)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, user)
}
