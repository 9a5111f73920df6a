package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"lawfirm-cms/internal/domains/cms/model"
	"lawfirm-cms/internal/domains/cms/service"
	"lawfirm-cms/internal/shared/response"
	"lawfirm-cms/pkg/jwt"
)

// AdminHandler serves login and the content write endpoints.
type AdminHandler struct {
	service    service.AdminService
	jwtManager *jwt.Manager
}

func NewAdminHandler(svc service.AdminService, jwtManager *jwt.Manager) *AdminHandler {
	return &AdminHandler{service: svc, jwtManager: jwtManager}
}

// RegisterRoutes mounts login on rg and the write endpoints on rg/admin
// behind protect.
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup, protect ...gin.HandlerFunc) {
	rg.POST("/auth/login", h.Login)

	admin := rg.Group("/admin", protect...)
	{
		admin.POST("/:sheet", h.Create)
		admin.PUT("/:sheet/:id", h.Update)
		admin.DELETE("/:sheet/:id", h.Delete)
	}
}

// Login handles POST /auth/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresIn: int(h.jwtManager.Expiry().Seconds()),
	})
}

// Create handles POST /admin/:sheet
func (h *AdminHandler) Create(c *gin.Context) {
	sheet, ok := sheetParam(c)
	if !ok {
		return
	}
	var req WriteRequest
	if !bindAndValidate(c, &req) {
		return
	}

	row, err := h.service.Create(c.Request.Context(), sheet, req.Data)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, row)
}

// Update handles PUT /admin/:sheet/:id
func (h *AdminHandler) Update(c *gin.Context) {
	sheet, ok := sheetParam(c)
	if !ok {
		return
	}
	var req WriteRequest
	if !bindAndValidate(c, &req) {
		return
	}

	row, err := h.service.Update(c.Request.Context(), sheet, c.Param("id"), req.Data)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, row)
}

// Delete handles DELETE /admin/:sheet/:id
func (h *AdminHandler) Delete(c *gin.Context) {
	sheet, ok := sheetParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), sheet, c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ========================================
// HELPERS
// ========================================

func sheetParam(c *gin.Context) (string, bool) {
	sheet := c.Param("sheet")
	if err := validation.Validate(sheet, validation.Required, sheetRule); err != nil {
		handleError(c, model.ErrUnknownSheet)
		return "", false
	}
	return sheet, true
}

// bindAndValidate decodes the JSON body into req and runs its Validate.
// On failure it writes a 400 and returns false.
func bindAndValidate(c *gin.Context, req validation.Validatable) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return false
	}
	if err := req.Validate(); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "Validation failed", verrs)
			return false
		}
		response.BadRequest(c, err.Error())
		return false
	}
	return true
}

// handleError maps a domain error to its status and public message.
func handleError(c *gin.Context, err error) {
	status := model.GetHTTPStatusCode(err)
	var ce *model.CMSError
	if errors.As(err, &ce) && status != http.StatusInternalServerError {
		response.ErrorWithCode(c, status, ce.Code, ce.Message)
		return
	}
	response.InternalServerError(c)
}
