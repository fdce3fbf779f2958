package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentify_backend/internal/middleware"
	"rentify_backend/internal/services"
	"rentify_backend/internal/services/dto"
	"rentify_backend/pkg/apperrors"
)

// PropertyHandler serves the /properties resource group.
type PropertyHandler struct {
	*BaseHandler
	propertyService services.PropertyService
	jwtSecret       []byte
}

func NewPropertyHandler(base *BaseHandler, propertyService services.PropertyService, jwtSecret []byte) *PropertyHandler {
	return &PropertyHandler{
		BaseHandler:     base,
		propertyService: propertyService,
		jwtSecret:       jwtSecret,
	}
}

// RegisterRoutes mounts the property routes. Every route sits behind the
// auth gate, get-by-id included.
func (h *PropertyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	properties := rg.Group("/properties")
	properties.Use(middleware.AuthMiddleware(h.jwtSecret))
	{
		properties.POST("/post-property", h.PostProperty)
		properties.GET("/get-properties", h.GetProperties)
		properties.DELETE("/delete/:id", h.DeleteProperty)
		properties.GET("/getPropertyById/:id", h.GetPropertyByID)
		properties.PUT("/update/:id", h.UpdateProperty)
		properties.POST("/filter", h.FilterProperties)
		properties.POST("/sendOwnerInfo", h.SendOwnerInfo)
		properties.POST("/toggle-like", h.ToggleLike)
		properties.GET("/getMYwatchlist", h.GetWatchlist)
	}
}

func (h *PropertyHandler) PostProperty(c *gin.Context) {
	ownerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.PostPropertyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	property, err := h.propertyService.PostProperty(h.GetDB(c), ownerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Respond(c, http.StatusCreated, "Property Added Successfully", property)
}

func (h *PropertyHandler) GetProperties(c *gin.Context) {
	ownerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	properties, err := h.propertyService.GetProperties(h.GetDB(c), ownerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Respond(c, http.StatusOK, "List of Properties", properties)
}

func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	callerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	propertyID := c.Param("id")
	if propertyID == "" {
		apperrors.HandleError(c, apperrors.BadRequest("Missing required path parameter: id"))
		return
	}

	if err := h.propertyService.DeleteProperty(h.GetDB(c), callerID, propertyID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// 201 on delete is part of the published contract.
	Respond(c, http.StatusCreated, "Property deleted successfully", nil)
}

func (h *PropertyHandler) GetPropertyByID(c *gin.Context) {
	propertyID := c.Param("id")

	property, err := h.propertyService.GetPropertyByID(h.GetDB(c), propertyID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Respond(c, http.StatusOK, "Property Details Found", property)
}

func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	callerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	propertyID := c.Param("id")

	var req dto.UpdatePropertyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	property, err := h.propertyService.UpdateProperty(h.GetDB(c), callerID, propertyID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Respond(c, http.StatusOK, "Property updated successfully", property)
}

func (h *PropertyHandler) FilterProperties(c *gin.Context) {
	var req dto.FilterPropertiesRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	properties, err := h.propertyService.FilterProperties(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Respond(c, http.StatusOK, "Properties According to filters", properties)
}

func (h *PropertyHandler) SendOwnerInfo(c *gin.Context) {
	var req dto.SendOwnerInfoRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.propertyService.SendOwnerInfo(h.GetDB(c), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Respond(c, http.StatusOK, "Owner and buyer info sent via email", nil)
}

func (h *PropertyHandler) ToggleLike(c *gin.Context) {
	var req dto.ToggleLikeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	property, liked, err := h.propertyService.ToggleLike(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	message := "Removed from watchlist"
	if liked {
		message = "Added to watchlist"
	}
	Respond(c, http.StatusOK, message, property)
}

func (h *PropertyHandler) GetWatchlist(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	watchlist, err := h.propertyService.GetWatchlist(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Respond(c, http.StatusOK, "Your Watchlist", watchlist)
}
