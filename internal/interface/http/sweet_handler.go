package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mithaighar/sweetshop/internal/application"
	"github.com/mithaighar/sweetshop/internal/domain/entity"
	repo "github.com/mithaighar/sweetshop/internal/domain/repository"
	"github.com/mithaighar/sweetshop/pkg/response"
	"github.com/mithaighar/sweetshop/pkg/validation"
)

type SweetHandler struct {
	Svc    *application.InventoryService
	Logger *logrus.Logger
}

func NewSweetHandler(svc *application.InventoryService, logger *logrus.Logger) *SweetHandler {
	return &SweetHandler{Svc: svc, Logger: logger}
}

// Price and Quantity are pointers so "missing" and "zero" stay distinct;
// negative values are rejected at the binding layer.
type createSweetRequest struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Quantity    *int     `json:"quantity" binding:"required,gte=0"`
	Description string   `json:"description"`
}

type updateSweetRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Quantity    *int     `json:"quantity" binding:"omitempty,gte=0"`
	Description *string  `json:"description"`
}

type restockRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type purchaseResponse struct {
	Message string        `json:"message"`
	Sweet   sweetResponse `json:"sweet"`
}

func (h *SweetHandler) List(c *gin.Context) {
	sweets, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.internal(c, "list sweets failed", err)
		return
	}
	c.JSON(http.StatusOK, toSweetResponses(sweets))
}

func (h *SweetHandler) Search(c *gin.Context) {
	var f repo.SweetFilter
	if v := c.Query("name"); v != "" {
		f.Name = &v
	}
	if v := c.Query("category"); v != "" {
		f.Category = &v
	}
	if v := c.Query("min_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			response.Err(c, http.StatusBadRequest, "min_price must be a number")
			return
		}
		f.MinPrice = &p
	}
	if v := c.Query("max_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			response.Err(c, http.StatusBadRequest, "max_price must be a number")
			return
		}
		f.MaxPrice = &p
	}

	sweets, err := h.Svc.Search(c.Request.Context(), f)
	if err != nil {
		h.internal(c, "search sweets failed", err)
		return
	}
	c.JSON(http.StatusOK, toSweetResponses(sweets))
}

func (h *SweetHandler) Get(c *gin.Context) {
	id, ok := sweetID(c)
	if !ok {
		return
	}
	sweet, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		h.sweetError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSweetResponse(sweet))
}

func (h *SweetHandler) Create(c *gin.Context) {
	var req createSweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	sweet := &entity.Sweet{
		Name:        req.Name,
		Category:    req.Category,
		Price:       *req.Price,
		Quantity:    *req.Quantity,
		Description: req.Description,
	}
	if err := h.Svc.Create(c.Request.Context(), sweet); err != nil {
		h.internal(c, "create sweet failed", err)
		return
	}
	c.JSON(http.StatusCreated, toSweetResponse(sweet))
}

func (h *SweetHandler) Update(c *gin.Context) {
	id, ok := sweetID(c)
	if !ok {
		return
	}
	var req updateSweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	sweet, err := h.Svc.Update(c.Request.Context(), id, repo.SweetUpdate{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Description: req.Description,
	})
	if err != nil {
		h.sweetError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSweetResponse(sweet))
}

func (h *SweetHandler) Delete(c *gin.Context) {
	id, ok := sweetID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		h.sweetError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SweetHandler) Purchase(c *gin.Context) {
	id, ok := sweetID(c)
	if !ok {
		return
	}
	sweet, err := h.Svc.Purchase(c.Request.Context(), id)
	if err != nil {
		h.sweetError(c, err)
		return
	}
	c.JSON(http.StatusOK, purchaseResponse{
		Message: "Purchased successfully",
		Sweet:   toSweetResponse(sweet),
	})
}

func (h *SweetHandler) Restock(c *gin.Context) {
	id, ok := sweetID(c)
	if !ok {
		return
	}
	var req restockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	sweet, err := h.Svc.Restock(c.Request.Context(), id, req.Quantity)
	if err != nil {
		h.sweetError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// sweetError maps repository sentinels to their response status.
func (h *SweetHandler) sweetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		response.Err(c, http.StatusNotFound, "sweet not found")
	case errors.Is(err, repo.ErrOutOfStock):
		response.Err(c, http.StatusBadRequest, "out of stock")
	default:
		h.internal(c, "inventory operation failed", err)
	}
}

func (h *SweetHandler) internal(c *gin.Context, msg string, err error) {
	h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error(msg)
	response.Err(c, http.StatusInternalServerError, "internal error")
}

func sweetID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Err(c, http.StatusBadRequest, "invalid sweet id")
		return 0, false
	}
	return id, true
}
