package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gearshift-labs/partsdepot/internal/apperror"
	"github.com/gearshift-labs/partsdepot/internal/domain/contract"
	"github.com/gearshift-labs/partsdepot/internal/domain/entity"
	"github.com/gearshift-labs/partsdepot/internal/handler/http/dto"
	"github.com/gearshift-labs/partsdepot/internal/handler/http/middleware"
	"github.com/gearshift-labs/partsdepot/internal/infrastructure/logger"
)

type SparePartHandler struct {
	parts contract.ISparePartRepository
	cache contract.ICatalogCache // optional, may be nil
	log   logger.Logger
}

func NewSparePartHandler(parts contract.ISparePartRepository, log logger.Logger) *SparePartHandler {
	return &SparePartHandler{parts: parts, log: log}
}

// SetCatalogCache enables the optional read-through cache for GET /spare-parts.
func (h *SparePartHandler) SetCatalogCache(cache contract.ICatalogCache) {
	h.cache = cache
}

// GetSpareParts handles GET /spare-parts
func (h *SparePartHandler) GetSpareParts(c *gin.Context) {
	ctx := c.Request.Context()
	if h.cache != nil {
		if parts, hit, err := h.cache.GetParts(ctx); err == nil && hit {
			SuccessHandler(c, http.StatusOK, parts)
			return
		}
	}

	parts, err := h.parts.GetSpareParts(ctx)
	if err != nil {
		h.log.Errorf("fetching spare parts: %v", err)
		apperror.Respond(c, err)
		return
	}
	if h.cache != nil {
		if err := h.cache.SetParts(ctx, parts); err != nil {
			h.log.Warnf("caching spare part catalog: %v", err)
		}
	}
	SuccessHandler(c, http.StatusOK, parts)
}

// GetSparePart handles GET /spare-parts/:id
func (h *SparePartHandler) GetSparePart(c *gin.Context) {
	id := c.Param("id")
	part, err := h.parts.GetSparePartByID(c.Request.Context(), id)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	if part == nil {
		apperror.Respond(c, apperror.NotFound("Spare Part", id))
		return
	}
	SuccessHandler(c, http.StatusOK, part)
}

// CreateSparePart handles POST /spare-parts
func (h *SparePartHandler) CreateSparePart(c *gin.Context) {
	var req dto.CreateSparePartRequest
	if !BindGate(c, &req) {
		return
	}

	part := entity.SparePart{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Stock:          req.Stock,
		CompatibleCars: req.CompatibleCars,
		Category:       req.Category,
	}
	id, err := h.parts.CreateSparePart(c.Request.Context(), &part)
	if err != nil {
		h.log.Errorf("creating spare part: %v", err)
		apperror.Respond(c, err)
		return
	}
	h.invalidateCatalog(c)
	CreatedHandler(c, "Spare Part created", id)
}

// UpdateSparePart handles PUT /spare-parts/:id
func (h *SparePartHandler) UpdateSparePart(c *gin.Context) {
	rc := middleware.Gate(c)
	var req dto.UpdateSparePartRequest
	if !BindGate(c, &req) {
		return
	}

	matched, err := h.parts.UpdateSparePartByID(c.Request.Context(), rc.ParamID, req.ToUpdates())
	if err != nil {
		h.log.Errorf("updating spare part %s: %v", rc.ParamID, err)
		apperror.Respond(c, err)
		return
	}
	if !matched {
		apperror.Respond(c, apperror.NotFound("Spare Part", rc.ParamID))
		return
	}
	h.invalidateCatalog(c)
	MessageHandler(c, http.StatusOK, "Spare Part updated")
}

// DeleteSparePart handles DELETE /spare-parts/:id
func (h *SparePartHandler) DeleteSparePart(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.parts.DeleteSparePartByID(c.Request.Context(), id)
	if err != nil {
		h.log.Errorf("deleting spare part %s: %v", id, err)
		apperror.Respond(c, err)
		return
	}
	if !deleted {
		apperror.Respond(c, apperror.NotFound("Spare Part", id))
		return
	}
	h.invalidateCatalog(c)
	MessageHandler(c, http.StatusOK, "Spare Part deleted")
}

func (h *SparePartHandler) invalidateCatalog(c *gin.Context) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Invalidate(c.Request.Context()); err != nil {
		h.log.Warnf("invalidating spare part catalog cache: %v", err)
	}
}
