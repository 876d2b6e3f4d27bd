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

type CarHandler struct {
	cars contract.ICarRepository
	log  logger.Logger
}

func NewCarHandler(cars contract.ICarRepository, log logger.Logger) *CarHandler {
	return &CarHandler{cars: cars, log: log}
}

// GetCars handles GET /cars
func (h *CarHandler) GetCars(c *gin.Context) {
	cars, err := h.cars.GetCars(c.Request.Context())
	if err != nil {
		h.log.Errorf("fetching cars: %v", err)
		apperror.Respond(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, cars)
}

// GetCar handles GET /cars/:id
func (h *CarHandler) GetCar(c *gin.Context) {
	id := c.Param("id")
	car, err := h.cars.GetCarByID(c.Request.Context(), id)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	if car == nil {
		apperror.Respond(c, apperror.NotFound("Car", id))
		return
	}
	SuccessHandler(c, http.StatusOK, car)
}

// CreateCar handles POST /cars. The owner reference is stamped from the
// session identity, never taken from the body.
func (h *CarHandler) CreateCar(c *gin.Context) {
	rc := middleware.Gate(c)
	var req dto.CreateCarRequest
	if !BindGate(c, &req) {
		return
	}

	car := entity.Car{
		Make:       req.Make,
		Model:      req.Model,
		Year:       req.Year,
		EngineType: req.EngineType,
		VIN:        req.VIN,
		Category:   req.Category,
		OwnerID:    rc.Identity.ID,
	}
	id, err := h.cars.CreateCar(c.Request.Context(), &car)
	if err != nil {
		h.log.Errorf("creating car: %v", err)
		apperror.Respond(c, err)
		return
	}
	CreatedHandler(c, "Car created", id)
}

// UpdateCar handles PUT /cars/:id. Existence and ownership were confirmed by
// the gatekeeper chain.
func (h *CarHandler) UpdateCar(c *gin.Context) {
	rc := middleware.Gate(c)
	var req dto.UpdateCarRequest
	if !BindGate(c, &req) {
		return
	}

	matched, err := h.cars.UpdateCarByID(c.Request.Context(), rc.ParamID, req.ToUpdates())
	if err != nil {
		h.log.Errorf("updating car %s: %v", rc.ParamID, err)
		apperror.Respond(c, err)
		return
	}
	if !matched {
		apperror.Respond(c, apperror.NotFound("Car", rc.ParamID))
		return
	}
	MessageHandler(c, http.StatusOK, "Car updated")
}

// DeleteCar handles DELETE /cars/:id
func (h *CarHandler) DeleteCar(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.cars.DeleteCarByID(c.Request.Context(), id)
	if err != nil {
		h.log.Errorf("deleting car %s: %v", id, err)
		apperror.Respond(c, err)
		return
	}
	if !deleted {
		apperror.Respond(c, apperror.NotFound("Car", id))
		return
	}
	MessageHandler(c, http.StatusOK, "Car deleted")
}
