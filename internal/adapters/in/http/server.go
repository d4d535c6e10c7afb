// Package http provides the inbound HTTP adapter.
// It translates REST requests into commands and queries and maps domain
// errors onto HTTP status codes; the core itself never speaks HTTP.
package http

import (
	"errors"
	"net/http"

	"stowage/internal/core/application/usecases/commands"
	"stowage/internal/core/application/usecases/queries"
	"stowage/internal/core/domain/model/container"
	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/core/domain/model/ship"
	"stowage/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewShipRequest is the JSON body for ship registration.
type NewShipRequest struct {
	Name              string  `json:"name"`
	MaxSpeed          float64 `json:"maxSpeed"`
	MaxContainerCount int     `json:"maxContainerCount"`
	MaxWeightCapacity float64 `json:"maxWeightCapacity"`
}

// NewContainerRequest is the JSON body for container registration.
// Kind selects the container variant; the attribute fields are only read
// for the kinds they belong to.
type NewContainerRequest struct {
	SerialNumber        string  `json:"serialNumber"`
	Kind                string  `json:"kind"`
	CargoMass           float64 `json:"cargoMass"`
	Height              float64 `json:"height"`
	TareWeight          float64 `json:"tareWeight"`
	Depth               float64 `json:"depth"`
	MaximumPayload      float64 `json:"maximumPayload"`
	IsHazardous         bool    `json:"isHazardous"`
	Pressure            float64 `json:"pressure"`
	ProductType         string  `json:"productType"`
	RequiredTemperature float64 `json:"requiredTemperature"`
}

// LoadCargoRequest is the JSON body for loading cargo into a container.
type LoadCargoRequest struct {
	Mass float64 `json:"mass"`
}

// StowContainerRequest is the JSON body for stowing a container on a ship.
type StowContainerRequest struct {
	SerialNumber string `json:"serialNumber"`
}

// FleetShipResponse is one ship in the fleet listing.
type FleetShipResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	MaxContainerCount int     `json:"maxContainerCount"`
	MaxWeightCapacity float64 `json:"maxWeightCapacity"`
	ContainerCount    int     `json:"containerCount"`
	TotalCargoMass    float64 `json:"totalCargoMass"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerShipHandler      commands.RegisterShipCommandHandler
	registerContainerHandler commands.RegisterContainerCommandHandler
	loadCargoHandler         commands.LoadCargoCommandHandler
	emptyContainerHandler    commands.EmptyContainerCommandHandler
	stowContainerHandler     commands.StowContainerCommandHandler
	unstowContainerHandler   commands.UnstowContainerCommandHandler

	// Query handlers
	getFleetHandler queries.GetFleetQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerShipHandler commands.RegisterShipCommandHandler,
	registerContainerHandler commands.RegisterContainerCommandHandler,
	loadCargoHandler commands.LoadCargoCommandHandler,
	emptyContainerHandler commands.EmptyContainerCommandHandler,
	stowContainerHandler commands.StowContainerCommandHandler,
	unstowContainerHandler commands.UnstowContainerCommandHandler,
	getFleetHandler queries.GetFleetQueryHandler,
) *Server {
	return &Server{
		registerShipHandler:      registerShipHandler,
		registerContainerHandler: registerContainerHandler,
		loadCargoHandler:         loadCargoHandler,
		emptyContainerHandler:    emptyContainerHandler,
		stowContainerHandler:     stowContainerHandler,
		unstowContainerHandler:   unstowContainerHandler,
		getFleetHandler:          getFleetHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/ships", s.RegisterShip)
	api.POST("/ships/:id/containers", s.StowContainer)
	api.DELETE("/ships/:id/containers/:serial", s.UnstowContainer)
	api.POST("/containers", s.RegisterContainer)
	api.POST("/containers/:serial/cargo", s.LoadCargo)
	api.DELETE("/containers/:serial/cargo", s.EmptyContainer)
	api.GET("/fleet", s.GetFleet)
}

// RegisterShip handles POST /api/v1/ships - registers a new ship.
func (s *Server) RegisterShip(ctx echo.Context) error {
	var req NewShipRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterShipCommand(
		req.Name, req.MaxSpeed, req.MaxContainerCount, req.MaxWeightCapacity)
	if err != nil {
		return badRequest(ctx, "Invalid ship data: "+err.Error())
	}

	if handleErr := s.registerShipHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to register ship")
	}

	return ctx.NoContent(http.StatusCreated)
}

// RegisterContainer handles POST /api/v1/containers - registers a new container.
func (s *Server) RegisterContainer(ctx echo.Context) error {
	var req NewContainerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	kind, err := container.KindFromString(req.Kind)
	if err != nil {
		return badRequest(ctx, "Invalid container kind: "+req.Kind)
	}

	cmd, err := commands.NewRegisterContainerCommand(
		req.SerialNumber, kind, req.CargoMass, req.Height, req.TareWeight,
		req.Depth, req.MaximumPayload,
		commands.ContainerAttributes{
			IsHazardous:         req.IsHazardous,
			Pressure:            req.Pressure,
			ProductType:         req.ProductType,
			RequiredTemperature: req.RequiredTemperature,
		})
	if err != nil {
		return badRequest(ctx, "Invalid container data: "+err.Error())
	}

	if handleErr := s.registerContainerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to register container")
	}

	return ctx.NoContent(http.StatusCreated)
}

// LoadCargo handles POST /api/v1/containers/:serial/cargo - loads cargo.
func (s *Server) LoadCargo(ctx echo.Context) error {
	var req LoadCargoRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewLoadCargoCommand(ctx.Param("serial"), req.Mass)
	if err != nil {
		return badRequest(ctx, "Invalid cargo data: "+err.Error())
	}

	if handleErr := s.loadCargoHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to load cargo")
	}

	return ctx.NoContent(http.StatusOK)
}

// EmptyContainer handles DELETE /api/v1/containers/:serial/cargo - empties a container.
func (s *Server) EmptyContainer(ctx echo.Context) error {
	cmd, err := commands.NewEmptyContainerCommand(ctx.Param("serial"))
	if err != nil {
		return badRequest(ctx, "Invalid serial number: "+err.Error())
	}

	if handleErr := s.emptyContainerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to empty container")
	}

	return ctx.NoContent(http.StatusOK)
}

// StowContainer handles POST /api/v1/ships/:id/containers - stows a container.
func (s *Server) StowContainer(ctx echo.Context) error {
	var req StowContainerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shipID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid ship id")
	}

	cmd, err := commands.NewStowContainerCommand(shipID, req.SerialNumber)
	if err != nil {
		return badRequest(ctx, "Invalid stow data: "+err.Error())
	}

	if handleErr := s.stowContainerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to stow container")
	}

	return ctx.NoContent(http.StatusOK)
}

// UnstowContainer handles DELETE /api/v1/ships/:id/containers/:serial - unstows a container.
func (s *Server) UnstowContainer(ctx echo.Context) error {
	shipID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid ship id")
	}

	cmd, err := commands.NewUnstowContainerCommand(shipID, ctx.Param("serial"))
	if err != nil {
		return badRequest(ctx, "Invalid unstow data: "+err.Error())
	}

	if handleErr := s.unstowContainerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to unstow container")
	}

	return ctx.NoContent(http.StatusOK)
}

// GetFleet handles GET /api/v1/fleet - retrieves the fleet with utilization.
func (s *Server) GetFleet(ctx echo.Context) error {
	query := queries.NewGetFleetQuery()

	fleet, err := s.getFleetHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve fleet",
		})
	}

	response := make([]FleetShipResponse, len(fleet))
	for i, vessel := range fleet {
		response[i] = FleetShipResponse{
			ID:                vessel.ID.String(),
			Name:              vessel.Name,
			MaxContainerCount: vessel.MaxContainerCount,
			MaxWeightCapacity: vessel.MaxWeightCapacity,
			ContainerCount:    vessel.ContainerCount,
			TotalCargoMass:    vessel.TotalCargoMass,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps domain failures onto HTTP status codes: rule violations
// become 409, missing objects 404, invalid values 400, anything else 500.
func domainError(ctx echo.Context, err error, fallback string) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, container.ErrOverfill),
		errors.Is(err, ship.ErrCapacityExceeded),
		errors.Is(err, ship.ErrWeightExceeded):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: fallback + ": " + err.Error(),
	})
}
