package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freightline/tms-backend/internal/api/metrics"
	"github.com/freightline/tms-backend/internal/core/ports"
)

// ShipmentHandler handles HTTP requests for shipment operations. Domain
// errors propagate to the central error handler for status mapping.
type ShipmentHandler struct {
	service ports.ShipmentService
}

func NewShipmentHandler(service ports.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

// List handles GET /v1/shipments.
//
// @Summary      List shipments with filtering, sorting, and pagination
// @Tags         shipments
// @Produce      json
// @Param        status        query  string  false  "Exact status match"
// @Param        shipper_name  query  string  false  "Case-insensitive substring"
// @Param        carrier_name  query  string  false  "Case-insensitive substring"
// @Param        is_flagged    query  bool    false  "Exact flag match"
// @Param        sort_by       query  string  false  "pickupDate|deliveryDate|shipperName|carrierName|rate"
// @Param        sort_order    query  string  false  "ASC (default) or DESC"
// @Param        page          query  int     false  "1-based page (default 1)"
// @Param        page_size     query  int     false  "Page size (default 10)"
// @Success      200  {object}  listShipmentsResponse
// @Router       /v1/shipments [get]
func (h *ShipmentHandler) List(c echo.Context) error {
	input, err := toListInput(c)
	if err != nil {
		return err
	}

	page, err := h.service.List(c.Request().Context(), input)
	if err != nil {
		return err
	}
	metrics.ShipmentQueriesTotal.Inc()

	return c.JSON(http.StatusOK, listShipmentsResponse{
		Items:      page.Items,
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	})
}

// Get handles GET /v1/shipments/:id.
//
// @Summary      Get a shipment by id
// @Tags         shipments
// @Produce      json
// @Param        id  path  string  true  "Shipment id"
// @Success      200  {object}  domain.Shipment
// @Failure      404  {object}  map[string]string
// @Router       /v1/shipments/{id} [get]
func (h *ShipmentHandler) Get(c echo.Context) error {
	shipment, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, shipment)
}

// Create handles POST /v1/shipments. Admin only.
//
// @Summary      Create a shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  domain.Shipment
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/shipments [post]
func (h *ShipmentHandler) Create(c echo.Context) error {
	var req createShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), ctxIdentity(c), toCreateInput(req))
	if err != nil {
		return err
	}
	metrics.ShipmentsCreatedTotal.WithLabelValues(created.ServiceLevel).Inc()

	return c.JSON(http.StatusCreated, created)
}

// Update handles PATCH /v1/shipments/:id. Merges only the supplied fields.
//
// @Summary      Partially update a shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Shipment id"
// @Success      200  {object}  domain.Shipment
// @Failure      404  {object}  map[string]string
// @Router       /v1/shipments/{id} [patch]
func (h *ShipmentHandler) Update(c echo.Context) error {
	var req updateShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Update(c.Request().Context(), ctxIdentity(c), c.Param("id"), toPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/shipments/:id. Admin only. A missing id is not
// an error: the response reports deleted=false.
//
// @Summary      Delete a shipment
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Shipment id"
// @Success      200  {object}  deleteShipmentResponse
// @Router       /v1/shipments/{id} [delete]
func (h *ShipmentHandler) Delete(c echo.Context) error {
	deleted, err := h.service.Delete(c.Request().Context(), ctxIdentity(c), c.Param("id"))
	if err != nil {
		return err
	}
	if deleted {
		metrics.ShipmentsDeletedTotal.Inc()
	}
	return c.JSON(http.StatusOK, deleteShipmentResponse{Deleted: deleted})
}

// ToggleFlag handles POST /v1/shipments/:id/flag.
//
// @Summary      Toggle a shipment's review flag
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Shipment id"
// @Success      200  {object}  domain.Shipment
// @Failure      404  {object}  map[string]string
// @Router       /v1/shipments/{id}/flag [post]
func (h *ShipmentHandler) ToggleFlag(c echo.Context) error {
	flagged, err := h.service.ToggleFlag(c.Request().Context(), ctxIdentity(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, flagged)
}
