package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/HenrySago1/Restaurantesw2/internal/dto"
	"github.com/HenrySago1/Restaurantesw2/internal/service"
)

type FacturasHandler struct{ svc service.FacturaService }

func NewFacturasHandler(svc service.FacturaService) *FacturasHandler {
	return &FacturasHandler{svc: svc}
}

// Crear POST /api/facturas
func (h *FacturasHandler) Crear(c *gin.Context) {
	var req dto.FacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	id := strconv.FormatInt(resp.ID, 10)
	alertHeaders(c, "restaurantesw2App.factura.created", id)
	c.Header("Location", "/api/facturas/"+id)
	c.JSON(http.StatusCreated, resp)
}

// Actualizar PUT /api/facturas/:id
func (h *FacturasHandler) Actualizar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.FacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.factura.updated", strconv.FormatInt(resp.ID, 10))
	c.JSON(http.StatusOK, resp)
}

// ActualizarParcial PATCH /api/facturas/:id
func (h *FacturasHandler) ActualizarParcial(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.FacturaPatchRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarParcial(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.factura.updated", strconv.FormatInt(resp.ID, 10))
	c.JSON(http.StatusOK, resp)
}

// Listar godoc
// @Summary Listar facturas
// @Tags facturas
// @Produce json
// @Param filter query string false "pedido-is-null restringe a facturas sin pedido"
// @Success 200 {array} dto.FacturaResponse
// @Router /api/facturas [get]
func (h *FacturasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), c.Query("filter"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /api/facturas/:id
func (h *FacturasHandler) ObtenerPorID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /api/facturas/:id
func (h *FacturasHandler) Eliminar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.factura.deleted", c.Param("id"))
	c.Status(http.StatusNoContent)
}
