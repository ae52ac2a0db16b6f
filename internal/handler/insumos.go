package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HenrySago1/Restaurantesw2/internal/dto"
	"github.com/HenrySago1/Restaurantesw2/internal/service"
)

type InsumosHandler struct{ svc service.InsumoService }

func NewInsumosHandler(svc service.InsumoService) *InsumosHandler {
	return &InsumosHandler{svc: svc}
}

// Crear POST /api/insumos
func (h *InsumosHandler) Crear(c *gin.Context) {
	var req dto.InsumoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.insumo.created", resp.ID)
	c.Header("Location", "/api/insumos/"+resp.ID)
	c.JSON(http.StatusCreated, resp)
}

// Actualizar PUT /api/insumos/:id
func (h *InsumosHandler) Actualizar(c *gin.Context) {
	var req dto.InsumoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.insumo.updated", resp.ID)
	c.JSON(http.StatusOK, resp)
}

// ActualizarParcial PATCH /api/insumos/:id
func (h *InsumosHandler) ActualizarParcial(c *gin.Context) {
	var req dto.InsumoPatchRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarParcial(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.insumo.updated", resp.ID)
	c.JSON(http.StatusOK, resp)
}

// Listar GET /api/insumos
func (h *InsumosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /api/insumos/:id
func (h *InsumosHandler) ObtenerPorID(c *gin.Context) {
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /api/insumos/:id
func (h *InsumosHandler) Eliminar(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.insumo.deleted", c.Param("id"))
	c.Status(http.StatusNoContent)
}
