package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/HenrySago1/Restaurantesw2/internal/dto"
	"github.com/HenrySago1/Restaurantesw2/internal/service"
)

type MesasHandler struct{ svc service.MesaService }

func NewMesasHandler(svc service.MesaService) *MesasHandler {
	return &MesasHandler{svc: svc}
}

// Crear POST /api/mesas
func (h *MesasHandler) Crear(c *gin.Context) {
	var req dto.MesaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	id := strconv.FormatInt(resp.ID, 10)
	alertHeaders(c, "restaurantesw2App.mesa.created", id)
	c.Header("Location", "/api/mesas/"+id)
	c.JSON(http.StatusCreated, resp)
}

// Actualizar PUT /api/mesas/:id
func (h *MesasHandler) Actualizar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.MesaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.mesa.updated", strconv.FormatInt(resp.ID, 10))
	c.JSON(http.StatusOK, resp)
}

// ActualizarParcial PATCH /api/mesas/:id
func (h *MesasHandler) ActualizarParcial(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.MesaPatchRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarParcial(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.mesa.updated", strconv.FormatInt(resp.ID, 10))
	c.JSON(http.StatusOK, resp)
}

// Listar GET /api/mesas
func (h *MesasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /api/mesas/:id
func (h *MesasHandler) ObtenerPorID(c *gin.Context) {
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

// Eliminar DELETE /api/mesas/:id
func (h *MesasHandler) Eliminar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.mesa.deleted", c.Param("id"))
	c.Status(http.StatusNoContent)
}
