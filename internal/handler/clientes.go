package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/HenrySago1/Restaurantesw2/internal/dto"
	"github.com/HenrySago1/Restaurantesw2/internal/service"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

// Crear godoc
// @Summary Crear cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Success 201 {object} dto.ClienteResponse
// @Failure 400 {object} apierror.AlertError
// @Router /api/clientes [post]
func (h *ClientesHandler) Crear(c *gin.Context) {
	var req dto.ClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	id := strconv.FormatInt(resp.ID, 10)
	alertHeaders(c, "restaurantesw2App.cliente.created", id)
	c.Header("Location", "/api/clientes/"+id)
	c.JSON(http.StatusCreated, resp)
}

// Actualizar PUT /api/clientes/:id
func (h *ClientesHandler) Actualizar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.cliente.updated", strconv.FormatInt(resp.ID, 10))
	c.JSON(http.StatusOK, resp)
}

// ActualizarParcial PATCH /api/clientes/:id
func (h *ClientesHandler) ActualizarParcial(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ClientePatchRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarParcial(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.cliente.updated", strconv.FormatInt(resp.ID, 10))
	c.JSON(http.StatusOK, resp)
}

// Listar GET /api/clientes
func (h *ClientesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /api/clientes/:id
func (h *ClientesHandler) ObtenerPorID(c *gin.Context) {
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

// Eliminar DELETE /api/clientes/:id
func (h *ClientesHandler) Eliminar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.cliente.deleted", c.Param("id"))
	c.Status(http.StatusNoContent)
}
