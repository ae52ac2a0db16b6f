package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/HenrySago1/Restaurantesw2/internal/dto"
	"github.com/HenrySago1/Restaurantesw2/internal/service"
)

type PlatoesHandler struct{ svc service.PlatoService }

func NewPlatoesHandler(svc service.PlatoService) *PlatoesHandler {
	return &PlatoesHandler{svc: svc}
}

// Crear POST /api/platoes
func (h *PlatoesHandler) Crear(c *gin.Context) {
	var req dto.PlatoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.plato.created", resp.ID)
	c.Header("Location", "/api/platoes/"+resp.ID)
	c.JSON(http.StatusCreated, resp)
}

// Actualizar PUT /api/platoes/:id
func (h *PlatoesHandler) Actualizar(c *gin.Context) {
	var req dto.PlatoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.plato.updated", resp.ID)
	c.JSON(http.StatusOK, resp)
}

// ActualizarParcial PATCH /api/platoes/:id
func (h *PlatoesHandler) ActualizarParcial(c *gin.Context) {
	var req dto.PlatoPatchRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarParcial(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.plato.updated", resp.ID)
	c.JSON(http.StatusOK, resp)
}

// Listar godoc
// @Summary Listar platos
// @Tags platoes
// @Produce json
// @Param eagerload query bool false "cargar categorias e insumos relacionados (default true)"
// @Success 200 {array} dto.PlatoResponse
// @Router /api/platoes [get]
func (h *PlatoesHandler) Listar(c *gin.Context) {
	eager := true
	if raw, ok := c.GetQuery("eagerload"); ok {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			eager = parsed
		}
	}
	resp, err := h.svc.Listar(c.Request.Context(), eager)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /api/platoes/:id
func (h *PlatoesHandler) ObtenerPorID(c *gin.Context) {
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /api/platoes/:id
func (h *PlatoesHandler) Eliminar(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.plato.deleted", c.Param("id"))
	c.Status(http.StatusNoContent)
}
