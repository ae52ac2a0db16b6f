package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HenrySago1/Restaurantesw2/internal/dto"
	"github.com/HenrySago1/Restaurantesw2/internal/service"
)

type CategoriasHandler struct{ svc service.CategoriaService }

func NewCategoriasHandler(svc service.CategoriaService) *CategoriasHandler {
	return &CategoriasHandler{svc: svc}
}

// Crear POST /api/categorias
func (h *CategoriasHandler) Crear(c *gin.Context) {
	var req dto.CategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.categoria.created", resp.ID)
	c.Header("Location", "/api/categorias/"+resp.ID)
	c.JSON(http.StatusCreated, resp)
}

// Actualizar PUT /api/categorias/:id
func (h *CategoriasHandler) Actualizar(c *gin.Context) {
	var req dto.CategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.categoria.updated", resp.ID)
	c.JSON(http.StatusOK, resp)
}

// ActualizarParcial PATCH /api/categorias/:id
func (h *CategoriasHandler) ActualizarParcial(c *gin.Context) {
	var req dto.CategoriaPatchRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarParcial(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.categoria.updated", resp.ID)
	c.JSON(http.StatusOK, resp)
}

// Listar GET /api/categorias
func (h *CategoriasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /api/categorias/:id
func (h *CategoriasHandler) ObtenerPorID(c *gin.Context) {
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /api/categorias/:id
func (h *CategoriasHandler) Eliminar(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.categoria.deleted", c.Param("id"))
	c.Status(http.StatusNoContent)
}
