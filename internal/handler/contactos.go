package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/HenrySago1/Restaurantesw2/internal/dto"
	"github.com/HenrySago1/Restaurantesw2/internal/service"
)

type ContactosHandler struct{ svc service.ContactoService }

func NewContactosHandler(svc service.ContactoService) *ContactosHandler {
	return &ContactosHandler{svc: svc}
}

// Crear POST /api/contactos
func (h *ContactosHandler) Crear(c *gin.Context) {
	var req dto.ContactoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	id := strconv.FormatInt(resp.ID, 10)
	alertHeaders(c, "restaurantesw2App.contacto.created", id)
	c.Header("Location", "/api/contactos/"+id)
	c.JSON(http.StatusCreated, resp)
}

// Actualizar PUT /api/contactos/:id
func (h *ContactosHandler) Actualizar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ContactoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.contacto.updated", strconv.FormatInt(resp.ID, 10))
	c.JSON(http.StatusOK, resp)
}

// ActualizarParcial PATCH /api/contactos/:id
func (h *ContactosHandler) ActualizarParcial(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ContactoPatchRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarParcial(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.contacto.updated", strconv.FormatInt(resp.ID, 10))
	c.JSON(http.StatusOK, resp)
}

// Listar GET /api/contactos
func (h *ContactosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /api/contactos/:id
func (h *ContactosHandler) ObtenerPorID(c *gin.Context) {
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

// Eliminar DELETE /api/contactos/:id
func (h *ContactosHandler) Eliminar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.contacto.deleted", c.Param("id"))
	c.Status(http.StatusNoContent)
}
