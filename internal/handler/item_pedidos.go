package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/HenrySago1/Restaurantesw2/internal/dto"
	"github.com/HenrySago1/Restaurantesw2/internal/service"
)

type ItemPedidosHandler struct{ svc service.ItemPedidoService }

func NewItemPedidosHandler(svc service.ItemPedidoService) *ItemPedidosHandler {
	return &ItemPedidosHandler{svc: svc}
}

// Crear POST /api/item-pedidos
func (h *ItemPedidosHandler) Crear(c *gin.Context) {
	var req dto.ItemPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	id := strconv.FormatInt(resp.ID, 10)
	alertHeaders(c, "restaurantesw2App.itemPedido.created", id)
	c.Header("Location", "/api/item-pedidos/"+id)
	c.JSON(http.StatusCreated, resp)
}

// Actualizar PUT /api/item-pedidos/:id
func (h *ItemPedidosHandler) Actualizar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ItemPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.itemPedido.updated", strconv.FormatInt(resp.ID, 10))
	c.JSON(http.StatusOK, resp)
}

// ActualizarParcial PATCH /api/item-pedidos/:id
func (h *ItemPedidosHandler) ActualizarParcial(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ItemPedidoPatchRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarParcial(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.itemPedido.updated", strconv.FormatInt(resp.ID, 10))
	c.JSON(http.StatusOK, resp)
}

// Listar GET /api/item-pedidos
func (h *ItemPedidosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /api/item-pedidos/:id
func (h *ItemPedidosHandler) ObtenerPorID(c *gin.Context) {
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

// Eliminar DELETE /api/item-pedidos/:id
func (h *ItemPedidosHandler) Eliminar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	alertHeaders(c, "restaurantesw2App.itemPedido.deleted", c.Param("id"))
	c.Status(http.StatusNoContent)
}
