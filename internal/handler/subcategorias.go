package handler

import (
	"net/http"

	"essen/internal/apierror"
	"essen/internal/dto"
	"essen/internal/middleware"
	"essen/internal/service"

	"github.com/gin-gonic/gin"
)

type SubcategoriasHandler struct{ svc service.SubcategoriaService }

func NewSubcategoriasHandler(svc service.SubcategoriaService) *SubcategoriasHandler {
	return &SubcategoriasHandler{svc: svc}
}

// Crear POST /v1/subcategorias
func (h *SubcategoriasHandler) Crear(c *gin.Context) {
	var req dto.CrearSubcategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /v1/subcategorias
func (h *SubcategoriasHandler) Listar(c *gin.Context) {
	var filter dto.SubcategoriaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parámetros de consulta inválidos"))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /v1/subcategorias/:id
func (h *SubcategoriasHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /v1/subcategorias/:id
func (h *SubcategoriasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarSubcategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/subcategorias/:id
func (h *SubcategoriasHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	if err := h.svc.Eliminar(c.Request.Context(), id, claims.NombreUsuario); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Subcategoría eliminada correctamente"})
}
