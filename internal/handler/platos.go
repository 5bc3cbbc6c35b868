package handler

import (
	"net/http"

	"essen/internal/apierror"
	"essen/internal/dto"
	"essen/internal/middleware"
	"essen/internal/service"

	"github.com/gin-gonic/gin"
)

type PlatosHandler struct{ svc service.PlatoService }

func NewPlatosHandler(svc service.PlatoService) *PlatosHandler {
	return &PlatosHandler{svc: svc}
}

// Crear POST /v1/platos
//
//	@Summary	Crea un plato del menú
//	@Tags		platos
//	@Accept		json
//	@Produce	json
//	@Param		plato	body		dto.CrearPlatoRequest	true	"Plato"
//	@Success	201		{object}	dto.PlatoResponse
//	@Failure	400		{object}	apierror.APIError
//	@Security	BearerAuth
//	@Router		/v1/platos [post]
func (h *PlatosHandler) Crear(c *gin.Context) {
	var req dto.CrearPlatoRequest
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

// Listar GET /v1/platos
//
//	@Summary	Lista platos activos con categoría, subcategoría y alérgenos resueltos
//	@Tags		platos
//	@Produce	json
//	@Param		categoriaId		query	int	false	"Filtrar por categoría"
//	@Param		subcategoriaId	query	int	false	"Filtrar por subcategoría"
//	@Success	200	{array}	dto.PlatoResponse
//	@Router		/v1/platos [get]
func (h *PlatosHandler) Listar(c *gin.Context) {
	var filter dto.PlatoFilter
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

// Obtener GET /v1/platos/:id
func (h *PlatosHandler) Obtener(c *gin.Context) {
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

// Actualizar PUT /v1/platos/:id
func (h *PlatosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarPlatoRequest
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

// Eliminar DELETE /v1/platos/:id
func (h *PlatosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	if err := h.svc.Eliminar(c.Request.Context(), id, claims.NombreUsuario); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Plato eliminado lógicamente"})
}

// Crecimiento GET /v1/platos/crecimiento
//
//	@Summary	Altas de platos por mes en los últimos seis meses
//	@Tags		platos
//	@Produce	json
//	@Success	200	{array}	dto.CrecimientoPlatos
//	@Security	BearerAuth
//	@Router		/v1/platos/crecimiento [get]
func (h *PlatosHandler) Crecimiento(c *gin.Context) {
	resp, err := h.svc.Crecimiento(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
