package handler

import (
	"net/http"
	"reflect"
	"regexp"
	"strconv"

	"essen/internal/apierror"
	"essen/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// Letras (incluyendo tildes y ñ) y espacios. Los nombres de catálogo no
// admiten dígitos ni puntuación.
var nombreRegexp = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]+$`)

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	validate.RegisterValidation("nombre_es", func(fl validator.FieldLevel) bool {
		return nombreRegexp.MatchString(fl.Field().String())
	})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseID parses the :id path param. Writes the 400 response itself on failure.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return 0, false
	}
	return uint(id), true
}

var kindStatus = map[domain.Kind]int{
	domain.KindValidacion:         http.StatusBadRequest,
	domain.KindConflicto:          http.StatusBadRequest,
	domain.KindReferenciaInvalida: http.StatusBadRequest,
	domain.KindNoEncontrado:       http.StatusNotFound,
	domain.KindNoAutorizado:       http.StatusUnauthorized,
}

// respondError translates a service error into the HTTP response. Typed
// domain errors keep their message; anything else is logged and hidden
// behind an opaque 500.
func respondError(c *gin.Context, err error) {
	if de, ok := err.(*domain.Error); ok {
		c.JSON(kindStatus[de.Kind], apierror.New(de.Mensaje))
		return
	}
	log.Error().
		Str("path", c.FullPath()).
		Str("method", c.Request.Method).
		Err(err).
		Msg("error no manejado en handler")
	c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
}
