package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/HenrySago1/Restaurantesw2/internal/apierror"
)

// alertPrefix is the app-scoped header namespace for success and failure
// alerts consumed by the frontend.
const alertPrefix = "X-Restaurantesw2"

var validate = validator.New()

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
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// pathID parses the numeric :id route parameter. Returns false after writing
// the error response.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return 0, false
	}
	return id, true
}

// respondError translates service errors into the alert envelope. AlertErrors
// carry their own status and reason code; anything else is an internal error.
func respondError(c *gin.Context, err error) {
	var alert *apierror.AlertError
	if errors.As(err, &alert) {
		c.Header(alertPrefix+"-error", "error."+alert.ErrorKey)
		c.Header(alertPrefix+"-params", alert.EntityName)
		c.JSON(alert.Status, alert)
		return
	}
	c.JSON(http.StatusInternalServerError, apierror.New("Error interno"))
}

// alertHeaders announces a successful mutation so the frontend can toast it.
func alertHeaders(c *gin.Context, message, param string) {
	c.Header(alertPrefix+"-alert", message)
	c.Header(alertPrefix+"-params", param)
}
