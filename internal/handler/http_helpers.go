package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"reflect"
	"strconv"
	"time"

	"github.com/dancestudio/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	msgInvalidJSON = "Invalid JSON payload."
	msgServerError = "A server error occurred."
)

var timeType = reflect.TypeOf(time.Time{})

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"detail": message})
}

func respondFieldErrors(c *gin.Context, errs service.FieldErrors) {
	c.JSON(http.StatusBadRequest, errs)
}

// respondServiceError maps service errors onto status codes. Only
// unexpected errors are logged.
func respondServiceError(c *gin.Context, err error) {
	if verr, ok := service.AsValidation(err); ok {
		respondFieldErrors(c, verr.Fields)
		return
	}
	if errors.Is(err, service.ErrNotFound) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	log.Printf("[ERR] id=%s %s %s: %v", requestID(c), c.Request.Method, c.Request.URL.Path, err)
	respondError(c, http.StatusInternalServerError, msgServerError)
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			respondFieldErrors(c, service.FieldErrors{typeErr.Field: {typeMessage(typeErr.Type)}})
			return false
		}
		respondFieldErrors(c, service.FieldErrors{service.NonFieldErrors: {msgInvalidJSON}})
		return false
	}
	return true
}

func typeMessage(t reflect.Type) string {
	if t == nil {
		return "Invalid value."
	}
	if t == timeType {
		return "Datetime has wrong format. Use ISO 8601."
	}
	switch t.Kind() {
	case reflect.Bool:
		return "Must be a valid boolean."
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "A valid integer is required."
	case reflect.String:
		return "Not a valid string."
	case reflect.Slice:
		return "Expected a list of items."
	default:
		return "Invalid value."
	}
}

func parseUintParam(c *gin.Context, key string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(key), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
