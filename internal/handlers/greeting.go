// Package handlers contains HTTP request handlers for the hello service.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sebasr/hello-service/internal/greeting"
)

// GreetingHandler greets the caller named by the name query parameter
func GreetingHandler(c *gin.Context) {
	name, err := greeting.ValidateQuery(greeting.ParseQuery(c.Request.URL.RawQuery))
	if err != nil {
		if errors.Is(err, greeting.ErrMissingParameter) {
			zerolog.Ctx(c.Request.Context()).Debug().Err(err).Msg("rejected greeting request")
			c.String(http.StatusBadRequest, greeting.MissingParameterMessage)
			return
		}
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, greeting.NewResponse(name))
}
