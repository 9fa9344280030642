package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/barberbook/reservation-api/internal/httpresp"
)

func BadRequest(c *gin.Context, message string, errs any) {
	httpresp.Fail(c, http.StatusBadRequest, message, errs)
}

func NotFound(c *gin.Context, message string) {
	httpresp.Fail(c, http.StatusNotFound, message, nil)
}

func Internal(c *gin.Context) {
	httpresp.Fail(c, http.StatusInternalServerError, "internal server error", nil)
}

// Respond maps a use-case error onto the HTTP taxonomy. Anything outside
// the taxonomy is a persistence failure: logged, surfaced as a generic 500.
func Respond(c *gin.Context, err error) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		BadRequest(c, "validation failed", ve.Fields)
		return
	}

	var nf *NotFoundError
	if errors.As(err, &nf) {
		NotFound(c, nf.Error())
		return
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg("unexpected error")
	Internal(c)
}
