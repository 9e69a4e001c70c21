package handlers

import (
	"net/http"
	"strings"

	"maisonpro_dispatch/internal/domain/entities"
	"maisonpro_dispatch/pkg"

	"github.com/gin-gonic/gin"
)

// DivisionHeader selects which division a dashboard request operates on.
// An absent header means "all divisions".
const DivisionHeader = "X-Division"

var errInvalidDivisionHeader = pkg.NewDomainErrorSimple("INVALID_DIVISION", "Unknown division", http.StatusBadRequest)

// divisionScope resolves the request's division. The scope fails open: an
// empty header lists everything, only a present-but-unknown value is
// rejected.
func divisionScope(c *gin.Context) (entities.Division, bool) {
	raw := strings.TrimSpace(c.GetHeader(DivisionHeader))
	if raw == "" {
		return "", true
	}
	division := entities.Division(raw)
	if !division.Valid() {
		c.JSON(errInvalidDivisionHeader.HTTPStatus, errInvalidDivisionHeader.ToHTTPError())
		return "", false
	}
	return division, true
}
