package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/norce-drilling/wellbore-api/internal/interfaces/httpserver/handlers"
)

func registerUsageRoutes(router gin.IRoutes, handler *handlers.UsageHandler) {
	router.GET("/WellBoreUsageStatistics", getUsageStatistics(handler))
}

// getUsageStatistics godoc
// @Summary      Usage statistics
// @Description  Daily call counts of every WellBore operation, in the persisted snapshot layout.
// @Tags         WellBoreUsageStatistics
// @Produce      json
// @Success      200  {object}  responses.UsageStatisticsDoc
// @Router       /WellBoreUsageStatistics [get]
func getUsageStatistics(handler *handlers.UsageHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, handler.Snapshot())
	}
}
