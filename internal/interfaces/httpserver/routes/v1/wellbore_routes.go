package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/norce-drilling/wellbore-api/internal/domain/usage"
	"github.com/norce-drilling/wellbore-api/internal/domain/wellbore"
	"github.com/norce-drilling/wellbore-api/internal/interfaces/httpserver/handlers"
	"github.com/norce-drilling/wellbore-api/internal/interfaces/httpserver/responses"
)

func registerWellBoreRoutes(router gin.IRoutes, handler *handlers.WellBoreHandler, counter *handlers.UsageHandler, log zerolog.Logger) {
	router.GET("/WellBore",
		counter.Count((*usage.Tracker).IncrementGetAllWellBoreIDPerDay), listWellBoreIDs(handler, log))
	router.GET("/WellBore/MetaInfo",
		counter.Count((*usage.Tracker).IncrementGetAllWellBoreMetaInfoPerDay), listWellBoreMetaInfo(handler, log))
	router.GET("/WellBore/HeavyData",
		counter.Count((*usage.Tracker).IncrementGetAllWellBorePerDay), listWellBores(handler, log))
	router.GET("/WellBore/:id",
		counter.Count((*usage.Tracker).IncrementGetWellBoreByIDPerDay), getWellBore(handler, log))
	router.POST("/WellBore",
		counter.Count((*usage.Tracker).IncrementPostWellBorePerDay), postWellBore(handler, log))
	router.PUT("/WellBore/:id",
		counter.Count((*usage.Tracker).IncrementPutWellBoreByIDPerDay), putWellBore(handler, log))
	router.DELETE("/WellBore/:id",
		counter.Count((*usage.Tracker).IncrementDeleteWellBoreByIDPerDay), deleteWellBore(handler, log))
}

// listWellBoreIDs godoc
// @Summary      List wellbore ids
// @Tags         WellBore
// @Produce      json
// @Success      200  {array}   string
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /WellBore [get]
func listWellBoreIDs(handler *handlers.WellBoreHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ids, err := handler.ListIDs(c.Request.Context())
		if err != nil {
			responses.HandleError(c, err, log)
			return
		}
		c.JSON(http.StatusOK, ids)
	}
}

// listWellBoreMetaInfo godoc
// @Summary      List the MetaInfo of every wellbore
// @Tags         WellBore
// @Produce      json
// @Success      200  {array}   wellbore.MetaInfo
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /WellBore/MetaInfo [get]
func listWellBoreMetaInfo(handler *handlers.WellBoreHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		infos, err := handler.ListMetaInfo(c.Request.Context())
		if err != nil {
			responses.HandleError(c, err, log)
			return
		}
		c.JSON(http.StatusOK, infos)
	}
}

// listWellBores godoc
// @Summary      List every wellbore with all its data
// @Tags         WellBore
// @Produce      json
// @Success      200  {array}   wellbore.WellBore
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /WellBore/HeavyData [get]
func listWellBores(handler *handlers.WellBoreHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		wellBores, err := handler.List(c.Request.Context())
		if err != nil {
			responses.HandleError(c, err, log)
			return
		}
		c.JSON(http.StatusOK, wellBores)
	}
}

// getWellBore godoc
// @Summary      Get a wellbore
// @Tags         WellBore
// @Produce      json
// @Param        id   path      string  true  "WellBore ID"
// @Success      200  {object}  wellbore.WellBore
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /WellBore/{id} [get]
func getWellBore(handler *handlers.WellBoreHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		wb, err := handler.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			responses.HandleError(c, err, log)
			return
		}
		c.JSON(http.StatusOK, wb)
	}
}

// postWellBore godoc
// @Summary      Create a wellbore
// @Tags         WellBore
// @Accept       json
// @Param        wellBore  body  wellbore.WellBore  true  "WellBore to create"
// @Success      200
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      409  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /WellBore [post]
func postWellBore(handler *handlers.WellBoreHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var wb wellbore.WellBore
		if err := c.ShouldBindJSON(&wb); err != nil {
			responses.HandleBindError(c, err, log)
			return
		}
		if err := handler.Create(c.Request.Context(), wb); err != nil {
			responses.HandleError(c, err, log)
			return
		}
		c.Status(http.StatusOK)
	}
}

// putWellBore godoc
// @Summary      Replace a wellbore
// @Tags         WellBore
// @Accept       json
// @Param        id        path  string             true  "WellBore ID"
// @Param        wellBore  body  wellbore.WellBore  true  "WellBore replacing the stored one"
// @Success      200
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /WellBore/{id} [put]
func putWellBore(handler *handlers.WellBoreHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var wb wellbore.WellBore
		if err := c.ShouldBindJSON(&wb); err != nil {
			responses.HandleBindError(c, err, log)
			return
		}
		if err := handler.Update(c.Request.Context(), c.Param("id"), wb); err != nil {
			responses.HandleError(c, err, log)
			return
		}
		c.Status(http.StatusOK)
	}
}

// deleteWellBore godoc
// @Summary      Delete a wellbore
// @Tags         WellBore
// @Param        id   path  string  true  "WellBore ID"
// @Success      200
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /WellBore/{id} [delete]
func deleteWellBore(handler *handlers.WellBoreHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := handler.Delete(c.Request.Context(), c.Param("id")); err != nil {
			responses.HandleError(c, err, log)
			return
		}
		c.Status(http.StatusOK)
	}
}
