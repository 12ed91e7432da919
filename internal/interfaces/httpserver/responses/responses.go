package responses

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/norce-drilling/wellbore-api/internal/utils/platformerrors"
)

// ErrorResponse is the error body of every failed request.
type ErrorResponse = platformerrors.HTTPErrorResponse

// DayCount is one day of a usage history as rendered in the API docs.
type DayCount struct {
	Date  string `json:"date" example:"2026-10-17"`
	Count uint64 `json:"count" example:"12"`
}

// HistoryDoc documents the shape of one usage history.
type HistoryDoc struct {
	Data []DayCount `json:"data"`
}

// UsageStatisticsDoc documents the usage statistics document.
type UsageStatisticsDoc struct {
	LastSavedAt                  string     `json:"lastSavedAt" example:"2026-10-17T08:12:44Z"`
	BackupInterval               string     `json:"backupInterval" example:"5m0s"`
	GetAllWellBoreIDPerDay       HistoryDoc `json:"getAllWellBoreIdPerDay"`
	GetAllWellBoreMetaInfoPerDay HistoryDoc `json:"getAllWellBoreMetaInfoPerDay"`
	GetWellBoreByIDPerDay        HistoryDoc `json:"getWellBoreByIdPerDay"`
	GetAllWellBorePerDay         HistoryDoc `json:"getAllWellBorePerDay"`
	PostWellBorePerDay           HistoryDoc `json:"postWellBorePerDay"`
	PutWellBoreByIDPerDay        HistoryDoc `json:"putWellBoreByIdPerDay"`
	DeleteWellBoreByIDPerDay     HistoryDoc `json:"deleteWellBoreByIdPerDay"`
}

// HandleError writes err with the status derived from its platform error type.
func HandleError(c *gin.Context, err error, log zerolog.Logger) {
	platformerrors.WriteError(c, err, log.With().Str("path", c.FullPath()).Logger())
}

// HandleBindError writes a 400 for a request body that could not be decoded or validated.
func HandleBindError(c *gin.Context, err error, log zerolog.Logger) {
	platformerrors.WriteHTTPError(c, platformerrors.NewError(c.Request.Context(), platformerrors.LayerHandler,
		platformerrors.ErrorTypeValidation, "invalid wellbore payload: "+err.Error(), err), log)
}
