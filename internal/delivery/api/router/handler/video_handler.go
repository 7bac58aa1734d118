package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"streamsync/config"
	"streamsync/internal/delivery/api/middleware"
	"streamsync/internal/delivery/api/response"
	domainerrors "streamsync/internal/domain/errors"
	"streamsync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// The video directory returns at most 50 items per search page.
const maxCatalogResults = 50

// VideoHandlerParams holds dependencies for VideoHandler, injected by Fx.
type VideoHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	LibraryUC usecase.LibraryUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// VideoHandler serves the video catalog and the user's library.
type VideoHandler struct {
	catalogUC        usecase.CatalogUsecase
	libraryUC        usecase.LibraryUsecase
	defaultChannelID string
	defaultMax       int
	logger           *slog.Logger
}

// NewVideoHandler is the constructor for VideoHandler
func NewVideoHandler(params VideoHandlerParams) *VideoHandler {
	h := &VideoHandler{
		catalogUC:  params.CatalogUC,
		libraryUC:  params.LibraryUC,
		defaultMax: config.DefaultMaxResults,
		logger:     params.Logger,
	}

	if params.Config.YouTube != nil {
		h.defaultChannelID = params.Config.YouTube.DefaultChannelID
	}
	if params.Config.Catalog != nil && params.Config.Catalog.DefaultMaxResults > 0 {
		h.defaultMax = params.Config.Catalog.DefaultMaxResults
	}

	return h
}

// SaveProgressRequest is the body of POST /api/videos/progress.
type SaveProgressRequest struct {
	VideoID          string  `json:"video_id" validate:"required"`
	PositionSeconds  int     `json:"position_seconds" validate:"gte=0"`
	CompletedPercent float64 `json:"completed_percent" validate:"gte=0,lte=100"`
}

// AddFavoriteRequest is the body of POST /api/videos/favorites.
type AddFavoriteRequest struct {
	VideoID string `json:"video_id" validate:"required"`
}

// GetLatest returns the newest videos of ?channelId, or of the configured default channel.
func (h *VideoHandler) GetLatest(c echo.Context) error {
	channelID := strings.TrimSpace(c.QueryParam("channelId"))
	if channelID == "" {
		channelID = h.defaultChannelID
	}

	maxResults := h.defaultMax
	if err := echo.QueryParamsBinder(c).Int("maxResults", &maxResults).BindError(); err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidRequest.ErrorCode(), "maxResults must be an integer")
	}
	maxResults = min(max(maxResults, 1), maxCatalogResults)

	result, err := h.catalogUC.GetCatalog(c.Request().Context(), channelID, maxResults)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetVideo returns one cached video.
func (h *VideoHandler) GetVideo(c echo.Context) error {
	video, err := h.catalogUC.GetVideoByID(c.Request().Context(), c.Param("videoId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, video)
}

// SaveProgress records the caller's playback position.
func (h *VideoHandler) SaveProgress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SaveProgressRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	progress, err := h.libraryUC.SaveProgress(c.Request().Context(), userID, &usecase.ProgressInput{
		VideoID:          req.VideoID,
		PositionSeconds:  req.PositionSeconds,
		CompletedPercent: req.CompletedPercent,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, progress)
}

// ListProgress returns the caller's playback positions.
func (h *VideoHandler) ListProgress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	progress, err := h.libraryUC.ListProgress(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, progress)
}

// AddFavorite favorites a cached video for the caller.
func (h *VideoHandler) AddFavorite(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AddFavoriteRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	favorite, err := h.libraryUC.AddFavorite(c.Request().Context(), userID, req.VideoID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, favorite)
}

// RemoveFavorite removes a video from the caller's favorites.
func (h *VideoHandler) RemoveFavorite(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.libraryUC.RemoveFavorite(c.Request().Context(), userID, c.Param("videoId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Favorite removed"})
}

// ListFavorites returns the caller's favorites.
func (h *VideoHandler) ListFavorites(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	favorites, err := h.libraryUC.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, favorites)
}
