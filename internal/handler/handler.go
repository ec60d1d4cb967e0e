package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"shortlink/internal/domain"
	"shortlink/internal/metrics"
	"shortlink/internal/validation"
)

var (
	errInvalidBody      = map[string]string{"error": "invalid request body"}
	errInvalidKey       = map[string]string{"error": "invalid key"}
	errInvalidAPIKey    = map[string]string{"error": "invalid api key"}
	errInvalidUserID    = map[string]string{"error": "invalid user id"}
	errInvalidTarget    = map[string]string{"error": "target must be positive"}
	errActiveRequired   = map[string]string{"error": "is_active is required"}
	errURLNotFound      = map[string]string{"error": "url not found"}
	errUserNotFound     = map[string]string{"error": "user not found"}
	errPoolExhausted    = map[string]string{"error": "key pool exhausted"}
	errEmailTaken       = map[string]string{"error": "email already registered"}
	errCreateFailed     = map[string]string{"error": "failed to create short url"}
	errGetFailed        = map[string]string{"error": "failed to get url"}
	errUpdateFailed     = map[string]string{"error": "failed to update url"}
	errDeleteFailed     = map[string]string{"error": "failed to delete url"}
	errRegisterFailed   = map[string]string{"error": "failed to register user"}
	errListUsersFailed  = map[string]string{"error": "failed to list users"}
	errDeleteUserFailed = map[string]string{"error": "failed to delete user"}
	errPoolStatsFailed  = map[string]string{"error": "failed to read key pool"}
	errReplenishFailed  = map[string]string{"error": "failed to replenish key pool"}
	respHealthOK        = map[string]string{"status": "ok"}
)

type Handler struct {
	urlService  URLService
	userService UserService
	poolService PoolService
	validator   Validator
	logger      *slog.Logger
	recorder    BusinessRecorder
	baseURL     string
}

func New(
	urlService URLService,
	userService UserService,
	poolService PoolService,
	validator Validator,
	logger *slog.Logger,
	recorder BusinessRecorder,
	baseURL string,
) *Handler {
	return &Handler{
		urlService:  urlService,
		userService: userService,
		poolService: poolService,
		validator:   validator,
		logger:      logger,
		recorder:    recorder,
		baseURL:     baseURL,
	}
}

// Register mounts every route. Operator routes (user listing and deletion,
// key pool inspection and replenishment) are wrapped with adminAuth.
func (h *Handler) Register(e *echo.Echo, adminAuth echo.MiddlewareFunc) {
	api := e.Group("/api/v1")
	api.GET("/health", h.Health)
	api.GET("/pool", h.PoolStats, adminAuth)
	api.POST("/pool/replenish", h.ReplenishPool, adminAuth)

	e.POST("/users", h.CreateUser)
	e.GET("/users", h.ListUsers, adminAuth)
	e.DELETE("/users/:id", h.DeleteUser, adminAuth)

	e.POST("/url", h.CreateURL)
	e.GET("/admin/:secret", h.GetURLInfo)
	e.PATCH("/admin/:secret", h.UpdateURL)
	e.DELETE("/admin/:secret", h.DeleteURL)
	e.GET("/:key", h.Redirect)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) CreateURL(c echo.Context) error {
	var req domain.CreateURLRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.validator.ValidateURL(req.TargetURL); err != nil {
		return h.handleValidationError(c, err)
	}

	u, err := h.urlService.CreateShortURL(c.Request().Context(), req.APIKey, req.TargetURL)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredential):
			return c.JSON(http.StatusBadRequest, errInvalidAPIKey)
		case errors.Is(err, domain.ErrPoolExhausted):
			return c.JSON(http.StatusConflict, errPoolExhausted)
		}
		h.logger.Error("failed to create short url", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errCreateFailed)
	}

	return c.JSON(http.StatusOK, domain.NewURLInfo(u, h.baseURL))
}

func (h *Handler) Redirect(c echo.Context) error {
	key := c.Param("key")
	if err := validation.ValidatePublicKey(key); err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidKey)
	}

	target, err := h.urlService.Redeem(c.Request().Context(), key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.recorder.RecordBusiness(metrics.URLNotFound, 1, map[string]string{
				"key":       key,
				"client_ip": c.RealIP(),
				"referrer":  extractDomain(c.Request().Referer()),
			})
			return c.JSON(http.StatusNotFound, errURLNotFound)
		}
		h.logger.Error("failed to redeem key", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errGetFailed)
	}

	return c.Redirect(http.StatusSeeOther, target)
}

func (h *Handler) GetURLInfo(c echo.Context) error {
	secret := c.Param("secret")
	if err := validation.ValidateSecretKey(secret); err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidKey)
	}

	u, err := h.urlService.GetBySecret(c.Request().Context(), secret)
	if err != nil {
		return h.handleURLError(c, err, errGetFailed)
	}
	return c.JSON(http.StatusOK, domain.NewURLInfo(u, h.baseURL))
}

func (h *Handler) UpdateURL(c echo.Context) error {
	secret := c.Param("secret")
	if err := validation.ValidateSecretKey(secret); err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidKey)
	}

	var req domain.UpdateURLRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}
	if req.IsActive == nil {
		return c.JSON(http.StatusBadRequest, errActiveRequired)
	}

	u, err := h.urlService.SetActive(c.Request().Context(), secret, *req.IsActive)
	if err != nil {
		return h.handleURLError(c, err, errUpdateFailed)
	}
	return c.JSON(http.StatusOK, domain.NewURLInfo(u, h.baseURL))
}

func (h *Handler) DeleteURL(c echo.Context) error {
	secret := c.Param("secret")
	if err := validation.ValidateSecretKey(secret); err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidKey)
	}

	u, err := h.urlService.DeleteBySecret(c.Request().Context(), secret)
	if err != nil {
		return h.handleURLError(c, err, errDeleteFailed)
	}
	return c.JSON(http.StatusOK, domain.NewURLInfo(u, h.baseURL))
}

func (h *Handler) handleURLError(c echo.Context, err error, fallback map[string]string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, errURLNotFound)
	}
	h.logger.Error(fallback["error"], slog.String("error", err.Error()))
	return c.JSON(http.StatusInternalServerError, fallback)
}

func extractDomain(referer string) string {
	if referer == "" {
		return "direct"
	}

	parsed, err := url.Parse(referer)
	if err != nil || parsed.Host == "" {
		return "unknown"
	}

	return parsed.Host
}

func (h *Handler) handleValidationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, validation.ErrEmptyURL),
		errors.Is(err, validation.ErrInvalidURLFormat),
		errors.Is(err, validation.ErrUnsafeProtocol),
		errors.Is(err, validation.ErrURLTooLong),
		errors.Is(err, validation.ErrPrivateIPNotAllowed),
		errors.Is(err, validation.ErrEmptyUsername),
		errors.Is(err, validation.ErrUsernameTooLong),
		errors.Is(err, validation.ErrInvalidEmail):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "validation failed"})
	}
}
