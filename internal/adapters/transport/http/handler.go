package http

import (
	"net/http"
	"time"

	"github.com/pocketmint/auth-service/internal/adapters/transport/http/dto"
	"github.com/pocketmint/auth-service/internal/adapters/transport/http/middleware"
	appsvc "github.com/pocketmint/auth-service/internal/app/auth/service"
	authErrors "github.com/pocketmint/auth-service/internal/domain/auth/errors"
	"github.com/pocketmint/auth-service/internal/domain/auth/jwt"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc     appsvc.Service
	jwtUtil jwt.JWTUtil
}

func NewHandler(svc appsvc.Service, jwtUtil jwt.JWTUtil) *Handler {
	return &Handler{svc: svc, jwtUtil: jwtUtil}
}

func (h *Handler) Register(r *gin.Engine) {
	r.POST("/signup", h.signup)
	r.POST("/login", h.login)
	r.POST("/logout", h.logout)
	r.GET("/token", h.refresh)
	r.GET("/user", middleware.Authenticate(h.jwtUtil), h.currentUser)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Unix()})
	})
}

func (h *Handler) signup(c *gin.Context) {
	var body dto.SignupDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageDTO{Message: err.Error()})
		return
	}

	if err := h.svc.Signup(c.Request.Context(), body); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageDTO{Message: "registration done successfully"})
}

func (h *Handler) login(c *gin.Context) {
	var body dto.LoginDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageDTO{Message: err.Error()})
		return
	}

	pair, err := h.svc.Login(c.Request.Context(), body)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenPairDTO{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func (h *Handler) logout(c *gin.Context) {
	token := middleware.BearerToken(c)
	if token == "" {
		handleError(c, authErrors.ErrNoToken)
		return
	}

	if err := h.svc.Logout(c.Request.Context(), token); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageDTO{Message: "successful logout"})
}

func (h *Handler) refresh(c *gin.Context) {
	token := middleware.BearerToken(c)
	if token == "" {
		handleError(c, authErrors.ErrNoToken)
		return
	}

	at, err := h.svc.Refresh(c.Request.Context(), token)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AccessTokenDTO{AccessToken: at})
}

func (h *Handler) currentUser(c *gin.Context) {
	email := c.GetString(middleware.EmailKey)

	user, err := h.svc.CurrentUser(c.Request.Context(), email)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// handleError is the terminal error formatter: every failure ends up here and
// leaves as {"message": ...} with a status derived from the error kind.
// Duplicate signups map to 500, matching the persistence-error path.
func handleError(c *gin.Context, err error) {
	switch {
	case authErrors.IsInvalidArgument(err):
		c.JSON(http.StatusBadRequest, dto.MessageDTO{Message: err.Error()})
	case authErrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, dto.MessageDTO{Message: "User doesn't exist"})
	case authErrors.IsInvalidCredentials(err):
		c.JSON(http.StatusUnauthorized, dto.MessageDTO{Message: "Wrong Password"})
	case authErrors.IsNoToken(err):
		c.JSON(http.StatusUnauthorized, dto.MessageDTO{Message: "no token provided"})
	case authErrors.IsInvalidToken(err):
		c.JSON(http.StatusForbidden, dto.MessageDTO{Message: "wrong token"})
	case authErrors.IsAlreadyExists(err):
		c.JSON(http.StatusInternalServerError, dto.MessageDTO{Message: "user already exist."})
	default:
		c.JSON(http.StatusInternalServerError, dto.MessageDTO{Message: err.Error()})
	}
}
