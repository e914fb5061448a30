package mock

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/riordanpawley/taskboard/internal/domain"
)

const userKey = "user"

// Server exposes a Backend over the REST contract under /api
type Server struct {
	backend *Backend
	logger  *slog.Logger
	router  *gin.Engine
}

// NewServer creates the gin router for backend
func NewServer(backend *Backend, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	s := &Server{
		backend: backend,
		logger:  logger,
		router:  router,
	}

	router.Use(gin.Recovery(), s.logRequests)
	router.NoRoute(func(c *gin.Context) {
		s.fail(c, domain.NewAPIError(http.StatusNotFound, "No route", c.Request.URL.Path))
	})

	api := router.Group("/api")
	{
		api.POST("/auth/login", s.handleLogin)
		api.POST("/auth/register", s.handleRegister)
	}

	tasks := api.Group("/tasks", s.requireToken)
	{
		tasks.GET("", s.handleList)
		tasks.POST("", s.handleCreate)
		tasks.PUT("/:id/status", s.handleUpdateStatus)
		tasks.DELETE("/:id", s.handleDelete)
	}

	return s
}

// ServeHTTP lets the server be mounted in any http.Server or httptest.Server
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run listens on addr until the listener fails
func (s *Server) Run(addr string) error {
	s.logger.Info("mock api listening", "addr", addr)
	return s.router.Run(addr)
}

func (s *Server) logRequests(c *gin.Context) {
	start := time.Now()
	c.Next()
	s.logger.Debug("mock api request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration", time.Since(start),
	)
}

func (s *Server) requireToken(c *gin.Context) {
	user, err := s.backend.Authenticate(bearer(c))
	if err != nil {
		s.fail(c, err)
		c.Abort()
		return
	}
	c.Set(userKey, user)
	c.Next()
}

// bearer extracts the token from the Authorization header, or ""
func bearer(c *gin.Context) string {
	token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

func (s *Server) handleLogin(c *gin.Context) {
	var creds domain.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		s.badRequest(c, err)
		return
	}
	resp, err := s.backend.Login(c.Request.Context(), creds)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleRegister(c *gin.Context) {
	var reg domain.Registration
	if err := c.ShouldBindJSON(&reg); err != nil {
		s.badRequest(c, err)
		return
	}
	if err := s.backend.Register(c.Request.Context(), reg); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"username": strings.TrimSpace(reg.Username),
		"email":    strings.TrimSpace(reg.Email),
	})
}

func (s *Server) handleList(c *gin.Context) {
	tasks, err := s.backend.ListTasks(c.Request.Context(), bearer(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (s *Server) handleCreate(c *gin.Context) {
	var draft domain.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		s.badRequest(c, err)
		return
	}
	task, err := s.backend.CreateTask(c.Request.Context(), bearer(c), draft)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (s *Server) handleUpdateStatus(c *gin.Context) {
	var body struct {
		Status domain.Status `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		s.badRequest(c, err)
		return
	}
	task, err := s.backend.UpdateTaskStatus(c.Request.Context(), bearer(c), c.Param("id"), body.Status)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) handleDelete(c *gin.Context) {
	if err := s.backend.DeleteTask(c.Request.Context(), bearer(c), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) badRequest(c *gin.Context, err error) {
	s.fail(c, &domain.APIError{
		Status:  http.StatusBadRequest,
		Err:     "Bad Request",
		Message: "Malformed request body: " + err.Error(),
		Path:    c.Request.URL.Path,
	})
}

// fail writes err as the standard error body
func (s *Server) fail(c *gin.Context, err error) {
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		status := http.StatusInternalServerError
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusServiceUnavailable
		}
		apiErr = domain.NewAPIError(status, "An unexpected error occurred: "+err.Error(), "")
	}

	body := *apiErr
	body.Path = c.Request.URL.Path
	c.JSON(body.Status, body)
}
