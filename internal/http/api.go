package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"postboard/internal/auth"
	"postboard/internal/domain"
	"postboard/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	posts     service.PostService
	users     service.UserService
	gate      *auth.Gate
	jwtSecret string
	tokenTTL  time.Duration
	logger    *logrus.Logger
}

func NewHandler(posts service.PostService, users service.UserService, gate *auth.Gate, jwtSecret string, tokenTTL time.Duration, logger *logrus.Logger) *Handler {
	return &Handler{
		posts:     posts,
		users:     users,
		gate:      gate,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(requestLogger(h.logger))
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
		api.POST("/auth/register", h.register)
		api.POST("/auth/login", h.login)

		protected := api.Group("")
		protected.Use(h.requireAuth())
		{
			protected.GET("/posts", h.listPosts)
			protected.POST("/posts", h.createPost)
			protected.GET("/posts/:id", h.getPost)
			protected.PUT("/posts/:id", h.updatePost)
			protected.PATCH("/posts/:id", h.updatePost)
			protected.DELETE("/posts/:id", h.deletePost)

			protected.GET("/admin", h.can(auth.ActionAccessAdminPanel), func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"message": "Welcome to admin panel"})
			})
		}
	}
}

type registerRequest struct {
	Username         string `json:"username"`
	Password         string `json:"password"`
	RegisterPassword string `json:"register_password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Username, req.Password, req.RegisterPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		case errors.Is(err, service.ErrInvalidRegistrationPassword):
			c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, userToResponse(user))
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials."})
			return
		}
		h.respondError(c, err)
		return
	}

	token, err := auth.IssueToken(h.jwtSecret, h.tokenTTL, user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  userToResponse(user),
	})
}

func (h *Handler) listPosts(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]PostResponse, len(posts))
	for i := range posts {
		resp[i] = postToResponse(&posts[i])
	}
	c.JSON(http.StatusOK, resp)
}

type createPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type updatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (h *Handler) createPost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	post, err := h.posts.Create(c.Request.Context(), identityFromContext(c), service.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, postToResponse(post))
}

func (h *Handler) getPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, postToResponse(post))
}

func (h *Handler) updatePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	post, err := h.posts.Update(c.Request.Context(), identityFromContext(c), id, service.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, postToResponse(post))
}

func (h *Handler) deletePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	if err := h.posts.Delete(c.Request.Context(), identityFromContext(c), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// postID parses the :id parameter. An id that does not parse cannot resolve to
// a resource, so it is reported as not found.
func postID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Resource not found."})
		return 0, false
	}
	return id, true
}

type PostResponse struct {
	ID        int64         `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	UserID    int64         `json:"user_id"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
	User      *UserResponse `json:"user,omitempty"`
}

type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func postToResponse(post *domain.Post) PostResponse {
	resp := PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		UserID:    post.UserID,
		CreatedAt: post.CreatedAt.Format(time.RFC3339),
		UpdatedAt: post.UpdatedAt.Format(time.RFC3339),
	}
	if post.User != nil {
		owner := userToResponse(post.User)
		resp.User = &owner
	}
	return resp
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}
}
