package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/http/response"
	"github.com/yungbote/careerpath-backend/internal/platform/apierr"
	"github.com/yungbote/careerpath-backend/internal/services"
)

type UserHandler struct {
	users services.UserService
}

func NewUserHandler(users services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// userView is what clients see of a user; the password never leaves the store.
type userView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

func viewOf(u types.User) userView {
	return userView{ID: u.ID, Username: u.Username}
}

// POST /api/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var in types.InsertUser
	if err := bindJSON(c, &in, "username", "password"); err != nil {
		response.RespondAPIError(c, apierr.BadRequest("Invalid user data", err))
		return
	}
	u, err := h.users.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondAPIError(c, apierr.From(err, createUserMessage(err)))
		return
	}
	response.RespondOK(c, viewOf(u))
}

// GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "User not found")
	if !ok {
		return
	}
	u, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondAPIError(c, apierr.From(err, notFoundOr(err, "User not found", "Failed to fetch user")))
		return
	}
	response.RespondOK(c, viewOf(u))
}
