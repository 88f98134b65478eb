package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/anhthuvo/mobileAppBE/internal/core/auth"
	"github.com/anhthuvo/mobileAppBE/internal/domain"
	"github.com/anhthuvo/mobileAppBE/internal/pagination"
	"github.com/anhthuvo/mobileAppBE/internal/transport/http/middleware"
	resp "github.com/anhthuvo/mobileAppBE/internal/transport/http/response"
	"github.com/anhthuvo/mobileAppBE/pkg/utils"
)

type UserHandler struct {
	repo  domain.UserRepository
	jwter *auth.JWTer
	log   *zap.Logger
}

func NewUserHandler(repo domain.UserRepository, jwter *auth.JWTer, log *zap.Logger) *UserHandler {
	return &UserHandler{repo: repo, jwter: jwter, log: log}
}

type signupIn struct {
	Firstname string `json:"firstname" binding:"required,max=64"`
	Lastname  string `json:"lastname" binding:"required,max=64"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Phone     string `json:"phone" binding:"omitempty,max=32"`
	Role      string `json:"role" binding:"omitempty,oneof=USER ADMIN"`
}

// Signup creates an account. The password is bcrypt-hashed before it
// ever touches the store; a taken email or phone is a conflict.
func (h *UserHandler) Signup(c *gin.Context) {
	var in signupIn
	if err := c.ShouldBindJSON(&in); err != nil {
		writeErr(c, resp.CodeValidation, err.Error())
		return
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		h.log.Error("hash password", zap.Error(err))
		writeErr(c, resp.CodeServerError, "signing up failed, please try again later")
		return
	}

	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: hash,
		Firstname:    strings.TrimSpace(in.Firstname),
		Lastname:     strings.ToLower(strings.TrimSpace(in.Lastname)),
		Phone:        strings.TrimSpace(in.Phone),
		Role:         role,
		Courses:      domain.StringList{},
	}
	if err := h.repo.Create(u); err != nil {
		if err == domain.ErrDuplicate {
			writeErr(c, resp.CodeConflict, "user exists already, please login instead")
			return
		}
		h.log.Error("create user", zap.Error(err))
		writeErr(c, resp.CodeServerError, "signing up failed, please try again later")
		return
	}

	c.JSON(201, resp.OK(gin.H{"userId": u.ID, "email": u.Email}))
}

type loginIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues the bearer token. Unknown email
// and wrong password produce the same answer on purpose.
func (h *UserHandler) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		writeErr(c, resp.CodeValidation, err.Error())
		return
	}

	u, err := h.repo.FindByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		if err == domain.ErrNotFound {
			writeErr(c, resp.CodeUnauthorized, "invalid credentials, could not log you in")
			return
		}
		h.log.Error("find user", zap.Error(err))
		writeErr(c, resp.CodeServerError, "logging in failed, please try again later")
		return
	}
	if !utils.CheckPassword(in.Password, u.PasswordHash) {
		writeErr(c, resp.CodeUnauthorized, "invalid credentials, could not log you in")
		return
	}

	token, err := h.jwter.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		h.log.Error("issue token", zap.Error(err))
		writeErr(c, resp.CodeServerError, "logging in failed, please try again later")
		return
	}
	writeOK(c, gin.H{"userId": u.ID, "email": u.Email, "token": token})
}

// Get returns one user. Admins may read anyone, users only themselves.
func (h *UserHandler) Get(c *gin.Context) {
	uid := c.Param("uid")
	if !auth.CanAccess(middleware.ClaimsFrom(c), uid) {
		writeErr(c, resp.CodeForbidden, "forbidden")
		return
	}
	u, err := h.repo.FindByID(uid)
	if err != nil {
		writeDomainErr(c, h.log, err, "user does not exist", "fetching user failed, please try again later")
		return
	}
	writeOK(c, u)
}

// Update applies a partial update: only fields present in the body
// overwrite, everything else is kept. Same ownership rule as Get.
func (h *UserHandler) Update(c *gin.Context) {
	uid := c.Param("uid")
	if !auth.CanAccess(middleware.ClaimsFrom(c), uid) {
		writeErr(c, resp.CodeForbidden, "forbidden")
		return
	}

	var patch domain.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		writeErr(c, resp.CodeValidation, err.Error())
		return
	}
	if patch.Role != nil && *patch.Role != domain.RoleUser && *patch.Role != domain.RoleAdmin {
		writeErr(c, resp.CodeValidation, "role must be USER or ADMIN")
		return
	}

	u, err := h.repo.UpdatePartial(uid, patch)
	if err != nil {
		writeDomainErr(c, h.log, err, "no user exists with id "+uid, "failed to update user information")
		return
	}
	writeOK(c, u)
}

type userListOut struct {
	pagination.Result[domain.User]
	Role string `json:"role,omitempty"`
}

// List is admin-only: page/limit with an optional role equality filter.
func (h *UserHandler) List(c *gin.Context) {
	params, err := pagination.Parse(c.Query("page"), c.Query("limit"))
	if err != nil {
		writeErr(c, resp.CodeBadRequest, err.Error())
		return
	}
	role := strings.ToUpper(strings.TrimSpace(c.Query("role")))

	users, total, err := h.repo.List(role, params)
	if err != nil {
		writeDomainErr(c, h.log, err, "", "fetching users failed, please try again later")
		return
	}
	writeOK(c, userListOut{
		Result: pagination.NewResult(users, total, params),
		Role:   role,
	})
}

type deleteUsersIn struct {
	Users []string `json:"users" binding:"required"`
}

// Delete removes the listed ids and reports how many rows actually
// went away; unknown ids are skipped silently.
func (h *UserHandler) Delete(c *gin.Context) {
	var in deleteUsersIn
	if err := c.ShouldBindJSON(&in); err != nil {
		writeErr(c, resp.CodeValidation, err.Error())
		return
	}
	n, err := h.repo.DeleteByIDs(in.Users)
	if err != nil {
		writeDomainErr(c, h.log, err, "", "delete users failed")
		return
	}
	writeOK(c, gin.H{"deleted": n})
}
