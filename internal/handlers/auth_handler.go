package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-backend/internal/domain/account"
	"github.com/BruksfildServices01/salon-backend/internal/domain/salon"
	"github.com/BruksfildServices01/salon-backend/internal/dto"
	"github.com/BruksfildServices01/salon-backend/internal/httperr"
	"github.com/BruksfildServices01/salon-backend/internal/httpresp"
	"github.com/BruksfildServices01/salon-backend/internal/middleware"
	"github.com/BruksfildServices01/salon-backend/internal/session"
	ucAccount "github.com/BruksfildServices01/salon-backend/internal/usecase/account"
	"github.com/BruksfildServices01/salon-backend/internal/validators"
)

type AuthHandler struct {
	repo   salon.Repository
	tokens *session.Manager

	createAccount *ucAccount.CreateAccount
	authenticate  *ucAccount.Authenticate
	updateProfile *ucAccount.UpdateProfile

	// checkEmailDomain enables the MX lookup on signup.
	checkEmailDomain bool
}

func NewAuthHandler(repo salon.Repository, tokens *session.Manager, checkEmailDomain bool) *AuthHandler {
	return &AuthHandler{
		repo:             repo,
		tokens:           tokens,
		createAccount:    ucAccount.NewCreateAccount(repo),
		authenticate:     ucAccount.NewAuthenticate(repo),
		updateProfile:    ucAccount.NewUpdateProfile(repo),
		checkEmailDomain: checkEmailDomain,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=5"`
	Name     string `json:"name" binding:"max=255"`
}

type TokenRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateMeRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=255"`
	Password *string `json:"password" binding:"omitempty,min=5"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	if h.checkEmailDomain && !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not accept mail.")
		return
	}

	acct, err := h.createAccount.Execute(c.Request.Context(), domain.NewAccount{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, dto.Account(acct))
}

func (h *AuthHandler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	acct, err := h.authenticate.Execute(c.Request.Context(), ucAccount.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	token, err := h.tokens.Issue(c.Request.Context(), acct)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.TokenDTO{Token: token})
}

func (h *AuthHandler) Me(c *gin.Context) {
	acct, err := h.repo.FindAccount(c.Request.Context(), *middleware.AccountID(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.Account(acct))
}

func (h *AuthHandler) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	acct, err := h.updateProfile.Execute(c.Request.Context(), ucAccount.ProfileInput{
		AccountID: *middleware.AccountID(c),
		Name:      req.Name,
		Password:  req.Password,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.Account(acct))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := c.MustGet(middleware.ContextClaims).(*session.Claims)
	if !ok {
		httperr.Unauthorized(c, "invalid_token", "Invalid or expired token.")
		return
	}

	if err := h.tokens.Revoke(c.Request.Context(), claims); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.NoContent(c)
}
