package http

import (
	"net/http"

	"github.com/itsSauraj/recipe-api/internal/auth/service"
	"github.com/itsSauraj/recipe-api/internal/common/config"
	commonhttp "github.com/itsSauraj/recipe-api/internal/common/http"
	"github.com/itsSauraj/recipe-api/internal/common/logger"
	"github.com/itsSauraj/recipe-api/internal/common/validate"
)

type registerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type Handler struct {
	auth *service.AuthService
	cfg  config.Config
	log  *logger.Logger
}

func NewHandler(auth *service.AuthService, cfg config.Config, log *logger.Logger) http.Handler {
	h := &Handler{auth: auth, cfg: cfg, log: log}
	mux := http.NewServeMux()
	mux.HandleFunc("/register", commonhttp.RequireMethod(http.MethodPost)(commonhttp.WithTimeout(cfg.RequestTimeout)(h.register)))
	mux.HandleFunc("/token", commonhttp.RequireMethod(http.MethodPost)(commonhttp.WithTimeout(cfg.RequestTimeout)(h.token)))
	return mux
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("register failed: invalid json: %v", err)
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "invalid json", nil, "")
		return
	}

	if err := validate.Struct(req); err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	result, err := h.auth.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusCreated, tokenResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
	})
}

// token exchanges form credentials for an access token. The form field names
// follow the OAuth2 password flow: username carries the email.
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidForm, "invalid form body", nil, "")
		return
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidForm, "username and password are required", nil, "")
		return
	}

	result, err := h.auth.Login(r.Context(), email, password)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, tokenResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
	})
}
