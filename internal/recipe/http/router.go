package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/itsSauraj/recipe-api/internal/common/config"
	commonerrors "github.com/itsSauraj/recipe-api/internal/common/errors"
	commonhttp "github.com/itsSauraj/recipe-api/internal/common/http"
	"github.com/itsSauraj/recipe-api/internal/common/jwtverify"
	"github.com/itsSauraj/recipe-api/internal/common/logger"
	"github.com/itsSauraj/recipe-api/internal/common/validate"
	"github.com/itsSauraj/recipe-api/internal/recipe/domain"
	"github.com/itsSauraj/recipe-api/internal/recipe/service"
)

type recipeBody struct {
	Name         *string `json:"name"`
	Ingredients  *string `json:"ingredients"`
	Instructions *string `json:"instructions"`
}

type recipeResponse struct {
	ID           string    `json:"id"`
	Name         *string   `json:"name"`
	Ingredients  *string   `json:"ingredients"`
	Instructions *string   `json:"instructions"`
	OwnerID      string    `json:"owner_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type Handler struct {
	recipes   *service.RecipeService
	jwtSecret []byte
	cfg       config.Config
	log       *logger.Logger
}

func NewHandler(recipes *service.RecipeService, cfg config.Config, log *logger.Logger) http.Handler {
	h := &Handler{
		recipes:   recipes,
		jwtSecret: []byte(cfg.JWTSecret),
		cfg:       cfg,
		log:       log,
	}

	authRequired := jwtverify.Middleware(cfg.JWTSecret, log)

	mux := http.NewServeMux()
	mux.Handle("/recipe", authRequired(commonhttp.RequireMethod(http.MethodPost)(commonhttp.WithTimeout(cfg.RequestTimeout)(h.create))))
	mux.HandleFunc("/recipes", commonhttp.RequireMethod(http.MethodGet)(commonhttp.WithTimeout(cfg.RequestTimeout)(h.list)))
	mux.HandleFunc("/recipe/", commonhttp.WithTimeout(cfg.RequestTimeout)(h.recipeByID))
	// The search path spelling matches the public API contract.
	mux.HandleFunc("/recipie/search", commonhttp.RequireMethod(http.MethodGet)(commonhttp.WithTimeout(cfg.RequestTimeout)(h.search)))
	return mux
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	claims, ok := jwtverify.FromContext(r.Context())
	if !ok {
		commonhttp.HandleError(w, r, commonerrors.ErrMissingAuthorization, h.log)
		return
	}

	var body recipeBody
	if err := commonhttp.DecodeJSON(r, &body); err != nil {
		h.log.Warnf("create recipe failed: invalid json: %v", err)
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "invalid json", nil, "")
		return
	}

	recipe, err := h.recipes.Create(r.Context(), claims.Email, service.CreateInput{
		Name:         body.Name,
		Ingredients:  body.Ingredients,
		Instructions: body.Instructions,
	})
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusCreated, toRecipeResponse(recipe))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	params := commonhttp.ParsePageParams(r)

	recipes, err := h.recipes.List(r.Context(), params.Page, params.Limit)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, toRecipeResponses(recipes))
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeBadRequest, "query is required", nil, "")
		return
	}
	params := commonhttp.ParsePageParams(r)

	recipes, err := h.recipes.Search(r.Context(), query, params.Page, params.Limit)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, toRecipeResponses(recipes))
}

// recipeByID serves /recipe/{id}. Reads are public; mutations carry a bearer
// token which is verified here before the service layer runs.
func (h *Handler) recipeByID(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/recipe/")
	if idStr == "" || strings.Contains(idStr, "/") {
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeBadRequest, "invalid path", nil, "")
		return
	}

	if err := validate.Var(idStr, "uuid"); err != nil {
		commonhttp.HandleError(w, r, commonerrors.ErrInvalidRecipeID, h.log)
		return
	}
	id := domain.ID(idStr)

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPatch:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		commonhttp.WriteErrorEnvelope(w, http.StatusMethodNotAllowed, commonhttp.CodeMethodNotAllowed, "method not allowed", nil, "")
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request, id domain.ID) {
	recipe, err := h.recipes.Get(r.Context(), id)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, toRecipeResponse(recipe))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request, id domain.ID) {
	claims, err := h.requireClaims(r)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	var body recipeBody
	if err := commonhttp.DecodeJSON(r, &body); err != nil {
		h.log.Warnf("update recipe failed: invalid json: %v", err)
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "invalid json", nil, "")
		return
	}

	recipe, err := h.recipes.Update(r.Context(), claims.Email, id, domain.Patch{
		Name:         body.Name,
		Ingredients:  body.Ingredients,
		Instructions: body.Instructions,
	})
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, toRecipeResponse(recipe))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request, id domain.ID) {
	claims, err := h.requireClaims(r)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	if err := h.recipes.Delete(r.Context(), claims.Email, id); err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) requireClaims(r *http.Request) (jwtverify.Claims, error) {
	tokenString, ok := jwtverify.ExtractTokenFromHeader(r)
	if !ok {
		return jwtverify.Claims{}, commonerrors.ErrMissingAuthorization
	}

	claims, err := jwtverify.ParseToken(tokenString, h.jwtSecret)
	if err != nil {
		return jwtverify.Claims{}, commonerrors.ErrInvalidToken.WithCause(err)
	}

	return claims, nil
}

func toRecipeResponse(recipe domain.Recipe) recipeResponse {
	return recipeResponse{
		ID:           string(recipe.ID),
		Name:         recipe.Name,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
		OwnerID:      string(recipe.OwnerID),
		CreatedAt:    recipe.CreatedAt,
	}
}

func toRecipeResponses(recipes []domain.Recipe) []recipeResponse {
	out := make([]recipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		out = append(out, toRecipeResponse(recipe))
	}
	return out
}
