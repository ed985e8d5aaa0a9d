package service

import (
	"context"
	"errors"

	commonclock "github.com/itsSauraj/recipe-api/internal/common/clock"
	commoncrypto "github.com/itsSauraj/recipe-api/internal/common/crypto"
	commonerrors "github.com/itsSauraj/recipe-api/internal/common/errors"
	"github.com/itsSauraj/recipe-api/internal/common/logger"
	identityservice "github.com/itsSauraj/recipe-api/internal/identity/service"
	"github.com/itsSauraj/recipe-api/internal/observability/metrics"
	"github.com/itsSauraj/recipe-api/internal/recipe/domain"
	"github.com/itsSauraj/recipe-api/internal/recipe/repository"
)

type RecipeService struct {
	repo        repository.Repository
	identity    identityservice.Resolver
	guard       *OwnershipGuard
	idGenerator commoncrypto.IDGenerator
	clock       commonclock.Clock
	log         *logger.Logger
}

type RecipeServiceDeps struct {
	Repo        repository.Repository
	Identity    identityservice.Resolver
	Guard       *OwnershipGuard
	IDGenerator commoncrypto.IDGenerator
	Clock       commonclock.Clock
	Log         *logger.Logger
}

func NewRecipeService(deps RecipeServiceDeps) *RecipeService {
	return &RecipeService{
		repo:        deps.Repo,
		identity:    deps.Identity,
		guard:       deps.Guard,
		idGenerator: deps.IDGenerator,
		clock:       deps.Clock,
		log:         deps.Log,
	}
}

type CreateInput struct {
	Name         *string
	Ingredients  *string
	Instructions *string
}

// Create persists a new recipe owned by the caller. Ownership is assigned
// from the authenticated identity, never from the request body.
func (s *RecipeService) Create(ctx context.Context, callerEmail string, input CreateInput) (domain.Recipe, error) {
	if input.Name == nil && input.Ingredients == nil && input.Instructions == nil {
		return domain.Recipe{}, commonerrors.ErrEmptyRecipe
	}

	user, err := s.identity.ResolveByEmail(ctx, callerEmail)
	if err != nil {
		if errors.Is(err, commonerrors.ErrUserNotFound) {
			return domain.Recipe{}, commonerrors.ErrUnknownTokenSubject
		}
		return domain.Recipe{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	id, err := s.idGenerator.NewID()
	if err != nil {
		return domain.Recipe{}, commonerrors.ErrInternalError.WithCause(err)
	}

	recipe := domain.Recipe{
		ID:           domain.ID(id),
		Name:         input.Name,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
		OwnerID:      user.ID,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.repo.Create(ctx, recipe); err != nil {
		return domain.Recipe{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	metrics.RecipesCreated.Inc()
	s.log.WithFields(ctx, logger.Fields{
		"recipe_id": string(recipe.ID),
		"owner_id":  string(user.ID),
		"action":    "recipe_created",
	}).Info("recipe created")

	return recipe, nil
}

func (s *RecipeService) Get(ctx context.Context, id domain.ID) (domain.Recipe, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RecipeService) List(ctx context.Context, page, limit int) ([]domain.Recipe, error) {
	offset := (page - 1) * limit
	return s.repo.List(ctx, limit, offset)
}

func (s *RecipeService) Search(ctx context.Context, query string, page, limit int) ([]domain.Recipe, error) {
	offset := (page - 1) * limit
	return s.repo.Search(ctx, query, limit, offset)
}

// Update applies a partial update after the ownership guard admits the
// caller. Nil patch fields leave the stored values untouched.
func (s *RecipeService) Update(ctx context.Context, callerEmail string, id domain.ID, patch domain.Patch) (domain.Recipe, error) {
	if patch.IsEmpty() {
		return domain.Recipe{}, commonerrors.ErrEmptyRecipe
	}

	if _, _, err := s.guard.AuthorizeOwner(ctx, callerEmail, id); err != nil {
		return domain.Recipe{}, err
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domain.Recipe{}, err
	}

	metrics.RecipesUpdated.Inc()
	s.log.WithFields(ctx, logger.Fields{
		"recipe_id": string(id),
		"action":    "recipe_updated",
	}).Info("recipe updated")

	return updated, nil
}

// Delete removes the recipe after the ownership guard admits the caller.
// Deletion is permanent; a second delete reports not-found.
func (s *RecipeService) Delete(ctx context.Context, callerEmail string, id domain.ID) error {
	if _, _, err := s.guard.AuthorizeOwner(ctx, callerEmail, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.RecipesDeleted.Inc()
	s.log.WithFields(ctx, logger.Fields{
		"recipe_id": string(id),
		"action":    "recipe_deleted",
	}).Info("recipe deleted")

	return nil
}
