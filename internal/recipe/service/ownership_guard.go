package service

import (
	"context"
	"errors"

	userdomain "github.com/itsSauraj/recipe-api/internal/auth/domain"
	commonerrors "github.com/itsSauraj/recipe-api/internal/common/errors"
	"github.com/itsSauraj/recipe-api/internal/common/logger"
	identityservice "github.com/itsSauraj/recipe-api/internal/identity/service"
	"github.com/itsSauraj/recipe-api/internal/observability/metrics"
	recipedomain "github.com/itsSauraj/recipe-api/internal/recipe/domain"
	reciperepo "github.com/itsSauraj/recipe-api/internal/recipe/repository"
)

// OwnershipGuard gates recipe mutations: only the owner may update or delete
// a record. The token itself is verified before this layer runs; the guard
// starts from the token subject.
//
// Order matters. The principal is resolved first (a token whose subject no
// longer exists is an authentication failure, not an ownership one), then the
// recipe is fetched (missing recipe is a plain not-found regardless of who
// asks), and only then is ownership compared. Every step is a pure read, so
// a failure at any point guarantees no write happened.
type OwnershipGuard struct {
	identity identityservice.Resolver
	recipes  reciperepo.Repository
	log      *logger.Logger
}

func NewOwnershipGuard(identity identityservice.Resolver, recipes reciperepo.Repository, log *logger.Logger) *OwnershipGuard {
	return &OwnershipGuard{
		identity: identity,
		recipes:  recipes,
		log:      log,
	}
}

// AuthorizeOwner resolves the caller and the target recipe and returns both
// when the caller owns the recipe. The existence and ownership lookups are
// two separate store round-trips with no lock; two concurrent mutations of
// the same recipe race at the storage layer, which is an accepted limit of
// this design.
func (g *OwnershipGuard) AuthorizeOwner(ctx context.Context, email string, recipeID recipedomain.ID) (recipedomain.Recipe, userdomain.User, error) {
	user, err := g.identity.ResolveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, commonerrors.ErrUserNotFound) {
			g.log.WithFields(ctx, logger.Fields{
				"email":  email,
				"action": "guard_principal_gone",
			}).Warn("ownership check failed: token subject no longer exists")
			return recipedomain.Recipe{}, userdomain.User{}, commonerrors.ErrUnknownTokenSubject
		}
		return recipedomain.Recipe{}, userdomain.User{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	recipe, err := g.recipes.FindByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRecipeNotFound) {
			return recipedomain.Recipe{}, userdomain.User{}, commonerrors.ErrRecipeNotFound
		}
		return recipedomain.Recipe{}, userdomain.User{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	if recipe.OwnerID != user.ID {
		metrics.OwnershipDenied.Inc()
		g.log.WithFields(ctx, logger.Fields{
			"recipe_id": string(recipeID),
			"user_id":   string(user.ID),
			"action":    "guard_denied",
		}).Warn("ownership check failed: caller is not the owner")
		return recipedomain.Recipe{}, userdomain.User{}, commonerrors.ErrNotRecipeOwner
	}

	return recipe, user, nil
}
