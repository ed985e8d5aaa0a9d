package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	userdomain "github.com/itsSauraj/recipe-api/internal/auth/domain"
	commonerrors "github.com/itsSauraj/recipe-api/internal/common/errors"
	"github.com/itsSauraj/recipe-api/internal/common/logger"
	"github.com/itsSauraj/recipe-api/internal/recipe/domain"
	"github.com/itsSauraj/recipe-api/internal/recipe/service"
)

func setupGuard(t *testing.T) (*service.OwnershipGuard, *mockResolver, *mockRecipeRepo) {
	t.Helper()

	resolver := &mockResolver{}
	repo := &mockRecipeRepo{}
	log, _ := logger.New("", "test", "info")

	return service.NewOwnershipGuard(resolver, repo, log), resolver, repo
}

func TestOwnershipGuard_OwnerAdmitted(t *testing.T) {
	guard, resolver, repo := setupGuard(t)

	owner := userdomain.User{ID: "user-1", Email: "owner@example.com"}
	stored := domain.Recipe{
		ID:        "recipe-1",
		Name:      strPtr("Pancakes"),
		OwnerID:   owner.ID,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	resolver.resolveByEmailFunc = func(_ context.Context, email string) (userdomain.User, error) {
		if email != owner.Email {
			t.Errorf("expected lookup for %s, got %s", owner.Email, email)
		}
		return owner, nil
	}
	repo.findByIDFunc = func(_ context.Context, id domain.ID) (domain.Recipe, error) {
		return stored, nil
	}

	recipe, user, err := guard.AuthorizeOwner(context.Background(), owner.Email, stored.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if recipe.ID != stored.ID {
		t.Errorf("expected recipe %s, got %s", stored.ID, recipe.ID)
	}
	if user.ID != owner.ID {
		t.Errorf("expected user %s, got %s", owner.ID, user.ID)
	}
}

func TestOwnershipGuard_NonOwnerForbidden(t *testing.T) {
	guard, resolver, repo := setupGuard(t)

	resolver.resolveByEmailFunc = func(_ context.Context, _ string) (userdomain.User, error) {
		return userdomain.User{ID: "user-2", Email: "intruder@example.com"}, nil
	}
	repo.findByIDFunc = func(_ context.Context, _ domain.ID) (domain.Recipe, error) {
		return domain.Recipe{ID: "recipe-1", OwnerID: "user-1"}, nil
	}

	_, _, err := guard.AuthorizeOwner(context.Background(), "intruder@example.com", "recipe-1")
	if !errors.Is(err, commonerrors.ErrNotRecipeOwner) {
		t.Fatalf("expected ErrNotRecipeOwner, got %v", err)
	}
}

func TestOwnershipGuard_MissingRecipeNotFound(t *testing.T) {
	guard, resolver, _ := setupGuard(t)

	resolver.resolveByEmailFunc = func(_ context.Context, _ string) (userdomain.User, error) {
		return userdomain.User{ID: "user-1", Email: "owner@example.com"}, nil
	}

	_, _, err := guard.AuthorizeOwner(context.Background(), "owner@example.com", "missing")
	if !errors.Is(err, commonerrors.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}
}

func TestOwnershipGuard_VanishedPrincipalUnauthenticated(t *testing.T) {
	guard, _, repo := setupGuard(t)

	recipeFetched := false
	repo.findByIDFunc = func(_ context.Context, _ domain.ID) (domain.Recipe, error) {
		recipeFetched = true
		return domain.Recipe{}, nil
	}

	_, _, err := guard.AuthorizeOwner(context.Background(), "ghost@example.com", "recipe-1")
	if !errors.Is(err, commonerrors.ErrUnknownTokenSubject) {
		t.Fatalf("expected ErrUnknownTokenSubject, got %v", err)
	}
	if recipeFetched {
		t.Error("expected the guard to abort before touching the recipe store")
	}
	if de, ok := commonerrors.AsDomainError(err); !ok || de.HTTPStatus() != 401 {
		t.Errorf("expected HTTP 401, got %v", err)
	}
}

func TestOwnershipGuard_StoreErrorSurfacesAsInternal(t *testing.T) {
	guard, resolver, repo := setupGuard(t)

	resolver.resolveByEmailFunc = func(_ context.Context, _ string) (userdomain.User, error) {
		return userdomain.User{ID: "user-1"}, nil
	}
	repo.findByIDFunc = func(_ context.Context, _ domain.ID) (domain.Recipe, error) {
		return domain.Recipe{}, errors.New("connection refused")
	}

	_, _, err := guard.AuthorizeOwner(context.Background(), "owner@example.com", "recipe-1")
	if !errors.Is(err, commonerrors.ErrDatabaseError) {
		t.Fatalf("expected ErrDatabaseError, got %v", err)
	}
}
