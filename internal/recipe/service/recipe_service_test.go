package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	userdomain "github.com/itsSauraj/recipe-api/internal/auth/domain"
	"github.com/itsSauraj/recipe-api/internal/common/clock"
	commonerrors "github.com/itsSauraj/recipe-api/internal/common/errors"
	"github.com/itsSauraj/recipe-api/internal/common/logger"
	"github.com/itsSauraj/recipe-api/internal/recipe/domain"
	"github.com/itsSauraj/recipe-api/internal/recipe/service"
)

func setupRecipeService(t *testing.T) (*service.RecipeService, *mockRecipeRepo, *mockResolver, *clock.MockClock) {
	t.Helper()

	repo := &mockRecipeRepo{}
	resolver := &mockResolver{}
	idGen := &mockIDGenerator{}
	mockClock := clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	log, _ := logger.New("", "test", "info")

	guard := service.NewOwnershipGuard(resolver, repo, log)
	svc := service.NewRecipeService(service.RecipeServiceDeps{
		Repo:        repo,
		Identity:    resolver,
		Guard:       guard,
		IDGenerator: idGen,
		Clock:       mockClock,
		Log:         log,
	})

	return svc, repo, resolver, mockClock
}

func TestRecipeService_Create_AssignsOwnerFromCaller(t *testing.T) {
	svc, repo, resolver, mockClock := setupRecipeService(t)

	caller := userdomain.User{ID: "user-1", Email: "owner@example.com"}
	resolver.resolveByEmailFunc = func(_ context.Context, _ string) (userdomain.User, error) {
		return caller, nil
	}

	var created domain.Recipe
	repo.createFunc = func(_ context.Context, recipe domain.Recipe) error {
		created = recipe
		return nil
	}

	recipe, err := svc.Create(context.Background(), caller.Email, service.CreateInput{
		Name: strPtr("Pancakes"),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if created.OwnerID != caller.ID {
		t.Errorf("expected owner %s, got %s", caller.ID, created.OwnerID)
	}
	if recipe.OwnerID != caller.ID {
		t.Errorf("expected returned owner %s, got %s", caller.ID, recipe.OwnerID)
	}
	if recipe.ID == "" {
		t.Error("expected generated id")
	}
	if !recipe.CreatedAt.Equal(mockClock.Now()) {
		t.Errorf("expected created_at %v, got %v", mockClock.Now(), recipe.CreatedAt)
	}
	if recipe.Ingredients != nil || recipe.Instructions != nil {
		t.Error("expected omitted fields to stay nil")
	}
}

func TestRecipeService_Create_EmptyBodyRejected(t *testing.T) {
	svc, repo, _, _ := setupRecipeService(t)

	_, err := svc.Create(context.Background(), "owner@example.com", service.CreateInput{})
	if !errors.Is(err, commonerrors.ErrEmptyRecipe) {
		t.Fatalf("expected ErrEmptyRecipe, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Error("expected no store write")
	}
}

func TestRecipeService_Create_VanishedCallerUnauthenticated(t *testing.T) {
	svc, repo, _, _ := setupRecipeService(t)

	_, err := svc.Create(context.Background(), "ghost@example.com", service.CreateInput{Name: strPtr("X")})
	if !errors.Is(err, commonerrors.ErrUnknownTokenSubject) {
		t.Fatalf("expected ErrUnknownTokenSubject, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Error("expected no store write")
	}
}

func TestRecipeService_Update_PartialPatchPassedThrough(t *testing.T) {
	svc, repo, resolver, _ := setupRecipeService(t)

	owner := userdomain.User{ID: "user-1", Email: "owner@example.com"}
	resolver.resolveByEmailFunc = func(_ context.Context, _ string) (userdomain.User, error) {
		return owner, nil
	}
	repo.findByIDFunc = func(_ context.Context, _ domain.ID) (domain.Recipe, error) {
		return domain.Recipe{ID: "recipe-1", OwnerID: owner.ID, Name: strPtr("Old")}, nil
	}

	var applied domain.Patch
	repo.updateFunc = func(_ context.Context, _ domain.ID, patch domain.Patch) (domain.Recipe, error) {
		applied = patch
		return domain.Recipe{ID: "recipe-1", OwnerID: owner.ID, Name: strPtr("New")}, nil
	}

	updated, err := svc.Update(context.Background(), owner.Email, "recipe-1", domain.Patch{Name: strPtr("New")})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if applied.Name == nil || *applied.Name != "New" {
		t.Error("expected name in patch")
	}
	if applied.Ingredients != nil || applied.Instructions != nil {
		t.Error("expected omitted fields to stay nil in patch")
	}
	if updated.Name == nil || *updated.Name != "New" {
		t.Error("expected updated name")
	}
}

func TestRecipeService_Update_EmptyPatchRejected(t *testing.T) {
	svc, repo, _, _ := setupRecipeService(t)

	_, err := svc.Update(context.Background(), "owner@example.com", "recipe-1", domain.Patch{})
	if !errors.Is(err, commonerrors.ErrEmptyRecipe) {
		t.Fatalf("expected ErrEmptyRecipe, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Error("expected no store write")
	}
}

func TestRecipeService_Update_NonOwnerNoWrite(t *testing.T) {
	svc, repo, resolver, _ := setupRecipeService(t)

	resolver.resolveByEmailFunc = func(_ context.Context, _ string) (userdomain.User, error) {
		return userdomain.User{ID: "user-2", Email: "intruder@example.com"}, nil
	}
	repo.findByIDFunc = func(_ context.Context, _ domain.ID) (domain.Recipe, error) {
		return domain.Recipe{ID: "recipe-1", OwnerID: "user-1"}, nil
	}

	_, err := svc.Update(context.Background(), "intruder@example.com", "recipe-1", domain.Patch{Name: strPtr("X")})
	if !errors.Is(err, commonerrors.ErrNotRecipeOwner) {
		t.Fatalf("expected ErrNotRecipeOwner, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Error("expected no store write after forbidden")
	}
}

func TestRecipeService_Delete_OwnerSucceeds(t *testing.T) {
	svc, repo, resolver, _ := setupRecipeService(t)

	owner := userdomain.User{ID: "user-1", Email: "owner@example.com"}
	resolver.resolveByEmailFunc = func(_ context.Context, _ string) (userdomain.User, error) {
		return owner, nil
	}
	repo.findByIDFunc = func(_ context.Context, _ domain.ID) (domain.Recipe, error) {
		return domain.Recipe{ID: "recipe-1", OwnerID: owner.ID}, nil
	}

	if err := svc.Delete(context.Background(), owner.Email, "recipe-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.deleteCalls != 1 {
		t.Errorf("expected one delete, got %d", repo.deleteCalls)
	}
}

func TestRecipeService_Delete_MissingRecipeNotFound(t *testing.T) {
	svc, repo, resolver, _ := setupRecipeService(t)

	resolver.resolveByEmailFunc = func(_ context.Context, _ string) (userdomain.User, error) {
		return userdomain.User{ID: "user-1", Email: "owner@example.com"}, nil
	}

	err := svc.Delete(context.Background(), "owner@example.com", "gone")
	if !errors.Is(err, commonerrors.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}
	if repo.deleteCalls != 0 {
		t.Error("expected no delete call")
	}
}

func TestRecipeService_ListAndSearch_PageArithmetic(t *testing.T) {
	svc, repo, _, _ := setupRecipeService(t)

	var gotLimit, gotOffset int
	repo.listFunc = func(_ context.Context, limit, offset int) ([]domain.Recipe, error) {
		gotLimit, gotOffset = limit, offset
		return []domain.Recipe{}, nil
	}

	if _, err := svc.List(context.Background(), 2, 10); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotLimit != 10 || gotOffset != 10 {
		t.Errorf("expected limit=10 offset=10, got limit=%d offset=%d", gotLimit, gotOffset)
	}

	repo.searchFunc = func(_ context.Context, query string, limit, offset int) ([]domain.Recipe, error) {
		if query != "egg" {
			t.Errorf("expected query egg, got %s", query)
		}
		gotLimit, gotOffset = limit, offset
		return []domain.Recipe{}, nil
	}

	if _, err := svc.Search(context.Background(), "egg", 3, 5); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotLimit != 5 || gotOffset != 10 {
		t.Errorf("expected limit=5 offset=10, got limit=%d offset=%d", gotLimit, gotOffset)
	}
}
