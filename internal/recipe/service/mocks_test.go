package service_test

import (
	"context"

	userdomain "github.com/itsSauraj/recipe-api/internal/auth/domain"
	commonerrors "github.com/itsSauraj/recipe-api/internal/common/errors"
	"github.com/itsSauraj/recipe-api/internal/recipe/domain"
)

type mockRecipeRepo struct {
	createFunc   func(ctx context.Context, recipe domain.Recipe) error
	findByIDFunc func(ctx context.Context, id domain.ID) (domain.Recipe, error)
	listFunc     func(ctx context.Context, limit, offset int) ([]domain.Recipe, error)
	searchFunc   func(ctx context.Context, query string, limit, offset int) ([]domain.Recipe, error)
	updateFunc   func(ctx context.Context, id domain.ID, patch domain.Patch) (domain.Recipe, error)
	deleteFunc   func(ctx context.Context, id domain.ID) error

	createCalls int
	updateCalls int
	deleteCalls int
}

func (m *mockRecipeRepo) Create(ctx context.Context, recipe domain.Recipe) error {
	m.createCalls++
	if m.createFunc != nil {
		return m.createFunc(ctx, recipe)
	}
	return nil
}

func (m *mockRecipeRepo) FindByID(ctx context.Context, id domain.ID) (domain.Recipe, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return domain.Recipe{}, commonerrors.ErrRecipeNotFound
}

func (m *mockRecipeRepo) List(ctx context.Context, limit, offset int) ([]domain.Recipe, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockRecipeRepo) Search(ctx context.Context, query string, limit, offset int) ([]domain.Recipe, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, limit, offset)
	}
	return nil, nil
}

func (m *mockRecipeRepo) Update(ctx context.Context, id domain.ID, patch domain.Patch) (domain.Recipe, error) {
	m.updateCalls++
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, patch)
	}
	return domain.Recipe{}, commonerrors.ErrRecipeNotFound
}

func (m *mockRecipeRepo) Delete(ctx context.Context, id domain.ID) error {
	m.deleteCalls++
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockResolver struct {
	resolveByEmailFunc func(ctx context.Context, email string) (userdomain.User, error)
	resolveByIDFunc    func(ctx context.Context, id userdomain.ID) (userdomain.User, error)
}

func (m *mockResolver) ResolveByEmail(ctx context.Context, email string) (userdomain.User, error) {
	if m.resolveByEmailFunc != nil {
		return m.resolveByEmailFunc(ctx, email)
	}
	return userdomain.User{}, commonerrors.ErrUserNotFound
}

func (m *mockResolver) ResolveByID(ctx context.Context, id userdomain.ID) (userdomain.User, error) {
	if m.resolveByIDFunc != nil {
		return m.resolveByIDFunc(ctx, id)
	}
	return userdomain.User{}, commonerrors.ErrUserNotFound
}

type mockIDGenerator struct {
	newIDFunc func() (string, error)
}

func (m *mockIDGenerator) NewID() (string, error) {
	if m.newIDFunc != nil {
		return m.newIDFunc()
	}
	return "00000000-0000-0000-0000-000000000001", nil
}

func strPtr(s string) *string {
	return &s
}
