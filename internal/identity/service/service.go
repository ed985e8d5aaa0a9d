// Package service resolves validated token subjects to persisted users.
// Every call round-trips to the store; there is no caching.
package service

import (
	"context"

	userdomain "github.com/itsSauraj/recipe-api/internal/auth/domain"
	userrepo "github.com/itsSauraj/recipe-api/internal/auth/repository"
	"github.com/itsSauraj/recipe-api/internal/common/logger"
)

type Resolver interface {
	ResolveByEmail(ctx context.Context, email string) (userdomain.User, error)
	ResolveByID(ctx context.Context, id userdomain.ID) (userdomain.User, error)
}

type IdentityResolver struct {
	repo userrepo.Repository
	log  *logger.Logger
}

func NewIdentityResolver(repo userrepo.Repository, log *logger.Logger) *IdentityResolver {
	return &IdentityResolver{repo: repo, log: log}
}

func (r *IdentityResolver) ResolveByEmail(ctx context.Context, email string) (userdomain.User, error) {
	return r.repo.FindByEmail(ctx, email)
}

func (r *IdentityResolver) ResolveByID(ctx context.Context, id userdomain.ID) (userdomain.User, error) {
	return r.repo.FindByID(ctx, id)
}
