package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/itsSauraj/recipe-api/internal/common/db"
	commonerrors "github.com/itsSauraj/recipe-api/internal/common/errors"
	"github.com/itsSauraj/recipe-api/internal/recipe/domain"
)

type Repository interface {
	Create(ctx context.Context, recipe domain.Recipe) error
	FindByID(ctx context.Context, id domain.ID) (domain.Recipe, error)
	List(ctx context.Context, limit, offset int) ([]domain.Recipe, error)
	Search(ctx context.Context, query string, limit, offset int) ([]domain.Recipe, error)
	Update(ctx context.Context, id domain.ID, patch domain.Patch) (domain.Recipe, error)
	Delete(ctx context.Context, id domain.ID) error
}

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

const recipeColumns = `id, name, ingredients, instructions, owner_id, created_at`

func (r *PgRepository) Create(ctx context.Context, recipe domain.Recipe) error {
	start := time.Now()
	_, err := r.pool.Exec(
		ctx,
		`INSERT INTO recipie (id, name, ingredients, instructions, owner_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		string(recipe.ID),
		recipe.Name,
		recipe.Ingredients,
		recipe.Instructions,
		string(recipe.OwnerID),
		recipe.CreatedAt,
	)
	return db.HandleExecError(err, "create recipe", start)
}

func (r *PgRepository) FindByID(ctx context.Context, id domain.ID) (domain.Recipe, error) {
	start := time.Now()
	row := r.pool.QueryRow(
		ctx,
		`SELECT `+recipeColumns+` FROM recipie WHERE id = $1`,
		string(id),
	)

	recipe, err := scanRecipe(row)
	if err != nil {
		return domain.Recipe{}, db.HandleQueryError(err, commonerrors.ErrRecipeNotFound, "find recipe by id", start)
	}

	db.MeasureQueryDuration("find recipe by id", start)
	return recipe, nil
}

func (r *PgRepository) List(ctx context.Context, limit, offset int) ([]domain.Recipe, error) {
	start := time.Now()
	rows, err := r.pool.Query(
		ctx,
		`SELECT `+recipeColumns+` FROM recipie ORDER BY created_at, id LIMIT $1 OFFSET $2`,
		limit,
		offset,
	)
	if err != nil {
		return nil, db.HandleQueryError(err, commonerrors.ErrRecipeNotFound, "list recipes", start)
	}
	defer rows.Close()

	recipes, err := collectRecipes(rows)
	if err != nil {
		return nil, db.HandleQueryError(err, commonerrors.ErrRecipeNotFound, "list recipes", start)
	}

	db.MeasureQueryDuration("list recipes", start)
	return recipes, nil
}

func (r *PgRepository) Search(ctx context.Context, query string, limit, offset int) ([]domain.Recipe, error) {
	start := time.Now()
	pattern := "%" + query + "%"
	rows, err := r.pool.Query(
		ctx,
		`SELECT `+recipeColumns+` FROM recipie
		 WHERE name ILIKE $1 OR ingredients ILIKE $1 OR instructions ILIKE $1
		 ORDER BY created_at, id LIMIT $2 OFFSET $3`,
		pattern,
		limit,
		offset,
	)
	if err != nil {
		return nil, db.HandleQueryError(err, commonerrors.ErrRecipeNotFound, "search recipes", start)
	}
	defer rows.Close()

	recipes, err := collectRecipes(rows)
	if err != nil {
		return nil, db.HandleQueryError(err, commonerrors.ErrRecipeNotFound, "search recipes", start)
	}

	db.MeasureQueryDuration("search recipes", start)
	return recipes, nil
}

// Update applies only the non-nil patch fields in a single statement and
// returns the updated row. Callers guarantee the patch is non-empty.
func (r *PgRepository) Update(ctx context.Context, id domain.ID, patch domain.Patch) (domain.Recipe, error) {
	start := time.Now()

	sets := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)
	idx := 1

	if patch.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", idx))
		args = append(args, *patch.Name)
		idx++
	}
	if patch.Ingredients != nil {
		sets = append(sets, fmt.Sprintf("ingredients = $%d", idx))
		args = append(args, *patch.Ingredients)
		idx++
	}
	if patch.Instructions != nil {
		sets = append(sets, fmt.Sprintf("instructions = $%d", idx))
		args = append(args, *patch.Instructions)
		idx++
	}

	if len(sets) == 0 {
		return domain.Recipe{}, commonerrors.ErrEmptyRecipe
	}

	args = append(args, string(id))
	query := fmt.Sprintf(
		`UPDATE recipie SET %s WHERE id = $%d RETURNING `+recipeColumns,
		strings.Join(sets, ", "),
		idx,
	)

	row := r.pool.QueryRow(ctx, query, args...)
	recipe, err := scanRecipe(row)
	if err != nil {
		return domain.Recipe{}, db.HandleQueryError(err, commonerrors.ErrRecipeNotFound, "update recipe", start)
	}

	db.MeasureQueryDuration("update recipe", start)
	return recipe, nil
}

func (r *PgRepository) Delete(ctx context.Context, id domain.ID) error {
	start := time.Now()
	tag, err := r.pool.Exec(ctx, `DELETE FROM recipie WHERE id = $1`, string(id))
	if err != nil {
		return db.HandleExecError(err, "delete recipe", start)
	}
	if tag.RowsAffected() == 0 {
		db.MeasureQueryDuration("delete recipe", start)
		return commonerrors.ErrRecipeNotFound
	}
	return db.HandleExecError(nil, "delete recipe", start)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecipe(row rowScanner) (domain.Recipe, error) {
	var recipe domain.Recipe
	err := row.Scan(
		&recipe.ID,
		&recipe.Name,
		&recipe.Ingredients,
		&recipe.Instructions,
		&recipe.OwnerID,
		&recipe.CreatedAt,
	)
	return recipe, err
}

func collectRecipes(rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}) ([]domain.Recipe, error) {
	recipes := make([]domain.Recipe, 0)
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	return recipes, rows.Err()
}
