package models

import (
	"context"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
)

type Category struct {
	tableName struct{} `pg:"categories,alias:category"`

	ID          int64     `pg:"id,pk" json:"id"`
	Name        string    `pg:"name,notnull" json:"name"`
	Description string    `pg:"description" json:"description"`
	CreatedAt   time.Time `pg:"created_at,default:now()" json:"created_at"`
}

func GetCategoryList(ctx context.Context, db *pg.DB) ([]*Category, error) {
	var list []*Category
	err := db.ModelContext(ctx, &list).
		Order("created_at DESC").
		Select()
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch category list")
	}
	return list, nil
}

func GetCategoryByID(ctx context.Context, db *pg.DB, id int64) (*Category, error) {
	category := new(Category)
	err := db.ModelContext(ctx, category).
		Where("id = ?", id).
		Select()
	if err != nil {
		if errors.Is(err, pg.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to fetch category")
	}
	return category, nil
}

func CategoryExists(ctx context.Context, db *pg.DB, id int64) (bool, error) {
	exists, err := db.ModelContext(ctx, (*Category)(nil)).
		Where("id = ?", id).
		Exists()
	if err != nil {
		return false, errors.Wrap(err, "failed to check category existence")
	}
	return exists, nil
}

func CreateCategory(ctx context.Context, db *pg.DB, name string, description string) (*Category, error) {
	category := &Category{
		Name:        name,
		Description: description,
		CreatedAt:   time.Now(),
	}
	_, err := db.ModelContext(ctx, category).
		Returning("*").
		Insert()
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert category")
	}
	return category, nil
}

func UpdateCategory(ctx context.Context, db *pg.DB, id int64, name string, description string) (*Category, error) {
	category := &Category{
		ID:          id,
		Name:        name,
		Description: description,
	}
	_, err := db.ModelContext(ctx, category).
		Column("name", "description").
		WherePK().
		Returning("*").
		Update()
	if err != nil {
		if errors.Is(err, pg.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to update category")
	}
	return category, nil
}

func DeleteCategory(ctx context.Context, db *pg.DB, id int64) error {
	_, err := db.ModelContext(ctx, (*Category)(nil)).
		Where("id = ?", id).
		Delete()
	if err != nil {
		return errors.Wrap(err, "failed to delete category")
	}
	return nil
}
