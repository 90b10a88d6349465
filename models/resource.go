package models

import (
	"context"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
	"github.com/pkg/errors"
)

type Resource struct {
	tableName struct{} `pg:"resources,alias:resource"`

	ID            int64     `pg:"id,pk" json:"id"`
	Title         string    `pg:"title,notnull" json:"title"`
	Description   string    `pg:"description" json:"description"`
	CategoryID    int64     `pg:"category_id,notnull" json:"category_id"`
	FilePath      *string   `pg:"file_path" json:"file_path"`
	CoverImage    *string   `pg:"cover_image" json:"cover_image"`
	Thumbnail     *string   `pg:"thumbnail" json:"thumbnail"`
	ViewCount     int64     `pg:"view_count,use_zero" json:"view_count"`
	DownloadCount int64     `pg:"download_count,use_zero" json:"download_count"`
	CreatedAt     time.Time `pg:"created_at,default:now()" json:"created_at"`

	Category     *Category `pg:"rel:has-one" json:"-"`
	CategoryName string    `pg:"-" json:"category_name"`
}

// enrich flattens the joined category name into the serialized record.
func (s *Resource) enrich() *Resource {
	if s.Category != nil {
		s.CategoryName = s.Category.Name
	}
	return s
}

func GetResourceList(ctx context.Context, db *pg.DB) ([]*Resource, error) {
	var list []*Resource
	err := db.ModelContext(ctx, &list).
		Relation("Category").
		OrderExpr("resource.created_at DESC").
		Select()
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch resource list")
	}
	for _, r := range list {
		r.enrich()
	}
	return list, nil
}

func GetResourceByID(ctx context.Context, db *pg.DB, id int64) (*Resource, error) {
	resource := new(Resource)
	err := db.ModelContext(ctx, resource).
		Relation("Category").
		Where("resource.id = ?", id).
		Select()
	if err != nil {
		if errors.Is(err, pg.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to fetch resource")
	}
	return resource.enrich(), nil
}

func SearchResources(ctx context.Context, db *pg.DB, term string) ([]*Resource, error) {
	pattern := "%" + term + "%"
	var list []*Resource
	err := db.ModelContext(ctx, &list).
		Relation("Category").
		WhereGroup(func(q *orm.Query) (*orm.Query, error) {
			return q.
				Where("resource.title ILIKE ?", pattern).
				WhereOr("resource.description ILIKE ?", pattern), nil
		}).
		OrderExpr("resource.created_at DESC").
		Select()
	if err != nil {
		return nil, errors.Wrap(err, "failed to search resources")
	}
	for _, r := range list {
		r.enrich()
	}
	return list, nil
}

func CreateResource(ctx context.Context, db *pg.DB, resource *Resource) error {
	resource.CreatedAt = time.Now()
	_, err := db.ModelContext(ctx, resource).
		Returning("*").
		Insert()
	if err != nil {
		return errors.Wrap(err, "failed to insert resource")
	}
	return nil
}

// UpdateResource rewrites title, description and category_id and, only for
// the path columns listed in pathColumns, the file pointers. Omitted path
// columns keep their previous values.
func UpdateResource(ctx context.Context, db *pg.DB, resource *Resource, pathColumns ...string) error {
	columns := append([]string{"title", "description", "category_id"}, pathColumns...)
	_, err := db.ModelContext(ctx, resource).
		Column(columns...).
		WherePK().
		Update()
	if err != nil {
		return errors.Wrap(err, "failed to update resource")
	}
	return nil
}

func DeleteResource(ctx context.Context, db *pg.DB, id int64) error {
	_, err := db.ModelContext(ctx, (*Resource)(nil)).
		Where("id = ?", id).
		Delete()
	if err != nil {
		return errors.Wrap(err, "failed to delete resource")
	}
	return nil
}
