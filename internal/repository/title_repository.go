package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"yamdb/internal/errors"
	"yamdb/internal/model"
)

// TitleFilter narrows a title listing. All set fields combine with AND;
// genre, category and name are substring matches, year is exact. The page
// window applies after filtering and ordering.
type TitleFilter struct {
	Genre    string
	Category string
	Name     string
	Year     int
	Page     Pagination
}

// TitleWithRating is a title annotated with the mean of its review scores.
// Rating is nil when the title has no reviews.
type TitleWithRating struct {
	model.Title
	Rating *float64 `json:"rating"`
}

// TitleRepository defines title persistence operations, including the
// rating aggregation used for every title read.
type TitleRepository interface {
	ListWithRating(ctx context.Context, filter TitleFilter) ([]TitleWithRating, error)
	FindWithRating(ctx context.Context, id uint) (*TitleWithRating, error)
	FindByID(ctx context.Context, id uint) (*model.Title, error)
	Create(ctx context.Context, title *model.Title) error
	Update(ctx context.Context, title *model.Title) error
	Delete(ctx context.Context, id uint) error
}

type titleRepository struct {
	db *gorm.DB
}

// NewTitleRepository creates a new title repository.
func NewTitleRepository(db *gorm.DB) TitleRepository {
	return &titleRepository{db: db}
}

// ListWithRating returns one page of matching titles left-joined with the
// mean of their review scores, ordered by rating ascending with insertion
// order breaking ties. Unreviewed titles carry a nil rating and sort first
// (MySQL collates NULL before any value on ascending sort).
func (r *titleRepository) ListWithRating(ctx context.Context, filter TitleFilter) ([]TitleWithRating, error) {
	type ratedRow struct {
		ID     uint
		Rating *float64
	}

	q := r.db.WithContext(ctx).Model(&model.Title{}).
		Select("titles.id AS id, AVG(reviews.score) AS rating").
		Joins("LEFT JOIN reviews ON reviews.title_id = titles.id").
		Group("titles.id").
		Order("rating ASC, titles.id ASC")

	if filter.Genre != "" {
		q = q.Joins("JOIN title_genres ON title_genres.title_id = titles.id").
			Joins("JOIN genres ON genres.id = title_genres.genre_id").
			Where("genres.slug LIKE ?", "%"+filter.Genre+"%")
	}
	if filter.Category != "" {
		q = q.Joins("JOIN categories ON categories.id = titles.category_id").
			Where("categories.slug LIKE ?", "%"+filter.Category+"%")
	}
	if filter.Name != "" {
		q = q.Where("titles.name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.Year != 0 {
		q = q.Where("titles.year = ?", filter.Year)
	}
	q = q.Limit(filter.Page.limit()).Offset(filter.Page.offset())

	var rows []ratedRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []TitleWithRating{}, nil
	}

	ids := make([]uint, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	var titles []model.Title
	if err := r.db.WithContext(ctx).
		Preload("Category").Preload("Genres").
		Where("id IN ?", ids).Find(&titles).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]model.Title, len(titles))
	for _, t := range titles {
		byID[t.ID] = t
	}
	result := make([]TitleWithRating, 0, len(rows))
	for _, row := range rows {
		result = append(result, TitleWithRating{Title: byID[row.ID], Rating: row.Rating})
	}
	return result, nil
}

// FindWithRating returns a single title with its derived rating.
func (r *titleRepository) FindWithRating(ctx context.Context, id uint) (*TitleWithRating, error) {
	var title model.Title
	if err := r.db.WithContext(ctx).
		Preload("Category").Preload("Genres").
		First(&title, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTitleNotFound
		}
		return nil, err
	}

	var avg sql.NullFloat64
	if err := r.db.WithContext(ctx).Model(&model.Review{}).
		Where("title_id = ?", id).
		Select("AVG(score)").Scan(&avg).Error; err != nil {
		return nil, err
	}

	rated := &TitleWithRating{Title: title}
	if avg.Valid {
		rated.Rating = &avg.Float64
	}
	return rated, nil
}

// FindByID finds a title by id without the rating annotation.
func (r *titleRepository) FindByID(ctx context.Context, id uint) (*model.Title, error) {
	var title model.Title
	if err := r.db.WithContext(ctx).First(&title, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTitleNotFound
		}
		return nil, err
	}
	return &title, nil
}

// Create creates a new title together with its genre links.
func (r *titleRepository) Create(ctx context.Context, title *model.Title) error {
	return r.db.WithContext(ctx).Create(title).Error
}

// Update saves title fields and replaces its genre links in one transaction.
func (r *titleRepository) Update(ctx context.Context, title *model.Title) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(title).Association("Genres").Replace(title.Genres); err != nil {
			return err
		}
		return tx.Omit("Genres").Save(title).Error
	})
}

// Delete removes a title. Its reviews (and their comments) go with it
// through the ON DELETE CASCADE foreign keys.
func (r *titleRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Title{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.ErrTitleNotFound
	}
	return nil
}
