package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/go-gin-bookstore/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-bookstore/internal/domains/catalog/ports"
)

var (
	_ ports.BookRepository     = (*BookRepository)(nil)
	_ ports.AuthorRepository   = (*AuthorRepository)(nil)
	_ ports.CategoryRepository = (*CategoryRepository)(nil)
)

// bookRecord maps a book to its relational table.
type bookRecord struct {
	ID         int64   `gorm:"primaryKey;column:id"`
	Title      string  `gorm:"column:title;type:varchar(200)"`
	AuthorID   *int64  `gorm:"column:author_id;index"`
	CategoryID *int64  `gorm:"column:category_id;index"`
	Price      float64 `gorm:"column:price;type:numeric(10,2)"`
	Stock      int32   `gorm:"column:stock;default:0"`
}

func (bookRecord) TableName() string { return "books" }

type authorRecord struct {
	ID   int64  `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name;type:varchar(100)"`
	Bio  string `gorm:"column:bio;type:text"`
}

func (authorRecord) TableName() string { return "authors" }

type categoryRecord struct {
	ID   int64  `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name;type:varchar(50)"`
}

func (categoryRecord) TableName() string { return "categories" }

// BookRepository persists books in PostgreSQL using GORM.
type BookRepository struct {
	db *gorm.DB
}

// NewBookRepository wires a PostgreSQL-backed book repository.
func NewBookRepository(db *gorm.DB) *BookRepository {
	repo := &BookRepository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&bookRecord{})
	}
	return repo
}

// Save inserts or updates a book.
func (r *BookRepository) Save(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	if err := ensureDB(r.db); err != nil {
		return nil, err
	}
	if book == nil {
		return nil, errors.New("book is nil")
	}
	record := bookRecord{
		ID:         book.ID,
		Title:      book.Title,
		AuthorID:   book.AuthorID,
		CategoryID: book.CategoryID,
		Price:      book.Price,
		Stock:      book.Stock,
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "author_id", "category_id", "price", "stock"}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	saved := *book
	saved.ID = record.ID
	return &saved, nil
}

// GetByID fetches a book with its joined author and category names.
func (r *BookRepository) GetByID(ctx context.Context, id int64) (*ports.BookProjection, error) {
	if err := ensureDB(r.db); err != nil {
		return nil, err
	}
	var row bookProjectionRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT b.id, b.title, b.author_id, b.category_id, b.price, b.stock,
			COALESCE(a.name, '') AS author_name,
			COALESCE(c.name, '') AS category_name
		FROM books b
		LEFT JOIN authors a ON b.author_id = a.id
		LEFT JOIN categories c ON b.category_id = c.id
		WHERE b.id = ?
	`, id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, ports.ErrNotFound
	}
	projection := row.toProjection()
	return &projection, nil
}

// Delete removes a book by identifier.
func (r *BookRepository) Delete(ctx context.Context, id int64) error {
	if err := ensureDB(r.db); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&bookRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// List returns all books with joined author and category names.
func (r *BookRepository) List(ctx context.Context) ([]ports.BookProjection, error) {
	if err := ensureDB(r.db); err != nil {
		return nil, err
	}
	var rows []bookProjectionRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT b.id, b.title, b.author_id, b.category_id, b.price, b.stock,
			COALESCE(a.name, '') AS author_name,
			COALESCE(c.name, '') AS category_name
		FROM books b
		LEFT JOIN authors a ON b.author_id = a.id
		LEFT JOIN categories c ON b.category_id = c.id
		ORDER BY b.id
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	projections := make([]ports.BookProjection, 0, len(rows))
	for _, row := range rows {
		projections = append(projections, row.toProjection())
	}
	return projections, nil
}

type bookProjectionRow struct {
	ID           int64
	Title        string
	AuthorID     *int64
	CategoryID   *int64
	Price        float64
	Stock        int32
	AuthorName   string
	CategoryName string
}

func (r bookProjectionRow) toProjection() ports.BookProjection {
	return ports.BookProjection{
		Book: domain.Book{
			ID:         r.ID,
			Title:      r.Title,
			AuthorID:   r.AuthorID,
			CategoryID: r.CategoryID,
			Price:      r.Price,
			Stock:      r.Stock,
		},
		AuthorName:   r.AuthorName,
		CategoryName: r.CategoryName,
	}
}

// AuthorRepository persists authors in PostgreSQL using GORM.
type AuthorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) *AuthorRepository {
	repo := &AuthorRepository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&authorRecord{})
	}
	return repo
}

func (r *AuthorRepository) Save(ctx context.Context, author *domain.Author) (*domain.Author, error) {
	if err := ensureDB(r.db); err != nil {
		return nil, err
	}
	if author == nil {
		return nil, errors.New("author is nil")
	}
	record := authorRecord{ID: author.ID, Name: author.Name, Bio: author.Bio}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "bio"}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return &domain.Author{ID: record.ID, Name: record.Name, Bio: record.Bio}, nil
}

func (r *AuthorRepository) GetByID(ctx context.Context, id int64) (*domain.Author, error) {
	if err := ensureDB(r.db); err != nil {
		return nil, err
	}
	var record authorRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return &domain.Author{ID: record.ID, Name: record.Name, Bio: record.Bio}, nil
}

func (r *AuthorRepository) Delete(ctx context.Context, id int64) error {
	if err := ensureDB(r.db); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&authorRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *AuthorRepository) List(ctx context.Context) ([]*domain.Author, error) {
	if err := ensureDB(r.db); err != nil {
		return nil, err
	}
	var records []authorRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	authors := make([]*domain.Author, 0, len(records))
	for _, record := range records {
		authors = append(authors, &domain.Author{ID: record.ID, Name: record.Name, Bio: record.Bio})
	}
	return authors, nil
}

// CategoryRepository persists categories in PostgreSQL using GORM.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	repo := &CategoryRepository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&categoryRecord{})
	}
	return repo
}

func (r *CategoryRepository) Save(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if err := ensureDB(r.db); err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.New("category is nil")
	}
	record := categoryRecord{ID: category.ID, Name: category.Name}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name"}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return &domain.Category{ID: record.ID, Name: record.Name}, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	if err := ensureDB(r.db); err != nil {
		return nil, err
	}
	var record categoryRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return &domain.Category{ID: record.ID, Name: record.Name}, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	if err := ensureDB(r.db); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&categoryRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	if err := ensureDB(r.db); err != nil {
		return nil, err
	}
	var records []categoryRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	categories := make([]*domain.Category, 0, len(records))
	for _, record := range records {
		categories = append(categories, &domain.Category{ID: record.ID, Name: record.Name})
	}
	return categories, nil
}

func ensureDB(db *gorm.DB) error {
	if db == nil {
		return errors.New("postgres catalog repository not configured")
	}
	return nil
}
