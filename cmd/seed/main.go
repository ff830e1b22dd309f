package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"yamdb/internal/config"
	"yamdb/internal/db"
	apperrors "yamdb/internal/errors"
	"yamdb/internal/model"
	"yamdb/internal/repository"
)

// SeedFile is the fixture format consumed by the seeder.
type SeedFile struct {
	Admin      *SeedUser    `json:"admin"`
	Categories []SeedSlug   `json:"categories"`
	Genres     []SeedSlug   `json:"genres"`
	Titles     []SeedTitle  `json:"titles"`
}

// SeedUser describes the bootstrap admin account.
type SeedUser struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// SeedSlug describes a category or genre entry.
type SeedSlug struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// SeedTitle describes a title entry referencing slugs.
type SeedTitle struct {
	Name        string   `json:"name"`
	Year        int      `json:"year"`
	Category    string   `json:"category"`
	Genres      []string `json:"genres"`
	Description *string  `json:"description"`
}

func main() {
	fixturePath := flag.String("fixture", "seed.json", "path to the seed fixture file")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Genre{},
		&model.Title{},
		&model.Review{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	fixture, err := loadFixture(*fixturePath)
	if err != nil {
		log.Fatalf("Failed to load fixture: %v", err)
	}

	ctx := context.Background()
	categoryRepo := repository.NewCategoryRepository(gormDB)
	genreRepo := repository.NewGenreRepository(gormDB)
	titleRepo := repository.NewTitleRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	if fixture.Admin != nil {
		if err := seedAdmin(ctx, userRepo, fixture.Admin); err != nil {
			log.Fatalf("Failed to seed admin: %v", err)
		}
		log.Printf("Admin account ready: %s", fixture.Admin.Email)
	}

	created, skipped := 0, 0
	for _, item := range fixture.Categories {
		err := categoryRepo.Create(ctx, &model.Category{Name: item.Name, Slug: item.Slug})
		switch {
		case errors.Is(err, apperrors.ErrSlugTaken):
			skipped++
		case err != nil:
			log.Fatalf("Failed to seed category %q: %v", item.Slug, err)
		default:
			created++
		}
	}
	for _, item := range fixture.Genres {
		err := genreRepo.Create(ctx, &model.Genre{Name: item.Name, Slug: item.Slug})
		switch {
		case errors.Is(err, apperrors.ErrSlugTaken):
			skipped++
		case err != nil:
			log.Fatalf("Failed to seed genre %q: %v", item.Slug, err)
		default:
			created++
		}
	}

	for _, item := range fixture.Titles {
		title := model.Title{
			Name:        item.Name,
			Year:        item.Year,
			Description: item.Description,
		}
		if item.Category != "" {
			category, err := categoryRepo.FindBySlug(ctx, item.Category)
			if err != nil {
				log.Fatalf("Failed to resolve category %q for title %q: %v", item.Category, item.Name, err)
			}
			title.CategoryID = &category.ID
		}
		if len(item.Genres) > 0 {
			genres, err := genreRepo.FindBySlugs(ctx, item.Genres)
			if err != nil {
				log.Fatalf("Failed to resolve genres for title %q: %v", item.Name, err)
			}
			title.Genres = genres
		}
		if err := titleRepo.Create(ctx, &title); err != nil {
			log.Fatalf("Failed to seed title %q: %v", item.Name, err)
		}
		created++
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Records created: %d", created)
	log.Printf("  - Records skipped (already present): %d", skipped)
}

func loadFixture(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var fixture SeedFile
	if err := json.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &fixture, nil
}

// seedAdmin gets or creates the bootstrap account and promotes it to admin.
func seedAdmin(ctx context.Context, repo repository.UserRepository, seed *SeedUser) error {
	user, err := repo.GetOrCreateByEmail(ctx, seed.Email, seed.Username)
	if err != nil {
		return err
	}
	if user.IsAdmin() {
		return nil
	}
	user.Role = model.RoleAdmin
	return repo.Update(ctx, user)
}
