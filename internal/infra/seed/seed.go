// Package seed inserts the default catalog and admin account into an empty database.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mercearia/backend/config"
	"github.com/mercearia/backend/internal/application/adapter"
	"github.com/mercearia/backend/internal/domain/entity"
	"github.com/mercearia/backend/internal/domain/valueobject"
)

// DefaultProduct describes one entry of the starter catalog.
type DefaultProduct struct {
	Name        string
	Description string
	Price       string
	ImageURL    string
	Tags        []string
}

// DefaultProducts is the starter catalog.
var DefaultProducts = []DefaultProduct{
	{Name: "Arroz", Description: "Arroz branco tipo 1", Price: "5.99", ImageURL: "arroz.jpg", Tags: []string{"grãos"}},
	{Name: "Feijão", Description: "Feijão carioca", Price: "6.49", ImageURL: "feijao.jpg", Tags: []string{"grãos"}},
	{Name: "Macarrão", Description: "Macarrão espaguete", Price: "4.99", ImageURL: "macarrao.jpg", Tags: []string{"massas"}},
	{Name: "Café", Description: "Café torrado e moído", Price: "10.99", ImageURL: "cafe.jpg", Tags: []string{"bebidas"}},
}

// Seeder fills empty tables with default data.
type Seeder struct {
	userRepo        adapter.UserRepository
	productRepo     adapter.ProductRepository
	passwordService adapter.PasswordService
	cfg             config.SeedConfig
}

// NewSeeder creates a new Seeder instance.
func NewSeeder(
	userRepo adapter.UserRepository,
	productRepo adapter.ProductRepository,
	passwordService adapter.PasswordService,
	cfg config.SeedConfig,
) *Seeder {
	return &Seeder{
		userRepo:        userRepo,
		productRepo:     productRepo,
		passwordService: passwordService,
		cfg:             cfg,
	}
}

// Run seeds each table only when it holds no rows, so repeated starts are harmless.
func (s *Seeder) Run(ctx context.Context) error {
	if !s.cfg.Enabled {
		slog.InfoContext(ctx, "Seeding disabled")
		return nil
	}

	if err := s.seedProducts(ctx); err != nil {
		return err
	}
	return s.seedAdmin(ctx)
}

func (s *Seeder) seedProducts(ctx context.Context) error {
	count, err := s.productRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, p := range DefaultProducts {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return fmt.Errorf("invalid seed price for %s: %w", p.Name, err)
		}
		product := entity.NewProduct(p.Name, p.Description, price, p.ImageURL, p.Tags)
		if err := s.productRepo.Create(ctx, product); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.Name, err)
		}
	}

	slog.InfoContext(ctx, "Seeded default catalog", "products", len(DefaultProducts))
	return nil
}

func (s *Seeder) seedAdmin(ctx context.Context) error {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	email, err := valueobject.NewEmail(s.cfg.AdminEmail)
	if err != nil {
		return fmt.Errorf("invalid seed admin email: %w", err)
	}
	if err := s.passwordService.ValidatePasswordStrength(s.cfg.AdminPassword); err != nil {
		return fmt.Errorf("invalid seed admin password: %w", err)
	}

	hash, err := s.passwordService.HashPassword(s.cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	admin, err := entity.NewUser(s.cfg.AdminName, email.Value(), hash, entity.RoleAdmin)
	if err != nil {
		return err
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	slog.InfoContext(ctx, "Seeded admin user", "email", admin.Email)
	return nil
}
