package steps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/mercearia/backend/internal/application/adapter"
	"github.com/mercearia/backend/internal/domain/entity"
	"github.com/mercearia/backend/internal/integration/adapters"
	"github.com/mercearia/backend/internal/integration/persistence/model"
	"github.com/mercearia/backend/test/integration/mock"
)

const catalogCacheKey = "mercearia:catalog:all"

// registerDataSteps registers fixture and storage assertion steps.
func registerDataSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, aUserExistsWithEmailAndPassword)
	ctx.Step(`^an admin exists with email "([^"]*)" and password "([^"]*)"$`, anAdminExistsWithEmailAndPassword)
	ctx.Step(`^a product "([^"]*)" exists with price "([^"]*)"$`, aProductExistsWithPrice)
	ctx.Step(`^the catalog is seeded$`, theCatalogIsSeeded)
	ctx.Step(`^I remember the id of product "([^"]*)" as "([^"]*)"$`, iRememberTheIDOfProductAs)
	ctx.Step(`^I hold an expired token for "([^"]*)"$`, iHoldAnExpiredTokenFor)
	ctx.Step(`^the catalog cache should be (empty|populated)$`, theCatalogCacheShouldBe)
	ctx.Step(`^the catalog cache should expire within (\d+) minutes$`, theCatalogCacheShouldExpireWithin)
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in "([^"]*)" with the values:$`, theDbShouldContainObjectsInWithTheValues)
}

func aUserExistsWithEmailAndPassword(ctx context.Context, email, password string) error {
	return createUser(ctx, email, password, entity.RoleUser)
}

func anAdminExistsWithEmailAndPassword(ctx context.Context, email, password string) error {
	return createUser(ctx, email, password, entity.RoleAdmin)
}

func createUser(ctx context.Context, email, password string, role entity.Role) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	hash, err := tc.injector.PasswordService.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           uuid.New(),
		Email:        email,
		Name:         "Test User",
		PasswordHash: hash,
		Role:         string(role),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return tc.db.DbConn.Create(user).Error
}

// aProductExistsWithPrice inserts a product and captures its id as {{product_id}}.
func aProductExistsWithPrice(ctx context.Context, name, price string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	amount, err := decimal.NewFromString(price)
	if err != nil {
		return fmt.Errorf("invalid price '%s': %w", price, err)
	}

	product := model.ProductFromEntity(entity.NewProduct(name, "Produto de teste", amount, "", []string{"teste"}))
	if err := tc.db.DbConn.Create(product).Error; err != nil {
		return err
	}

	tc.vars["product_id"] = product.ID.String()
	return nil
}

func theCatalogIsSeeded(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.injector.Seeder.Run(ctx)
}

func iRememberTheIDOfProductAs(ctx context.Context, name, variable string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var product model.ProductModel
	if err := tc.db.DbConn.Where("name = ?", name).First(&product).Error; err != nil {
		return fmt.Errorf("product '%s' not found: %w", name, err)
	}

	tc.vars[variable] = product.ID.String()
	return nil
}

// iHoldAnExpiredTokenFor signs a token for the user as if it had been issued
// two hours ago, past the configured lifetime.
func iHoldAnExpiredTokenFor(ctx context.Context, email string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var user model.UserModel
	if err := tc.db.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
		return fmt.Errorf("user '%s' not found: %w", email, err)
	}

	tc.clock.SetCurrentTime(time.Now().Add(-2 * time.Hour))
	tokenService := adapters.NewTokenService(
		tc.cfg.JWT.Secret,
		adapters.WithIssuer(tc.cfg.JWT.Issuer),
		adapters.WithClock(tc.clock.Now),
	)

	issued, err := tokenService.IssueToken(ctx, adapter.TokenSubject{
		UserID: user.ID,
		Email:  user.Email,
		Role:   entity.Role(user.Role),
	}, tc.cfg.JWT.Expiry)
	if err != nil {
		return err
	}

	tc.accessToken = issued.AccessToken
	return nil
}

func theCatalogCacheShouldBe(ctx context.Context, state string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	_, err := tc.redis.Client.Get(ctx, catalogCacheKey).Result()
	switch {
	case errors.Is(err, redis.Nil):
		if state == "populated" {
			return fmt.Errorf("expected catalog cache to be populated")
		}
	case err != nil:
		return err
	default:
		if state == "empty" {
			return fmt.Errorf("expected catalog cache to be empty")
		}
	}
	return nil
}

func theCatalogCacheShouldExpireWithin(minutes int) error {
	ttl := mock.RedisKeyTTLSeconds(catalogCacheKey)
	if ttl <= 0 || ttl > float64(minutes*60) {
		return fmt.Errorf("expected catalog cache ttl within %d minutes, got %.0fs", minutes, ttl)
	}
	return nil
}

func theDbShouldContainObjectsInTheTable(ctx context.Context, quantity int, table string) error {
	return countRows(ctx, quantity, table, nil)
}

func theDbShouldContainObjectsInWithTheValues(ctx context.Context, quantity int, table string, content *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var criteria map[string]any
	if err := json.Unmarshal([]byte(tc.expand(content.Content)), &criteria); err != nil {
		return err
	}
	return countRows(ctx, quantity, table, criteria)
}

func countRows(ctx context.Context, quantity int, table string, criteria map[string]any) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	rowModel, ok := tc.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(rowModel).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := tc.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	if err := query.Find(entitySlicePtr.Interface()).Error; err != nil {
		return err
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}
