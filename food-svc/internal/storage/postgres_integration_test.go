//go:build integration

package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"foodapp/food-svc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB starts a throwaway PostgreSQL container with the schema applied.
func setupTestDB(t *testing.T) *PostgresRepository {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("foodapp"),
		postgres.WithUsername("foodapp"),
		postgres.WithPassword("foodapp"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "start PostgreSQL container")

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	repo := NewPostgresRepository(db)
	require.NoError(t, repo.EnsureSchema(ctx))
	return repo
}

func TestPostgresRepository_OrderLifecycle(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	// Applying the schema twice is harmless.
	require.NoError(t, repo.EnsureSchema(ctx))

	seed := []domain.CatalogSeed{
		{
			Restaurant: domain.Restaurant{Name: "Biryani Palace", Description: "Authentic Hyderabadi biryani"},
			Foods: []domain.Food{
				{Name: "Hyderabadi Biryani", Price: 250},
				{Name: "Chicken Biryani", Price: 220},
			},
		},
		{
			Restaurant: domain.Restaurant{Name: "Dosa Corner", Description: "Crispy South Indian dosas"},
			Foods:      []domain.Food{{Name: "Masala Dosa", Price: 80}},
		},
	}
	seeded, err := repo.SeedCatalog(ctx, seed)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = repo.SeedCatalog(ctx, seed)
	require.NoError(t, err)
	assert.False(t, seeded)

	restaurants, err := repo.ListRestaurants(ctx)
	require.NoError(t, err)
	require.Len(t, restaurants, 2)

	menu, err := repo.ListFoods(ctx, restaurants[0].ID)
	require.NoError(t, err)
	require.Len(t, menu, 2)
	assert.Equal(t, 250.0, menu[0].Price)

	err = repo.CreateFood(ctx, &domain.Food{RestaurantID: 9999, Name: "Ghost", Price: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	user := &domain.User{Name: "Asha", Email: "asha@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.CreateUser(ctx, user))
	err = repo.CreateUser(ctx, &domain.User{Name: "Asha", Email: "asha@example.com", PasswordHash: "hash"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	order := &domain.Order{
		UserID: &user.ID,
		Items: []domain.OrderItem{
			{FoodID: menu[0].ID, Quantity: 2},
			{FoodID: 424242, Quantity: 1},
		},
		Customer: domain.Customer{Name: "Asha", Address: "12 MG Road"},
		Total:    500,
		Status:   domain.OrderStatusPlaced,
	}
	require.NoError(t, repo.CreateOrder(ctx, order))
	require.NoError(t, repo.SaveQRCode(ctx, order.ID, []byte("png")))

	qr, err := repo.GetQRCode(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), qr)

	orders, err := repo.OrdersByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 500.0, orders[0].Total)
	require.Len(t, orders[0].Items, 2)
	require.NotNil(t, orders[0].Items[0].Food)
	assert.Equal(t, "Hyderabadi Biryani", orders[0].Items[0].Food.Name)
	assert.Nil(t, orders[0].Items[1].Food)
}
