package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"foodapp/food-svc/internal/domain"

	"github.com/lib/pq"
)

// seedLockKey serialises catalog seeding across concurrently starting instances.
const seedLockKey = 7_340_021

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS restaurants (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS foods (
		id SERIAL PRIMARY KEY,
		restaurant_id INTEGER NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price NUMERIC(10, 2) NOT NULL DEFAULT 0 CHECK (price >= 0),
		image TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS foods_restaurant_id_idx ON foods (restaurant_id)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		user_id INTEGER,
		customer_name TEXT NOT NULL DEFAULT '',
		customer_address TEXT NOT NULL DEFAULT '',
		total NUMERIC(12, 2) NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'Placed',
		qr_code BYTEA,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS orders_user_id_idx ON orders (user_id)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		food_id BIGINT NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		PRIMARY KEY (order_id, position)
	)`,
}

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

// translateError maps driver errors onto the domain sentinels.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation":
			return fmt.Errorf("%w: %s", domain.ErrDuplicate, pqErr.Constraint)
		case "foreign_key_violation":
			return fmt.Errorf("%w: %s", domain.ErrInvalidReference, pqErr.Constraint)
		}
	}
	return err
}

func intArray(ids []int) interface{} {
	values := make([]int64, len(ids))
	for i, id := range ids {
		values[i] = int64(id)
	}
	return pq.Array(values)
}

func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return int64(*v)
}

func (r *PostgresRepository) CreateUser(ctx context.Context, user *domain.User) error {
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at",
		user.Name, user.Email, user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)
	return translateError(err)
}

func (r *PostgresRepository) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, email, password_hash, created_at FROM users WHERE email = $1", email).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *PostgresRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO restaurants (name, description) VALUES ($1, $2) RETURNING id, created_at",
		rest.Name, rest.Description,
	).Scan(&rest.ID, &rest.CreatedAt)
	return translateError(err)
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, description, created_at
		FROM restaurants
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Description, &rest.CreatedAt); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) CreateFood(ctx context.Context, food *domain.Food) error {
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO foods (restaurant_id, name, description, price, image) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at",
		food.RestaurantID, food.Name, food.Description, food.Price, food.Image,
	).Scan(&food.ID, &food.CreatedAt)
	return translateError(err)
}

func (r *PostgresRepository) ListFoods(ctx context.Context, restaurantID int) ([]domain.Food, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, name, description, price, image, created_at
		FROM foods
		WHERE restaurant_id = $1
		ORDER BY id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFoods(rows)
}

func (r *PostgresRepository) FoodsByIDs(ctx context.Context, ids []int) ([]domain.Food, error) {
	if len(ids) == 0 {
		return []domain.Food{}, nil
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, name, description, price, image, created_at
		FROM foods
		WHERE id = ANY($1)`, intArray(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFoods(rows)
}

func scanFoods(rows *sql.Rows) ([]domain.Food, error) {
	foods := []domain.Food{}
	for rows.Next() {
		var food domain.Food
		if err := rows.Scan(&food.ID, &food.RestaurantID, &food.Name, &food.Description, &food.Price, &food.Image, &food.CreatedAt); err != nil {
			return nil, err
		}
		foods = append(foods, food)
	}
	return foods, rows.Err()
}

// SeedCatalog inserts seed only when the restaurants table is empty.
func (r *PostgresRepository) SeedCatalog(ctx context.Context, seed []domain.CatalogSeed) (bool, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", seedLockKey); err != nil {
		return false, err
	}

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM restaurants").Scan(&count); err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	for _, entry := range seed {
		var restaurantID int
		if err := tx.QueryRowContext(ctx,
			"INSERT INTO restaurants (name, description) VALUES ($1, $2) RETURNING id",
			entry.Restaurant.Name, entry.Restaurant.Description,
		).Scan(&restaurantID); err != nil {
			return false, err
		}

		for _, food := range entry.Foods {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO foods (restaurant_id, name, description, price, image) VALUES ($1, $2, $3, $4, $5)",
				restaurantID, food.Name, food.Description, food.Price, food.Image,
			); err != nil {
				return false, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, customer_name, customer_address, total, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, nullableInt(order.UserID), order.Customer.Name, order.Customer.Address, order.Total, order.Status,
	).Scan(&order.ID, &order.CreatedAt); err != nil {
		return translateError(err)
	}

	for i, item := range order.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, position, food_id, quantity)
			VALUES ($1, $2, $3, $4)
		`, order.ID, i, item.FoodID, item.Quantity); err != nil {
			return translateError(err)
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) SaveQRCode(ctx context.Context, orderID int, qr []byte) error {
	_, err := r.DB.ExecContext(ctx, "UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(ctx context.Context, orderID int) ([]byte, error) {
	var qrCode []byte
	if err := r.DB.QueryRowContext(ctx, "SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qrCode); err != nil {
		return nil, translateError(err)
	}
	return qrCode, nil
}

// OrdersByUser returns the user's orders, newest first, with every line
// item joined to its food. Items whose food no longer exists keep a nil Food.
func (r *PostgresRepository) OrdersByUser(ctx context.Context, userID int) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, customer_name, customer_address, total, status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		var owner sql.NullInt64
		if err := rows.Scan(&order.ID, &owner, &order.Customer.Name, &order.Customer.Address,
			&order.Total, &order.Status, &order.CreatedAt); err != nil {
			return nil, err
		}
		if owner.Valid {
			id := int(owner.Int64)
			order.UserID = &id
		}
		order.Items = []domain.OrderItem{}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	index := make(map[int]int, len(orders))
	ids := make([]int, 0, len(orders))
	for i, order := range orders {
		index[order.ID] = i
		ids = append(ids, order.ID)
	}

	itemRows, err := r.DB.QueryContext(ctx, `
		SELECT oi.order_id, oi.food_id, oi.quantity,
			f.id, f.restaurant_id, f.name, f.description, f.price, f.image, f.created_at
		FROM order_items oi
		LEFT JOIN foods f ON f.id = oi.food_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.order_id, oi.position
	`, intArray(ids))
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var (
			orderID      int
			item         domain.OrderItem
			foodID       sql.NullInt64
			restaurantID sql.NullInt64
			name         sql.NullString
			description  sql.NullString
			price        sql.NullFloat64
			image        sql.NullString
			createdAt    sql.NullTime
		)
		if err := itemRows.Scan(&orderID, &item.FoodID, &item.Quantity,
			&foodID, &restaurantID, &name, &description, &price, &image, &createdAt); err != nil {
			return nil, err
		}
		if foodID.Valid {
			item.Food = &domain.Food{
				ID:           int(foodID.Int64),
				RestaurantID: int(restaurantID.Int64),
				Name:         name.String,
				Description:  description.String,
				Price:        price.Float64,
				Image:        image.String,
				CreatedAt:    createdAt.Time,
			}
		}

		i, ok := index[orderID]
		if !ok {
			continue
		}
		orders[i].Items = append(orders[i].Items, item)
	}
	return orders, itemRows.Err()
}

// OrderTotals counts orders created in [from, to) and sums their totals.
func (r *PostgresRepository) OrderTotals(ctx context.Context, from, to time.Time) (int64, float64, error) {
	var (
		count   int64
		revenue float64
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*), COALESCE(SUM(total), 0) FROM orders WHERE created_at >= $1 AND created_at < $2",
		from, to).Scan(&count, &revenue)
	if err != nil {
		return 0, 0, err
	}
	return count, revenue, nil
}
