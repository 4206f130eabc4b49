package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/lib/pq"

	"github.com/nqbjnh/go-shop/internal/discount/domain"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(cred *Credentials) (*Repository, error) {
	psqlconn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cred.Host,
		cred.Port,
		cred.User,
		cred.Password,
		cred.DBName)

	db, err := sql.Open("postgres", psqlconn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(10)
	return &Repository{db: db}, nil
}

func (r *Repository) RunMigrations(cred *Credentials) error {
	driver, err := postgres.WithInstance(r.db, &postgres.Config{
		MigrationsTable: "discount_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", cred.MigrationsDirPath),
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func (r *Repository) GetCoupon(ctx context.Context, productName string) (*domain.Coupon, error) {
	query := `SELECT id, product_name, description, amount FROM coupons WHERE product_name = $1`

	var coupon domain.Coupon
	err := r.db.QueryRowContext(ctx, query, productName).Scan(
		&coupon.ID,
		&coupon.ProductName,
		&coupon.Description,
		&coupon.Amount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query coupon: %w", err)
	}

	return &coupon, nil
}

func (r *Repository) CreateCoupon(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error) {
	query := `INSERT INTO coupons (product_name, description, amount) VALUES ($1, $2, $3) RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		coupon.ProductName,
		coupon.Description,
		coupon.Amount,
	).Scan(&coupon.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrDuplicateCoupon
		}
		return nil, fmt.Errorf("insert coupon: %w", err)
	}

	return coupon, nil
}

func (r *Repository) UpdateCoupon(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error) {
	query := `UPDATE coupons SET description = $2, amount = $3 WHERE product_name = $1`

	res, err := r.db.ExecContext(ctx, query,
		coupon.ProductName,
		coupon.Description,
		coupon.Amount,
	)
	if err != nil {
		return nil, fmt.Errorf("update coupon: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update coupon rows affected: %w", err)
	}
	if rows == 0 {
		return nil, ErrCouponNotFound
	}

	return r.GetCoupon(ctx, coupon.ProductName)
}

func (r *Repository) DeleteCoupon(ctx context.Context, productName string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM coupons WHERE product_name = $1`, productName)
	if err != nil {
		return fmt.Errorf("delete coupon: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete coupon rows affected: %w", err)
	}
	if rows == 0 {
		return ErrCouponNotFound
	}

	return nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}
