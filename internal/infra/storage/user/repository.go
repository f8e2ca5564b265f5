package user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/e6carspa/booking-platform/internal/domain"
	"github.com/e6carspa/booking-platform/pkg/dbmetrics"
	"github.com/e6carspa/booking-platform/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки postgres для нарушения уникальности
const pgUniqueViolation = "23505"

// Repository репозиторий пользователей и их автомобилей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает пользователя вместе с автомобилями.
// Запись идет в две таблицы, вызывающая сторона оборачивает вызов
// в транзакцию через txmanager.
func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("name", "email", "password_hash", "phone").
		Values(user.Name, user.Email, user.PasswordHash, user.Phone).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&user.ID, &createdAt, &updatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pgUniqueViolation {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	user.CreatedAt = createdAt.Time
	user.UpdatedAt = updatedAt.Time

	for i := range user.Cars {
		car := &user.Cars[i]
		query, args, err := psqlbuilder.Insert("cars").
			Columns("user_id", "brand", "model", "year", "plate").
			Values(user.ID, car.Brand, car.Model, car.Year, car.Plate).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build car insert: %v", ErrBuildQuery, err)
		}
		if err := executor.QueryRowContext(ctx, query, args...).Scan(&car.ID); err != nil {
			return nil, fmt.Errorf("%w: Create - insert car: %v", ErrExecQuery, err)
		}
	}

	return user, nil
}

// GetByEmail находит пользователя по email, автомобили не подгружаются
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email", "password_hash", "phone", "created_at", "updated_at").
		From("users").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanUser(executor.QueryRowContext(ctx, query, args...), "GetByEmail")
}

// GetByID находит пользователя по ID вместе с его автомобилями
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email", "password_hash", "phone", "created_at", "updated_at").
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	user, err := r.scanUser(executor.QueryRowContext(ctx, query, args...), "GetByID")
	if err != nil {
		return nil, err
	}

	cars, err := r.ListCars(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Cars = cars
	return user, nil
}

// ListCars возвращает автомобили пользователя
func (r *Repository) ListCars(ctx context.Context, userID int64) ([]domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "brand", "model", "year", "plate").
		From("cars").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCars - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCars - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cars := make([]domain.Car, 0)
	for rows.Next() {
		var car domain.Car
		if err := rows.Scan(&car.ID, &car.Brand, &car.Model, &car.Year, &car.Plate); err != nil {
			return nil, fmt.Errorf("%w: ListCars - scan car: %v", ErrScanRow, err)
		}
		cars = append(cars, car)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCars - rows error: %v", ErrScanRow, err)
	}
	return cars, nil
}

// CarByID находит автомобиль и владельца. Проверка принадлежности
// автомобиля пользователю делается на уровне usecase.
func (r *Repository) CarByID(ctx context.Context, carID int64) (*domain.Car, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "user_id", "brand", "model", "year", "plate").
		From("cars").
		Where(squirrel.Eq{"id": carID}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: CarByID - build select query: %v", ErrBuildQuery, err)
	}

	var car domain.Car
	var ownerID int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&car.ID, &ownerID, &car.Brand, &car.Model, &car.Year, &car.Plate,
	)
	if err == sql.ErrNoRows {
		return nil, 0, ErrCarNotFound
	}
	if err != nil {
		return nil, 0, fmt.Errorf("%w: CarByID - scan car: %v", ErrScanRow, err)
	}
	return &car, ownerID, nil
}

func (r *Repository) scanUser(row *sql.Row, op string) (*domain.User, error) {
	var user domain.User
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %v", ErrScanRow, op, err)
	}

	user.CreatedAt = createdAt.Time
	user.UpdatedAt = updatedAt.Time
	return &user, nil
}
