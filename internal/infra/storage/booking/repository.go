package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/e6carspa/booking-platform/internal/domain"
	"github.com/e6carspa/booking-platform/pkg/dbmetrics"
	"github.com/e6carspa/booking-platform/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"user_id",
	"car_id",
	"booking_date",
	"slot_start",
	"slot_end",
	"mechanic_id",
	"status",
	"total_amount",
	"gst_amount",
	"final_amount",
	"car_brand",
	"car_model",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование вместе со снапшотами услуг.
// Вставка идет в две таблицы, поэтому вызывающая сторона обязана
// передать активную транзакцию через контекст (txmanager.Do) —
// частичной записи при ошибке быть не должно.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"car_id",
			"booking_date",
			"slot_start",
			"slot_end",
			"mechanic_id",
			"status",
			"total_amount",
			"gst_amount",
			"final_amount",
			"car_brand",
			"car_model",
		).
		Values(
			booking.UserID,
			booking.CarID,
			booking.BookingDate,
			booking.SlotStart,
			booking.SlotEnd,
			booking.MechanicID,
			booking.Status,
			booking.TotalAmount,
			booking.GSTAmount,
			booking.FinalAmount,
			booking.CarBrand,
			booking.CarModel,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	for _, svc := range booking.Services {
		query, args, err := psqlbuilder.Insert("booking_services").
			Columns("booking_id", "service_id", "service_name", "service_price").
			Values(booking.ID, svc.ServiceID, svc.Name, svc.Price).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build service insert: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: Create - insert service snapshot: %v", ErrExecQuery, err)
		}
	}

	return booking, nil
}

// GetByID получает бронирование по ID вместе со снапшотами услуг
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	if err := r.loadServices(ctx, executor, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// GetByUserID получает бронирования пользователя в хронологическом
// порядке: по дате, внутри даты по началу слота
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date ASC", "slot_start ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBookings(ctx, executor, "GetByUserID", query, args)
}

// GetAll получает бронирования всех пользователей в том же
// хронологическом порядке. Используется административной выборкой.
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("booking_date ASC", "slot_start ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBookings(ctx, executor, "GetAll", query, args)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.CarID,
		&booking.BookingDate,
		&booking.SlotStart,
		&booking.SlotEnd,
		&booking.MechanicID,
		&booking.Status,
		&booking.TotalAmount,
		&booking.GSTAmount,
		&booking.FinalAmount,
		&booking.CarBrand,
		&booking.CarModel,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time
	return &booking, nil
}

func (r *Repository) queryBookings(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) ([]*domain.Booking, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	for _, booking := range bookings {
		if err := r.loadServices(ctx, executor, booking); err != nil {
			return nil, err
		}
	}
	return bookings, nil
}

// loadServices подгружает снапшоты услуг бронирования
func (r *Repository) loadServices(ctx context.Context, executor DBExecutor, booking *domain.Booking) error {
	query, args, err := psqlbuilder.Select("service_id", "service_name", "service_price").
		From("booking_services").
		Where(squirrel.Eq{"booking_id": booking.ID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]domain.ServiceSnapshot, 0)
	for rows.Next() {
		var svc domain.ServiceSnapshot
		if err := rows.Scan(&svc.ServiceID, &svc.Name, &svc.Price); err != nil {
			return fmt.Errorf("%w: loadServices - scan service: %v", ErrScanRow, err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadServices - rows error: %v", ErrScanRow, err)
	}

	booking.Services = services
	return nil
}
