package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/e6carspa/booking-platform/internal/domain"
	userRepo "github.com/e6carspa/booking-platform/internal/infra/storage/user"
)

// UseCase use case оформления бронирования из накопленного черновика.
// Черновик валидируется и замораживается в бронирование атомарно:
// при любой ошибке ничего не записывается и черновик остается как был,
// при успехе черновик очищается.
type UseCase struct {
	selections   SelectionStore
	bookingRepo  BookingRepository
	userRepo     UserRepository
	catalog      Catalog
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	selections SelectionStore,
	bookingRepo BookingRepository,
	userRepo UserRepository,
	catalog Catalog,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		selections:   selections,
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		catalog:      catalog,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case оформления бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: user=%d", req.UserID)

	// Работаем со снапшотом черновика: до успешной записи в БД
	// оригинал не трогаем
	selection := uc.selections.Get(req.UserID)

	if err := validateSelection(selection); err != nil {
		uc.logger.Warn("SubmitBooking: user=%d selection incomplete: %v", req.UserID, err)
		return nil, err
	}

	if err := validateDate(*selection.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("SubmitBooking: user=%d date in the past", req.UserID)
		return nil, err
	}

	// Автомобиль должен существовать и принадлежать отправителю
	car, ownerID, err := uc.userRepo.CarByID(ctx, *selection.CarID)
	if err != nil {
		if errors.Is(err, userRepo.ErrCarNotFound) {
			uc.logger.Warn("SubmitBooking: car id=%d not found", *selection.CarID)
			return nil, ErrCarNotFound
		}
		uc.logger.Error("SubmitBooking: failed to get car id=%d: %v", *selection.CarID, err)
		return nil, fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
	}
	if ownerID != req.UserID {
		uc.logger.Warn("SubmitBooking: car id=%d belongs to user=%d, not user=%d", car.ID, ownerID, req.UserID)
		return nil, ErrCarNotOwned
	}

	if selection.MechanicID != nil {
		if _, err := uc.catalog.MechanicByID(*selection.MechanicID); err != nil {
			uc.logger.Warn("SubmitBooking: mechanic id=%s not found", *selection.MechanicID)
			return nil, ErrMechanicNotFound
		}
	}

	// Суммы пересчитываются из снапшота на момент отправки,
	// клиентские значения не принимаются
	amounts := selection.Totals()

	booking := &domain.Booking{
		UserID:      req.UserID,
		CarID:       car.ID,
		Services:    selection.Services,
		BookingDate: *selection.Date,
		SlotStart:   selection.TimeSlot.StartTime,
		SlotEnd:     selection.TimeSlot.EndTime,
		MechanicID:  selection.MechanicID,
		Status:      domain.StatusPending,
		TotalAmount: amounts.Total,
		GSTAmount:   amounts.GST,
		FinalAmount: amounts.Final,
		CarBrand:    car.Brand,
		CarModel:    car.Model,
	}

	// Запись в bookings и booking_services атомарна
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		booking = created
		return nil
	})
	if err != nil {
		uc.logger.Error("SubmitBooking: user=%d create failed: %v", req.UserID, err)
		return nil, err
	}

	// Черновик очищается только после успешной записи
	uc.selections.Clear(req.UserID)

	uc.logger.Info("SubmitBooking: user=%d created booking id=%d, final=%0.2f",
		req.UserID, booking.ID, booking.FinalAmount)
	return toResponse(booking), nil
}
