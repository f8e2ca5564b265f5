package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/e6carspa/booking-platform/internal/domain"
	bookingRepo "github.com/e6carspa/booking-platform/internal/infra/storage/booking"
	"github.com/e6carspa/booking-platform/internal/service/bookings/models"
)

// Service сервис чтения и смены статусов бронирований.
// Создание бронирований живет в usecase отправки черновика.
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	cache       Cache
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований.
// cache может быть nil, тогда чтение всегда идет в БД.
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	cache Cache,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		cache:       cache,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Клиент видит только свои бронирования, администратор — любые.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64, role domain.Role) (*models.BookingResponse, error) {
	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if role != domain.RoleAdmin && !booking.IsOwnedBy(userID) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает бронирования пользователя,
// отсортированные по дате и началу слота
func (s *Service) GetUserBookings(ctx context.Context, userID int64) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBookings(bookings), nil
}

// GetAllBookings получает бронирования всех пользователей.
// Доступно только администратору, роль проверяет middleware.
func (s *Service) GetAllBookings(ctx context.Context) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAllBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllBookings - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBookings(bookings), nil
}

// Confirm переводит бронирование из pending в confirmed
func (s *Service) Confirm(ctx context.Context, id int64) (*models.BookingResponse, error) {
	return s.transition(ctx, id, domain.StatusConfirmed)
}

// Complete переводит бронирование из confirmed в completed
func (s *Service) Complete(ctx context.Context, id int64) (*models.BookingResponse, error) {
	return s.transition(ctx, id, domain.StatusCompleted)
}

// transition применяет шаг жизненного цикла pending -> confirmed -> completed.
// Повторное применение уже достигнутого статуса — no-op, состояние не меняется.
// Пропуск стадии или движение назад — ошибка ErrInvalidTransition.
func (s *Service) transition(ctx context.Context, id int64, target domain.BookingStatus) (*models.BookingResponse, error) {
	var result *domain.Booking

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.bookingRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: transition - fetch booking: %v", ErrInternal, err)
		}

		if booking.Status == target {
			s.logger.Info("transition: booking id=%d already %s, no-op", id, target)
			result = booking
			return nil
		}

		if !booking.CanTransitionTo(target) {
			s.logger.Warn("transition: booking id=%d cannot go %s -> %s", id, booking.Status, target)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, target)
		}

		if err := s.bookingRepo.UpdateStatus(ctx, id, target); err != nil {
			return fmt.Errorf("%w: transition - update status: %v", ErrInternal, err)
		}

		booking.Status = target
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	s.logger.Info("transition: booking id=%d is now %s", id, result.Status)
	return models.FromDomainBooking(result), nil
}

// getBooking читает бронирование через кэш (cache-aside)
func (s *Service) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey(id)); err == nil {
			var booking domain.Booking
			if err := json.Unmarshal(data, &booking); err == nil {
				return &booking, nil
			}
			// Битое значение в кэше — игнорируем и читаем из БД
			s.invalidate(ctx, id)
		}
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("getBooking: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("getBooking: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: getBooking - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if data, err := json.Marshal(booking); err == nil {
			if err := s.cache.Set(ctx, cacheKey(id), data); err != nil {
				s.logger.Warn("getBooking: cache set failed for booking id=%d: %v", id, err)
			}
		}
	}
	return booking, nil
}

func (s *Service) invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cacheKey(id)); err != nil {
		s.logger.Warn("invalidate: cache delete failed for booking id=%d: %v", id, err)
	}
}

func cacheKey(id int64) string {
	return fmt.Sprintf("booking:%d", id)
}
