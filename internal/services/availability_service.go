package services

import (
	"context"
	"database/sql"
	"fmt"

	"busline/internal/cache"
	intconfig "busline/internal/config"
	"busline/internal/domain"
	"busline/internal/domain/models"
	"busline/internal/repositories"
	"busline/internal/utils"
)

// AvailabilityService serves the booked-seat overlay, going through the
// seat cache when one is configured. Cache errors degrade to a direct
// database read; they never fail the request.
type AvailabilityService struct {
	DB         *sql.DB
	TicketRepo repositories.TicketRepository
	SeatCache  cache.SeatCache
	RequestID  string
}

func (s AvailabilityService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s AvailabilityService) tickets() repositories.TicketRepository {
	if s.TicketRepo.DB != nil {
		return s.TicketRepo
	}
	return repositories.TicketRepository{DB: s.db()}
}

// BookedSeats returns the seat codes with active tickets on the trip.
func (s AvailabilityService) BookedSeats(ctx context.Context, tripID int64) ([]string, error) {
	if tripID <= 0 {
		return nil, domain.ValidationError{Field: "trip_id", Msg: "invalid id"}
	}

	exists, err := s.tickets().TripExists(tripID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NotFoundError{Resource: "trip"}
	}

	if s.SeatCache != nil {
		if seats, hit, err := s.SeatCache.GetBookedSeats(ctx, tripID); err == nil && hit {
			return seats, nil
		} else if err != nil {
			utils.LogEvent(s.RequestID, "availability", "cache_read", fmt.Sprintf("trip_id=%d err=%v", tripID, err))
		}
	}

	seats, err := s.tickets().ListBookedSeats(tripID)
	if err != nil {
		return nil, err
	}

	if s.SeatCache != nil {
		if err := s.SeatCache.SetBookedSeats(ctx, tripID, seats); err != nil {
			utils.LogEvent(s.RequestID, "availability", "cache_write", fmt.Sprintf("trip_id=%d err=%v", tripID, err))
		}
	}
	return seats, nil
}

// SeatSummary reports capacity, availability, and occupancy for one trip.
func (s AvailabilityService) SeatSummary(ctx context.Context, tripID int64) (models.SeatSummary, error) {
	var out models.SeatSummary

	booked, err := s.BookedSeats(ctx, tripID)
	if err != nil {
		return out, err
	}

	capacity, err := s.tickets().TripCapacity(tripID)
	if err != nil {
		return out, err
	}

	available := capacity - len(booked)
	if available < 0 {
		available = 0
	}

	out = models.SeatSummary{
		TripID:         tripID,
		TotalCapacity:  capacity,
		AvailableSeats: available,
		BookedSeats:    booked,
	}
	if capacity > 0 {
		out.OccupancyRate = float64(capacity-available) / float64(capacity) * 100
	}
	return out, nil
}
