// Package cache keeps the hot booked-seats sets in Redis so the seat
// selector overlay does not hit MySQL on every open. Values are short-lived
// and invalidated after each successful booking; the database remains the
// source of truth.
package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// SeatCacheTTL is short on purpose: a stale overlay only costs the user a
// rejected seat at submission time.
const SeatCacheTTL = 30 * time.Second

const seatCachePrefix = "cache:trip-seats:"

// SeatCache is what the booking service depends on; a nil store disables
// caching entirely.
type SeatCache interface {
	GetBookedSeats(ctx context.Context, tripID int64) ([]string, bool, error)
	SetBookedSeats(ctx context.Context, tripID int64, seats []string) error
	InvalidateTrip(ctx context.Context, tripID int64) error
}

// SeatStore is the Redis-backed implementation.
type SeatStore struct {
	client *redis.Client
}

func NewSeatStore(client *redis.Client) *SeatStore {
	return &SeatStore{client: client}
}

var _ SeatCache = (*SeatStore)(nil)

func seatKey(tripID int64) string {
	return seatCachePrefix + strconv.FormatInt(tripID, 10)
}

// GetBookedSeats returns the cached set and whether it was a hit.
func (s *SeatStore) GetBookedSeats(ctx context.Context, tripID int64) ([]string, bool, error) {
	data, err := s.client.Get(ctx, seatKey(tripID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var seats []string
	if err := json.Unmarshal(data, &seats); err != nil {
		return nil, false, err
	}
	return seats, true, nil
}

// SetBookedSeats stores the set with the standard TTL. An empty set is
// cached too; "no seats booked" is a valid answer.
func (s *SeatStore) SetBookedSeats(ctx context.Context, tripID int64, seats []string) error {
	if seats == nil {
		seats = []string{}
	}
	data, err := json.Marshal(seats)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, seatKey(tripID), data, SeatCacheTTL).Err()
}

// InvalidateTrip drops the cached set after a booking lands.
func (s *SeatStore) InvalidateTrip(ctx context.Context, tripID int64) error {
	return s.client.Del(ctx, seatKey(tripID)).Err()
}
