package repositories

import (
	"database/sql"
	"fmt"

	intconfig "busline/internal/config"
	"busline/internal/domain"
	"busline/internal/domain/models"
)

type StationRepository struct {
	DB *sql.DB
}

func (r StationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListActive returns stations available to the search form, city-ordered.
func (r StationRepository) ListActive() ([]models.Station, error) {
	rows, err := r.db().Query(`
		SELECT station_id, city, station_name
		FROM station
		WHERE active_flag = 'Active'
		ORDER BY city, station_name`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Station{}
	for rows.Next() {
		var (
			id int64
			s  models.Station
		)
		if err := rows.Scan(&id, &s.City, &s.StationName); err != nil {
			return out, domain.InternalError{Err: err}
		}
		s.StationID = fmt.Sprintf("%d", id)
		out = append(out, s)
	}
	return out, rows.Err()
}
