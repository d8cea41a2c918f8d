package repositories

import (
	"database/sql"
	"strings"

	intconfig "busline/internal/config"
	dbpkg "busline/internal/db"
	"busline/internal/domain"
	"busline/internal/domain/models"
	"busline/internal/utils"
)

type AccountRepository struct {
	DB *sql.DB
}

func (r AccountRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByEmail returns the account and its password hash for login checks.
func (r AccountRepository) GetByEmail(email string) (models.Account, string, error) {
	var (
		out  models.Account
		hash string
	)
	err := r.db().QueryRow(`
		SELECT account_id, full_name, email, COALESCE(phone, ''), COALESCE(role, 'USER'), password_hash
		FROM account
		WHERE email = ?`, strings.TrimSpace(email)).Scan(
		&out.AccountID,
		&out.FullName,
		&out.Email,
		&out.Phone,
		&out.Role,
		&hash,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return out, "", domain.NotFoundError{Resource: "account", Err: err}
		}
		return out, "", domain.InternalError{Err: err}
	}
	return out, hash, nil
}

// GetProfile loads the profile card for one account.
func (r AccountRepository) GetProfile(accountID int64) (models.Profile, error) {
	var (
		out       models.Profile
		phone     sql.NullString
		createdAt sql.NullTime
	)
	err := r.db().QueryRow(`
		SELECT account_id, full_name, email, phone, COALESCE(role, 'USER'), created_at
		FROM account
		WHERE account_id = ?`, accountID).Scan(
		&out.AccountID,
		&out.FullName,
		&out.Email,
		&phone,
		&out.Role,
		&createdAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return out, domain.NotFoundError{Resource: "account", Err: err}
		}
		return out, domain.InternalError{Err: err}
	}
	out.Phone = phone.String
	if createdAt.Valid {
		out.MemberSince = utils.FormatDateTime(createdAt.Time)
	}
	return out, nil
}

// Exists reports whether an account already uses the email or phone.
func (r AccountRepository) Exists(email, phone string) (bool, error) {
	var count int
	err := r.db().QueryRow(`
		SELECT COUNT(*)
		FROM account
		WHERE email = ? OR phone = ?`, strings.TrimSpace(email), strings.TrimSpace(phone)).Scan(&count)
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	return count > 0, nil
}

// ExistsByID confirms the booking payload points at a real account.
func (r AccountRepository) ExistsByID(accountID int64) (bool, error) {
	var count int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM account WHERE account_id = ?`, accountID).Scan(&count)
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	return count > 0, nil
}

// Create inserts a passenger account and returns its id.
func (r AccountRepository) Create(fullName, email, phone, passwordHash string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO account (full_name, email, phone, password_hash, role, created_at)
		VALUES (?, ?, ?, ?, 'USER', NOW())`,
		strings.TrimSpace(fullName),
		strings.TrimSpace(email),
		dbpkg.NullIfEmpty(strings.TrimSpace(phone)),
		passwordHash,
	)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return id, nil
}
