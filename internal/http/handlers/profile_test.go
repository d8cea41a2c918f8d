package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	intconfig "busline/internal/config"
	"busline/internal/http/middleware"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func profileRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.BearerAuth(getJWTSecret()))
	grp := r.Group("/api/profile")
	grp.Use(middleware.RequireAuth())
	grp.GET("/:id", Profile)
	grp.GET("/:id/tickets", ProfileTickets)
	return r
}

func signTestToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"account_id": 7,
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(getJWTSecret())
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestProfileRequiresAuth(t *testing.T) {
	r := profileRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profile/7", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestProfileReturnsAccountCard(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	defer func() { intconfig.DB = nil }()

	created := time.Date(2025, 11, 2, 10, 0, 0, 0, time.Local)
	mock.ExpectQuery(`FROM account`).WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"account_id", "full_name", "email", "phone", "role", "created_at"}).
			AddRow(7, "Linh Tran", "linh@example.com", "0901234567", "USER", created))

	r := profileRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profile/7", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var payload struct {
		Data struct {
			FullName    string `json:"full_name"`
			Email       string `json:"email"`
			MemberSince string `json:"member_since"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Data.FullName != "Linh Tran" || payload.Data.Email != "linh@example.com" {
		t.Fatalf("unexpected profile payload: %+v", payload.Data)
	}
	if payload.Data.MemberSince == "" {
		t.Fatal("expected member_since to be set")
	}
}

func TestProfileTicketsEmptyHistory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	defer func() { intconfig.DB = nil }()

	mock.ExpectQuery(`FROM ticket t`).WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{
			"ticket_id", "booking_id", "trip_id", "seat_code", "serial_number", "seat_price",
			"service_date", "arrival_datetime", "trip_status",
			"vehicle_type", "plate_number", "brand_name", "dep_city", "arr_city",
		}))

	r := profileRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profile/7/tickets", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var payload struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Data == nil {
		t.Fatal("expected an empty array, not null")
	}
	if len(payload.Data) != 0 {
		t.Fatalf("expected empty history, got %d rows", len(payload.Data))
	}
}

func TestProfileUnknownAccount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	defer func() { intconfig.DB = nil }()

	mock.ExpectQuery(`FROM account`).WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows([]string{"account_id", "full_name", "email", "phone", "role", "created_at"}))

	r := profileRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profile/999", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown account, got %d", w.Code)
	}
}
