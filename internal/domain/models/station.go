package models

// Station is a departure/arrival point exposed to the search form.
type Station struct {
	StationID   string `json:"station_id"`
	City        string `json:"city"`
	StationName string `json:"station_name"`
}

// Account is the authenticated user payload returned by auth endpoints.
// The password hash never leaves the repository layer.
type Account struct {
	AccountID int64  `json:"account_id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}
