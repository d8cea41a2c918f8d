package bookingflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"busline/internal/domain"
	"busline/internal/domain/models"
)

// Client talks to the booking backend. The session store is injected so
// tests (and callers) control exactly which account submits.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Session *SessionStore
}

func NewClient(baseURL string, session *SessionStore) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		Session: session,
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// FetchTrip loads the trip detail for the booking view. Unknown trips map
// to a domain NotFoundError so callers can render the not-found state.
func (c *Client) FetchTrip(ctx context.Context, tripID int64) (*models.Trip, error) {
	var envelope struct {
		Data *models.Trip `json:"data"`
	}
	status, err := c.getJSON(ctx, fmt.Sprintf("/api/schedule/trips/%d", tripID), &envelope)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound || envelope.Data == nil {
		return nil, domain.NotFoundError{Resource: "trip"}
	}
	if status < 200 || status >= 300 {
		return nil, ServerRejectedError{StatusCode: status}
	}
	return envelope.Data, nil
}

// FetchBookedSeats returns the set of already-ticketed seat codes for a
// trip. It is fail-open: on any failure the returned set is empty and the
// error is reported for display, but the caller keeps going. The server
// still validates every seat at submission time.
func (c *Client) FetchBookedSeats(ctx context.Context, tripID int64) (map[string]bool, error) {
	var payload struct {
		BookedSeats []string `json:"booked_seats"`
	}
	status, err := c.getJSON(ctx, fmt.Sprintf("/api/trips/%d/booked-seats", tripID), &payload)
	if err != nil {
		return map[string]bool{}, err
	}
	if status < 200 || status >= 300 {
		return map[string]bool{}, ServerRejectedError{StatusCode: status}
	}
	booked := make(map[string]bool, len(payload.BookedSeats))
	for _, code := range payload.BookedSeats {
		booked[strings.ToUpper(strings.TrimSpace(code))] = true
	}
	return booked, nil
}

// SubmitBooking posts the booking request and interprets the response. The
// session must already have been checked by the caller; the bearer header is
// attached when a token is present.
func (c *Client) SubmitBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, NetworkError{Op: "encode booking", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/schedule/bookings", bytes.NewReader(body))
	if err != nil {
		return nil, NetworkError{Op: "build booking request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	c.attachBearer(httpReq)

	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return nil, NetworkError{Op: "submit booking", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NetworkError{Op: "read booking response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, ServerRejectedError{
			StatusCode: resp.StatusCode,
			Message:    decodeServerMessage(raw),
		}
	}

	var result models.BookingResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, NetworkError{Op: "decode booking response", Err: err}
	}
	return &result, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dst any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return 0, NetworkError{Op: "build request", Err: err}
	}
	c.attachBearer(req)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return 0, NetworkError{Op: "fetch " + path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, NetworkError{Op: "read " + path, Err: err}
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if err := json.Unmarshal(raw, dst); err != nil {
			return resp.StatusCode, NetworkError{Op: "decode " + path, Err: err}
		}
	}
	return resp.StatusCode, nil
}

func (c *Client) attachBearer(req *http.Request) {
	if c.Session == nil {
		return
	}
	if token := strings.TrimSpace(c.Session.Load().Token); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// decodeServerMessage pulls the server's own error text out of a failure
// body, preferring "error" over "message"; a non-JSON body yields "".
func decodeServerMessage(raw []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	if strings.TrimSpace(payload.Error) != "" {
		return payload.Error
	}
	return payload.Message
}
