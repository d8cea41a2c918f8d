package services

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	intconfig "busline/internal/config"
	"busline/internal/domain/models"
	"busline/internal/repositories"
	"busline/internal/utils"
)

// TicketService answers the public ticket lookup and renders e-tickets.
type TicketService struct {
	DB         *sql.DB
	TicketRepo repositories.TicketRepository
	RequestID  string
}

func (s TicketService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s TicketService) tickets() repositories.TicketRepository {
	if s.TicketRepo.DB != nil {
		return s.TicketRepo
	}
	return repositories.TicketRepository{DB: s.db()}
}

// Lookup resolves a ticket by serial number plus holder phone.
func (s TicketService) Lookup(serialNumber, phone string) (models.TicketLookup, error) {
	out, err := s.tickets().Lookup(serialNumber, phone)
	if err != nil {
		return out, err
	}
	utils.LogEvent(s.RequestID, "ticket", "lookup", fmt.Sprintf("ticket_id=%d", out.TicketID))
	return out, nil
}

// GenerateETicket renders the printable PDF for one ticket.
func (s TicketService) GenerateETicket(ticketID int64) ([]byte, string, error) {
	data, err := s.tickets().GetByID(ticketID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "ticket", "generate_eticket", fmt.Sprintf("ticket_id=%d", ticketID))
	return buildETicketPDF(data)
}

func buildETicketPDF(d models.TicketLookup) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Serial Number : %s", safe(d.SerialNumber, "-")),
		fmt.Sprintf("Seat          : %s", safe(d.SeatCode, "-")),
		fmt.Sprintf("Status        : %s", safe(d.TicketStatus, "-")),
		fmt.Sprintf("Departure     : %s (%s)", safe(d.DepartureStation, "-"), safe(d.DepartureCity, "-")),
		fmt.Sprintf("Date          : %s", utils.FormatDisplayDate(d.ServiceDate)),
		fmt.Sprintf("Duration      : %s", safe(d.Duration, "-")),
		fmt.Sprintf("Vehicle       : %s (%s)", safe(d.VehicleType, "-"), safe(d.PlateNumber, "-")),
		fmt.Sprintf("Price         : %s", utils.FormatVND(d.SeatPrice)),
		fmt.Sprintf("Booking       : #%d", d.BookingID),
		fmt.Sprintf("Contact       : %s / %s", safe(d.Phone, "-"), safe(d.Email, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This e-ticket is valid for one passenger (one seat). Please present it at departure.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("eticket-%s.pdf", safeFilenamePart(d.SerialNumber))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return "ticket"
	}
	replacer := strings.NewReplacer(" ", "-", "/", "-", "\\", "-")
	return replacer.Replace(s)
}
