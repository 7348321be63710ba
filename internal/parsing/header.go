// Package parsing extracts ticket headers and line items from the plain text
// of a receipt.
package parsing

import (
	"regexp"
	"strings"
)

// Sentinel values returned when a header field cannot be located. Absence of
// a field is a valid terminal state, not an error.
const (
	TimestampNotFound = "Fecha no encontrada"
	TicketIDNotFound  = "Identificativo no encontrado"
	LocationNotFound  = "Ubicación no encontrada"
)

// TimestampLayout is the Go layout of ticket timestamps (DD/MM/YYYY HH:MM).
const TimestampLayout = "02/01/2006 15:04"

// Header holds the ticket metadata extracted from receipt text.
type Header struct {
	Timestamp string
	TicketID  string
	Location  string
}

var (
	timestampPattern = regexp.MustCompile(`\d{2}/\d{2}/\d{4} \d{2}:\d{2}`)
	ticketIDPattern  = regexp.MustCompile(`FACTURA SIMPLIFICADA:\s+([0-9-]+)`)
	locationPattern  = regexp.MustCompile(`(?s)MERCADONA, S\.A\.(.*?)TELÉFONO:`)
)

// ExtractHeader pulls the timestamp, ticket identifier, and store location
// out of receipt text. Each field degrades to its sentinel when no match is
// found.
func ExtractHeader(text string) Header {
	header := Header{
		Timestamp: TimestampNotFound,
		TicketID:  TicketIDNotFound,
		Location:  LocationNotFound,
	}

	if m := timestampPattern.FindString(text); m != "" {
		header.Timestamp = m
	}
	if m := ticketIDPattern.FindStringSubmatch(text); m != nil {
		header.TicketID = m[1]
	}
	if m := locationPattern.FindStringSubmatch(text); m != nil {
		if location := strings.TrimSpace(m[1]); location != "" {
			header.Location = location
		}
	}

	return header
}
