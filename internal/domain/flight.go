package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateTimeLayout is the format used for every date shown to or read from the
// operator: day/month/year hour:minute.
const DateTimeLayout = "02/01/2006 15:04"

type FlightType string

const (
	FlightTypeNational      FlightType = "national"
	FlightTypeInternational FlightType = "international"
)

// ParseFlightType normalizes the user-supplied flight type, case-insensitive.
func ParseFlightType(raw string) (FlightType, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "national":
		return FlightTypeNational, true
	case "international":
		return FlightTypeInternational, true
	}
	return "", false
}

type FlightStatus string

const (
	FlightStatusActive    FlightStatus = "active"
	FlightStatusCancelled FlightStatus = "cancelled"
)

// Crew holds the three role buckets of a flight, as document back-references
// into the person registry.
type Crew struct {
	Pilots     []string
	Copilots   []string
	Attendants []string
}

// Has reports whether the document appears in any bucket.
func (c Crew) Has(document string) bool {
	for _, bucket := range [][]string{c.Pilots, c.Copilots, c.Attendants} {
		for _, doc := range bucket {
			if doc == document {
				return true
			}
		}
	}
	return false
}

// Assign appends the document to the bucket matching role.
func (c *Crew) Assign(role Role, document string) {
	switch role {
	case RolePilot:
		c.Pilots = append(c.Pilots, document)
	case RoleCopilot:
		c.Copilots = append(c.Copilots, document)
	case RoleAttendant:
		c.Attendants = append(c.Attendants, document)
	}
}

// Complete reports whether every bucket has at least one member.
func (c Crew) Complete() bool {
	return len(c.Pilots) >= 1 && len(c.Copilots) >= 1 && len(c.Attendants) >= 1
}

// Flight is a scheduled trip. It exclusively owns its tickets and baggage;
// passengers and crew are referenced by document. Cancellation is terminal:
// the ticket/baggage/crew lists stay behind as a historical snapshot.
type Flight struct {
	Code          string
	Origin        string
	Destination   string
	DurationHours float64
	DepartsAt     time.Time
	AirlineCode   string
	Capacity      int
	Type          FlightType
	Status        FlightStatus
	Tickets       []*Ticket
	Baggage       []*Baggage
	Crew          Crew
	CancelCause   string
	CancelledAt   time.Time

	ticketSeq int
}

func NewFlight(code, origin, destination string, durationHours float64, departsAt time.Time, airlineCode string, capacity int, typ FlightType) *Flight {
	return &Flight{
		Code:          code,
		Origin:        origin,
		Destination:   destination,
		DurationHours: durationHours,
		DepartsAt:     departsAt,
		AirlineCode:   airlineCode,
		Capacity:      capacity,
		Type:          typ,
		Status:        FlightStatusActive,
	}
}

func (f *Flight) IsInternational() bool {
	return f.Type == FlightTypeInternational
}

func (f *Flight) IsActive() bool {
	return f.Status == FlightStatusActive
}

func (f *Flight) AvailableSeats() int {
	return f.Capacity - len(f.Tickets)
}

// IssueTicket creates the next ticket for the passenger. Numbers come from a
// per-flight monotonic sequence and are never reused, so after cancellations
// the numbers in use are not a dense 1..count range. Returns false when the
// flight is full.
func (f *Flight) IssueTicket(passengerDocument string) (*Ticket, bool) {
	if len(f.Tickets) >= f.Capacity {
		return nil, false
	}
	f.ticketSeq++
	t := &Ticket{
		Number:            f.ticketSeq,
		PassengerDocument: passengerDocument,
		FlightCode:        f.Code,
	}
	f.Tickets = append(f.Tickets, t)
	return t, true
}

func (f *Flight) TicketByNumber(number int) (*Ticket, bool) {
	for _, t := range f.Tickets {
		if t.Number == number {
			return t, true
		}
	}
	return nil, false
}

func (f *Flight) TicketByPassenger(document string) (*Ticket, bool) {
	for _, t := range f.Tickets {
		if t.PassengerDocument == document {
			return t, true
		}
	}
	return nil, false
}

// RemoveTicket drops the ticket with the given number. Remaining tickets keep
// their numbers.
func (f *Flight) RemoveTicket(number int) {
	kept := f.Tickets[:0]
	for _, t := range f.Tickets {
		if t.Number != number {
			kept = append(kept, t)
		}
	}
	f.Tickets = kept
}

func (f *Flight) AddBaggage(b *Baggage) {
	f.Baggage = append(f.Baggage, b)
}

func (f *Flight) RemoveBaggage(code string) {
	kept := f.Baggage[:0]
	for _, b := range f.Baggage {
		if b.Code != code {
			kept = append(kept, b)
		}
	}
	f.Baggage = kept
}

func (f *Flight) BaggageByPassenger(document string) (*Baggage, bool) {
	for _, b := range f.Baggage {
		if b.PassengerDocument == document {
			return b, true
		}
	}
	return nil, false
}

// Cancel marks the flight cancelled. Terminal: there is no un-cancel.
func (f *Flight) Cancel(cause string, at time.Time) {
	f.Status = FlightStatusCancelled
	f.CancelCause = cause
	f.CancelledAt = at
}

func (f *Flight) String() string {
	return fmt.Sprintf("Flight %s - %s → %s - %s - Status: %s", f.Code, f.Origin, f.Destination, f.DepartsAt.Format(DateTimeLayout), f.Status)
}
