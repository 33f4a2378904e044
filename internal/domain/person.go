package domain

import (
	"fmt"
	"strings"
	"time"
)

type PersonKind string

const (
	PersonKindClient PersonKind = "client"
	PersonKindCrew   PersonKind = "crew"
)

// Contact holds the fields shared by every registered person. Document is the
// natural key: one namespace across clients and crew members.
type Contact struct {
	Document  string
	LastName  string
	FirstName string
	Email     string
	Phone     string
}

func (c Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Person is either a *Client or a *CrewMember, discriminated by Kind.
type Person interface {
	Info() Contact
	Kind() PersonKind
}

// Client is a passenger. FlightHistory keeps the codes of flights booked,
// in booking order, without duplicates.
type Client struct {
	Contact
	Nationality   string
	RegisteredAt  time.Time
	FlightHistory []string
}

func (c *Client) Info() Contact    { return c.Contact }
func (c *Client) Kind() PersonKind { return PersonKindClient }

// AddFlightToHistory appends code unless already present.
func (c *Client) AddFlightToHistory(code string) {
	for _, existing := range c.FlightHistory {
		if existing == code {
			return
		}
	}
	c.FlightHistory = append(c.FlightHistory, code)
}

func (c *Client) String() string {
	return fmt.Sprintf("Client: %s - Doc: %s - Nationality: %s", c.FullName(), c.Document, c.Nationality)
}

type Role string

const (
	RolePilot     Role = "pilot"
	RoleCopilot   Role = "copilot"
	RoleAttendant Role = "attendant"
)

// ParseRole normalizes the user-supplied role name. Accepted spellings are
// case-insensitive; "co-pilot" and "flight-attendant" map to their short forms.
func ParseRole(raw string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pilot":
		return RolePilot, true
	case "copilot", "co-pilot":
		return RoleCopilot, true
	case "attendant", "flight-attendant":
		return RoleAttendant, true
	}
	return "", false
}

// CrewMember is airline staff assignable to a flight's crew.
type CrewMember struct {
	Contact
	Role        Role
	JoinedAt    time.Time
	FlightHours float64
}

func (m *CrewMember) Info() Contact    { return m.Contact }
func (m *CrewMember) Kind() PersonKind { return PersonKindCrew }

func (m *CrewMember) String() string {
	return fmt.Sprintf("Crew member (%s): %s - Doc: %s - %.0f flight hours", m.Role, m.FullName(), m.Document, m.FlightHours)
}
