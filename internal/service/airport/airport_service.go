package airport

import (
	"fmt"
	"strings"
	"time"

	"github.com/nmartinez-uy/flightdesk/internal/apperr"
	"github.com/nmartinez-uy/flightdesk/internal/domain"
	"github.com/nmartinez-uy/flightdesk/pkg/logger"
)

// AirportUseCase is the surface consumed by the presentation layer.
type AirportUseCase interface {
	RegisterPerson(input RegisterPersonInput) (domain.Person, error)
	RegisterAirline(input RegisterAirlineInput) (*domain.Airline, error)
	CreateFlight(input CreateFlightInput) (*domain.Flight, error)
	CreateTicket(flightCode, passengerDocument string) (*domain.Ticket, error)
	AssignCrew(flightCode, crewDocument string) error
	RegisterBaggage(flightCode string, ticketNumber int, weightKG float64) (*domain.Baggage, error)
	CancelTicket(flightCode string, ticketNumber int) error
	CancelFlight(flightCode, targetFlightCode, cause string) error
	CrewComplete(flightCode string) (bool, error)

	Clients() []*domain.Client
	CrewMembers() []*domain.CrewMember
	ActiveFlights() []*domain.Flight

	PassengerReport(flightCode string) (string, error)
	CrewReport(flightCode string) (string, error)
	AirlineSummaryReport() string
	CancelledFlightsReport() string
	ActiveFlightsReport() string
}

type RegisterPersonInput struct {
	Kind      string
	Document  string
	LastName  string
	FirstName string
	Email     string
	Phone     string

	// client only
	Nationality string

	// crew only
	Role        string
	JoinedAt    time.Time
	FlightHours float64
}

type RegisterAirlineInput struct {
	Code    string
	Name    string
	Country string
}

type CreateFlightInput struct {
	Origin        string
	Destination   string
	DurationHours float64
	DepartsAt     time.Time
	AirlineCode   string
	Capacity      int
	Type          string
}

// AirportService owns every registry and enforces every invariant. All state
// is memory-resident and mutated only through its methods; it is not safe for
// concurrent callers.
type AirportService struct {
	log logger.Logger
	now func() time.Time

	people      map[string]domain.Person
	peopleOrder []string

	airlines         map[string]*domain.Airline
	airlineOrder     []string
	flights          map[string]*domain.Flight
	flightOrder      []string
	soldTickets      []*domain.Ticket
	cancelledTickets []*domain.Ticket

	flightSeq int
}

type AirportServiceOption func(*AirportService)

func WithLogger(log logger.Logger) AirportServiceOption {
	return func(s *AirportService) {
		s.log = log
	}
}

// WithClock overrides the time source used for registration and cancellation
// timestamps.
func WithClock(now func() time.Time) AirportServiceOption {
	return func(s *AirportService) {
		s.now = now
	}
}

func NewAirportService(opts ...AirportServiceOption) *AirportService {
	s := &AirportService{
		log:       logger.NewNop(),
		now:       time.Now,
		people:    make(map[string]domain.Person),
		airlines:  make(map[string]*domain.Airline),
		flights:   make(map[string]*domain.Flight),
		flightSeq: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

const (
	PersonKindClient = "client"
	PersonKindCrew   = "crew"
)

// RegisterPerson adds a client or a crew member. The document is the single
// uniqueness key across both kinds.
func (s *AirportService) RegisterPerson(input RegisterPersonInput) (domain.Person, error) {
	if _, ok := s.people[input.Document]; ok {
		return nil, apperr.Duplicatef("a person with document %s already exists", input.Document)
	}

	contact := domain.Contact{
		Document:  input.Document,
		LastName:  input.LastName,
		FirstName: input.FirstName,
		Email:     input.Email,
		Phone:     input.Phone,
	}

	var person domain.Person
	switch strings.ToLower(strings.TrimSpace(input.Kind)) {
	case PersonKindClient:
		if input.Nationality == "" {
			return nil, apperr.Invalidf("nationality is required for clients")
		}
		person = &domain.Client{
			Contact:      contact,
			Nationality:  input.Nationality,
			RegisteredAt: s.now(),
		}
	case PersonKindCrew:
		if input.Role == "" {
			return nil, apperr.Invalidf("role is required for crew members")
		}
		role, ok := domain.ParseRole(input.Role)
		if !ok {
			return nil, apperr.Invalidf("invalid role %q: must be pilot, copilot or attendant", input.Role)
		}
		person = &domain.CrewMember{
			Contact:     contact,
			Role:        role,
			JoinedAt:    input.JoinedAt,
			FlightHours: input.FlightHours,
		}
	default:
		return nil, apperr.Invalidf("invalid person kind %q: must be %q or %q", input.Kind, PersonKindClient, PersonKindCrew)
	}

	s.people[input.Document] = person
	s.peopleOrder = append(s.peopleOrder, input.Document)
	s.log.Info("person registered", "kind", person.Kind(), "document", input.Document)
	return person, nil
}

func (s *AirportService) RegisterAirline(input RegisterAirlineInput) (*domain.Airline, error) {
	if _, ok := s.airlines[input.Code]; ok {
		return nil, apperr.Duplicatef("an airline with code %s already exists", input.Code)
	}

	airline := &domain.Airline{Code: input.Code, Name: input.Name, Country: input.Country}
	s.airlines[input.Code] = airline
	s.airlineOrder = append(s.airlineOrder, input.Code)
	s.log.Info("airline registered", "code", input.Code, "name", input.Name)
	return airline, nil
}

// CreateFlight generates the flight code from the airline code plus a global
// zero-padded counter shared across all airlines, consumed only on success.
func (s *AirportService) CreateFlight(input CreateFlightInput) (*domain.Flight, error) {
	if _, ok := s.airlines[input.AirlineCode]; !ok {
		return nil, apperr.NotFoundf("no airline with code %s", input.AirlineCode)
	}

	typ, ok := domain.ParseFlightType(input.Type)
	if !ok {
		return nil, apperr.Invalidf("invalid flight type %q: must be national or international", input.Type)
	}

	code := fmt.Sprintf("%s%03d", input.AirlineCode, s.flightSeq)
	s.flightSeq++

	flight := domain.NewFlight(code, input.Origin, input.Destination, input.DurationHours, input.DepartsAt, input.AirlineCode, input.Capacity, typ)
	s.flights[code] = flight
	s.flightOrder = append(s.flightOrder, code)
	s.log.Info("flight created", "code", code, "origin", input.Origin, "destination", input.Destination, "capacity", input.Capacity, "type", typ)
	return flight, nil
}

// CreateTicket books the passenger on the flight and records the flight in
// the passenger's history.
func (s *AirportService) CreateTicket(flightCode, passengerDocument string) (*domain.Ticket, error) {
	flight, ok := s.flights[flightCode]
	if !ok {
		return nil, apperr.NotFoundf("no flight with code %s", flightCode)
	}
	if !flight.IsActive() {
		return nil, apperr.Invalidf("tickets cannot be created on a cancelled flight")
	}

	client, ok := s.clientByDocument(passengerDocument)
	if !ok {
		return nil, apperr.NotFoundf("no client with document %s", passengerDocument)
	}
	if _, ok := flight.TicketByPassenger(passengerDocument); ok {
		return nil, apperr.Duplicatef("the passenger already holds a ticket on this flight")
	}

	ticket, ok := flight.IssueTicket(passengerDocument)
	if !ok {
		return nil, apperr.FlightFullf("no seats available on flight %s", flightCode)
	}

	s.soldTickets = append(s.soldTickets, ticket)
	client.AddFlightToHistory(flightCode)
	s.log.Info("ticket created", "flight", flightCode, "number", ticket.Number, "passenger", passengerDocument)
	return ticket, nil
}

// AssignCrew places the crew member into the flight's bucket for their role.
func (s *AirportService) AssignCrew(flightCode, crewDocument string) error {
	flight, ok := s.flights[flightCode]
	if !ok {
		return apperr.NotFoundf("no flight with code %s", flightCode)
	}
	if !flight.IsActive() {
		return apperr.Invalidf("crew cannot be assigned to a cancelled flight")
	}

	member, ok := s.crewByDocument(crewDocument)
	if !ok {
		return apperr.NotFoundf("no crew member with document %s", crewDocument)
	}
	if flight.Crew.Has(crewDocument) {
		return apperr.Duplicatef("this crew member is already assigned to this flight")
	}

	flight.Crew.Assign(member.Role, crewDocument)
	s.log.Info("crew assigned", "flight", flightCode, "document", crewDocument, "role", member.Role)
	return nil
}

// CrewComplete reports whether the flight has at least one pilot, one copilot
// and one attendant.
func (s *AirportService) CrewComplete(flightCode string) (bool, error) {
	flight, ok := s.flights[flightCode]
	if !ok {
		return false, apperr.NotFoundf("no flight with code %s", flightCode)
	}
	return flight.Crew.Complete(), nil
}

// RegisterBaggage checks in one bag for the holder of the given ticket. A
// passenger gets at most one bag per flight.
func (s *AirportService) RegisterBaggage(flightCode string, ticketNumber int, weightKG float64) (*domain.Baggage, error) {
	flight, ok := s.flights[flightCode]
	if !ok {
		return nil, apperr.NotFoundf("no flight with code %s", flightCode)
	}
	if !flight.IsActive() {
		return nil, apperr.Invalidf("baggage cannot be registered on a cancelled flight")
	}

	ticket, ok := flight.TicketByNumber(ticketNumber)
	if !ok {
		return nil, apperr.NotFoundf("no ticket #%d on flight %s", ticketNumber, flightCode)
	}
	if _, ok := flight.BaggageByPassenger(ticket.PassengerDocument); ok {
		return nil, apperr.Duplicatef("this passenger already has baggage registered on this flight")
	}
	if weightKG <= 0 {
		return nil, apperr.Invalidf("baggage weight must be positive")
	}

	cost, err := domain.BaggageCost(weightKG, flight.IsInternational())
	if err != nil {
		return nil, apperr.InvalidBaggagef("%v", err)
	}

	baggage := &domain.Baggage{
		Code:              fmt.Sprintf("%s-%d", flightCode, ticketNumber),
		PassengerDocument: ticket.PassengerDocument,
		WeightKG:          weightKG,
		Cost:              cost,
		International:     flight.IsInternational(),
	}
	flight.AddBaggage(baggage)
	s.log.Info("baggage registered", "code", baggage.Code, "weight_kg", weightKG, "cost", cost)
	return baggage, nil
}

// CancelTicket frees the seat, drops the matching baggage and moves the
// ticket to the cancelled history. Allowed on cancelled flights too.
func (s *AirportService) CancelTicket(flightCode string, ticketNumber int) error {
	flight, ok := s.flights[flightCode]
	if !ok {
		return apperr.NotFoundf("no flight with code %s", flightCode)
	}
	ticket, ok := flight.TicketByNumber(ticketNumber)
	if !ok {
		return apperr.NotFoundf("no ticket #%d on flight %s", ticketNumber, flightCode)
	}

	flight.RemoveBaggage(fmt.Sprintf("%s-%d", flightCode, ticketNumber))
	flight.RemoveTicket(ticketNumber)

	s.cancelledTickets = append(s.cancelledTickets, ticket)
	kept := s.soldTickets[:0]
	for _, t := range s.soldTickets {
		if t.Number != ticketNumber || t.FlightCode != flightCode {
			kept = append(kept, t)
		}
	}
	s.soldTickets = kept

	s.log.Info("ticket cancelled", "flight", flightCode, "number", ticketNumber)
	return nil
}

// CancelFlight cancels the source flight and moves its passengers, baggage
// and crew onto the target. Capacity is validated up front; the steps then run
// without rollback. The source keeps its ticket/baggage/crew lists as a
// historical snapshot.
func (s *AirportService) CancelFlight(flightCode, targetFlightCode, cause string) error {
	source, ok := s.flights[flightCode]
	if !ok {
		return apperr.NotFoundf("no flight with code %s", flightCode)
	}
	target, ok := s.flights[targetFlightCode]
	if !ok {
		return apperr.NotFoundf("no flight with code %s", targetFlightCode)
	}
	if !target.IsActive() {
		return apperr.Invalidf("the target flight must be active")
	}
	if target.AvailableSeats() < len(source.Tickets) {
		return apperr.FlightFullf("the target flight does not have enough seats available")
	}

	// Rebook every passenger with a fresh ticket number on the target and
	// swap the entry in the sold-tickets list in place.
	for _, old := range source.Tickets {
		fresh, _ := target.IssueTicket(old.PassengerDocument)
		for i, t := range s.soldTickets {
			if t.Number == old.Number && t.FlightCode == flightCode {
				s.soldTickets[i] = fresh
				break
			}
		}
	}

	// Baggage follows its passenger: fresh code, same weight and cost, the
	// international flag refreshed from the target flight.
	for _, old := range source.Baggage {
		ticket, ok := target.TicketByPassenger(old.PassengerDocument)
		if !ok {
			s.log.Warn("baggage dropped during reassignment: passenger has no ticket on target",
				"baggage", old.Code, "target", targetFlightCode)
			continue
		}
		target.AddBaggage(&domain.Baggage{
			Code:              fmt.Sprintf("%s-%d", targetFlightCode, ticket.Number),
			PassengerDocument: old.PassengerDocument,
			WeightKG:          old.WeightKG,
			Cost:              old.Cost,
			International:     target.IsInternational(),
		})
	}

	mergeCrew(&target.Crew.Pilots, source.Crew.Pilots)
	mergeCrew(&target.Crew.Copilots, source.Crew.Copilots)
	mergeCrew(&target.Crew.Attendants, source.Crew.Attendants)

	source.Cancel(cause, s.now())
	s.log.Info("flight cancelled", "flight", flightCode, "target", targetFlightCode, "cause", cause,
		"tickets_moved", len(source.Tickets), "baggage_moved", len(source.Baggage))
	return nil
}

func mergeCrew(dst *[]string, src []string) {
	for _, doc := range src {
		present := false
		for _, existing := range *dst {
			if existing == doc {
				present = true
				break
			}
		}
		if !present {
			*dst = append(*dst, doc)
		}
	}
}

// Clients returns the registered clients in registration order.
func (s *AirportService) Clients() []*domain.Client {
	clients := make([]*domain.Client, 0)
	for _, doc := range s.peopleOrder {
		if c, ok := s.people[doc].(*domain.Client); ok {
			clients = append(clients, c)
		}
	}
	return clients
}

// CrewMembers returns the registered crew members in registration order.
func (s *AirportService) CrewMembers() []*domain.CrewMember {
	members := make([]*domain.CrewMember, 0)
	for _, doc := range s.peopleOrder {
		if m, ok := s.people[doc].(*domain.CrewMember); ok {
			members = append(members, m)
		}
	}
	return members
}

// ActiveFlights returns the active flights in creation order.
func (s *AirportService) ActiveFlights() []*domain.Flight {
	active := make([]*domain.Flight, 0)
	for _, code := range s.flightOrder {
		if f := s.flights[code]; f.IsActive() {
			active = append(active, f)
		}
	}
	return active
}

func (s *AirportService) clientByDocument(document string) (*domain.Client, bool) {
	c, ok := s.people[document].(*domain.Client)
	return c, ok
}

func (s *AirportService) crewByDocument(document string) (*domain.CrewMember, bool) {
	m, ok := s.people[document].(*domain.CrewMember)
	return m, ok
}

var _ AirportUseCase = (*AirportService)(nil)
