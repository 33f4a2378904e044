package airport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmartinez-uy/flightdesk/internal/apperr"
	"github.com/nmartinez-uy/flightdesk/internal/domain"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func newTestService() *AirportService {
	return NewAirportService(WithClock(func() time.Time { return testNow }))
}

func registerTestClient(t *testing.T, s *AirportService, document, nationality string) *domain.Client {
	t.Helper()
	person, err := s.RegisterPerson(RegisterPersonInput{
		Kind:        PersonKindClient,
		Document:    document,
		LastName:    "Perez",
		FirstName:   "Ana",
		Email:       document + "@mail.com",
		Phone:       "099123456",
		Nationality: nationality,
	})
	require.NoError(t, err)
	return person.(*domain.Client)
}

func registerTestCrew(t *testing.T, s *AirportService, document, role string) *domain.CrewMember {
	t.Helper()
	person, err := s.RegisterPerson(RegisterPersonInput{
		Kind:        PersonKindCrew,
		Document:    document,
		LastName:    "Gomez",
		FirstName:   "Luis",
		Email:       document + "@mail.com",
		Phone:       "098765432",
		Role:        role,
		JoinedAt:    testNow.AddDate(-3, 0, 0),
		FlightHours: 1200,
	})
	require.NoError(t, err)
	return person.(*domain.CrewMember)
}

func createTestFlight(t *testing.T, s *AirportService, airlineCode string, capacity int, typ string) *domain.Flight {
	t.Helper()
	if _, ok := s.airlines[airlineCode]; !ok {
		_, err := s.RegisterAirline(RegisterAirlineInput{Code: airlineCode, Name: airlineCode + " Air", Country: "Uruguay"})
		require.NoError(t, err)
	}
	flight, err := s.CreateFlight(CreateFlightInput{
		Origin:        "Montevideo",
		Destination:   "Rio de Janeiro",
		DurationHours: 2.5,
		DepartsAt:     testNow.AddDate(0, 1, 0),
		AirlineCode:   airlineCode,
		Capacity:      capacity,
		Type:          typ,
	})
	require.NoError(t, err)
	return flight
}

func TestAirportService_RegisterPerson_DuplicateDocument(t *testing.T) {
	s := newTestService()
	registerTestClient(t, s, "11111", "Uruguayan")

	// Same document as crew: one namespace across both kinds.
	_, err := s.RegisterPerson(RegisterPersonInput{
		Kind:     PersonKindCrew,
		Document: "11111",
		Role:     "pilot",
	})
	assert.True(t, apperr.IsKind(err, apperr.KindDuplicateEntity))
}

func TestAirportService_RegisterPerson_Validation(t *testing.T) {
	s := newTestService()

	_, err := s.RegisterPerson(RegisterPersonInput{Kind: PersonKindClient, Document: "1"})
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidData), "missing nationality")

	_, err = s.RegisterPerson(RegisterPersonInput{Kind: PersonKindCrew, Document: "2"})
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidData), "missing role")

	_, err = s.RegisterPerson(RegisterPersonInput{Kind: PersonKindCrew, Document: "3", Role: "mechanic"})
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidData), "unknown role")

	_, err = s.RegisterPerson(RegisterPersonInput{Kind: "robot", Document: "4"})
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidData), "unknown kind")
}

func TestAirportService_RegisterPerson_RoleNormalized(t *testing.T) {
	s := newTestService()
	member := registerTestCrew(t, s, "22222", "Co-Pilot")
	assert.Equal(t, domain.RoleCopilot, member.Role)
}

func TestAirportService_RegisterAirline_Duplicate(t *testing.T) {
	s := newTestService()
	_, err := s.RegisterAirline(RegisterAirlineInput{Code: "GOL", Name: "Gol", Country: "Brazil"})
	require.NoError(t, err)

	_, err = s.RegisterAirline(RegisterAirlineInput{Code: "GOL", Name: "Other", Country: "Brazil"})
	assert.True(t, apperr.IsKind(err, apperr.KindDuplicateEntity))
}

func TestAirportService_CreateFlight_CodeSequenceSharedAcrossAirlines(t *testing.T) {
	s := newTestService()
	f1 := createTestFlight(t, s, "GOL", 10, "international")
	f2 := createTestFlight(t, s, "AER", 10, "national")
	f3 := createTestFlight(t, s, "GOL", 10, "national")

	assert.Equal(t, "GOL001", f1.Code)
	assert.Equal(t, "AER002", f2.Code)
	assert.Equal(t, "GOL003", f3.Code)
}

func TestAirportService_CreateFlight_Failures(t *testing.T) {
	s := newTestService()

	_, err := s.CreateFlight(CreateFlightInput{AirlineCode: "XXX", Type: "national"})
	assert.True(t, apperr.IsKind(err, apperr.KindEntityNotFound))

	_, err = s.RegisterAirline(RegisterAirlineInput{Code: "GOL", Name: "Gol", Country: "Brazil"})
	require.NoError(t, err)

	_, err = s.CreateFlight(CreateFlightInput{AirlineCode: "GOL", Type: "regional"})
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidData))

	// A failed creation must not consume a sequence number.
	f := createTestFlight(t, s, "GOL", 10, "national")
	assert.Equal(t, "GOL001", f.Code)
}

func TestAirportService_CreateTicket_FillsFlightThenFails(t *testing.T) {
	s := newTestService()
	flight := createTestFlight(t, s, "GOL", 3, "national")
	for i, doc := range []string{"d1", "d2", "d3"} {
		registerTestClient(t, s, doc, "Uruguayan")
		ticket, err := s.CreateTicket(flight.Code, doc)
		require.NoError(t, err)
		assert.Equal(t, i+1, ticket.Number)
	}

	registerTestClient(t, s, "d4", "Uruguayan")
	_, err := s.CreateTicket(flight.Code, "d4")
	assert.True(t, apperr.IsKind(err, apperr.KindFlightFull))
}

func TestAirportService_CreateTicket_Failures(t *testing.T) {
	s := newTestService()
	flight := createTestFlight(t, s, "GOL", 2, "national")
	registerTestClient(t, s, "d1", "Uruguayan")
	registerTestCrew(t, s, "c1", "pilot")

	_, err := s.CreateTicket("NOPE001", "d1")
	assert.True(t, apperr.IsKind(err, apperr.KindEntityNotFound), "unknown flight")

	_, err = s.CreateTicket(flight.Code, "ghost")
	assert.True(t, apperr.IsKind(err, apperr.KindEntityNotFound), "unknown passenger")

	// A crew member's document is not a client: reported as not found.
	_, err = s.CreateTicket(flight.Code, "c1")
	assert.True(t, apperr.IsKind(err, apperr.KindEntityNotFound), "crew document")

	_, err = s.CreateTicket(flight.Code, "d1")
	require.NoError(t, err)
	_, err = s.CreateTicket(flight.Code, "d1")
	assert.True(t, apperr.IsKind(err, apperr.KindDuplicateEntity), "double booking")
}

func TestAirportService_CreateTicket_HistoryAcrossFlights(t *testing.T) {
	s := newTestService()
	f1 := createTestFlight(t, s, "GOL", 2, "national")
	f2 := createTestFlight(t, s, "GOL", 2, "national")
	client := registerTestClient(t, s, "d1", "Uruguayan")

	_, err := s.CreateTicket(f1.Code, "d1")
	require.NoError(t, err)
	_, err = s.CreateTicket(f2.Code, "d1")
	require.NoError(t, err)

	assert.Equal(t, []string{f1.Code, f2.Code}, client.FlightHistory)
}

func TestAirportService_AssignCrew(t *testing.T) {
	s := newTestService()
	flight := createTestFlight(t, s, "GOL", 2, "national")
	registerTestCrew(t, s, "p1", "pilot")
	registerTestCrew(t, s, "a1", "attendant")
	registerTestClient(t, s, "d1", "Uruguayan")

	require.NoError(t, s.AssignCrew(flight.Code, "p1"))
	require.NoError(t, s.AssignCrew(flight.Code, "a1"))
	assert.Equal(t, []string{"p1"}, flight.Crew.Pilots)
	assert.Equal(t, []string{"a1"}, flight.Crew.Attendants)

	err := s.AssignCrew(flight.Code, "p1")
	assert.True(t, apperr.IsKind(err, apperr.KindDuplicateEntity), "already assigned")

	// A client's document is not crew: reported as not found.
	err = s.AssignCrew(flight.Code, "d1")
	assert.True(t, apperr.IsKind(err, apperr.KindEntityNotFound))

	err = s.AssignCrew("NOPE001", "p1")
	assert.True(t, apperr.IsKind(err, apperr.KindEntityNotFound))
}

func TestAirportService_CrewComplete(t *testing.T) {
	s := newTestService()
	flight := createTestFlight(t, s, "GOL", 2, "national")
	registerTestCrew(t, s, "p1", "pilot")
	registerTestCrew(t, s, "c1", "copilot")
	registerTestCrew(t, s, "a1", "attendant")

	complete, err := s.CrewComplete(flight.Code)
	require.NoError(t, err)
	assert.False(t, complete)

	require.NoError(t, s.AssignCrew(flight.Code, "p1"))
	require.NoError(t, s.AssignCrew(flight.Code, "c1"))
	require.NoError(t, s.AssignCrew(flight.Code, "a1"))

	complete, err = s.CrewComplete(flight.Code)
	require.NoError(t, err)
	assert.True(t, complete)

	_, err = s.CrewComplete("NOPE001")
	assert.True(t, apperr.IsKind(err, apperr.KindEntityNotFound))
}

func TestAirportService_RegisterBaggage(t *testing.T) {
	s := newTestService()
	flight := createTestFlight(t, s, "GOL", 2, "international")
	registerTestClient(t, s, "d1", "Uruguayan")
	ticket, err := s.CreateTicket(flight.Code, "d1")
	require.NoError(t, err)

	baggage, err := s.RegisterBaggage(flight.Code, ticket.Number, 30)
	require.NoError(t, err)
	assert.Equal(t, "GOL001-1", baggage.Code)
	assert.Equal(t, 100, baggage.Cost)
	assert.True(t, baggage.International)

	_, err = s.RegisterBaggage(flight.Code, ticket.Number, 20)
	assert.True(t, apperr.IsKind(err, apperr.KindDuplicateEntity), "one bag per passenger per flight")
}

func TestAirportService_RegisterBaggage_Failures(t *testing.T) {
	s := newTestService()
	flight := createTestFlight(t, s, "GOL", 2, "national")
	registerTestClient(t, s, "d1", "Uruguayan")
	ticket, err := s.CreateTicket(flight.Code, "d1")
	require.NoError(t, err)

	_, err = s.RegisterBaggage("NOPE001", 1, 20)
	assert.True(t, apperr.IsKind(err, apperr.KindEntityNotFound), "unknown flight")

	_, err = s.RegisterBaggage(flight.Code, 99, 20)
	assert.True(t, apperr.IsKind(err, apperr.KindEntityNotFound), "unknown ticket")

	_, err = s.RegisterBaggage(flight.Code, ticket.Number, 0)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidData), "non-positive weight")

	_, err = s.RegisterBaggage(flight.Code, ticket.Number, 46)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidBaggage), "overweight")
}

func TestAirportService_CancelTicket_RoundTrip(t *testing.T) {
	s := newTestService()
	flight := createTestFlight(t, s, "GOL", 2, "national")
	registerTestClient(t, s, "d1", "Uruguayan")
	ticket, err := s.CreateTicket(flight.Code, "d1")
	require.NoError(t, err)
	_, err = s.RegisterBaggage(flight.Code, ticket.Number, 30)
	require.NoError(t, err)

	require.NoError(t, s.CancelTicket(flight.Code, ticket.Number))

	_, found := flight.TicketByNumber(ticket.Number)
	assert.False(t, found, "removed from the flight")
	assert.Empty(t, flight.Baggage, "matching baggage removed")
	assert.Empty(t, s.soldTickets, "removed from sold tickets")
	require.Len(t, s.cancelledTickets, 1)
	assert.Equal(t, ticket, s.cancelledTickets[0])

	err = s.CancelTicket(flight.Code, ticket.Number)
	assert.True(t, apperr.IsKind(err, apperr.KindEntityNotFound), "already cancelled")
}

func TestAirportService_CancelTicket_AllowedOnCancelledFlight(t *testing.T) {
	s := newTestService()
	source := createTestFlight(t, s, "GOL", 2, "national")
	target := createTestFlight(t, s, "GOL", 2, "national")
	registerTestClient(t, s, "d1", "Uruguayan")
	ticket, err := s.CreateTicket(source.Code, "d1")
	require.NoError(t, err)

	require.NoError(t, s.CancelFlight(source.Code, target.Code, "storm"))

	// Ticket cancellation is not gated on flight status.
	require.NoError(t, s.CancelTicket(source.Code, ticket.Number))
}

func TestAirportService_CancelFlight_Reassignment(t *testing.T) {
	s := newTestService()
	source := createTestFlight(t, s, "GOL", 3, "international")
	target := createTestFlight(t, s, "GOL", 5, "national")

	registerTestClient(t, s, "d1", "Uruguayan")
	registerTestClient(t, s, "d2", "Brazilian")
	registerTestClient(t, s, "d3", "Argentine")
	registerTestCrew(t, s, "p1", "pilot")
	registerTestCrew(t, s, "a1", "attendant")

	// Target already has one passenger of its own.
	_, err := s.CreateTicket(target.Code, "d3")
	require.NoError(t, err)

	t1, err := s.CreateTicket(source.Code, "d1")
	require.NoError(t, err)
	_, err = s.CreateTicket(source.Code, "d2")
	require.NoError(t, err)
	_, err = s.RegisterBaggage(source.Code, t1.Number, 30)
	require.NoError(t, err)
	require.NoError(t, s.AssignCrew(source.Code, "p1"))
	require.NoError(t, s.AssignCrew(source.Code, "a1"))
	require.NoError(t, s.AssignCrew(target.Code, "p1"))

	require.NoError(t, s.CancelFlight(source.Code, target.Code, "mechanical failure"))

	assert.Equal(t, domain.FlightStatusCancelled, source.Status)
	assert.Equal(t, "mechanical failure", source.CancelCause)
	assert.Equal(t, testNow, source.CancelledAt)

	// Source keeps its historical snapshot.
	assert.Len(t, source.Tickets, 2)
	assert.Len(t, source.Baggage, 1)
	assert.Equal(t, []string{"p1"}, source.Crew.Pilots)

	// Target gained the two passengers with fresh numbers.
	require.Len(t, target.Tickets, 3)
	moved, found := target.TicketByPassenger("d1")
	require.True(t, found)
	assert.Equal(t, 2, moved.Number)

	// Baggage followed its passenger: fresh code, same weight and cost, flag
	// refreshed from the (national) target.
	require.Len(t, target.Baggage, 1)
	bag := target.Baggage[0]
	assert.Equal(t, target.Code+"-2", bag.Code)
	assert.Equal(t, "d1", bag.PassengerDocument)
	assert.Equal(t, 100, bag.Cost, "cost is carried over, not recomputed")
	assert.False(t, bag.International)

	// Crew merged with dedup: p1 was already on target.
	assert.Equal(t, []string{"p1"}, target.Crew.Pilots)
	assert.Equal(t, []string{"a1"}, target.Crew.Attendants)

	// Sold tickets now point at the target flight.
	for _, ticket := range s.soldTickets {
		assert.Equal(t, target.Code, ticket.FlightCode)
	}
	assert.Len(t, s.soldTickets, 3)
}

func TestAirportService_CancelFlight_Failures(t *testing.T) {
	s := newTestService()
	source := createTestFlight(t, s, "GOL", 3, "national")
	full := createTestFlight(t, s, "GOL", 1, "national")

	registerTestClient(t, s, "d1", "Uruguayan")
	registerTestClient(t, s, "d2", "Brazilian")
	_, err := s.CreateTicket(source.Code, "d1")
	require.NoError(t, err)
	_, err = s.CreateTicket(source.Code, "d2")
	require.NoError(t, err)

	err = s.CancelFlight("NOPE001", full.Code, "storm")
	assert.True(t, apperr.IsKind(err, apperr.KindEntityNotFound))

	err = s.CancelFlight(source.Code, "NOPE001", "storm")
	assert.True(t, apperr.IsKind(err, apperr.KindEntityNotFound))

	err = s.CancelFlight(source.Code, full.Code, "storm")
	assert.True(t, apperr.IsKind(err, apperr.KindFlightFull), "target too small")
	assert.True(t, source.IsActive(), "validation failure leaves the source untouched")

	target := createTestFlight(t, s, "GOL", 5, "national")
	require.NoError(t, s.CancelFlight(source.Code, target.Code, "storm"))

	err = s.CancelFlight(full.Code, source.Code, "storm")
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidData), "target must be active")
}

// End-to-end scenario from the operations manual: GOL001, two seats,
// international.
func TestAirportService_Scenario_GOL(t *testing.T) {
	s := newTestService()
	_, err := s.RegisterAirline(RegisterAirlineInput{Code: "GOL", Name: "Gol", Country: "Brazil"})
	require.NoError(t, err)

	flight, err := s.CreateFlight(CreateFlightInput{
		Origin:        "Montevideo",
		Destination:   "Rio de Janeiro",
		DurationHours: 2.5,
		DepartsAt:     testNow.AddDate(0, 1, 0),
		AirlineCode:   "GOL",
		Capacity:      2,
		Type:          "international",
	})
	require.NoError(t, err)
	assert.Equal(t, "GOL001", flight.Code)

	registerTestClient(t, s, "c1", "Uruguayan")
	registerTestClient(t, s, "c2", "Brazilian")
	registerTestClient(t, s, "c3", "Argentine")

	t1, err := s.CreateTicket("GOL001", "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, t1.Number)

	t2, err := s.CreateTicket("GOL001", "c2")
	require.NoError(t, err)
	assert.Equal(t, 2, t2.Number)

	_, err = s.CreateTicket("GOL001", "c3")
	assert.True(t, apperr.IsKind(err, apperr.KindFlightFull))

	_, err = s.RegisterBaggage("GOL001", 1, 46)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidBaggage))

	bag, err := s.RegisterBaggage("GOL001", 1, 30)
	require.NoError(t, err)
	assert.Equal(t, 100, bag.Cost)
}

func TestAirportService_ListingQueries(t *testing.T) {
	s := newTestService()
	registerTestCrew(t, s, "p1", "pilot")
	registerTestClient(t, s, "d1", "Uruguayan")
	registerTestClient(t, s, "d2", "Brazilian")

	clients := s.Clients()
	require.Len(t, clients, 2)
	assert.Equal(t, "d1", clients[0].Document)

	members := s.CrewMembers()
	require.Len(t, members, 1)
	assert.Equal(t, "p1", members[0].Document)

	source := createTestFlight(t, s, "GOL", 2, "national")
	target := createTestFlight(t, s, "GOL", 2, "national")
	require.NoError(t, s.CancelFlight(source.Code, target.Code, "storm"))

	active := s.ActiveFlights()
	require.Len(t, active, 1)
	assert.Equal(t, target.Code, active[0].Code)
}
