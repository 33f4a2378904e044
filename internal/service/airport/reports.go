package airport

import (
	"fmt"
	"strings"

	"github.com/nmartinez-uy/flightdesk/internal/apperr"
	"github.com/nmartinez-uy/flightdesk/internal/domain"
)

const (
	reportRule    = "================================================================================"
	reportDivider = "--------------------------------------------------------------------------------"
)

// PassengerReport lists every ticketed passenger on the flight with their
// baggage count.
func (s *AirportService) PassengerReport(flightCode string) (string, error) {
	flight, ok := s.flights[flightCode]
	if !ok {
		return "", apperr.NotFoundf("no flight with code %s", flightCode)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", reportRule)
	fmt.Fprintf(&b, "PASSENGER REPORT - FLIGHT %s\n", flightCode)
	fmt.Fprintf(&b, "%s → %s | %s\n", flight.Origin, flight.Destination, flight.DepartsAt.Format(domain.DateTimeLayout))
	fmt.Fprintf(&b, "%s\n\n", reportRule)

	if len(flight.Tickets) == 0 {
		b.WriteString("No passengers registered on this flight.\n")
	} else {
		for _, ticket := range flight.Tickets {
			bags := 0
			for _, bag := range flight.Baggage {
				if bag.PassengerDocument == ticket.PassengerDocument {
					bags++
				}
			}

			fmt.Fprintf(&b, "Ticket #%d\n", ticket.Number)
			if client, ok := s.clientByDocument(ticket.PassengerDocument); ok {
				fmt.Fprintf(&b, "  Name: %s\n", client.FullName())
				fmt.Fprintf(&b, "  Document: %s\n", client.Document)
				fmt.Fprintf(&b, "  Nationality: %s\n", client.Nationality)
			} else {
				fmt.Fprintf(&b, "  Document: %s\n", ticket.PassengerDocument)
			}
			fmt.Fprintf(&b, "  Baggage items: %d\n", bags)
			fmt.Fprintf(&b, "%s\n", reportDivider)
		}
	}

	fmt.Fprintf(&b, "\nTotal passengers: %d\n", len(flight.Tickets))
	fmt.Fprintf(&b, "%s\n", reportRule)
	return b.String(), nil
}

// CrewReport lists the three crew buckets and the completeness verdict.
func (s *AirportService) CrewReport(flightCode string) (string, error) {
	flight, ok := s.flights[flightCode]
	if !ok {
		return "", apperr.NotFoundf("no flight with code %s", flightCode)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", reportRule)
	fmt.Fprintf(&b, "CREW REPORT - FLIGHT %s\n", flightCode)
	fmt.Fprintf(&b, "%s → %s | %s\n", flight.Origin, flight.Destination, flight.DepartsAt.Format(domain.DateTimeLayout))
	fmt.Fprintf(&b, "%s\n\n", reportRule)

	s.writeCrewBucket(&b, "PILOTS", flight.Crew.Pilots)
	b.WriteString("\n")
	s.writeCrewBucket(&b, "COPILOTS", flight.Crew.Copilots)
	b.WriteString("\n")
	s.writeCrewBucket(&b, "ATTENDANTS", flight.Crew.Attendants)

	fmt.Fprintf(&b, "\n%s\n", reportRule)
	if flight.Crew.Complete() {
		b.WriteString("Crew complete\n")
	} else {
		b.WriteString("Crew incomplete (at least 1 pilot, 1 copilot and 1 attendant required)\n")
	}
	fmt.Fprintf(&b, "%s\n", reportRule)
	return b.String(), nil
}

func (s *AirportService) writeCrewBucket(b *strings.Builder, title string, documents []string) {
	fmt.Fprintf(b, "%s:\n", title)
	if len(documents) == 0 {
		b.WriteString("  none assigned\n")
		return
	}
	for _, doc := range documents {
		if member, ok := s.crewByDocument(doc); ok {
			fmt.Fprintf(b, "  - %s (Doc: %s) - %.0f hrs\n", member.FullName(), member.Document, member.FlightHours)
		} else {
			fmt.Fprintf(b, "  - Doc: %s\n", doc)
		}
	}
}

// AirlineSummaryReport shows per airline the flight counts by status plus the
// flight list. Never fails; empty registries render as "none".
func (s *AirportService) AirlineSummaryReport() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", reportRule)
	b.WriteString("FLIGHTS BY AIRLINE\n")
	fmt.Fprintf(&b, "%s\n\n", reportRule)

	if len(s.airlineOrder) == 0 {
		b.WriteString("No airlines registered.\n")
	} else {
		for _, code := range s.airlineOrder {
			airline := s.airlines[code]

			var all []*domain.Flight
			active, cancelled := 0, 0
			for _, flightCode := range s.flightOrder {
				f := s.flights[flightCode]
				if f.AirlineCode != code {
					continue
				}
				all = append(all, f)
				if f.IsActive() {
					active++
				} else {
					cancelled++
				}
			}

			fmt.Fprintf(&b, "%s (%s) - %s\n", airline.Name, airline.Code, airline.Country)
			fmt.Fprintf(&b, "  Total flights: %d\n", len(all))
			fmt.Fprintf(&b, "  Active flights: %d\n", active)
			fmt.Fprintf(&b, "  Cancelled flights: %d\n", cancelled)
			if len(all) > 0 {
				b.WriteString("  Flights:\n")
				for _, f := range all {
					fmt.Fprintf(&b, "    - %s: %s → %s (%s)\n", f.Code, f.Origin, f.Destination, f.Status)
				}
			}
			fmt.Fprintf(&b, "%s\n", reportDivider)
		}
	}

	fmt.Fprintf(&b, "\n%s\n", reportRule)
	return b.String()
}

// CancelledFlightsReport is the cancellation history. The affected-passenger
// count comes from the cancelled-tickets list filtered by flight code.
func (s *AirportService) CancelledFlightsReport() string {
	var cancelled []*domain.Flight
	for _, code := range s.flightOrder {
		if f := s.flights[code]; !f.IsActive() {
			cancelled = append(cancelled, f)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", reportRule)
	b.WriteString("CANCELLED FLIGHTS\n")
	fmt.Fprintf(&b, "%s\n\n", reportRule)

	if len(cancelled) == 0 {
		b.WriteString("No cancelled flights.\n")
	} else {
		for _, f := range cancelled {
			affected := 0
			for _, t := range s.cancelledTickets {
				if t.FlightCode == f.Code {
					affected++
				}
			}

			fmt.Fprintf(&b, "Flight: %s\n", f.Code)
			fmt.Fprintf(&b, "  Route: %s → %s\n", f.Origin, f.Destination)
			fmt.Fprintf(&b, "  Scheduled: %s\n", f.DepartsAt.Format(domain.DateTimeLayout))
			fmt.Fprintf(&b, "  Cancelled at: %s\n", f.CancelledAt.Format(domain.DateTimeLayout))
			fmt.Fprintf(&b, "  Cause: %s\n", f.CancelCause)
			fmt.Fprintf(&b, "  Affected passengers: %d\n", affected)
			if airline, ok := s.airlines[f.AirlineCode]; ok {
				fmt.Fprintf(&b, "  Airline: %s\n", airline.Name)
			}
			fmt.Fprintf(&b, "%s\n", reportDivider)
		}
	}

	fmt.Fprintf(&b, "\nTotal cancelled flights: %d\n", len(cancelled))
	fmt.Fprintf(&b, "%s\n", reportRule)
	return b.String()
}

// ActiveFlightsReport lists every active flight with occupancy and crew
// completeness.
func (s *AirportService) ActiveFlightsReport() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", reportRule)
	b.WriteString("SCHEDULED FLIGHTS\n")
	fmt.Fprintf(&b, "%s\n\n", reportRule)

	if len(s.flightOrder) == 0 {
		b.WriteString("No flights registered.\n")
	} else {
		active := s.ActiveFlights()
		if len(active) == 0 {
			b.WriteString("No active flights.\n")
		} else {
			for _, f := range active {
				fmt.Fprintf(&b, "%s - %s → %s\n", f.Code, f.Origin, f.Destination)
				fmt.Fprintf(&b, "  Departs: %s\n", f.DepartsAt.Format(domain.DateTimeLayout))
				fmt.Fprintf(&b, "  Duration: %.1f hours\n", f.DurationHours)
				if airline, ok := s.airlines[f.AirlineCode]; ok {
					fmt.Fprintf(&b, "  Airline: %s\n", airline.Name)
				}
				fmt.Fprintf(&b, "  Type: %s\n", f.Type)
				fmt.Fprintf(&b, "  Seats: %d/%d\n", len(f.Tickets), f.Capacity)
				if f.Crew.Complete() {
					b.WriteString("  Crew complete: yes\n")
				} else {
					b.WriteString("  Crew complete: no\n")
				}
				fmt.Fprintf(&b, "%s\n", reportDivider)
			}
		}
	}

	fmt.Fprintf(&b, "%s\n", reportRule)
	return b.String()
}
