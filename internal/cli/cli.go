package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/nmartinez-uy/flightdesk/internal/service/airport"
)

const header = "============================================================"

// CLI is the interactive text menu over the airport service. It owns input
// parsing and rendering only; every rule lives in the service.
type CLI struct {
	svc airport.AirportUseCase
	in  *bufio.Scanner
	out io.Writer
	eof bool
}

func New(svc airport.AirportUseCase, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run drives the main menu until the operator exits or input ends.
func (c *CLI) Run() error {
	for !c.eof {
		c.clear()
		fmt.Fprintln(c.out, header)
		fmt.Fprintln(c.out, "TOURIST AIRPORT - FLIGHT OPERATIONS")
		fmt.Fprintln(c.out, header)
		fmt.Fprintln(c.out, "1. Register person")
		fmt.Fprintln(c.out, "2. Register airline")
		fmt.Fprintln(c.out, "3. Create flight")
		fmt.Fprintln(c.out, "4. Create ticket")
		fmt.Fprintln(c.out, "5. Assign crew")
		fmt.Fprintln(c.out, "6. Register baggage")
		fmt.Fprintln(c.out, "7. View flights")
		fmt.Fprintln(c.out, "8. Cancel ticket")
		fmt.Fprintln(c.out, "9. Cancel flight")
		fmt.Fprintln(c.out, "10. Reports")
		fmt.Fprintln(c.out, "0. Exit")

		opt, ok := c.promptInt("\nSelect an option: ")
		if !ok {
			return nil
		}

		switch opt {
		case 1:
			c.registerPerson()
		case 2:
			c.registerAirline()
		case 3:
			c.createFlight()
		case 4:
			c.createTicket()
		case 5:
			c.assignCrew()
		case 6:
			c.registerBaggage()
		case 7:
			c.viewFlights()
		case 8:
			c.cancelTicket()
		case 9:
			c.cancelFlight()
		case 10:
			c.reportsMenu()
		case 0:
			fmt.Fprintln(c.out, "\nGoodbye.")
			return nil
		default:
			fmt.Fprintln(c.out, "\n✗ Invalid option")
			c.pause()
		}
	}
	return nil
}

func (c *CLI) clear() {
	fmt.Fprint(c.out, "\033[2J\033[H")
}

func (c *CLI) pause() {
	fmt.Fprint(c.out, "\nPress Enter to continue...")
	c.readLine()
}

func (c *CLI) registerPerson() {
	c.clear()
	fmt.Fprintln(c.out, header)
	fmt.Fprintln(c.out, "REGISTER PERSON")
	fmt.Fprintln(c.out, header)
	fmt.Fprintln(c.out, "\nPerson kind:")
	fmt.Fprintln(c.out, "1. Client")
	fmt.Fprintln(c.out, "2. Crew member")

	kind, ok := c.promptInt("\nSelect an option: ")
	if !ok {
		return
	}
	if kind != 1 && kind != 2 {
		fmt.Fprintln(c.out, "\n✗ Invalid option")
		c.pause()
		return
	}

	input := airport.RegisterPersonInput{}
	if input.Document, ok = c.promptText("Identity document: "); !ok {
		return
	}
	if input.LastName, ok = c.promptText("Last name: "); !ok {
		return
	}
	if input.FirstName, ok = c.promptText("First name: "); !ok {
		return
	}
	if input.Email, ok = c.promptText("Email: "); !ok {
		return
	}
	if input.Phone, ok = c.promptText("Phone: "); !ok {
		return
	}

	if kind == 1 {
		input.Kind = airport.PersonKindClient
		if input.Nationality, ok = c.promptText("Nationality: "); !ok {
			return
		}
	} else {
		input.Kind = airport.PersonKindCrew
		fmt.Fprintln(c.out, "\nAvailable roles: pilot, copilot, attendant")
		if input.Role, ok = c.promptText("Role: "); !ok {
			return
		}
		if input.JoinedAt, ok = c.promptDate("Date joined the airline (DD/MM/YYYY HH:MM): "); !ok {
			return
		}
		if input.FlightHours, ok = c.promptFloat("Accumulated flight hours: "); !ok {
			return
		}
	}

	person, err := c.svc.RegisterPerson(input)
	if err != nil {
		fmt.Fprintf(c.out, "\n✗ Error: %v\n", err)
	} else {
		fmt.Fprintf(c.out, "\n✓ Person registered: %v\n", person)
	}
	c.pause()
}

func (c *CLI) registerAirline() {
	c.clear()
	fmt.Fprintln(c.out, header)
	fmt.Fprintln(c.out, "REGISTER AIRLINE")
	fmt.Fprintln(c.out, header)

	input := airport.RegisterAirlineInput{}
	var ok bool
	if input.Code, ok = c.promptText("\nAirline code (e.g. GOL, AER): "); !ok {
		return
	}
	if input.Name, ok = c.promptText("Airline name: "); !ok {
		return
	}
	if input.Country, ok = c.promptText("Country of origin: "); !ok {
		return
	}

	airline, err := c.svc.RegisterAirline(input)
	if err != nil {
		fmt.Fprintf(c.out, "\n✗ Error: %v\n", err)
	} else {
		fmt.Fprintf(c.out, "\n✓ Airline registered: %v\n", airline)
	}
	c.pause()
}

func (c *CLI) createFlight() {
	c.clear()
	fmt.Fprintln(c.out, header)
	fmt.Fprintln(c.out, "CREATE FLIGHT")
	fmt.Fprintln(c.out, header)

	input := airport.CreateFlightInput{}
	var ok bool
	if input.Origin, ok = c.promptText("\nOrigin: "); !ok {
		return
	}
	if input.Destination, ok = c.promptText("Destination: "); !ok {
		return
	}
	if input.DurationHours, ok = c.promptFloat("Duration in hours: "); !ok {
		return
	}
	if input.DepartsAt, ok = c.promptDate("Departure (DD/MM/YYYY HH:MM): "); !ok {
		return
	}
	if input.AirlineCode, ok = c.promptText("Airline code: "); !ok {
		return
	}
	if input.Capacity, ok = c.promptInt("Seat capacity: "); !ok {
		return
	}

	fmt.Fprintln(c.out, "\nFlight type:")
	fmt.Fprintln(c.out, "1. National")
	fmt.Fprintln(c.out, "2. International")
	typ, ok := c.promptInt("Select an option: ")
	if !ok {
		return
	}
	if typ == 1 {
		input.Type = "national"
	} else {
		input.Type = "international"
	}

	flight, err := c.svc.CreateFlight(input)
	if err != nil {
		fmt.Fprintf(c.out, "\n✗ Error: %v\n", err)
	} else {
		fmt.Fprintf(c.out, "\n✓ Flight created: %v\n", flight)
	}
	c.pause()
}

func (c *CLI) createTicket() {
	c.clear()
	fmt.Fprintln(c.out, header)
	fmt.Fprintln(c.out, "CREATE TICKET")
	fmt.Fprintln(c.out, header)

	flightCode, ok := c.promptText("\nFlight code: ")
	if !ok {
		return
	}
	document, ok := c.promptText("Passenger document: ")
	if !ok {
		return
	}

	ticket, err := c.svc.CreateTicket(flightCode, document)
	if err != nil {
		fmt.Fprintf(c.out, "\n✗ Error: %v\n", err)
	} else {
		fmt.Fprintf(c.out, "\n✓ Ticket created: %v\n", ticket)
	}
	c.pause()
}

func (c *CLI) assignCrew() {
	c.clear()
	fmt.Fprintln(c.out, header)
	fmt.Fprintln(c.out, "ASSIGN CREW")
	fmt.Fprintln(c.out, header)

	flightCode, ok := c.promptText("\nFlight code: ")
	if !ok {
		return
	}
	document, ok := c.promptText("Crew member document: ")
	if !ok {
		return
	}

	if err := c.svc.AssignCrew(flightCode, document); err != nil {
		fmt.Fprintf(c.out, "\n✗ Error: %v\n", err)
	} else {
		fmt.Fprintf(c.out, "\n✓ Crew member assigned to flight %s\n", flightCode)
	}
	c.pause()
}

func (c *CLI) registerBaggage() {
	c.clear()
	fmt.Fprintln(c.out, header)
	fmt.Fprintln(c.out, "REGISTER BAGGAGE")
	fmt.Fprintln(c.out, header)

	flightCode, ok := c.promptText("\nFlight code: ")
	if !ok {
		return
	}
	ticketNumber, ok := c.promptInt("Ticket number: ")
	if !ok {
		return
	}
	weight, ok := c.promptFloat("Weight (kg): ")
	if !ok {
		return
	}

	baggage, err := c.svc.RegisterBaggage(flightCode, ticketNumber, weight)
	if err != nil {
		fmt.Fprintf(c.out, "\n✗ Error: %v\n", err)
	} else {
		fmt.Fprintf(c.out, "\n✓ Baggage registered: %v\n", baggage)
	}
	c.pause()
}

func (c *CLI) viewFlights() {
	c.clear()
	fmt.Fprintln(c.out, c.svc.ActiveFlightsReport())
	c.pause()
}

func (c *CLI) cancelTicket() {
	c.clear()
	fmt.Fprintln(c.out, header)
	fmt.Fprintln(c.out, "CANCEL TICKET")
	fmt.Fprintln(c.out, header)

	flightCode, ok := c.promptText("\nFlight code: ")
	if !ok {
		return
	}
	ticketNumber, ok := c.promptInt("Ticket number: ")
	if !ok {
		return
	}

	if err := c.svc.CancelTicket(flightCode, ticketNumber); err != nil {
		fmt.Fprintf(c.out, "\n✗ Error: %v\n", err)
	} else {
		fmt.Fprintf(c.out, "\n✓ Ticket #%d on flight %s cancelled\n", ticketNumber, flightCode)
	}
	c.pause()
}

func (c *CLI) cancelFlight() {
	c.clear()
	fmt.Fprintln(c.out, header)
	fmt.Fprintln(c.out, "CANCEL FLIGHT")
	fmt.Fprintln(c.out, header)

	flightCode, ok := c.promptText("\nFlight code to cancel: ")
	if !ok {
		return
	}
	targetCode, ok := c.promptText("Target flight code for reassignment: ")
	if !ok {
		return
	}
	cause, ok := c.promptText("Cancellation cause: ")
	if !ok {
		return
	}

	if err := c.svc.CancelFlight(flightCode, targetCode, cause); err != nil {
		fmt.Fprintf(c.out, "\n✗ Error: %v\n", err)
	} else {
		fmt.Fprintf(c.out, "\n✓ Flight %s cancelled; passengers, baggage and crew moved to %s\n", flightCode, targetCode)
	}
	c.pause()
}

func (c *CLI) reportsMenu() {
	for !c.eof {
		c.clear()
		fmt.Fprintln(c.out, header)
		fmt.Fprintln(c.out, "REPORTS")
		fmt.Fprintln(c.out, header)
		fmt.Fprintln(c.out, "1. Passengers by flight")
		fmt.Fprintln(c.out, "2. Crew by flight")
		fmt.Fprintln(c.out, "3. Flights by airline")
		fmt.Fprintln(c.out, "4. Cancelled flights")
		fmt.Fprintln(c.out, "0. Back")

		opt, ok := c.promptInt("\nSelect an option: ")
		if !ok {
			return
		}

		switch opt {
		case 1:
			if code, ok := c.promptText("Flight code: "); ok {
				c.printReport(c.svc.PassengerReport(code))
			}
		case 2:
			if code, ok := c.promptText("Flight code: "); ok {
				c.printReport(c.svc.CrewReport(code))
			}
		case 3:
			fmt.Fprintln(c.out, c.svc.AirlineSummaryReport())
			c.pause()
		case 4:
			fmt.Fprintln(c.out, c.svc.CancelledFlightsReport())
			c.pause()
		case 0:
			return
		default:
			fmt.Fprintln(c.out, "\n✗ Invalid option")
			c.pause()
		}
	}
}

func (c *CLI) printReport(report string, err error) {
	if err != nil {
		fmt.Fprintf(c.out, "\n✗ Error: %v\n", err)
	} else {
		fmt.Fprintln(c.out, report)
	}
	c.pause()
}
