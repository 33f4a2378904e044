package domain

import "fmt"

// Ticket is one passenger's seat on one flight. Number is unique within the
// flight; the passenger is referenced by document.
type Ticket struct {
	Number            int
	PassengerDocument string
	FlightCode        string
}

func (t *Ticket) String() string {
	return fmt.Sprintf("Ticket #%d - Flight: %s - Passenger doc: %s", t.Number, t.FlightCode, t.PassengerDocument)
}
