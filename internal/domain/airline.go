package domain

import "fmt"

// Airline is a carrier registered in the system, keyed by its code.
type Airline struct {
	Code    string
	Name    string
	Country string
}

func (a *Airline) String() string {
	return fmt.Sprintf("%s (%s) - %s", a.Name, a.Code, a.Country)
}
