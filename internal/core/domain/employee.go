package domain

import "errors"

var ErrEmployeeNotFound = errors.New("employee not found")

// Shifts worked on the assembly line.
const (
	ShiftMorning = "morning"
	ShiftEvening = "evening"
	ShiftNight   = "night"
)

// Employee is a member of an assembly team. Served from the in-process
// roster store; not tied to a login account.
type Employee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Shift      string `json:"shift"`
	Active     bool   `json:"active"`
}
