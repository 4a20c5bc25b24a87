package domain

import (
	"errors"
	"time"
)

// TicketPriority is the closed set of maintenance priorities.
type TicketPriority string

const (
	PriorityLow      TicketPriority = "low"
	PriorityMedium   TicketPriority = "medium"
	PriorityHigh     TicketPriority = "high"
	PriorityCritical TicketPriority = "critical"
)

// TicketStatus represents the lifecycle state of a maintenance request.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
	TicketCancelled  TicketStatus = "cancelled"
)

// Departments of the assembly shop a ticket can be raised against.
const (
	DeptAssembly  = "assembly"
	DeptTesting   = "testing"
	DeptPackaging = "packaging"
	DeptLogistics = "logistics"
)

var validTicketTransitions = map[TicketStatus][]TicketStatus{
	TicketOpen:       {TicketInProgress, TicketCancelled},
	TicketInProgress: {TicketResolved},
}

var ErrTicketNotFound = errors.New("maintenance request not found")

// CanTransitionTo reports whether a ticket may move from its current status to next.
func (s TicketStatus) CanTransitionTo(next TicketStatus) bool {
	for _, allowed := range validTicketTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// MaintenanceRequest is a ticket raised against a piece of line equipment.
type MaintenanceRequest struct {
	ID          string         `json:"id" bson:"_id,omitempty"`
	Equipment   string         `json:"equipment" bson:"equipment"`
	Description string         `json:"description" bson:"description"`
	Department  string         `json:"department" bson:"department"`
	Priority    TicketPriority `json:"priority" bson:"priority"`
	Status      TicketStatus   `json:"status" bson:"status"`
	RequestedBy string         `json:"requested_by" bson:"requested_by"`
	AssignedTo  string         `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" bson:"updated_at"`
	ResolvedAt  *time.Time     `json:"resolved_at,omitempty" bson:"resolved_at,omitempty"`
}
