// Package lifecycle holds the order state machine shared by the dispatcher
// and rider APIs.
package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"github.com/piresc/dispatch/internal/pkg/apperror"
	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/models"
)

// Path identifies who is driving a transition
type Path int

const (
	// PathCompany is the dispatcher side, authenticated by API key
	PathCompany Path = iota
	// PathRider is the rider side, authenticated by session token
	PathRider
)

var allStatuses = []models.OrderStatus{
	models.OrderStatusPending,
	models.OrderStatusAssigned,
	models.OrderStatusPickedUp,
	models.OrderStatusInTransit,
	models.OrderStatusDelivered,
	models.OrderStatusFailed,
	models.OrderStatusCancelled,
}

// riderAdjacency lists the statuses a rider may move an order to
var riderAdjacency = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusAssigned:  {models.OrderStatusPickedUp, models.OrderStatusFailed},
	models.OrderStatusPickedUp:  {models.OrderStatusInTransit, models.OrderStatusFailed},
	models.OrderStatusInTransit: {models.OrderStatusDelivered, models.OrderStatusFailed},
}

var riderSubmittable = map[models.OrderStatus]bool{
	models.OrderStatusPickedUp:  true,
	models.OrderStatusInTransit: true,
	models.OrderStatusDelivered: true,
	models.OrderStatusFailed:    true,
}

var events = map[models.OrderStatus]string{
	models.OrderStatusPending:   constants.EventOrderCreated,
	models.OrderStatusAssigned:  constants.EventOrderAssigned,
	models.OrderStatusPickedUp:  constants.EventOrderPickedUp,
	models.OrderStatusInTransit: constants.EventOrderInTransit,
	models.OrderStatusDelivered: constants.EventOrderDelivered,
	models.OrderStatusCancelled: constants.EventOrderCancelled,
	models.OrderStatusFailed:    constants.EventOrderFailed,
}

// Parse converts raw input into a known order status
func Parse(raw string) (models.OrderStatus, error) {
	status := models.OrderStatus(strings.ToLower(strings.TrimSpace(raw)))
	for _, s := range allStatuses {
		if s == status {
			return status, nil
		}
	}
	return "", apperror.Validation(fmt.Sprintf("invalid order status: %q", raw))
}

// IsTerminal reports whether no further transition may leave status
func IsTerminal(status models.OrderStatus) bool {
	switch status {
	case models.OrderStatusDelivered, models.OrderStatusFailed, models.OrderStatusCancelled:
		return true
	}
	return false
}

// RiderTransition validates a rider-submitted status change
func RiderTransition(current, requested models.OrderStatus) (models.OrderStatus, error) {
	if !riderSubmittable[requested] {
		return "", apperror.Validation(fmt.Sprintf("status must be one of picked_up, in_transit, delivered, failed; got %q", requested))
	}
	for _, next := range riderAdjacency[current] {
		if next == requested {
			return requested, nil
		}
	}
	return "", apperror.InvalidTransition(string(current), string(requested))
}

// DispatcherTransition validates a dispatcher status override. Any known
// status is accepted except leaving a terminal state.
func DispatcherTransition(current, requested models.OrderStatus) (models.OrderStatus, error) {
	if _, err := Parse(string(requested)); err != nil {
		return "", err
	}
	if requested == current {
		return current, nil
	}
	if IsTerminal(current) {
		return "", apperror.InvalidTransition(string(current), string(requested))
	}
	return requested, nil
}

// Cancel moves a non-terminal order to cancelled
func Cancel(current models.OrderStatus) (models.OrderStatus, error) {
	if IsTerminal(current) {
		return "", apperror.InvalidTransition(string(current), string(models.OrderStatusCancelled))
	}
	return models.OrderStatusCancelled, nil
}

// StatusOnAssign returns the status implied by assigning a rider without an
// explicit status: pending orders become assigned.
func StatusOnAssign(current models.OrderStatus) models.OrderStatus {
	if current == models.OrderStatusPending {
		return models.OrderStatusAssigned
	}
	return current
}

// EventFor maps a status to its outbound webhook event name
func EventFor(status models.OrderStatus) string {
	if event, ok := events[status]; ok {
		return event
	}
	return constants.EventOrderUpdated
}

// Apply moves order to next and stamps the lifecycle side effects. It
// returns false when the status did not change.
func Apply(order *models.Order, next models.OrderStatus, path Path, now time.Time) bool {
	if order.Status == next {
		return false
	}
	order.Status = next
	order.UpdatedAt = now

	switch next {
	case models.OrderStatusPickedUp:
		order.PickedUpAt = &now
	case models.OrderStatusDelivered:
		order.DeliveredAt = &now
		if path == PathCompany {
			order.PaymentStatus = models.PaymentStatusCompleted
		}
	}
	return true
}

// AppendNote adds a note line prefixed with actor and time, keeping prior notes
func AppendNote(existing, actor, note string, now time.Time) string {
	note = strings.TrimSpace(note)
	if note == "" {
		return existing
	}
	line := fmt.Sprintf("[%s %s] %s", actor, now.UTC().Format(time.RFC3339), note)
	if existing == "" {
		return line
	}
	return existing + "\n" + line
}
