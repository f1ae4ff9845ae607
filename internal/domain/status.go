package domain

import (
	"fmt"
	"strings"
)

// Status is one of the fixed lifecycle states of a product.
type Status string

const (
	StatusInWarehouse    Status = "In Warehouse"
	StatusProcessing     Status = "Processing"
	StatusShipped        Status = "Shipped"
	StatusOutForDelivery Status = "Out for Delivery"
	StatusDelivered      Status = "Delivered"
)

// Display categories used by status pages to pick a visual treatment.
const (
	CategoryNeutral  = "neutral"
	CategoryPending  = "pending"
	CategoryTransit  = "transit"
	CategoryDelivery = "delivery"
	CategoryComplete = "complete"
)

// StatusInfo is the static presentation metadata of a state.
type StatusInfo struct {
	Status      Status `json:"status"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
}

// statusTable is kept in progression order.
var statusTable = []StatusInfo{
	{StatusInWarehouse, "Your product is safely stored in our warehouse", CategoryNeutral, "gray", "package"},
	{StatusProcessing, "Your product is being prepared for shipment", CategoryPending, "yellow", "clock"},
	{StatusShipped, "Your product has been shipped and is on its way", CategoryTransit, "blue", "truck"},
	{StatusOutForDelivery, "Your product is out for delivery today", CategoryDelivery, "orange", "truck"},
	{StatusDelivered, "Your product has been successfully delivered", CategoryComplete, "green", "check-circle"},
}

// Statuses returns every state in progression order.
func Statuses() []Status {
	out := make([]Status, len(statusTable))
	for i, info := range statusTable {
		out[i] = info.Status
	}
	return out
}

// StatusCatalog returns the metadata of every state in progression order.
func StatusCatalog() []StatusInfo {
	out := make([]StatusInfo, len(statusTable))
	copy(out, statusTable)
	return out
}

// Valid reports whether s is exactly one of the canonical labels.
func (s Status) Valid() bool {
	_, ok := s.lookup()
	return ok
}

// Info returns the metadata for s. Unknown states get a generic entry.
func (s Status) Info() StatusInfo {
	if info, ok := s.lookup(); ok {
		return info
	}
	return StatusInfo{Status: s, Description: "Status information available", Category: CategoryNeutral, Color: "gray", Icon: "alert-circle"}
}

func (s Status) lookup() (StatusInfo, bool) {
	for _, info := range statusTable {
		if info.Status == s {
			return info, true
		}
	}
	return StatusInfo{}, false
}

// ValidateStatus checks raw against the closed state set. Matching is exact
// and case-sensitive; any state may follow any other.
func ValidateStatus(raw string) (Status, error) {
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%w: status is required", ErrInvalidInput)
	}
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidInput, raw)
	}
	return s, nil
}
