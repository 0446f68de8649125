package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifx-protocol/lifx-go/pkg/wire"
)

// Group is the group a device belongs to.
type Group struct {
	// ID is the 16-byte group identifier.
	ID uuid.UUID

	// Label is the group name.
	Label Label

	// UpdatedAt is when the membership was last changed.
	UpdatedAt time.Time
}

// Location is the location a device belongs to. It has the same layout as
// Group but is a separate message family.
type Location struct {
	ID        uuid.UUID
	Label     Label
	UpdatedAt time.Time
}

// NewGroup builds a Group, validating label and timestamp.
func NewGroup(id uuid.UUID, label string, updatedAt time.Time) (Group, error) {
	l, err := newMembership(label, updatedAt)
	if err != nil {
		return Group{}, err
	}
	return Group{ID: id, Label: l, UpdatedAt: updatedAt.UTC()}, nil
}

// NewLocation builds a Location, validating label and timestamp.
func NewLocation(id uuid.UUID, label string, updatedAt time.Time) (Location, error) {
	l, err := newMembership(label, updatedAt)
	if err != nil {
		return Location{}, err
	}
	return Location{ID: id, Label: l, UpdatedAt: updatedAt.UTC()}, nil
}

func newMembership(label string, updatedAt time.Time) (Label, error) {
	l, err := NewLabel(label)
	if err != nil {
		return Label{}, err
	}
	if _, err := wire.TimestampToWire("updated_at", updatedAt); err != nil {
		return Label{}, err
	}
	return l, nil
}
