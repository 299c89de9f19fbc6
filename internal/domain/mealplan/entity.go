// Package mealplan contains the core domain logic for daily meal plans.
// A plan is keyed by (user, calendar date) and holds four fixed meal
// slots. Slot values are meal references: either a bare recipe name or
// the decorated form "Name (ID: n)".
package mealplan

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidSlot is returned when a slot name is not one of the four
// fixed meal slots.
var ErrInvalidSlot = errors.New("invalid meal slot")

// Slot identifies one of the four fixed daily meal slots.
type Slot string

const (
	SlotBreakfast Slot = "breakfast"
	SlotLunch     Slot = "lunch"
	SlotDinner    Slot = "dinner"
	SlotDessert   Slot = "dessert"
)

// Slots returns the four meal slots in their canonical iteration order.
func Slots() [4]Slot {
	return [4]Slot{SlotBreakfast, SlotLunch, SlotDinner, SlotDessert}
}

// ParseSlot validates a slot name.
func ParseSlot(s string) (Slot, error) {
	slot := Slot(s)
	for _, known := range Slots() {
		if slot == known {
			return slot, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSlot, s)
}

// String returns the slot name.
func (s Slot) String() string { return string(s) }

// PlanSlots holds the raw meal references for one day. A nil field means
// the slot is unset. The four named fields make the fixed-slot invariant
// explicit rather than relying on map keys.
type PlanSlots struct {
	Breakfast *string
	Lunch     *string
	Dinner    *string
	Dessert   *string
}

// Get returns the raw reference stored in the given slot.
func (p PlanSlots) Get(slot Slot) *string {
	switch slot {
	case SlotBreakfast:
		return p.Breakfast
	case SlotLunch:
		return p.Lunch
	case SlotDinner:
		return p.Dinner
	case SlotDessert:
		return p.Dessert
	}
	return nil
}

// Set stores a raw reference in the given slot.
func (p *PlanSlots) Set(slot Slot, ref *string) error {
	switch slot {
	case SlotBreakfast:
		p.Breakfast = ref
	case SlotLunch:
		p.Lunch = ref
	case SlotDinner:
		p.Dinner = ref
	case SlotDessert:
		p.Dessert = ref
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}
	return nil
}

// IsEmpty reports whether all four slots are unset.
func (p PlanSlots) IsEmpty() bool {
	return p.Breakfast == nil && p.Lunch == nil && p.Dinner == nil && p.Dessert == nil
}

// Plan represents one user's meal plan for a single calendar date.
// Plans are only ever created or updated; they are never deleted by the
// aggregation pipeline.
type Plan struct {
	id        int64
	userID    int64
	date      time.Time
	slots     PlanSlots
	createdAt time.Time
	updatedAt time.Time
}

// NewPlan creates an empty plan for a user and date. The date is
// normalized to midnight UTC so (user, date) keys compare cleanly.
func NewPlan(userID int64, date time.Time) *Plan {
	now := time.Now()
	return &Plan{
		userID:    userID,
		date:      NormalizeDate(date),
		createdAt: now,
		updatedAt: now,
	}
}

// Reconstitute rebuilds a Plan from persisted state.
func Reconstitute(id, userID int64, date time.Time, slots PlanSlots, createdAt, updatedAt time.Time) *Plan {
	return &Plan{
		id:        id,
		userID:    userID,
		date:      NormalizeDate(date),
		slots:     slots,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the plan's identifier.
func (p *Plan) ID() int64 { return p.id }

// SetID assigns the database-generated identifier after insert.
func (p *Plan) SetID(id int64) { p.id = id }

// UserID returns the owning user's ID.
func (p *Plan) UserID() int64 { return p.userID }

// Date returns the plan's calendar date (midnight UTC).
func (p *Plan) Date() time.Time { return p.date }

// Slots returns the plan's raw slot values.
func (p *Plan) Slots() PlanSlots { return p.slots }

// Assign stores a meal reference in the given slot.
func (p *Plan) Assign(slot Slot, ref string) error {
	if err := p.slots.Set(slot, &ref); err != nil {
		return err
	}
	p.updatedAt = time.Now()
	return nil
}

// Clear unsets the given slot.
func (p *Plan) Clear(slot Slot) error {
	if err := p.slots.Set(slot, nil); err != nil {
		return err
	}
	p.updatedAt = time.Now()
	return nil
}

// CreatedAt returns when the plan row was created.
func (p *Plan) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns when the plan row was last updated.
func (p *Plan) UpdatedAt() time.Time { return p.updatedAt }

// NormalizeDate strips the time component, returning midnight UTC of the
// same calendar day.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
