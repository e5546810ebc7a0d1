package character

import "strings"

// slotPrefix namespaces slot counters away from ordinary counters so that an
// authored `slot:Gold` can never collide with `counter:Gold`.
const slotPrefix = "slot::"

// Item is a single carried object.
type Item struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// Inventory holds a character's items and named integer counters.
//
// Counter keys are case-insensitive; they are normalised to lower case on
// every access so "Gold" and "gold" address the same counter.
type Inventory struct {
	Items    []Item         `json:"items"`
	Counters map[string]int `json:"counters,omitempty"`
}

// HasItem reports whether an item with the given name is present.
// Matching is case-insensitive.
func (inv *Inventory) HasItem(name string) bool {
	for _, it := range inv.Items {
		if strings.EqualFold(it.Name, name) {
			return true
		}
	}
	return false
}

// AddItem appends an item. Duplicates are allowed; gamebooks routinely stack
// identical items (arrows, meals).
func (inv *Inventory) AddItem(name, category string) {
	inv.Items = append(inv.Items, Item{Name: name, Category: category})
}

// RemoveItem removes the first item whose name matches case-insensitively.
//
// Postcondition: returns true iff an item was removed.
func (inv *Inventory) RemoveItem(name string) bool {
	for i, it := range inv.Items {
		if strings.EqualFold(it.Name, name) {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Counter returns the current value of the named counter, zero if unset.
func (inv *Inventory) Counter(name string) int {
	return inv.Counters[counterKey(name)]
}

// SetCounter assigns the counter to an absolute value.
func (inv *Inventory) SetCounter(name string, value int) {
	inv.ensureCounters()
	inv.Counters[counterKey(name)] = value
}

// AdjustCounter adds delta to the counter. Counters are never floored:
// underflow leaves a negative value (some series treat counters as debt).
func (inv *Inventory) AdjustCounter(name string, delta int) {
	inv.ensureCounters()
	inv.Counters[counterKey(name)] += delta
}

// Slot returns the current value of the named slot counter.
func (inv *Inventory) Slot(name string) int {
	return inv.Counter(slotPrefix + name)
}

// SetSlot assigns the slot counter to an absolute value.
func (inv *Inventory) SetSlot(name string, value int) {
	inv.SetCounter(slotPrefix+name, value)
}

// AdjustSlot adds delta to the slot counter.
func (inv *Inventory) AdjustSlot(name string, delta int) {
	inv.AdjustCounter(slotPrefix+name, delta)
}

func (inv *Inventory) ensureCounters() {
	if inv.Counters == nil {
		inv.Counters = make(map[string]int)
	}
}

func counterKey(name string) string {
	return strings.ToLower(name)
}
