package evidence

import "strings"

// SlotCount is the fixed number of image positions per stream per order.
const SlotCount = 5

// SplitSlots expands a stored comma-separated path list to exactly
// SlotCount entries, padding with empty strings. Extra entries beyond the
// slot count are dropped.
func SplitSlots(stored string) []string {
	slots := make([]string, SlotCount)
	if stored == "" {
		return slots
	}
	for i, part := range strings.Split(stored, ",") {
		if i >= SlotCount {
			break
		}
		slots[i] = strings.TrimSpace(part)
	}
	return slots
}

// JoinSlots renders slot values back to the stored comma-separated form,
// always exactly SlotCount positions.
func JoinSlots(slots []string) string {
	normalized := make([]string, SlotCount)
	for i := 0; i < SlotCount && i < len(slots); i++ {
		normalized[i] = strings.TrimSpace(slots[i])
	}
	return strings.Join(normalized, ",")
}

// SetSlot writes path into position slot of the stored list and returns
// the new stored form. Out-of-range slots leave the list unchanged.
func SetSlot(stored string, slot int, path string) string {
	if slot < 0 || slot >= SlotCount {
		return JoinSlots(SplitSlots(stored))
	}
	slots := SplitSlots(stored)
	slots[slot] = strings.TrimSpace(path)
	return JoinSlots(slots)
}

// AnyFilled reports whether at least one slot holds a path under the given
// public prefix. A value without the prefix is not trusted as evidence.
func AnyFilled(stored, prefix string) bool {
	for _, slot := range SplitSlots(stored) {
		if slot != "" && strings.HasPrefix(slot, prefix) {
			return true
		}
	}
	return false
}
