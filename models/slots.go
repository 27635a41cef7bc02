package models

// SlotInfo describes the capacity state of a single bookable time window.
// Counts come from the capacity backend; the derived fields are recomputed
// locally on every poll.
type SlotInfo struct {
	Capacity  int  `json:"capacity"`
	Confirmed int  `json:"confirmed"`
	Holds     int  `json:"holds"`
	Total     int  `json:"total"`     // confirmed + holds
	Remaining int  `json:"remaining"` // capacity - total
	IsFull    bool `json:"isFull"`
}

// Normalized returns a copy with Total, Remaining and IsFull recomputed.
// Wire values for the derived fields are never trusted.
func (s SlotInfo) Normalized() SlotInfo {
	s.Total = s.Confirmed + s.Holds
	s.Remaining = s.Capacity - s.Total
	s.IsFull = s.Remaining <= 0
	return s
}

// SlotStatus is the capacity view across all event slots. It is replaced
// wholesale on every successful poll and never mutated in place.
type SlotStatus struct {
	OK       bool                `json:"ok"`
	Capacity int                 `json:"capacity"`
	Slots    map[string]SlotInfo `json:"slots"`
	Error    string              `json:"error,omitempty"`
}

// SlotFull reports whether the named slot is full. A slot the backend has not
// reported yet is treated as available until the next successful poll.
func (st *SlotStatus) SlotFull(slot string) bool {
	if st == nil {
		return false
	}
	info, ok := st.Slots[slot]
	return ok && info.IsFull
}

// AllFull reports whether every slot in the given order is full. An empty
// slot list is never considered full.
func (st *SlotStatus) AllFull(slots []string) bool {
	if st == nil || len(slots) == 0 {
		return false
	}
	for _, s := range slots {
		if !st.SlotFull(s) {
			return false
		}
	}
	return true
}

// FirstAvailable returns the first slot in the given order that is not full.
func (st *SlotStatus) FirstAvailable(slots []string) (string, bool) {
	for _, s := range slots {
		if !st.SlotFull(s) {
			return s, true
		}
	}
	return "", false
}
