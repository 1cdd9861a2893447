package entities

import (
	"bytes"
	"encoding/json"
)

// Slot is a single bookable start time, pre-formatted for display.
type Slot struct {
	StartTime     string `json:"start_time"`
	FormattedTime string `json:"formatted_time"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

// SlotsByDate groups slots by their date key. Keys keep the order in which
// they were first added, and encode to JSON in that order.
type SlotsByDate struct {
	keys  []string
	slots map[string][]Slot
}

func NewSlotsByDate() *SlotsByDate {
	return &SlotsByDate{slots: make(map[string][]Slot)}
}

func (m *SlotsByDate) Add(s Slot) {
	if _, ok := m.slots[s.Date]; !ok {
		m.keys = append(m.keys, s.Date)
	}
	m.slots[s.Date] = append(m.slots[s.Date], s)
}

// Dates returns the distinct date keys in first-seen order.
func (m *SlotsByDate) Dates() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

func (m *SlotsByDate) Len() int {
	n := 0
	for _, ss := range m.slots {
		n += len(ss)
	}
	return n
}

func (m *SlotsByDate) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(m.slots[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type AvailabilityResponse struct {
	Success        bool         `json:"success"`
	AvailableDates []string     `json:"available_dates"`
	SlotsByDate    *SlotsByDate `json:"slots_by_date"`
	TotalSlots     int          `json:"total_slots"`
}
