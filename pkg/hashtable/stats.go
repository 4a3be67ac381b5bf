package hashtable

// Stats is a point-in-time snapshot of table state. OccupiedSlots and
// MaxChainLength are computed on demand rather than maintained
// incrementally; Collisions is the cumulative insertion-time counter,
// not a live density measure.
type Stats struct {
	Size           int     `json:"size"`
	Elements       int     `json:"elements"`
	LoadFactor     float64 `json:"load_factor"`
	Collisions     int     `json:"collisions"`
	OccupiedSlots  int     `json:"occupied_slots"`
	MaxChainLength int     `json:"max_chain_length"`
}

// Stats derives a snapshot from the current table state. It never
// mutates the table.
func (t *Table) Stats() Stats {
	occupied := 0
	maxChain := 0
	for _, slot := range t.slots {
		if len(slot) > 0 {
			occupied++
		}
		if len(slot) > maxChain {
			maxChain = len(slot)
		}
	}

	return Stats{
		Size:           t.size,
		Elements:       t.elements,
		LoadFactor:     t.LoadFactor(),
		Collisions:     t.collisions,
		OccupiedSlots:  occupied,
		MaxChainLength: maxChain,
	}
}
