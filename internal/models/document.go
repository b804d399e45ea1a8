package models

// Document is the whole persisted ledger: every collection serialized as
// one JSON value under a single storage key. Load and save always move the
// entire document, so the stored value is consistent with the last
// completed mutation.
type Document struct {
	Students      []Student      `json:"students"`
	Payments      []Payment      `json:"payments"`
	StaffExpenses []StaffExpense `json:"staffExpenses"`
}

// Clone returns an independent copy. Collection elements are plain
// values, so copying the slices is enough.
func (d Document) Clone() Document {
	c := Document{
		Students:      make([]Student, len(d.Students)),
		Payments:      make([]Payment, len(d.Payments)),
		StaffExpenses: make([]StaffExpense, len(d.StaffExpenses)),
	}
	copy(c.Students, d.Students)
	copy(c.Payments, d.Payments)
	copy(c.StaffExpenses, d.StaffExpenses)
	return c
}

// Normalize replaces nil collections with empty ones so a loaded document
// always round-trips with the same shape.
func (d *Document) Normalize() {
	if d.Students == nil {
		d.Students = []Student{}
	}
	if d.Payments == nil {
		d.Payments = []Payment{}
	}
	if d.StaffExpenses == nil {
		d.StaffExpenses = []StaffExpense{}
	}
}
