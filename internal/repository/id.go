package repository

import "github.com/google/uuid"

// Record kind prefixes embedded in identifiers.
const (
	prefixStudent      = "stu"
	prefixPayment      = "pay"
	prefixStaffExpense = "se"
)

// newID returns a process-unique identifier for the given record kind.
// The random component makes same-instant creations collision-safe.
func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
