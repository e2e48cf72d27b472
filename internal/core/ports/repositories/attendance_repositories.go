package repositories

import (
	"context"

	"github.com/staffkhata/staffkhata_backend/internal/core/domain"
)

// AttendanceEntryReader defines read operations over the open period
type AttendanceEntryReader interface {
	// FindOpenPeriod retrieves the employee's open-period entries ordered
	// ascending by date. Point-in-time read; not restartable.
	FindOpenPeriod(ctx context.Context, ownerID string, employeeID string) ([]domain.AttendanceEntry, error)
}

// AttendanceEntryWriter defines write operations over the open period
type AttendanceEntryWriter interface {
	// UpsertEntry writes the entry for its (owner, employee, date) key,
	// overwriting state and amount when the day already has an entry.
	// Returns the entry ID of the stored row.
	//
	// Bulk deletes are not exposed here: the period seal clears entries
	// inside the snapshot repository's transaction, and employee removal
	// cascades inside the employee repository's transaction.
	UpsertEntry(ctx context.Context, entry domain.AttendanceEntry) (string, error)
}

// AttendanceRepositoryFacade combines the attendance entry store interfaces
type AttendanceRepositoryFacade interface {
	AttendanceEntryReader
	AttendanceEntryWriter
}
