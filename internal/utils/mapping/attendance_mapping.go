package mapping

import (
	"github.com/staffkhata/staffkhata_backend/internal/core/domain"
	"github.com/staffkhata/staffkhata_backend/internal/models"
)

// ToModelAttendanceEntry converts a domain AttendanceEntry to a model AttendanceEntry
func ToModelAttendanceEntry(d domain.AttendanceEntry) models.AttendanceEntry {
	return models.AttendanceEntry{
		EntryID:     d.EntryID,
		OwnerID:     d.OwnerID,
		EmployeeID:  d.EmployeeID,
		EntryDate:   d.EntryDate,
		Status:      string(d.Status),
		AmountTaken: d.AmountTaken,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ToDomainAttendanceEntry converts a model AttendanceEntry to a domain AttendanceEntry
func ToDomainAttendanceEntry(m models.AttendanceEntry) domain.AttendanceEntry {
	return domain.AttendanceEntry{
		EntryID:     m.EntryID,
		OwnerID:     m.OwnerID,
		EmployeeID:  m.EmployeeID,
		EntryDate:   m.EntryDate,
		Status:      domain.AttendanceState(m.Status),
		AmountTaken: m.AmountTaken,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToDomainAttendanceEntrySlice converts model entries to domain entries
func ToDomainAttendanceEntrySlice(ms []models.AttendanceEntry) []domain.AttendanceEntry {
	ds := make([]domain.AttendanceEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAttendanceEntry(m)
	}
	return ds
}
