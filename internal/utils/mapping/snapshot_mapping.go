package mapping

import (
	"github.com/staffkhata/staffkhata_backend/internal/core/domain"
	"github.com/staffkhata/staffkhata_backend/internal/models"
)

// ToModelMonthlySnapshot converts a domain MonthlySnapshot to a model MonthlySnapshot
func ToModelMonthlySnapshot(d domain.MonthlySnapshot) models.MonthlySnapshot {
	return models.MonthlySnapshot{
		SnapshotID:       d.SnapshotID,
		OwnerID:          d.OwnerID,
		EmployeeID:       d.EmployeeID,
		Month:            d.Month,
		Year:             d.Year,
		TotalPresent:     d.TotalPresent,
		TotalHalfDay:     d.TotalHalfDay,
		TotalAbsent:      d.TotalAbsent,
		TotalEarnings:    d.TotalEarnings,
		TotalAmountTaken: d.TotalAmountTaken,
		SealedAt:         d.SealedAt,
	}
}

// ToDomainMonthlySnapshot converts a model MonthlySnapshot to a domain MonthlySnapshot
func ToDomainMonthlySnapshot(m models.MonthlySnapshot) domain.MonthlySnapshot {
	return domain.MonthlySnapshot{
		SnapshotID:       m.SnapshotID,
		OwnerID:          m.OwnerID,
		EmployeeID:       m.EmployeeID,
		Month:            m.Month,
		Year:             m.Year,
		TotalPresent:     m.TotalPresent,
		TotalHalfDay:     m.TotalHalfDay,
		TotalAbsent:      m.TotalAbsent,
		TotalEarnings:    m.TotalEarnings,
		TotalAmountTaken: m.TotalAmountTaken,
		SealedAt:         m.SealedAt,
	}
}

// ToModelArchivalAnomaly converts a domain ArchivalAnomaly to a model ArchivalAnomaly
func ToModelArchivalAnomaly(d domain.ArchivalAnomaly) models.ArchivalAnomaly {
	return models.ArchivalAnomaly{
		AnomalyID:  d.AnomalyID,
		OwnerID:    d.OwnerID,
		EmployeeID: d.EmployeeID,
		Month:      d.Month,
		Year:       d.Year,
		SnapshotID: d.SnapshotID,
		Detail:     d.Detail,
		FlaggedAt:  d.FlaggedAt,
	}
}

// ToDomainMonthlySnapshotSlice converts model snapshots to domain snapshots
func ToDomainMonthlySnapshotSlice(ms []models.MonthlySnapshot) []domain.MonthlySnapshot {
	ds := make([]domain.MonthlySnapshot, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMonthlySnapshot(m)
	}
	return ds
}
