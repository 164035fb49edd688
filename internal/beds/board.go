// Package beds renders the ward's bed board from the patient mapping.
// Occupancy is never stored; every render reads the mapping again.
package beds

import (
	"strconv"

	"github.com/WailSalutem-Health-Care/ward-service/internal/session"
)

// Source is the read side of the patient mapping.
type Source interface {
	Patient(key string) (*session.PatientRecord, bool)
	Occupancy(keys []string) []bool
}

var _ Source = (*session.Store)(nil)

// SlotID returns the bed id for position i, counting from 1.
func SlotID(i int) string {
	return "B" + strconv.Itoa(i)
}

// Render rebuilds the full board from one occupancy snapshot. A bed is
// occupied only when a record is stored under exactly its id, so "b5" or
// "B05" never light up B5.
func Render(src Source) Board {
	ids := make([]string, Count)
	for i := range ids {
		ids[i] = SlotID(i + 1)
	}
	occ := src.Occupancy(ids)

	board := Board{Beds: make([]Slot, 0, Count)}
	for i, id := range ids {
		occupied := occ[i]
		slot := Slot{ID: id, Occupied: occupied, Status: StatusAvailable}
		if occupied {
			slot.Status = StatusOccupied
			board.Occupied++
		}
		board.Beds = append(board.Beds, slot)
	}
	return board
}

// DetailFor returns the record under bedNo, or placeholders when the bed is empty.
func DetailFor(src Source, bedNo string) Detail {
	rec, ok := src.Patient(bedNo)
	if !ok {
		return Detail{
			BedNo:        bedNo,
			Patient:      Placeholder,
			PatientID:    Placeholder,
			Age:          Placeholder,
			Mobile:       Placeholder,
			Prescription: Placeholder,
		}
	}

	age := ""
	if rec.Age != 0 {
		age = strconv.FormatFloat(rec.Age, 'f', -1, 64)
	}
	return Detail{
		BedNo:        bedNo,
		Occupied:     true,
		Patient:      rec.Name,
		PatientID:    orPlaceholder(rec.ID),
		Age:          orPlaceholder(age),
		Mobile:       orPlaceholder(rec.Mobile),
		Prescription: orPlaceholder(rec.Prescription),
		Photo:        rec.Photo,
	}
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
