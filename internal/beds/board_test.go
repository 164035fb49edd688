package beds

import (
	"testing"

	"github.com/WailSalutem-Health-Care/ward-service/internal/session"
	"github.com/google/go-cmp/cmp"
)

func emptyBoard() Board {
	b := Board{}
	for i := 1; i <= Count; i++ {
		b.Beds = append(b.Beds, Slot{ID: SlotID(i), Status: StatusAvailable})
	}
	return b
}

func TestRender_Empty(t *testing.T) {
	got := Render(session.NewStore())
	if diff := cmp.Diff(emptyBoard(), got); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_ExactKeysOnly(t *testing.T) {
	store := session.NewStore()
	store.PutPatient("B5", session.PatientRecord{Name: "A", BedNo: "B5"})
	store.PutPatient("b7", session.PatientRecord{Name: "B", BedNo: "b7"})
	store.PutPatient("B13", session.PatientRecord{Name: "C", BedNo: "B13"})
	store.PutPatient(session.UnassignedBed, session.PatientRecord{Name: "D", BedNo: session.UnassignedBed})

	want := emptyBoard()
	want.Beds[4] = Slot{ID: "B5", Occupied: true, Status: StatusOccupied}
	want.Occupied = 1

	if diff := cmp.Diff(want, Render(store)); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_OverwriteKeepsOneMarker(t *testing.T) {
	store := session.NewStore()
	store.PutPatient("B5", session.PatientRecord{Name: "First", BedNo: "B5"})
	store.PutPatient("B5", session.PatientRecord{Name: "Second", BedNo: "B5"})

	board := Render(store)
	if board.Occupied != 1 {
		t.Fatalf("Expected 1 occupied bed, got %d", board.Occupied)
	}
	if !board.Beds[4].Occupied {
		t.Errorf("Expected B5 occupied")
	}
}

func TestRender_IsPureFunctionOfMapping(t *testing.T) {
	store := session.NewStore()
	first := Render(store)
	store.PutPatient("B1", session.PatientRecord{Name: "A", BedNo: "B1"})
	second := Render(store)

	if first.Beds[0].Occupied {
		t.Errorf("Earlier render must not change after a later intake")
	}
	if !second.Beds[0].Occupied {
		t.Errorf("Expected B1 occupied after intake")
	}
}

type countingSource struct {
	*session.Store
	occupancyCalls int
	patientCalls   int
}

func (c *countingSource) Patient(key string) (*session.PatientRecord, bool) {
	c.patientCalls++
	return c.Store.Patient(key)
}

func (c *countingSource) Occupancy(keys []string) []bool {
	c.occupancyCalls++
	return c.Store.Occupancy(keys)
}

func TestRender_ReadsOneSnapshot(t *testing.T) {
	src := &countingSource{Store: session.NewStore()}
	src.PutPatient("B3", session.PatientRecord{Name: "A", BedNo: "B3"})

	board := Render(src)

	if src.occupancyCalls != 1 || src.patientCalls != 0 {
		t.Fatalf("Render() made %d Occupancy and %d Patient calls, want 1 and 0", src.occupancyCalls, src.patientCalls)
	}
	if board.Occupied != 1 || !board.Beds[2].Occupied {
		t.Errorf("Render() = %+v, want only B3 occupied", board)
	}
}

func TestDetailFor(t *testing.T) {
	store := session.NewStore()
	store.PutPatient("B3", session.PatientRecord{
		Name:         "Ravi",
		ID:           "P-77",
		Age:          62,
		Mobile:       "98450",
		BedNo:        "B3",
		Prescription: "",
		Photo:        "data:image/png;base64,AA==",
	})

	testCases := []struct {
		name  string
		bedNo string
		want  Detail
	}{
		{
			name:  "occupied bed shows record",
			bedNo: "B3",
			want: Detail{
				BedNo:        "B3",
				Occupied:     true,
				Patient:      "Ravi",
				PatientID:    "P-77",
				Age:          "62",
				Mobile:       "98450",
				Prescription: Placeholder,
				Photo:        "data:image/png;base64,AA==",
			},
		},
		{
			name:  "empty bed shows placeholders",
			bedNo: "B4",
			want: Detail{
				BedNo:        "B4",
				Patient:      Placeholder,
				PatientID:    Placeholder,
				Age:          Placeholder,
				Mobile:       Placeholder,
				Prescription: Placeholder,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, DetailFor(store, tc.bedNo)); diff != "" {
				t.Errorf("DetailFor(%q) mismatch (-want +got):\n%s", tc.bedNo, diff)
			}
		})
	}
}
