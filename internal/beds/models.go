package beds

// Count is the number of beds on the ward board, B1..B12.
const Count = 12

// Placeholder is shown for every detail field that has no value.
const Placeholder = "—"

const (
	StatusOccupied  = "Occupied"
	StatusAvailable = "Available"
)

// Slot is one bed on the board.
type Slot struct {
	ID       string `json:"id"`
	Occupied bool   `json:"occupied"`
	Status   string `json:"status"`
}

// Board is the rendered 12-bed grid.
type Board struct {
	Beds     []Slot `json:"beds"`
	Occupied int    `json:"occupied"`
}

// Detail is what the bed detail screen shows for one bed.
type Detail struct {
	BedNo        string `json:"bedNo"`
	Occupied     bool   `json:"occupied"`
	Patient      string `json:"patient"`
	PatientID    string `json:"patientId"`
	Age          string `json:"age"`
	Mobile       string `json:"mobile"`
	Prescription string `json:"prescription"`
	Photo        string `json:"photo,omitempty"`
}
