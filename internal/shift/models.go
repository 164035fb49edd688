package shift

// Entry is one row of the shift timing table.
type Entry struct {
	Role  string `json:"role" yaml:"role"`
	Name  string `json:"name" yaml:"name"`
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// DefaultEntries is the seed table used when no ward file overrides it.
var DefaultEntries = []Entry{
	{Role: "Doctor", Name: "Dr. Arun", Start: "09:00", End: "17:00"},
	{Role: "Nurse", Name: "Nurse Meera", Start: "08:00", End: "16:00"},
}

// ChangeRequest is the body of a shift change request.
type ChangeRequest struct {
	Reason string `json:"reason"`
}

// ChangeAck acknowledges a change request. The table itself is not modified.
type ChangeAck struct {
	Message string `json:"message"`
	Reason  string `json:"reason"`
}
