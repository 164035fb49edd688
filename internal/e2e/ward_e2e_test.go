package e2e

import (
	"net/http"
	"testing"

	"github.com/WailSalutem-Health-Care/ward-service/internal/beds"
	"github.com/WailSalutem-Health-Care/ward-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/ward-service/internal/patient"
	"github.com/WailSalutem-Health-Care/ward-service/internal/session"
	"github.com/WailSalutem-Health-Care/ward-service/internal/shift"
	"github.com/WailSalutem-Health-Care/ward-service/internal/testutil"
	"github.com/WailSalutem-Health-Care/ward-service/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intakeFields(name, age, bedNo string) map[string]string {
	return map[string]string{
		"pName":        name,
		"pId":          "P-" + name,
		"mobile":       "98450",
		"gmobile":      "98451",
		"page":         age,
		"bedNo":        bedNo,
		"prescription": "rest",
	}
}

// TestE2E_SameBedTwice stores two intakes at B5 and checks the board.
func TestE2E_SameBedTwice(t *testing.T) {
	ts := SetupE2ETest(t)
	defer ts.Cleanup(t)

	resp := ts.Client.POSTForm(t, "/patients", intakeFields("First", "40", "B5"), "pPhoto", testutil.TinyPNG)
	testutil.AssertStatusCode(t, resp, http.StatusCreated)
	resp.Body.Close()

	resp = ts.Client.POSTForm(t, "/patients", intakeFields("Second", "50", "B5"), "", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var saved Envelope[patient.IntakeResult]
	testutil.DecodeJSON(t, resp, &saved)
	assert.Equal(t, string(view.ScreenProfile), saved.Screen)
	assert.Equal(t, view.MsgPatientSaved, saved.Message)
	assert.True(t, saved.Data.Replaced)
	assert.Empty(t, saved.Data.Patient.Photo, "replacement does not inherit the earlier photo")

	resp = ts.Client.GET(t, "/patients/B5")
	var rec Envelope[session.PatientRecord]
	testutil.DecodeJSON(t, resp, &rec)
	assert.Equal(t, "Second", rec.Data.Name)

	resp = ts.Client.GET(t, "/beds")
	var board Envelope[beds.Board]
	testutil.DecodeJSON(t, resp, &board)
	assert.Equal(t, string(view.ScreenBeds), board.Screen)
	require.Len(t, board.Data.Beds, beds.Count)
	assert.Equal(t, 1, board.Data.Occupied)
	assert.True(t, board.Data.Beds[4].Occupied)

	resp = ts.Client.GET(t, "/beds/B5")
	var detail Envelope[beds.Detail]
	testutil.DecodeJSON(t, resp, &detail)
	assert.Equal(t, string(view.ScreenBedDetail), detail.Screen)
	assert.Equal(t, "Second", detail.Data.Patient)
	assert.Equal(t, "50", detail.Data.Age)

	ts.MockPublisher.AssertEventCount(t, messaging.EventPatientAdmitted, 2)
}

// TestE2E_IntakeRejected checks that invalid ages store nothing.
func TestE2E_IntakeRejected(t *testing.T) {
	ts := SetupE2ETest(t)
	defer ts.Cleanup(t)

	for _, age := range []string{"0", "abc", ""} {
		resp := ts.Client.POSTForm(t, "/patients", intakeFields("Ravi", age, "B1"), "", nil)
		var env Envelope[any]
		testutil.DecodeJSON(t, resp, &env)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, age)
		assert.Equal(t, "InvalidAge", env.Error, age)
	}

	resp := ts.Client.POSTForm(t, "/patients", intakeFields("  ", "30", "B1"), "", nil)
	var env Envelope[any]
	testutil.DecodeJSON(t, resp, &env)
	assert.Equal(t, "MissingField", env.Error)
	assert.Equal(t, "Patient name required.", env.Message)

	assert.Empty(t, ts.Store.Patients())

	resp = ts.Client.GET(t, "/beds/B1")
	var detail Envelope[beds.Detail]
	testutil.DecodeJSON(t, resp, &detail)
	assert.Equal(t, beds.Placeholder, detail.Data.Patient)
}

// TestE2E_PatientList pages through the admitted patients.
func TestE2E_PatientList(t *testing.T) {
	ts := SetupE2ETest(t)
	defer ts.Cleanup(t)

	for _, bed := range []string{"B1", "B2", "B3"} {
		resp := ts.Client.POST(t, "/patients", map[string]interface{}{"pName": "P" + bed, "page": 30, "bedNo": bed})
		testutil.AssertStatusCode(t, resp, http.StatusCreated)
		resp.Body.Close()
	}

	resp := ts.Client.GET(t, "/patients?page=2&limit=2")
	var list Envelope[patient.PatientListResponse]
	testutil.DecodeJSON(t, resp, &list)
	require.Len(t, list.Data.Patients, 1)
	assert.Equal(t, "B3", list.Data.Patients[0].BedNo)
	assert.Equal(t, 3, list.Data.Pagination.TotalRecords)
}

// TestE2E_ShiftChangeNeverMutatesTable requests a change and re-reads the table.
func TestE2E_ShiftChangeNeverMutatesTable(t *testing.T) {
	ts := SetupE2ETest(t)
	defer ts.Cleanup(t)

	resp := ts.Client.GET(t, "/shifts")
	var before Envelope[struct {
		Shifts []shift.Entry `json:"shifts"`
	}]
	testutil.DecodeJSON(t, resp, &before)
	require.Len(t, before.Data.Shifts, 2)

	resp = ts.Client.POST(t, "/shifts/change-requests", shift.ChangeRequest{Reason: ""})
	testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
	resp.Body.Close()

	resp = ts.Client.POST(t, "/shifts/change-requests", shift.ChangeRequest{Reason: "family event"})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	var ack Envelope[shift.ChangeAck]
	testutil.DecodeJSON(t, resp, &ack)
	assert.Equal(t, view.MsgShiftChangeRequested+"family event", ack.Message)
	ts.MockPublisher.AssertEventCount(t, messaging.EventShiftChangeRequested, 1)

	resp = ts.Client.GET(t, "/shifts")
	var after Envelope[struct {
		Shifts []shift.Entry `json:"shifts"`
	}]
	testutil.DecodeJSON(t, resp, &after)
	assert.Equal(t, before.Data.Shifts, after.Data.Shifts)
}

// TestE2E_PhotoPreviewLeavesStoreAlone previews an image without side effects.
func TestE2E_PhotoPreviewLeavesStoreAlone(t *testing.T) {
	ts := SetupE2ETest(t)
	defer ts.Cleanup(t)

	resp := ts.Client.POSTForm(t, "/photos/preview", nil, "photo", testutil.TinyPNG)
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	resp.Body.Close()

	_, ok := ts.Store.CurrentUser()
	assert.False(t, ok)
	assert.Empty(t, ts.Store.Patients())
}

func TestE2E_AppInfo(t *testing.T) {
	ts := SetupE2ETest(t)
	defer ts.Cleanup(t)

	resp := ts.Client.GET(t, "/app/info")
	var env Envelope[any]
	testutil.DecodeJSON(t, resp, &env)
	assert.Equal(t, view.MsgDefaultAppInfo, env.Message)
	assert.Equal(t, view.MsgDefaultAppInfo, ts.Notifier.Last())
}
