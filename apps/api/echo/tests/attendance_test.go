package tests

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/trezcool/shule/core/attendance"
	testutil "github.com/trezcool/shule/tests"
)

func attendancePath(grade, section string) string {
	v := make(url.Values)
	if grade != "" {
		v.Add("grade", grade)
	}
	if section != "" {
		v.Add("section", section)
	}
	return "/api/attendance?" + v.Encode()
}

func Test_attendanceApi_create(t *testing.T) {
	app := setup(t)

	tests := []httpTest{
		{
			name: "missing fields",
			body: marchallObj(t, attendance.NewAttendance{}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Message: map[string]string{
				"grade":      "this field is required",
				"section":    "this field is required",
				"date":       "this field is required",
				"attendance": "this field is required",
			}}),
		},
		{
			name: "unknown status",
			body: marchallObj(t, attendance.NewAttendance{
				Grade: "Grade 6", Section: "A", Date: "2025-03-10",
				Statuses: map[string]string{"Juma": "sleeping"},
			}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Message: map[string]string{
				"attendance[Juma]": "must be one of the allowed values",
			}}),
		},
		{
			name: "bad date",
			body: marchallObj(t, attendance.NewAttendance{
				Grade: "Grade 6", Section: "A", Date: "10/03/2025",
				Statuses: map[string]string{"Juma": "present"},
			}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Message: map[string]string{"date": "invalid date"}}),
		},
		{
			name: "plain date",
			body: marchallObj(t, attendance.NewAttendance{
				Grade: "Grade 6", Section: "A", Date: "2025-03-10",
				Statuses: map[string]string{"Juma": "present", "Neema": "late"},
			}),
			wantCode: http.StatusCreated,
		},
		{
			name: "same day records are kept separate",
			body: marchallObj(t, attendance.NewAttendance{
				Grade: "Grade 6", Section: "A", Date: "2025-03-10",
				Statuses: map[string]string{"Juma": "absent"},
			}),
			wantCode: http.StatusCreated,
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/api/attendance"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)

			if tt.wantCode == http.StatusCreated {
				if rec.Code != tt.wantCode {
					t.Fatalf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
				}
				var att attendance.Attendance
				if err := json.Unmarshal(rec.Body.Bytes(), &att); err != nil {
					t.Fatalf("json.Unmarshal() failed! err %v", err)
				}
				if att.ID == "" {
					t.Error("failed! empty id")
				}
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}

	// both takes of 2025-03-10 must have survived
	req, rec := newRequest(http.MethodGet, attendancePath("Grade 6", "A"))
	app.ServeHTTP(rec, req)
	var atts []attendance.Attendance
	if err := json.Unmarshal(rec.Body.Bytes(), &atts); err != nil {
		t.Fatalf("json.Unmarshal() failed! err %v", err)
	}
	if len(atts) != 2 {
		t.Errorf("failed! len = %v; want 2", len(atts))
	}
}

func Test_attendanceApi_query(t *testing.T) {
	app := setup(t)

	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("time.Parse() failed: %v", err)
		}
		return d
	}
	statuses := map[string]string{"Juma": "present"}

	older := testutil.CreateAttendance(t, attRepo, "Grade 6", "A", day("2025-03-08"), statuses)
	newest := testutil.CreateAttendance(t, attRepo, "Grade 6", "A", day("2025-03-12"), statuses)
	middle := testutil.CreateAttendance(t, attRepo, "Grade 6", "A", day("2025-03-10"), statuses)
	otherSection := testutil.CreateAttendance(t, attRepo, "Grade 6", "B", day("2025-03-12"), statuses)

	empty := marchallList(t, []interface{}{}...)

	tests := []httpTest{
		// newest date first
		{name: "filter by grade and section", path: attendancePath("Grade 6", "A"), wantData: marchallList(t, newest, middle, older)},
		{name: "other section", path: attendancePath("Grade 6", "B"), wantData: marchallList(t, otherSection)},
		{name: "unknown grade", path: attendancePath("Grade 11", "A"), wantData: empty},
		{name: "missing params", path: "/api/attendance", wantData: empty},
	}
	for _, tt := range tests {
		tt.method = http.MethodGet
		tt.wantCode = http.StatusOK

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
