package tests

import (
	"encoding/json"
	"net/http"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/trezcool/shule/core/class"
	testutil "github.com/trezcool/shule/tests"
)

func Test_classApi_create(t *testing.T) {
	app := setup(t)

	tests := []httpTest{
		{
			name: "missing fields",
			body: marchallObj(t, class.NewClass{}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Message: map[string]string{
				"name":         "this field is required",
				"section":      "this field is required",
				"classTeacher": "this field is required",
				"monitor":      "this field is required",
			}}),
		},
		{
			name: "bad section",
			body: marchallObj(t, class.NewClass{
				Name: "Grade 6", Section: "C", ClassTeacher: "Mr. Otieno", Monitor: "Amy",
			}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Message: map[string]string{
				"section": "section must be one of A or B",
			}}),
		},
		{
			name: "rosters are split on commas and trimmed",
			body: marchallObj(t, class.NewClass{
				Name:           "Grade 6",
				Section:        "A",
				ClassTeacher:   "Mr. Otieno",
				MaleStudents:   " Juma,  Baraka ,Amani",
				FemaleStudents: "Neema, Zawadi",
				Monitor:        "Neema",
				Description:    "Morning stream",
			}),
			wantCode: http.StatusCreated,
			extra:    [][]string{{"Juma", "Baraka", "Amani"}, {"Neema", "Zawadi"}},
		},
		{
			name: "empty rosters are allowed",
			body: marchallObj(t, class.NewClass{
				Name: "Grade 7", Section: "B", ClassTeacher: "Mrs. Achieng", Monitor: "Juma",
			}),
			wantCode: http.StatusCreated,
			extra:    [][]string{{}, {}},
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/api/classes"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)

			if tt.wantCode == http.StatusCreated {
				if rec.Code != tt.wantCode {
					t.Fatalf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
				}
				var cls class.Class
				if err := json.Unmarshal(rec.Body.Bytes(), &cls); err != nil {
					t.Fatalf("json.Unmarshal() failed! err %v", err)
				}
				if cls.ID == "" {
					t.Error("failed! empty id")
				}
				rosters := tt.extra.([][]string)
				if !reflect.DeepEqual(cls.MaleStudents, rosters[0]) {
					t.Errorf("failed! maleStudents = %v; want %v", cls.MaleStudents, rosters[0])
				}
				if !reflect.DeepEqual(cls.FemaleStudents, rosters[1]) {
					t.Errorf("failed! femaleStudents = %v; want %v", cls.FemaleStudents, rosters[1])
				}
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_classApi_query(t *testing.T) {
	app := setup(t)

	// empty store -> empty list, not null
	req, rec := newRequest(http.MethodGet, "/api/classes")
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallList(t, []interface{}{}...)}, rec)

	cls1 := testutil.CreateClass(t, clsRepo, "Grade 6", "A", "Mr. Otieno", []string{"Juma"}, []string{"Neema"}, "Neema")
	cls2 := testutil.CreateClass(t, clsRepo, "Grade 6", "B", "Mrs. Achieng", nil, []string{"Zawadi"}, "Zawadi")

	req, rec = newRequest(http.MethodGet, "/api/classes")
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallList(t, cls1, cls2)}, rec)
}

func Test_classApi_retrieve(t *testing.T) {
	app := setup(t)

	cls := testutil.CreateClass(t, clsRepo, "Grade 8", "A", "Mr. Otieno", []string{"Juma"}, []string{"Neema"}, "Juma")
	notFound := marchallObj(t, httpErr{Message: "Class not found"})

	tests := []httpTest{
		{name: "found", path: "/api/classes/" + cls.ID, wantCode: http.StatusOK, wantData: marchallObj(t, cls)},
		{name: "unknown id", path: "/api/classes/" + uuid.New().String(), wantCode: http.StatusNotFound, wantData: notFound},
		{name: "malformed id", path: "/api/classes/nope", wantCode: http.StatusNotFound, wantData: notFound},
	}
	for _, tt := range tests {
		tt.method = http.MethodGet

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_classApi_update(t *testing.T) {
	app := setup(t)

	cls := testutil.CreateClass(t, clsRepo, "Grade 6", "A", "Mr. Otieno", []string{"Juma"}, []string{"Neema"}, "Neema")

	body := marchallObj(t, class.NewClass{
		Name:           "Grade 7",
		Section:        "B",
		ClassTeacher:   "Mrs. Achieng",
		MaleStudents:   "Baraka, Amani",
		FemaleStudents: "Zawadi",
		Monitor:        "Zawadi",
	})

	tests := []httpTest{
		{
			name: "unknown id", path: "/api/classes/" + uuid.New().String(), body: body,
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Message: "Class not found"}),
		},
		{name: "full replace", path: "/api/classes/" + cls.ID, body: body, wantCode: http.StatusOK},
	}
	for _, tt := range tests {
		tt.method = http.MethodPut

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)

			if tt.wantCode == http.StatusOK {
				if rec.Code != tt.wantCode {
					t.Fatalf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
				}
				var updated class.Class
				if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
					t.Fatalf("json.Unmarshal() failed! err %v", err)
				}
				if updated.ID != cls.ID {
					t.Errorf("failed! id = %v; want %v", updated.ID, cls.ID)
				}
				if updated.Name != "Grade 7" || updated.Section != "B" {
					t.Errorf("failed! record not replaced: %+v", updated)
				}
				if !reflect.DeepEqual(updated.MaleStudents, []string{"Baraka", "Amani"}) {
					t.Errorf("failed! maleStudents = %v", updated.MaleStudents)
				}
				if !updated.CreatedAt.Equal(cls.CreatedAt) {
					t.Errorf("failed! created_at changed: %v != %v", updated.CreatedAt, cls.CreatedAt)
				}
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_classApi_destroy(t *testing.T) {
	app := setup(t)

	cls := testutil.CreateClass(t, clsRepo, "Grade 6", "A", "Mr. Otieno", nil, nil, "Neema")
	notFound := marchallObj(t, httpErr{Message: "Class not found"})

	tests := []httpTest{
		{
			name: "deleted", path: "/api/classes/" + cls.ID,
			wantCode: http.StatusOK, wantData: marchallObj(t, httpErr{Message: "Class deleted successfully"}),
		},
		{name: "repeat delete", path: "/api/classes/" + cls.ID, wantCode: http.StatusNotFound, wantData: notFound},
		{name: "unknown id", path: "/api/classes/" + uuid.New().String(), wantCode: http.StatusNotFound, wantData: notFound},
	}
	for _, tt := range tests {
		tt.method = http.MethodDelete

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	// retrieval after deletion is a 404 too
	req, rec := newRequest(http.MethodGet, "/api/classes/"+cls.ID)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: notFound}, rec)
}

func Test_classApi_guardedMutations(t *testing.T) {
	conf := testConfig()
	conf.Server.RequireAdminToken = true
	app := setupWithConfig(t, conf)

	cls := testutil.CreateClass(t, clsRepo, "Grade 6", "A", "Mr. Otieno", nil, nil, "Neema")
	adminToken := getAdminToken(t, conf)

	body := marchallObj(t, class.NewClass{
		Name: "Grade 6", Section: "B", ClassTeacher: "Mrs. Achieng", Monitor: "Juma",
	})

	tests := []httpTest{
		// reads stay open
		{name: "query open", method: http.MethodGet, path: "/api/classes", wantCode: http.StatusOK},
		{name: "retrieve open", method: http.MethodGet, path: "/api/classes/" + cls.ID, wantCode: http.StatusOK},
		// mutations need the token
		{
			name: "create guarded", method: http.MethodPost, path: "/api/classes", body: body,
			wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken),
		},
		{
			name: "update guarded", method: http.MethodPut, path: "/api/classes/" + cls.ID, body: body,
			wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken),
		},
		{
			name: "delete guarded", method: http.MethodDelete, path: "/api/classes/" + cls.ID,
			wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken),
		},
		{
			name: "create with token", method: http.MethodPost, path: "/api/classes", body: body,
			token: adminToken, wantCode: http.StatusCreated,
		},
		{
			name: "delete with token", method: http.MethodDelete, path: "/api/classes/" + cls.ID,
			token: adminToken, wantCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			if tt.wantData == nil {
				if rec.Code != tt.wantCode {
					t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
				}
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}
}
