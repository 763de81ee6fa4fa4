package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	. "github.com/trezcool/shule/apps/api/echo"
	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/assignment"
	"github.com/trezcool/shule/core/attendance"
	"github.com/trezcool/shule/core/class"
	"github.com/trezcool/shule/core/grade"
	"github.com/trezcool/shule/core/user"
	"github.com/trezcool/shule/storage/database/inmem"
)

var (
	usrRepo user.Repository
	clsRepo class.Repository
	attRepo attendance.Repository
	asgRepo assignment.Repository
	grdRepo grade.Repository

	errMissingToken = httpErr{Message: "missing or malformed jwt"}
)

type testLogger struct{}

func (testLogger) Enable(enabled bool)                   {}
func (testLogger) Debug(msg string, args ...interface{}) {}
func (testLogger) Info(msg string, args ...interface{})  {}
func (testLogger) Warn(msg string, args ...interface{})  {}
func (testLogger) Error(msg string, args ...interface{}) {}
func (testLogger) Fatal(msg string, args ...interface{}) {}

func testConfig() *core.Config {
	return &core.Config{
		TestMode:  true,
		Env:       "TEST",
		AppName:   "Shule",
		SecretKey: "secret",
		Admin: core.AdminConfig{
			Username: "admin",
			Password: "admin123",
		},
		Server: core.ServerConfig{
			JWTExpirationDelta: time.Hour,
		},
	}
}

func setupWithConfig(t *testing.T, conf *core.Config) *Server {
	// set up DB & repos
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	usrRepo = inmemdb.NewUserRepository(db)
	clsRepo = inmemdb.NewClassRepository(db)
	attRepo = inmemdb.NewAttendanceRepository(db)
	asgRepo = inmemdb.NewAssignmentRepository(db)
	grdRepo = inmemdb.NewGradeRepository(db)

	// set up validation
	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)

	// set up server
	return NewServer(ServerDeps{
		Conf:       conf,
		Logger:     testLogger{},
		UserSvc:    user.NewService(usrRepo),
		ClassSvc:   class.NewService(clsRepo),
		AttSvc:     attendance.NewService(attRepo),
		AsgSvc:     assignment.NewService(asgRepo),
		GradeSvc:   grade.NewService(grdRepo, asgRepo),
		Validate:   validate,
		Translator: translator,
	})
}

func setup(t *testing.T) *Server {
	return setupWithConfig(t, testConfig())
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

type httpErr struct {
	Message interface{} `json:"message"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getAdminToken(t *testing.T, conf *core.Config) string {
	token, err := GenerateToken(conf, GetAdminClaims(conf))
	if err != nil {
		t.Fatalf("getAdminToken() failed: %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

// nolint
func marchallList(t *testing.T, objs ...interface{}) []byte {
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList() failed: %v", err)
	}
	return data
}

// jsonBytesEqual compares the JSON in two byte slices. Comparison is strict:
// list ordering is part of the API contract.
func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
