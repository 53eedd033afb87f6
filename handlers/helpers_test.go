package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func jsonContext(t *testing.T, body string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

// validationFields digs the failed-field map out of the HTTPError body.
func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	assert.Equal(t, http.StatusBadRequest, he.Code)
	body, ok := he.Message.(map[string]any)
	if !ok {
		t.Fatalf("expected map body, got %T", he.Message)
	}
	assert.Equal(t, "VALIDATION_ERROR", body["error"])
	fields, _ := body["fields"].(map[string]string)
	return fields
}

func TestBindAndValidateRegisterPayload(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string // empty means the payload is accepted
	}{
		{
			name: "valid",
			body: `{"first_name":"Ada","last_name":"Reyes","username":"areyes",
				"email":"ada@planify.test","contact_number":"09171234567",
				"password":"pass123","role":"student"}`,
		},
		{
			name: "bad email",
			body: `{"first_name":"Ada","last_name":"Reyes","username":"areyes",
				"email":"not-an-email","contact_number":"09171234567",
				"password":"pass123","role":"student"}`,
			wantField: "Email",
		},
		{
			name: "contact number not 11 digits",
			body: `{"first_name":"Ada","last_name":"Reyes","username":"areyes",
				"email":"ada@planify.test","contact_number":"12345",
				"password":"pass123","role":"student"}`,
			wantField: "ContactNumber",
		},
		{
			name: "admin role rejected at the edge",
			body: `{"first_name":"Ada","last_name":"Reyes","username":"areyes",
				"email":"ada@planify.test","contact_number":"09171234567",
				"password":"pass123","role":"admin"}`,
			wantField: "Role",
		},
		{
			name: "short password",
			body: `{"first_name":"Ada","last_name":"Reyes","username":"areyes",
				"email":"ada@planify.test","contact_number":"09171234567",
				"password":"abc","role":"student"}`,
			wantField: "Password",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p registerPayload
			err := bindAndValidate(jsonContext(t, tt.body), &p)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			assert.Contains(t, validationFields(t, err), tt.wantField)
		})
	}
}

func TestBindAndValidateJoinCode(t *testing.T) {
	var p joinPayload
	assert.NoError(t, bindAndValidate(jsonContext(t, `{"enrollment_code":"AB12CD34"}`), &p))
	assert.Equal(t, "AB12CD34", p.EnrollmentCode)

	err := bindAndValidate(jsonContext(t, `{"enrollment_code":"SHORT"}`), &joinPayload{})
	assert.Contains(t, validationFields(t, err), "EnrollmentCode")
}

func TestUintParam(t *testing.T) {
	e := echo.New()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	ctx.SetParamNames("id")
	ctx.SetParamValues("42")
	assert.Equal(t, uint(42), uintParam(ctx, "id"))

	ctx.SetParamValues("abc")
	assert.Zero(t, uintParam(ctx, "id"))
}
