package stub_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"janseva/internal/platform/logger"
	"janseva/internal/portal/models"
	"janseva/internal/stub"
	"janseva/internal/stub/metrics"
	"janseva/internal/stub/store"
	"janseva/internal/stub/token"
	"janseva/pkg/platform/httputil"
)

var registerBody = models.RegisterRequest{
	Email:    "rajesh.kumar@gmail.com",
	Username: "rajesh_kumar",
	FullName: "Rajesh Kumar Singh",
	Password: "SecurePass123!",
}

var familyBody = models.FamilyProfileRequest{
	FamilyHeadName: "Rajesh Kumar Singh",
	Age:            42,
	Gender:         "Male",
	CasteCategory:  "OBC",
	Occupation:     "Farmer",
	AnnualIncome:   95000,
	EducationLevel: "Secondary",
	Members: []models.FamilyMember{
		{Name: "Sunita Devi", Age: 38, Gender: "Female", Relationship: "Wife"},
		{Name: "Amit Kumar", Age: 15, Gender: "Male", Relationship: "Son", Education: "Secondary"},
	},
}

type portalFixture struct {
	t      *testing.T
	server *httptest.Server
	token  string
}

func newPortal(t *testing.T) *portalFixture {
	t.Helper()
	h := stub.NewHandler(
		store.NewMemoryStore(),
		token.NewService("test-signing-key", time.Hour),
		metrics.New(prometheus.NewRegistry()),
		logger.Discard(),
	)
	server := httptest.NewServer(h.NewRouter())
	t.Cleanup(server.Close)
	return &portalFixture{t: t, server: server}
}

func (f *portalFixture) do(method, path string, body any) *http.Response {
	f.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(f.t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, f.server.URL+path, reader)
	require.NoError(f.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}
	resp, err := f.server.Client().Do(req)
	require.NoError(f.t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func (f *portalFixture) signUp(t *testing.T) {
	t.Helper()
	resp := f.do(http.MethodPost, "/api/register", registerBody)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = f.do(http.MethodPost, "/api/login", models.LoginRequest{Username: registerBody.Username, Password: registerBody.Password})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	grant := decode[models.LoginResponse](t, resp)
	require.NotEmpty(t, grant.AccessToken)
	require.Equal(t, "bearer", grant.TokenType)
	f.token = grant.AccessToken
}

func TestRegisterAndLogin(t *testing.T) {
	f := newPortal(t)

	t.Run("register then login grants a token", func(t *testing.T) {
		f.signUp(t)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		resp := f.do(http.MethodPost, "/api/register", registerBody)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("registration validation reports per-field messages", func(t *testing.T) {
		bad := registerBody
		bad.Email = "not-an-email"
		bad.Password = "short"
		bad.Username = "new_user"
		resp := f.do(http.MethodPost, "/api/register", bad)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		envelope := decode[httputil.ErrorResponse](t, resp)
		assert.Equal(t, "validation", envelope.Error)
		assert.Contains(t, envelope.Fields, "email")
		assert.Contains(t, envelope.Fields, "password")
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		resp := f.do(http.MethodPost, "/api/login", models.LoginRequest{Username: registerBody.Username, Password: "wrong-password"})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		wrongPass := decode[httputil.ErrorResponse](t, resp)

		resp = f.do(http.MethodPost, "/api/login", models.LoginRequest{Username: "nobody", Password: "whatever"})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		unknown := decode[httputil.ErrorResponse](t, resp)

		assert.Equal(t, wrongPass, unknown)
	})

	t.Run("registration seeds a welcome notification", func(t *testing.T) {
		resp := f.do(http.MethodGet, "/api/notifications", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		list := decode[models.NotificationsResponse](t, resp)
		require.Len(t, list.Notifications, 1)
		assert.False(t, list.Notifications[0].Read)
	})
}

func TestAuthRequired(t *testing.T) {
	f := newPortal(t)

	t.Run("missing token", func(t *testing.T) {
		resp := f.do(http.MethodGet, "/api/me", nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		f.token = "not-a-jwt"
		resp := f.do(http.MethodGet, "/api/me", nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		f.token = ""
	})

	t.Run("expired token", func(t *testing.T) {
		expired := token.NewService("test-signing-key", -time.Minute)
		minted, err := expired.Mint("u-1")
		require.NoError(t, err)
		f.token = minted
		resp := f.do(http.MethodGet, "/api/me", nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		f.token = ""
	})
}

func TestFamilyProfile(t *testing.T) {
	f := newPortal(t)
	f.signUp(t)

	t.Run("absent before submission", func(t *testing.T) {
		resp := f.do(http.MethodGet, "/api/family", nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("submission returns the stored record", func(t *testing.T) {
		resp := f.do(http.MethodPost, "/api/family", familyBody)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		family := decode[models.FamilyProfile](t, resp)
		assert.NotEmpty(t, family.ID)
		assert.Equal(t, familyBody.FamilyHeadName, family.FamilyHeadName)
		assert.Len(t, family.Members, 2)
	})

	t.Run("second submission conflicts", func(t *testing.T) {
		resp := f.do(http.MethodPost, "/api/family", familyBody)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("validation reports per-field messages", func(t *testing.T) {
		bad := familyBody
		bad.FamilyHeadName = ""
		bad.Age = 300
		resp := f.do(http.MethodPost, "/api/family", bad)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		envelope := decode[httputil.ErrorResponse](t, resp)
		assert.Contains(t, envelope.Fields, "family_head_name")
		assert.Contains(t, envelope.Fields, "age")
	})
}

func TestEligibilityFlow(t *testing.T) {
	f := newPortal(t)
	f.signUp(t)

	t.Run("check before family profile is rejected", func(t *testing.T) {
		resp := f.do(http.MethodPost, "/api/check-eligibility", nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("schemes are empty before the first check", func(t *testing.T) {
		resp := f.do(http.MethodGet, "/api/eligible-schemes", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		list := decode[models.SchemesResponse](t, resp)
		assert.Empty(t, list.Schemes)
	})

	resp := f.do(http.MethodPost, "/api/family", familyBody)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	t.Run("check produces a determination for every scheme", func(t *testing.T) {
		resp := f.do(http.MethodPost, "/api/check-eligibility", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()

		resp = f.do(http.MethodGet, "/api/eligible-schemes", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		list := decode[models.SchemesResponse](t, resp)
		require.Len(t, list.Schemes, 5)
		for _, s := range list.Schemes {
			assert.NotEmpty(t, s.AIReasoning, s.SchemeName)
		}
	})

	t.Run("check appends a notification", func(t *testing.T) {
		resp := f.do(http.MethodGet, "/api/notifications", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		list := decode[models.NotificationsResponse](t, resp)
		require.NotEmpty(t, list.Notifications)
		assert.Equal(t, "Eligibility check complete", list.Notifications[0].Title)
	})

	t.Run("apply moves an eligible scheme to applied", func(t *testing.T) {
		resp := f.do(http.MethodPost, "/api/apply-scheme/PM-KISAN", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()

		resp = f.do(http.MethodGet, "/api/eligible-schemes", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		list := decode[models.SchemesResponse](t, resp)
		for _, s := range list.Schemes {
			if s.SchemeName == "PM-KISAN" {
				assert.Equal(t, models.StatusApplied, s.Status)
			}
		}
	})

	t.Run("a second application conflicts", func(t *testing.T) {
		resp := f.do(http.MethodPost, "/api/apply-scheme/PM-KISAN", nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("an unknown scheme is not found", func(t *testing.T) {
		resp := f.do(http.MethodPost, "/api/apply-scheme/No-Such-Scheme", nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("a re-check keeps applied schemes applied", func(t *testing.T) {
		resp := f.do(http.MethodPost, "/api/check-eligibility", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()

		resp = f.do(http.MethodGet, "/api/eligible-schemes", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		list := decode[models.SchemesResponse](t, resp)
		for _, s := range list.Schemes {
			if s.SchemeName == "PM-KISAN" {
				assert.Equal(t, models.StatusApplied, s.Status)
			}
		}
	})
}

func TestNotificationsRead(t *testing.T) {
	f := newPortal(t)
	f.signUp(t)

	resp := f.do(http.MethodGet, "/api/notifications", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[models.NotificationsResponse](t, resp)
	require.NotEmpty(t, list.Notifications)
	id := list.Notifications[0].ID

	t.Run("mark read", func(t *testing.T) {
		resp := f.do(http.MethodPut, "/api/notifications/"+id+"/read", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()

		resp = f.do(http.MethodGet, "/api/notifications", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		list := decode[models.NotificationsResponse](t, resp)
		assert.True(t, list.Notifications[0].Read)
	})

	t.Run("unknown notification is not found", func(t *testing.T) {
		resp := f.do(http.MethodPut, "/api/notifications/does-not-exist/read", nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestUploadDocument(t *testing.T) {
	f := newPortal(t)
	f.signUp(t)

	upload := func(t *testing.T, documentType, filename string) *http.Response {
		t.Helper()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		if filename != "" {
			part, err := mw.CreateFormFile("file", filename)
			require.NoError(t, err)
			_, err = part.Write([]byte("aadhaar scan bytes"))
			require.NoError(t, err)
		}
		if documentType != "" {
			require.NoError(t, mw.WriteField("document_type", documentType))
		}
		require.NoError(t, mw.Close())

		req, err := http.NewRequest(http.MethodPost, f.server.URL+"/api/upload-document", &buf)
		require.NoError(t, err)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+f.token)
		resp, err := f.server.Client().Do(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("stores the document and echoes the filename", func(t *testing.T) {
		resp := upload(t, "aadhaar", "aadhaar.pdf")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		ack := decode[models.UploadResponse](t, resp)
		assert.Equal(t, "aadhaar.pdf", ack.Filename)
	})

	t.Run("missing file is a validation error", func(t *testing.T) {
		resp := upload(t, "aadhaar", "")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		envelope := decode[httputil.ErrorResponse](t, resp)
		assert.Contains(t, envelope.Fields, "file")
	})

	t.Run("missing document type is a validation error", func(t *testing.T) {
		resp := upload(t, "", "aadhaar.pdf")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		envelope := decode[httputil.ErrorResponse](t, resp)
		assert.Contains(t, envelope.Fields, "document_type")
	})
}
