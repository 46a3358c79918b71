package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mutuals/config"
	apimiddleware "mutuals/internal/delivery/api/middleware"
	"mutuals/internal/delivery/api/router/handler"
	"mutuals/internal/delivery/api/validator"
	"mutuals/internal/delivery/middleware"
	"mutuals/internal/domain/entity"
	"mutuals/internal/domain/identity"
	"mutuals/internal/infra/auth"
	"mutuals/internal/infra/persistence/memory"
	"mutuals/internal/infra/qrcode"
	mockService "mutuals/internal/mocks/service"
	"mutuals/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "router_test_secret"

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
	Meta struct {
		RequestID string    `json:"request_id"`
		Page      *pageInfo `json:"page"`
	} `json:"meta"`
}

type pageInfo struct {
	Count  int `json:"count"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type apiFixture struct {
	echo     *echo.Echo
	store    *memory.Store
	notifier *mockService.MockSMSNotifier
	alice    *entity.Profile
	bob      *entity.Profile
}

func newTestConfig() *config.Config {
	return &config.Config{
		Identity: &config.IdentityConfig{NegativeCacheTTL: 5 * time.Minute},
		Discovery: &config.DiscoveryConfig{
			DirectMatchLimit:   50,
			MaxDirectContacts:  100,
			SecondDegreeFanout: 10,
			FreeTextLimit:      20,
			UnregisteredLimit:  20,
			Concurrency:        4,
			DefaultCountryCode: "1",
		},
		Matching: &config.MatchingConfig{UnlikePolicy: config.UnlikePolicyRetain},
		SMS: &config.SMSConfig{
			InviteTemplate: "{{.InviterName}} liked you: {{.InviteURL}}",
			InviteURL:      "https://mutuals.test/invite",
		},
	}
}

func seedProfile(t *testing.T, store *memory.Store, externalID, username, name, phone string) *entity.Profile {
	t.Helper()

	profile := &entity.Profile{
		ID:               uuid.New(),
		ExternalIdentity: identity.Resolve(externalID).String(),
		Username:         username,
		Name:             name,
	}
	if phone != "" {
		profile.Phone = &phone
	}
	require.NoError(t, store.PutProfile(profile))

	return profile
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := newTestConfig()
	clock := clockwork.NewFakeClock()
	store := memory.New()
	notifier := mockService.NewMockSMSNotifier(t)

	alice := seedProfile(t, store, "uid-alice", "alice", "Alice", "+15550000001")
	bob := seedProfile(t, store, "uid-bob", "bob", "Bob", "+15550000002")

	bobID := bob.ID
	require.NoError(t, store.Contacts().Upsert(t.Context(), []*entity.Contact{{
		OwnerID:         alice.ID,
		DisplayName:     "Bobby",
		PhoneNumber:     "+15550000002",
		LinkedProfileID: &bobID,
		IsImported:      true,
	}}))

	verifier, err := auth.NewJWTVerifier(testSecret)
	require.NoError(t, err)

	identityUC := impl.NewIdentityService(impl.IdentityServiceParams{
		ProfileRepo: store.Profiles(),
		Clock:       clock,
		Config:      cfg,
		Logger:      logger,
	})

	r := NewRouter(RouterParams{
		SearchHandler: handler.NewSearchHandler(handler.SearchHandlerParams{
			DiscoveryUC: impl.NewDiscoveryService(impl.DiscoveryServiceParams{
				ContactRepo: store.Contacts(),
				ProfileRepo: store.Profiles(),
				Config:      cfg,
				Logger:      logger,
			}),
			Logger: logger,
		}),
		LikeHandler: handler.NewLikeHandler(handler.LikeHandlerParams{
			LikeUC: impl.NewLikeService(impl.LikeServiceParams{
				LikeRepo:         store.Likes(),
				MatchRepo:        store.Matches(),
				NotificationRepo: store.Notifications(),
				ProfileRepo:      store.Profiles(),
				TxManager:        store.TransactionManager(),
				SMSNotifier:      notifier,
				Clock:            clock,
				Config:           cfg,
				Logger:           logger,
			}),
			Logger: logger,
		}),
		ContactHandler: handler.NewContactHandler(handler.ContactHandlerParams{
			ContactUC: impl.NewContactService(impl.ContactServiceParams{
				TxManager:   store.TransactionManager(),
				ProfileRepo: store.Profiles(),
				ContactRepo: store.Contacts(),
				Config:      cfg,
				Logger:      logger,
			}),
			Logger: logger,
		}),
		ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{
			ProfileUC: impl.NewProfileService(impl.ProfileServiceParams{
				ProfileRepo:   store.Profiles(),
				QRCodeService: qrcode.NewQRCodeService(128, "M"),
				Logger:        logger,
			}),
			IdentityUC: identityUC,
			Logger:     logger,
		}),
		NotificationHandler: handler.NewNotificationHandler(impl.NewNotificationService(impl.NotificationServiceParams{
			NotificationRepo: store.Notifications(),
		})),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
			Verifier:   verifier,
			IdentityUC: identityUC,
			Logger:     logger,
		}),
	})

	e := echo.New()
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()
	r.RegisterRoutes(e)

	return &apiFixture{echo: e, store: store, notifier: notifier, alice: alice, bob: bob}
}

func (f *apiFixture) do(t *testing.T, method, path, externalID, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if externalID != "" {
		token, err := auth.SignSessionToken(testSecret, externalID, time.Hour)
		require.NoError(t, err)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	var data T
	require.NoError(t, json.Unmarshal(env.Data, &data))

	return data
}

func rawData(t *testing.T, rec *httptest.ResponseRecorder) json.RawMessage {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env.Data
}

func pageMeta(t *testing.T, rec *httptest.ResponseRecorder) pageInfo {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotNil(t, env.Meta.Page)

	return *env.Meta.Page
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotNil(t, env.Error)

	return env.Error.Code
}

func TestRouter_Health(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Authentication(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/profiles/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, rec))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-jwt")
	rec = httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "SESSION_INVALID", errorCode(t, rec))

	rec = f.do(t, http.MethodGet, "/api/v1/profiles/me", "uid-stranger", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "PROFILE_NOT_REGISTERED", errorCode(t, rec))

	rec = f.do(t, http.MethodGet, "/api/v1/profiles/me", "uid-alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[entity.Profile](t, rec)
	assert.Equal(t, f.alice.ID, me.ID)
}

func TestRouter_Search(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/search?q=bob", "uid-alice", "")
	require.Equal(t, http.StatusOK, rec.Code)

	results := decode[[]handler.SearchResultResponse](t, rec)
	require.Len(t, results, 1)
	assert.Equal(t, "registered", results[0].Type)
	assert.Equal(t, "direct", results[0].Tier)
	require.NotNil(t, results[0].Profile)
	assert.Equal(t, f.bob.ID, results[0].Profile.ID)

	rec = f.do(t, http.MethodGet, "/api/v1/search?q=%20%20", "uid-alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]handler.SearchResultResponse](t, rec))
}

func TestRouter_MatchFormation(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/likes/"+f.bob.ID.String(), "uid-alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	first := decode[map[string]bool](t, rec)
	assert.True(t, first["liked"])
	assert.False(t, first["is_match"])

	rec = f.do(t, http.MethodPost, "/api/v1/likes/"+f.alice.ID.String(), "uid-bob", "")
	require.Equal(t, http.StatusOK, rec.Code)
	second := decode[map[string]bool](t, rec)
	assert.True(t, second["liked"])
	assert.True(t, second["is_match"])

	rec = f.do(t, http.MethodGet, "/api/v1/relations/"+f.bob.ID.String(), "uid-alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	relation := decode[entity.Relation](t, rec)
	assert.Equal(t, entity.RelationMatched, relation.State)

	rec = f.do(t, http.MethodGet, "/api/v1/matches", "uid-alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]entity.Match](t, rec), 1)

	rec = f.do(t, http.MethodGet, "/api/v1/notifications", "uid-bob", "")
	require.Equal(t, http.StatusOK, rec.Code)
	kinds := make([]entity.NotificationKind, 0)
	for _, n := range decode[[]entity.Notification](t, rec) {
		kinds = append(kinds, n.Kind)
	}
	assert.ElementsMatch(t, []entity.NotificationKind{entity.NotificationKindLike, entity.NotificationKindMatch}, kinds)
}

func TestRouter_ToggleLikeRejections(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/likes/not-a-uuid", "uid-alice", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", errorCode(t, rec))

	rec = f.do(t, http.MethodPost, "/api/v1/likes/"+f.alice.ID.String(), "uid-alice", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "SELF_LIKE", errorCode(t, rec))
}

func TestRouter_ToggleUnregisteredLike(t *testing.T) {
	f := newAPIFixture(t)

	f.notifier.EXPECT().
		Send(mock.Anything, "+15550009999", mock.Anything, mock.Anything).
		Return(nil).
		Once()

	rec := f.do(t, http.MethodPost, "/api/v1/likes/phone", "uid-alice", `{"phone":"(555) 000-9999"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[map[string]bool](t, rec)["liked"])

	rec = f.do(t, http.MethodPost, "/api/v1/likes/phone", "uid-alice", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec))
}

func TestRouter_Contacts(t *testing.T) {
	f := newAPIFixture(t)

	body := `{"contacts":[
		{"phone_number":"+1 555 000 0001","display_name":"Alice"},
		{"phone_number":"+15550001234","display_name":"Carol"}
	]}`

	rec := f.do(t, http.MethodPost, "/api/v1/contacts/import", "uid-bob", body)
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decode[map[string]int](t, rec)
	assert.Equal(t, 2, summary["imported"])
	assert.Equal(t, 1, summary["linked"])

	rec = f.do(t, http.MethodGet, "/api/v1/contacts?limit=10", "uid-bob", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]entity.Contact](t, rec), 2)
	page := pageMeta(t, rec)
	assert.Equal(t, 2, page.Count)
	assert.Equal(t, 10, page.Limit)

	rec = f.do(t, http.MethodGet, "/api/v1/matches", "uid-bob", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", string(rawData(t, rec)))

	rec = f.do(t, http.MethodPost, "/api/v1/contacts/import", "uid-bob", `{"contacts":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ProfileQR(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/profiles/me/qr", "uid-bob", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.NotEmpty(t, rec.Body.Bytes())

	qrData, err := json.Marshal(qrcode.ProfileQRData{Type: "profile", ProfileID: f.bob.ID.String(), Username: "bob"})
	require.NoError(t, err)
	payload, err := json.Marshal(map[string]string{"qr_data": string(qrData)})
	require.NoError(t, err)

	rec = f.do(t, http.MethodPost, "/api/v1/profiles/qr", "uid-alice", string(payload))
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decode[handler.ProfileSummary](t, rec)
	assert.Equal(t, f.bob.ID, summary.ID)

	rec = f.do(t, http.MethodPost, "/api/v1/profiles/qr", "uid-alice", `{"qr_data":"garbage"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_QR_CODE", errorCode(t, rec))
}

func TestRouter_EndSession(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodDelete, "/api/v1/session", "uid-alice", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
