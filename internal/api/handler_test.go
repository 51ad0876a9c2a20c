package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/smoralesusma/olsoftware-dashboard/internal/api"
	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
	"github.com/smoralesusma/olsoftware-dashboard/internal/mocks"
	"github.com/smoralesusma/olsoftware-dashboard/internal/service"
	"github.com/smoralesusma/olsoftware-dashboard/internal/session"
	"github.com/smoralesusma/olsoftware-dashboard/pkg/config"
)

const cookieName = "test_session"

type memStore struct {
	mu    sync.Mutex
	items map[string]entity.Session
}

func (s *memStore) Load(_ context.Context, sid string) (entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.items[sid]
	if !ok {
		return entity.Session{}, entity.ErrNoSession
	}

	return sess, nil
}

func (s *memStore) Save(_ context.Context, sess entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[sess.ID] = sess

	return nil
}

func (s *memStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, sid)

	return nil
}

type noRefresh struct{}

func (noRefresh) Refresh(context.Context, string) (entity.Identity, error) {
	return entity.Identity{}, errors.New("refresh not expected")
}

type testAPI struct {
	records   *mocks.MockRecordRepository
	identity  *mocks.MockIdentityProvider
	functions *mocks.MockAccountFunctions
	events    *mocks.MockEventPublisher

	manager *session.Manager
	cookies *api.Cookies
	handler http.Handler
}

func newTestAPI(t *testing.T, limiter *api.RateLimiter) *testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)

	a := &testAPI{
		records:   mocks.NewMockRecordRepository(ctrl),
		identity:  mocks.NewMockIdentityProvider(ctrl),
		functions: mocks.NewMockAccountFunctions(ctrl),
		events:    mocks.NewMockEventPublisher(ctrl),
	}

	a.manager = session.NewManager(&memStore{items: make(map[string]entity.Session)}, noRefresh{}, time.Hour)

	cfg := config.Config{
		PinSalt: "test-salt",
		// HMAC-SHA-256 of "1234" keyed by "test-salt".
		PinHash: "c71ee67dc789bc93f82d0e1c5fbbbeca4ccf0665473c004897386d5aa0ed9c9f",
		Session: config.SessionConfig{
			Secret:     "test-secret",
			CookieName: cookieName,
			TTL:        time.Hour,
		},
	}

	s := service.New(cfg, a.records, a.identity, a.functions, a.manager, a.events)

	a.cookies = api.NewCookies(session.NewTokens(cfg.Session.Secret, cfg.Session.TTL), cfg.Session)

	if limiter == nil {
		limiter = api.NewRateLimiter(1000, 1000)
	}

	a.handler = api.NewRouter(
		api.NewHandler(s, a.manager, a.cookies),
		api.NewMiddleware(a.manager, s, a.cookies, nil, nil),
		limiter,
	)

	return a
}

// signIn establishes a session for email and returns its cookie.
func (a *testAPI) signIn(t *testing.T, email string) *http.Cookie {
	t.Helper()

	sid := session.NewID()

	_, err := a.manager.SignIn(context.Background(), sid, entity.Identity{
		UID:       "uid-" + email,
		Email:     email,
		IDToken:   "token",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	return a.sessionCookie(t, sid)
}

func (a *testAPI) sessionCookie(t *testing.T, sid string) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, a.cookies.SetSession(rec, sid))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	return cookies[0]
}

func (a *testAPI) do(t *testing.T, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))

	return v
}

// findCookie returns the last cookie set under name, the one a browser keeps.
func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	var found *http.Cookie

	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			found = c
		}
	}

	return found
}

var (
	admin = entity.Record{
		ID:    uuid.Must(uuid.NewV4()),
		Names: "Ana", Lastnames: "Gómez",
		Identification: 1010, Role: entity.RoleAdmin, State: true, Phone: 3001234567,
		Email: "admin@example.com",
	}
	driver = entity.Record{
		ID:    uuid.Must(uuid.NewV4()),
		Names: "Luis", Lastnames: "Pérez",
		Identification: 2020, Role: entity.RoleDriver, State: false, Phone: 3109876543,
		Email: "luis@example.com",
	}
)

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t, nil)

	rec := a.do(t, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGuard_RedirectsAnonymous(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t, nil)

	rec := a.do(t, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))
	require.NotNil(t, findCookie(rec, cookieName))

	resp := decode[api.ResponseError](t, rec)
	require.Equal(t, "/", resp.Redirect)
}

func TestGuard_TamperedCookie(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t, nil)

	rec := a.do(t, http.MethodGet, "/api/dashboard", "", &http.Cookie{Name: cookieName, Value: "not-a-token"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, findCookie(rec, cookieName))
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()

	t.Run("signs in and lands on the dashboard", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t, nil)
		cookie := a.sessionCookie(t, session.NewID())

		a.identity.EXPECT().SignInWithPassword(gomock.Any(), "user@example.com", gomock.Any()).
			Return(entity.Identity{UID: "uid", Email: "user@example.com", ExpiresAt: time.Now().Add(time.Hour)}, nil)

		rec := a.do(t, http.MethodPost, "/api/auth/login", `{"email":"user@example.com","password":"secret"}`, cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "/dashboard", decode[api.RedirectResponse](t, rec).Redirect)

		signedIn := findCookie(rec, cookieName)
		require.NotNil(t, signedIn)
		require.NotEqual(t, cookie.Value, signedIn.Value)

		rec = a.do(t, http.MethodGet, "/api/session", "", signedIn)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[api.SessionResponse](t, rec)
		require.False(t, resp.Loading)
		require.NotNil(t, resp.Session)
		require.Equal(t, "user@example.com", resp.Session.Email)
		require.Equal(t, "/dashboard", resp.Redirect)
	})

	t.Run("pre-login cookie stays anonymous", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t, nil)
		planted := a.sessionCookie(t, session.NewID())

		rec := a.do(t, http.MethodGet, "/api/session", "", planted)
		require.Equal(t, http.StatusOK, rec.Code)

		a.identity.EXPECT().SignInWithPassword(gomock.Any(), "user@example.com", gomock.Any()).
			Return(entity.Identity{UID: "uid", Email: "user@example.com", ExpiresAt: time.Now().Add(time.Hour)}, nil)

		rec = a.do(t, http.MethodPost, "/api/auth/login", `{"email":"user@example.com","password":"secret"}`, planted)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, findCookie(rec, cookieName))

		rec = a.do(t, http.MethodGet, "/api/dashboard", "", planted)
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = a.do(t, http.MethodGet, "/api/session", "", planted)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Nil(t, decode[api.SessionResponse](t, rec).Session)
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t, nil)

		rec := a.do(t, http.MethodPost, "/api/auth/login", `{"email":"nope","password":"secret"}`)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		resp := decode[api.ResponseError](t, rec)
		require.Equal(t, "No es un correo válido", resp.Message)
		require.NotNil(t, resp.Notification)
		require.Equal(t, entity.SeverityError, resp.Notification.Type)
		require.Equal(t, int64(6000), resp.Notification.Time)
	})

	t.Run("provider message is shown as received", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t, nil)

		a.identity.EXPECT().SignInWithPassword(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entity.Identity{}, &entity.RemoteError{Service: "identity", Status: "400", Message: "INVALID_PASSWORD"})

		rec := a.do(t, http.MethodPost, "/api/auth/login", `{"email":"user@example.com","password":"bad"}`)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "INVALID_PASSWORD", decode[api.ResponseError](t, rec).Message)
	})

	t.Run("rate limited", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t, api.NewRateLimiter(0.001, 1))

		rec := a.do(t, http.MethodPost, "/api/auth/login", `{"email":"nope","password":"x"}`)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		rec = a.do(t, http.MethodPost, "/api/auth/login", `{"email":"nope","password":"x"}`)
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("forwarded address from an untrusted peer is ignored", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t, api.NewRateLimiter(0.001, 1))

		for i, want := range []int{http.StatusUnprocessableEntity, http.StatusTooManyRequests} {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"nope","password":"x"}`))
			req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i+1))
			req.Header.Set("X-Real-IP", fmt.Sprintf("198.51.100.%d", i+1))

			rec := httptest.NewRecorder()
			a.handler.ServeHTTP(rec, req)
			require.Equal(t, want, rec.Code)
		}
	})
}

func TestHandler_Register(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t, nil)

	rec := a.do(t, http.MethodPost, "/api/auth/register", `{"email":"new@example.com","password":"p","pin":"0000"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, "No es un PIN válido", decode[api.ResponseError](t, rec).Message)

	a.identity.EXPECT().SignUp(gomock.Any(), "new@example.com", gomock.Any()).
		Return(entity.Identity{UID: "uid", Email: "new@example.com"}, nil)

	rec = a.do(t, http.MethodPost, "/api/auth/register", `{"email":"new@example.com","password":"p","pin":"1234"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "/", decode[api.RedirectResponse](t, rec).Redirect)

	signedIn := findCookie(rec, cookieName)
	require.NotNil(t, signedIn)

	rec = a.do(t, http.MethodGet, "/api/session", "", signedIn)
	require.Equal(t, "new@example.com", decode[api.SessionResponse](t, rec).Session.Email)
}

func TestHandler_Federated(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t, nil)
	cookie := a.sessionCookie(t, session.NewID())

	a.identity.EXPECT().FederatedAuthURL(gomock.Any()).DoAndReturn(func(state string) string {
		return "https://accounts.example.com/auth?state=" + state
	})

	rec := a.do(t, http.MethodGet, "/api/auth/federated", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	state := findCookie(rec, "olsoftware_federated_state")
	require.NotNil(t, state)
	require.Contains(t, decode[api.FederatedURLResponse](t, rec).URL, state.Value)

	rec = a.do(t, http.MethodPost, "/api/auth/federated/callback", `{"code":"c","state":"forged"}`, cookie, state)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	a.identity.EXPECT().SignInWithFederatedCode(gomock.Any(), "c").
		Return(entity.Identity{UID: "uid", Email: "fed@example.com", Provider: entity.ProviderFederated}, nil)

	rec = a.do(t, http.MethodPost, "/api/auth/federated/callback", `{"code":"c","state":"`+state.Value+`"}`, cookie, state)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "/", decode[api.RedirectResponse](t, rec).Redirect)

	signedIn := findCookie(rec, cookieName)
	require.NotNil(t, signedIn)
	require.NotEqual(t, cookie.Value, signedIn.Value)

	rec = a.do(t, http.MethodGet, "/api/dashboard", "", cookie)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Logout(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t, nil)
	cookie := a.signIn(t, "user@example.com")

	rec := a.do(t, http.MethodPost, "/api/auth/logout", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "/", decode[api.RedirectResponse](t, rec).Redirect)

	cleared := findCookie(rec, cookieName)
	require.NotNil(t, cleared)
	require.Negative(t, cleared.MaxAge)

	rec = a.do(t, http.MethodGet, "/api/dashboard", "", cookie)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Dashboard(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t, nil)
	cookie := a.signIn(t, admin.Email)

	a.records.EXPECT().List(gomock.Any()).Return([]entity.Record{admin, driver}, nil)

	rec := a.do(t, http.MethodGet, "/api/users", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(t, http.MethodGet, "/api/dashboard", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	dash := decode[entity.Dashboard](t, rec)
	require.Equal(t, "Ana Gómez", dash.FullName)
	require.Equal(t, entity.SectionUsers, dash.Current.ID)

	rec = a.do(t, http.MethodPut, "/api/dashboard/section", `{"section":0}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Programación", decode[entity.Dashboard](t, rec).Current.Title)

	rec = a.do(t, http.MethodPut, "/api/dashboard/section", `{"section":7}`, cookie)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandler_Records(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) (*testAPI, *http.Cookie) {
		t.Helper()

		a := newTestAPI(t, nil)
		cookie := a.signIn(t, admin.Email)

		a.records.EXPECT().List(gomock.Any()).Return([]entity.Record{admin, driver}, nil)

		rec := a.do(t, http.MethodGet, "/api/users", "", cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, decode[entity.RecordsView](t, rec).CanEdit)

		return a, cookie
	}

	t.Run("invalid phone", func(t *testing.T) {
		t.Parallel()

		a, cookie := setup(t)

		rec := a.do(t, http.MethodPut, "/api/users/"+driver.ID.String(),
			`{"names":"Luis","lastnames":"Pérez","identification":2020,"rol":"conductor","state":false,"phone":"abc","email":"luis@example.com"}`,
			cookie)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.Equal(t, "Teléfono invalido", decode[api.ResponseError](t, rec).Message)
	})

	t.Run("edit failure carries the remote detail", func(t *testing.T) {
		t.Parallel()

		a, cookie := setup(t)

		a.functions.EXPECT().RenameUserAccount(gomock.Any(), "token", driver.Email, "new@example.com").
			Return(nil, &entity.RemoteError{Service: "functions.modifyUser", Message: "email in use"})

		rec := a.do(t, http.MethodPut, "/api/users/"+driver.ID.String(),
			`{"names":"Luis","lastnames":"Pérez","identification":"2020","rol":"conductor","phone":"3109876543","email":"new@example.com"}`,
			cookie)
		require.Equal(t, http.StatusBadGateway, rec.Code)

		resp := decode[api.ResponseError](t, rec)
		require.Equal(t, "Algo ha salido mál editando el usuario", resp.Message)
		require.Equal(t, "email in use", resp.Detail)
	})

	t.Run("self delete", func(t *testing.T) {
		t.Parallel()

		a, cookie := setup(t)

		rec := a.do(t, http.MethodDelete, "/api/users/"+admin.ID.String(), "", cookie)
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Equal(t, "No puede eliminar el usuario actual", decode[api.ResponseError](t, rec).Message)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		a, cookie := setup(t)

		a.functions.EXPECT().DeleteUserAccount(gomock.Any(), "token", driver.Email).Return(nil, nil)
		a.records.EXPECT().Delete(gomock.Any(), driver.ID).Return(nil)
		a.events.EXPECT().PublishRecordEvent(gomock.Any(), gomock.Any())

		rec := a.do(t, http.MethodDelete, "/api/users/"+driver.ID.String(), "", cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, decode[api.RecordResponse](t, rec).View.Rows, 1)
	})

	t.Run("create", func(t *testing.T) {
		t.Parallel()

		a, cookie := setup(t)

		a.functions.EXPECT().CreateUserAccount(gomock.Any(), "token", "marta@example.com", gomock.Any()).Return(nil, nil)
		a.records.EXPECT().Add(gomock.Any(), gomock.Any()).Return(uuid.Must(uuid.NewV4()), nil)
		a.events.EXPECT().PublishRecordEvent(gomock.Any(), gomock.Any())

		rec := a.do(t, http.MethodPost, "/api/users",
			`{"names":"Marta","lastnames":"Díaz","identification":"4040","rol":"recolector","state":"1","password":"p","phone":"300","email":"marta@example.com"}`,
			cookie)
		require.Equal(t, http.StatusCreated, rec.Code)

		resp := decode[api.RecordResponse](t, rec)
		require.Equal(t, "El usuario ha sido creado", resp.Notification.Message)
		require.Equal(t, entity.SeveritySuccess, resp.Notification.Type)
		require.True(t, resp.Record.State)
		require.Len(t, resp.View.Rows, 3)
	})

	t.Run("filter and export", func(t *testing.T) {
		t.Parallel()

		a, cookie := setup(t)

		rec := a.do(t, http.MethodPost, "/api/users/filter", `{"rol":"conductor"}`, cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, decode[entity.RecordsView](t, rec).Filtered)

		rec = a.do(t, http.MethodGet, "/api/users/export", "", cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Header().Get("Content-Disposition"), "tabla_de_usuarios.csv")
		require.Equal(t, 2, strings.Count(rec.Body.String(), "\n"))

		rec = a.do(t, http.MethodDelete, "/api/users/filter", "", cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, decode[entity.RecordsView](t, rec).Rows, 2)
	})

	t.Run("not an administrator", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t, nil)
		cookie := a.signIn(t, driver.Email)

		a.records.EXPECT().List(gomock.Any()).Return([]entity.Record{admin, driver}, nil)

		rec := a.do(t, http.MethodGet, "/api/users", "", cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		require.False(t, decode[entity.RecordsView](t, rec).CanEdit)

		rec = a.do(t, http.MethodDelete, "/api/users/"+admin.ID.String(), "", cookie)
		require.Equal(t, http.StatusForbidden, rec.Code)

		rec = a.do(t, http.MethodGet, "/api/users/export", "", cookie)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}
