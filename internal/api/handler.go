package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
	"github.com/smoralesusma/olsoftware-dashboard/internal/service"
	"github.com/smoralesusma/olsoftware-dashboard/internal/session"
	"github.com/smoralesusma/olsoftware-dashboard/pkg/logger"
)

const entryPath = service.PathEntry

// @title OLSoftware dashboard API
// @version 1.0
// @description Sesiones, tablero y administración de usuarios de OLSoftware
// @BasePath /api

type Service interface {
	Login(ctx context.Context, sid, email, password string) (string, error)
	FederatedAuthURL(state string) string
	LoginFederated(ctx context.Context, sid, code string) (string, error)
	Register(ctx context.Context, sid, email, password, pin string) (string, error)
	Logout(ctx context.Context, sid string) error
	DropWorkspaces(sids ...string)

	Dashboard(ctx context.Context, sess entity.Session) entity.Dashboard
	SelectSection(ctx context.Context, sess entity.Session, id entity.Section) (entity.Dashboard, error)

	LoadRecords(ctx context.Context, sess entity.Session) (entity.RecordsView, error)
	View(sess entity.Session) entity.RecordsView
	FilterRecords(sess entity.Session, f entity.Filter) entity.RecordsView
	ClearFilter(sess entity.Session) entity.RecordsView
	CreateRecord(ctx context.Context, sess entity.Session, in entity.NewRecord) (entity.Record, error)
	EditRecord(ctx context.Context, sess entity.Session, id uuid.UUID, in entity.RecordInput) (entity.Record, error)
	DeleteRecord(ctx context.Context, sess entity.Session, id uuid.UUID) error
	ExportRecords(sess entity.Session, w io.Writer) error
}

// SessionCloser retires browser session IDs.
type SessionCloser interface {
	Close(ctx context.Context, sid string) error
}

type Handler struct {
	s        Service
	sessions SessionCloser
	cookies  *Cookies
}

func NewHandler(s Service, sessions SessionCloser, cookies *Cookies) *Handler {
	return &Handler{
		s:        s,
		sessions: sessions,
		cookies:  cookies,
	}
}

// @Summary Estado del servicio
// @Tags health
// @Produce plain
// @Success 200 {string} string "El servidor está funcionando"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("El servidor está funcionando\n"))
}

type SessionResponse struct {
	Loading  bool            `json:"loading"`
	Session  *entity.Session `json:"session"`
	Redirect string          `json:"redirect,omitempty"`
}

// @Summary Estado de la sesión
// @Description Informa si la sesión aún se está cargando y, si hay una sesión iniciada, hacia dónde redirigir
// @Tags session
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /session [get]
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "session")

	sc, ok := session.FromContext(ctx)
	if !ok {
		sendErr(ctx, w, http.StatusInternalServerError, errNoBrowserCtx, errInternalEsText)
		return
	}

	resp := SessionResponse{Loading: sc.Loading()}

	if sess, ok := sc.Current(); ok {
		resp.Session = &sess
		resp.Redirect = service.PathDashboard
	}

	sendJSON(ctx, w, http.StatusOK, resp)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	PIN      string `json:"pin"`
}

type FederatedCallbackRequest struct {
	Code  string `json:"code"`
	State string `json:"state"`
}

type RedirectResponse struct {
	Redirect string `json:"redirect"`
}

type FederatedURLResponse struct {
	URL string `json:"url"`
}

// @Summary Iniciar sesión con correo y contraseña
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credenciales"
// @Success 200 {object} RedirectResponse
// @Failure 401 {object} ResponseError "Mensaje del proveedor de identidad"
// @Failure 422 {object} ResponseError "No es un correo válido"
// @Failure 429 {object} ResponseError "Demasiadas solicitudes"
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "auth")

	var req LoginRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, errBadRequestEsText)
		return
	}

	sid := session.NewID()

	redirect, err := h.s.Login(ctx, sid, req.Email, req.Password)
	if err != nil {
		code, msg := credentialErr(err)
		sendErr(ctx, w, code, err, msg)

		return
	}

	err = h.rotate(ctx, w, sid)
	if err != nil {
		sendErr(ctx, w, http.StatusInternalServerError, err, errInternalEsText)
		return
	}

	sendJSON(ctx, w, http.StatusOK, RedirectResponse{Redirect: redirect})
}

// @Summary URL de inicio de sesión federado
// @Description Genera el estado anti-CSRF, lo guarda en una cookie de corta duración y devuelve la URL del proveedor
// @Tags auth
// @Produce json
// @Success 200 {object} FederatedURLResponse
// @Router /auth/federated [get]
func (h *Handler) FederatedURL(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "auth")

	state := uuid.Must(uuid.NewV4()).String()
	h.cookies.SetState(w, state)

	sendJSON(ctx, w, http.StatusOK, FederatedURLResponse{URL: h.s.FederatedAuthURL(state)})
}

// @Summary Completar el inicio de sesión federado
// @Tags auth
// @Accept json
// @Produce json
// @Param request body FederatedCallbackRequest true "Código de autorización y estado"
// @Success 200 {object} RedirectResponse
// @Failure 400 {object} ResponseError "Estado inválido"
// @Failure 401 {object} ResponseError "Mensaje del proveedor de identidad"
// @Router /auth/federated/callback [post]
func (h *Handler) FederatedCallback(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "auth")

	var req FederatedCallbackRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, errBadRequestEsText)
		return
	}

	expected := h.cookies.State(r)
	h.cookies.ClearState(w)

	if expected == "" || req.State != expected {
		code, msg := credentialErr(entity.ErrStateMismatch)
		sendErr(ctx, w, code, entity.ErrStateMismatch, msg)

		return
	}

	sid := session.NewID()

	redirect, err := h.s.LoginFederated(ctx, sid, req.Code)
	if err != nil {
		code, msg := credentialErr(err)
		sendErr(ctx, w, code, err, msg)

		return
	}

	err = h.rotate(ctx, w, sid)
	if err != nil {
		sendErr(ctx, w, http.StatusInternalServerError, err, errInternalEsText)
		return
	}

	sendJSON(ctx, w, http.StatusOK, RedirectResponse{Redirect: redirect})
}

// @Summary Registrar una cuenta
// @Description Requiere el PIN de registro
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Credenciales y PIN"
// @Success 200 {object} RedirectResponse
// @Failure 401 {object} ResponseError "Mensaje del proveedor de identidad"
// @Failure 422 {object} ResponseError "No es un PIN válido / No es un correo válido"
// @Router /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "auth")

	var req RegisterRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, errBadRequestEsText)
		return
	}

	sid := session.NewID()

	redirect, err := h.s.Register(ctx, sid, req.Email, req.Password, req.PIN)
	if err != nil {
		code, msg := credentialErr(err)
		sendErr(ctx, w, code, err, msg)

		return
	}

	err = h.rotate(ctx, w, sid)
	if err != nil {
		sendErr(ctx, w, http.StatusInternalServerError, err, errInternalEsText)
		return
	}

	sendJSON(ctx, w, http.StatusOK, RedirectResponse{Redirect: redirect})
}

// @Summary Cerrar sesión
// @Tags auth
// @Produce json
// @Success 200 {object} RedirectResponse
// @Router /auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "auth")

	err := h.s.Logout(ctx, browserSessionID(ctx))
	if err != nil {
		sendErr(ctx, w, http.StatusInternalServerError, err, errInternalEsText)
		return
	}

	h.cookies.ClearSession(w)

	sendJSON(ctx, w, http.StatusOK, RedirectResponse{Redirect: entryPath})
}

type SelectSectionRequest struct {
	Section entity.Section `json:"section"`
}

// @Summary Tablero
// @Description Nombre del usuario, sección actual y secciones disponibles
// @Tags dashboard
// @Produce json
// @Success 200 {object} entity.Dashboard
// @Failure 401 {object} ResponseError "Debe iniciar sesión"
// @Router /dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "dashboard")

	sendJSON(ctx, w, http.StatusOK, h.s.Dashboard(ctx, sessionFromCtx(ctx)))
}

// @Summary Cambiar de sección
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body SelectSectionRequest true "Sección"
// @Success 200 {object} entity.Dashboard
// @Failure 422 {object} ResponseError "Sección inválida"
// @Router /dashboard/section [put]
func (h *Handler) SelectSection(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "dashboard")

	var req SelectSectionRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, errBadRequestEsText)
		return
	}

	dash, err := h.s.SelectSection(ctx, sessionFromCtx(ctx), req.Section)
	if err != nil {
		sendErr(ctx, w, http.StatusUnprocessableEntity, err, "Sección inválida")
		return
	}

	sendJSON(ctx, w, http.StatusOK, dash)
}

// @Summary Cargar usuarios
// @Description Lee la colección completa; la primera carga de una cuenta sin registro lo crea con valores por defecto
// @Tags users
// @Produce json
// @Success 200 {object} entity.RecordsView
// @Failure 401 {object} ResponseError "Debe iniciar sesión"
// @Failure 500 {object} ResponseError "Error interno"
// @Router /users [get]
func (h *Handler) Records(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "users")

	view, err := h.s.LoadRecords(ctx, sessionFromCtx(ctx))
	if err != nil {
		sendErr(ctx, w, http.StatusInternalServerError, err, errInternalEsText)
		return
	}

	sendJSON(ctx, w, http.StatusOK, view)
}

// @Summary Filtrar usuarios
// @Description Cada campo no vacío agrega una condición; sin coincidencias se muestra la lista completa
// @Tags users
// @Accept json
// @Produce json
// @Param request body entity.Filter true "Filtro"
// @Success 200 {object} entity.RecordsView
// @Router /users/filter [post]
func (h *Handler) FilterRecords(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "users")

	var f entity.Filter

	err := json.NewDecoder(r.Body).Decode(&f)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, errBadRequestEsText)
		return
	}

	sendJSON(ctx, w, http.StatusOK, h.s.FilterRecords(sessionFromCtx(ctx), f))
}

// @Summary Quitar el filtro
// @Tags users
// @Produce json
// @Success 200 {object} entity.RecordsView
// @Router /users/filter [delete]
func (h *Handler) ClearFilter(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "users")

	sendJSON(ctx, w, http.StatusOK, h.s.ClearFilter(sessionFromCtx(ctx)))
}

type RecordResponse struct {
	Record       *entity.Record       `json:"record,omitempty"`
	View         entity.RecordsView   `json:"view"`
	Notification *entity.Notification `json:"notification,omitempty"`
}

// @Summary Crear usuario
// @Description Crea la cuenta de identidad y luego el registro. Solo administradores.
// @Tags users
// @Accept json
// @Produce json
// @Param request body entity.NewRecord true "Usuario"
// @Success 201 {object} RecordResponse "El usuario ha sido creado"
// @Failure 403 {object} ResponseError "Sin permisos"
// @Failure 422 {object} ResponseError "Dato inválido"
// @Failure 502 {object} ResponseError "Mensaje del servicio remoto"
// @Router /users [post]
func (h *Handler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "users")

	var in entity.NewRecord

	err := json.NewDecoder(r.Body).Decode(&in)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, errBadRequestEsText)
		return
	}

	sess := sessionFromCtx(ctx)

	record, err := h.s.CreateRecord(ctx, sess, in)
	if err != nil {
		code, msg := createErr(err)
		sendErr(ctx, w, code, err, msg)

		return
	}

	n := entity.NewNotification(entity.SeveritySuccess, userCreatedEsText)

	sendJSON(ctx, w, http.StatusCreated, RecordResponse{
		Record:       &record,
		View:         h.s.View(sess),
		Notification: &n,
	})
}

// @Summary Editar usuario
// @Description Un cambio de correo renombra primero la cuenta de identidad. Solo administradores.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "ID del usuario"
// @Param request body entity.RecordInput true "Fila editada"
// @Success 200 {object} RecordResponse
// @Failure 403 {object} ResponseError "Sin permisos"
// @Failure 409 {object} ResponseError "Cambio en curso"
// @Failure 422 {object} ResponseError "Teléfono invalido / Identificación invalida / No es un correo válido"
// @Failure 502 {object} ResponseError "Algo ha salido mál editando el usuario"
// @Router /users/{id} [put]
func (h *Handler) EditRecord(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "users")

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, errBadRequestEsText)
		return
	}

	var in entity.RecordInput

	err = json.NewDecoder(r.Body).Decode(&in)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, errBadRequestEsText)
		return
	}

	sess := sessionFromCtx(ctx)

	record, err := h.s.EditRecord(ctx, sess, id, in)
	if err != nil {
		code, msg := recordErr(err, errEditEsText)
		sendErr(ctx, w, code, err, msg)

		return
	}

	sendJSON(ctx, w, http.StatusOK, RecordResponse{
		Record: &record,
		View:   h.s.View(sess),
	})
}

// @Summary Eliminar usuario
// @Description Elimina la cuenta de identidad y luego el registro. No se puede eliminar el usuario actual. Solo administradores.
// @Tags users
// @Produce json
// @Param id path string true "ID del usuario"
// @Success 200 {object} RecordResponse
// @Failure 403 {object} ResponseError "Sin permisos"
// @Failure 409 {object} ResponseError "No puede eliminar el usuario actual"
// @Failure 502 {object} ResponseError "Algo ha salido mál eliminadno el usuario"
// @Router /users/{id} [delete]
func (h *Handler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "users")

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, errBadRequestEsText)
		return
	}

	sess := sessionFromCtx(ctx)

	err = h.s.DeleteRecord(ctx, sess, id)
	if err != nil {
		code, msg := recordErr(err, errDeleteEsText)
		sendErr(ctx, w, code, err, msg)

		return
	}

	sendJSON(ctx, w, http.StatusOK, RecordResponse{View: h.s.View(sess)})
}

// @Summary Exportar usuarios
// @Description Descarga las filas mostradas como CSV. Solo administradores.
// @Tags users
// @Produce text/csv
// @Success 200 {file} file "tabla_de_usuarios.csv"
// @Failure 403 {object} ResponseError "Sin permisos"
// @Router /users/export [get]
func (h *Handler) ExportRecords(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "users")

	var buf bytes.Buffer

	err := h.s.ExportRecords(sessionFromCtx(ctx), &buf)
	if err != nil {
		code, msg := recordErr(err, errInternalEsText)
		if !errors.Is(err, entity.ErrForbidden) {
			code = http.StatusInternalServerError
		}

		sendErr(ctx, w, code, err, msg)

		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+service.ExportFilename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// rotate moves the browser onto the freshly signed-in session ID and retires the
// ID it arrived with, so a pre-login cookie never becomes authenticated.
func (h *Handler) rotate(ctx context.Context, w http.ResponseWriter, sid string) error {
	err := h.cookies.SetSession(w, sid)
	if err != nil {
		return err
	}

	old := browserSessionID(ctx)
	if old == "" || old == sid {
		return nil
	}

	err = h.sessions.Close(ctx, old)
	if err != nil {
		slog.WarnContext(ctx, "close previous browser session", "error", err)
	}

	h.s.DropWorkspaces(old)

	return nil
}

func browserSessionID(ctx context.Context) string {
	sc, ok := session.FromContext(ctx)
	if !ok {
		return ""
	}

	return sc.ID()
}
