package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
)

const (
	errInternalEsText   = "Error interno"
	errBadRequestEsText = "Solicitud inválida"
	errForbiddenEsText  = "No tiene permisos para esta acción"
	errNotFoundEsText   = "El usuario no existe"

	errEditEsText   = "Algo ha salido mál editando el usuario"
	errDeleteEsText = "Algo ha salido mál eliminadno el usuario"
	errCreateEsText = "Algo ha salido mál creando el usuario"

	userCreatedEsText = "El usuario ha sido creado"
)

// ResponseError is the body of every failed request. Notification is what the
// client shows; Detail carries the remote service message when there is one.
type ResponseError struct {
	Message      string               `json:"message"`
	Notification *entity.Notification `json:"notification,omitempty"`
	Detail       string               `json:"detail,omitempty"`
	Redirect     string               `json:"redirect,omitempty"`
}

func sendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	slog.ErrorContext(ctx, msg, "error", err.Error(), "http_code", code)

	n := entity.NewNotification(entity.SeverityError, msg)

	resp := ResponseError{
		Message:      msg,
		Notification: &n,
	}

	if detail, ok := entity.RemoteMessage(err); ok && detail != msg {
		resp.Detail = detail
	}

	writeJSON(ctx, w, code, resp)
}

func sendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	writeJSON(ctx, w, code, data)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err.Error(), "http_code", code)
	}
}

// recordErr maps a record operation failure to its status and notification text.
func recordErr(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, entity.ErrPhoneInvalid):
		return http.StatusUnprocessableEntity, "Teléfono invalido"
	case errors.Is(err, entity.ErrIdentificationInvalid):
		return http.StatusUnprocessableEntity, "Identificación invalida"
	case errors.Is(err, entity.ErrEmailInvalid):
		return http.StatusUnprocessableEntity, "No es un correo válido"
	case errors.Is(err, entity.ErrRoleInvalid):
		return http.StatusUnprocessableEntity, "Rol invalido"
	case errors.Is(err, entity.ErrSelfDelete):
		return http.StatusConflict, "No puede eliminar el usuario actual"
	case errors.Is(err, entity.ErrRowPending):
		return http.StatusConflict, "El usuario tiene un cambio en curso"
	case errors.Is(err, entity.ErrForbidden):
		return http.StatusForbidden, errForbiddenEsText
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound, errNotFoundEsText
	default:
		return http.StatusBadGateway, fallback
	}
}

// credentialErr maps a login or registration failure. Provider messages are shown as received.
func credentialErr(err error) (int, string) {
	switch {
	case errors.Is(err, entity.ErrEmailInvalid):
		return http.StatusUnprocessableEntity, "No es un correo válido"
	case errors.Is(err, entity.ErrPINInvalid):
		return http.StatusUnprocessableEntity, "No es un PIN válido"
	case errors.Is(err, entity.ErrStateMismatch):
		return http.StatusBadRequest, errBadRequestEsText
	}

	if msg, ok := entity.RemoteMessage(err); ok {
		return http.StatusUnauthorized, msg
	}

	return http.StatusInternalServerError, errInternalEsText
}

// createErr shows the remote message as received, like credentialErr.
func createErr(err error) (int, string) {
	code, msg := recordErr(err, errCreateEsText)
	if code != http.StatusBadGateway {
		return code, msg
	}

	if remote, ok := entity.RemoteMessage(err); ok {
		return code, remote
	}

	return code, msg
}
