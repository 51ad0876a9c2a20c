package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"runtime/debug"
	"slices"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
	"github.com/smoralesusma/olsoftware-dashboard/internal/session"
	"github.com/smoralesusma/olsoftware-dashboard/pkg/logger"
)

var (
	errTooManyRequests = errors.New("too many requests")
	errNoBrowserCtx    = errors.New("browser session not opened")
)

// SessionOpener hands out the Context of a browser session.
type SessionOpener interface {
	Open(ctx context.Context, sid string) *session.Context
}

type Privileges interface {
	CanEdit(sess entity.Session) bool
}

type Middleware struct {
	sessions       SessionOpener
	privileges     Privileges
	cookies        *Cookies
	allowOrigins   []string
	trustedProxies []netip.Prefix
}

func NewMiddleware(
	sessions SessionOpener, privileges Privileges, cookies *Cookies, allowOrigins, trustedProxies []string,
) *Middleware {
	return &Middleware{
		sessions:       sessions,
		privileges:     privileges,
		cookies:        cookies,
		allowOrigins:   allowOrigins,
		trustedProxies: parsePrefixes(trustedProxies),
	}
}

// Cors echoes allowed origins so the session cookie travels with cross-origin calls.
// An empty allow list accepts every origin.
func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && (len(m.allowOrigins) == 0 || slices.Contains(m.allowOrigins, origin)) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Origin, Accept, User-Agent, Cache-Control")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ctx := logger.SetRequestID(r.Context(), uuid.Must(uuid.NewV4()).String())

		ctx = logger.SetMethod(ctx, r.Method)
		ctx = logger.SetURL(ctx, r.URL.Path)
		ctx = logger.SetUserAgent(ctx, r.UserAgent())
		ctx = logger.SetLogType(ctx, "webrequest")
		ctx = logger.SetIP(ctx, entity.IPFromCtx(ctx))

		slog.InfoContext(ctx, "incoming request")

		next.ServeHTTP(w, r.WithContext(ctx))

		slog.InfoContext(ctx, "request completed", "duration_ms", time.Since(start).Milliseconds())
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func(ctx context.Context) {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "panic", "error", err, "stack", string(debug.Stack()))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}(r.Context())
		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) WithIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := removePort(r.RemoteAddr)

		// forwarding headers are only honored from a trusted proxy
		if m.trusted(ip) {
			if xForwardedFor := r.Header.Get("X-Forwarded-For"); xForwardedFor != "" {
				for _, part := range strings.Split(xForwardedFor, ",") {
					part = removePort(strings.TrimSpace(part))
					if net.ParseIP(part) != nil {
						ip = part
						break
					}
				}
			}

			if xRealIP := removePort(strings.TrimSpace(r.Header.Get("X-Real-IP"))); net.ParseIP(xRealIP) != nil {
				ip = xRealIP
			}
		}

		if net.ParseIP(ip) == nil {
			slog.Warn("invalid IP detected, using fallback", "ip", ip, "remote_addr", r.RemoteAddr)
			ip = "unknown"
		}

		ctx := context.WithValue(r.Context(), entity.CtxKeyIP{}, ip)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Session opens the browser session named by the cookie, starting a new one
// when the cookie is missing or invalid.
func (m *Middleware) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sid, err := m.cookies.SessionID(r)
		if err != nil {
			if !errors.Is(err, http.ErrNoCookie) {
				slog.DebugContext(ctx, "drop session cookie", "error", err.Error())
			}

			sid = session.NewID()

			err = m.cookies.SetSession(w, sid)
			if err != nil {
				sendErr(ctx, w, http.StatusInternalServerError, err, errInternalEsText)
				return
			}
		}

		sc := m.sessions.Open(ctx, sid)

		if sess, ok := sc.Current(); ok {
			ctx = logger.SetSession(ctx, sess.Email)
		}

		next.ServeHTTP(w, r.WithContext(session.WithContext(ctx, sc)))
	})
}

// Guard lets signed-in sessions through and points everyone else at the entry route.
// It waits for the initial session state.
func (m *Middleware) Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sc, ok := session.FromContext(ctx)
		if !ok {
			sendErr(ctx, w, http.StatusInternalServerError, errNoBrowserCtx, errInternalEsText)
			return
		}

		sess, signedIn, err := sc.Wait(ctx)
		if err != nil {
			slog.DebugContext(ctx, "request gone while loading session", "error", err.Error())
			return
		}

		if !signedIn {
			w.Header().Set("Location", entryPath)
			sendJSON(ctx, w, http.StatusUnauthorized, ResponseError{
				Message:  "Debe iniciar sesión",
				Redirect: entryPath,
			})

			return
		}

		ctx = logger.SetSession(ctx, sess.Email)

		next.ServeHTTP(w, r.WithContext(withSession(ctx, sess)))
	})
}

// RequirePrivileged runs after Guard.
func (m *Middleware) RequirePrivileged(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !m.privileges.CanEdit(sessionFromCtx(ctx)) {
			sendErr(ctx, w, http.StatusForbidden, entity.ErrForbidden, errForbiddenEsText)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type ctxKeySession struct{}

func withSession(ctx context.Context, sess entity.Session) context.Context {
	return context.WithValue(ctx, ctxKeySession{}, sess)
}

func sessionFromCtx(ctx context.Context) entity.Session {
	sess, _ := ctx.Value(ctxKeySession{}).(entity.Session)
	return sess
}

func (m *Middleware) trusted(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}

	addr = addr.Unmap()

	for _, p := range m.trustedProxies {
		if p.Contains(addr) {
			return true
		}
	}

	return false
}

func parsePrefixes(values []string) []netip.Prefix {
	prefixes := make([]netip.Prefix, 0, len(values))

	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}

		if p, err := netip.ParsePrefix(v); err == nil {
			prefixes = append(prefixes, p.Masked())
			continue
		}

		addr, err := netip.ParseAddr(v)
		if err != nil {
			slog.Warn("skip invalid trusted proxy", "value", v)
			continue
		}

		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}

	return prefixes
}

func removePort(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}

	return host
}
