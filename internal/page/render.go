package page

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"reservas-web/internal/domain/contact"
	"reservas-web/internal/domain/event"
	"reservas-web/internal/domain/reservation"
	"reservas-web/internal/domain/user"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

// Renderer draws the page as text. Colors are only used on a terminal.
type Renderer struct {
	mu    sync.Mutex
	out   io.Writer
	color bool
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out, color: isTerminal(out)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Header mirrors the nav bar: login link when logged out, email and logout
// when logged in, admin link for superusers.
func (r *Renderer) Header(v user.Visibility) {
	var parts []string
	if v.LoginLink {
		parts = append(parts, "[login] Iniciar sesión")
	}
	if v.UserInfo {
		parts = append(parts, r.paint(ansiBold, v.Email))
	}
	if v.AdminLink {
		parts = append(parts, "[admin] Panel de administración")
	}
	if v.LogoutAction {
		parts = append(parts, "[logout] Cerrar sesión")
	}
	r.printf("\n%s\n", strings.Join(parts, " | "))
}

func (r *Renderer) Selector(options []event.Option) {
	r.printf("Evento:\n")
	if len(options) == 0 {
		r.printf("  (sin eventos disponibles)\n")
		return
	}
	for i, o := range options {
		r.printf("  %d) %s\n", i+1, o.Label)
	}
}

func (r *Renderer) Reservation(result reservation.Result) {
	switch {
	case result.Success():
		r.printf("%s\n", r.paint(ansiGreen, result.Message))
	case result.Blocking():
		r.printf("%s\n", r.paint(ansiYellow, "(!) "+result.Message))
	default:
		r.printf("%s\n", r.paint(ansiRed, result.Message))
	}
}

func (r *Renderer) Contact(result contact.Result) {
	if result.Sent {
		r.printf("%s\n", r.paint(ansiGreen, result.Message))
		return
	}
	r.printf("%s\n", r.paint(ansiRed, result.Message))
}

func (r *Renderer) Error(msg string) {
	r.printf("%s\n", r.paint(ansiRed, msg))
}

func (r *Renderer) Notice(msg string) {
	r.printf("%s\n", msg)
}

func (r *Renderer) Menu(v user.Visibility) {
	items := []string{"reservar", "contacto"}
	if v.LoggedIn() {
		items = append(items, "logout")
	} else {
		items = append(items, "login")
	}
	items = append(items, "recargar", "salir")
	r.printf("Comandos: %s\n", strings.Join(items, ", "))
}

func (r *Renderer) Prompt(label string) {
	r.printf("%s", label)
}

func (r *Renderer) paint(code, s string) string {
	if !r.color {
		return s
	}
	return code + s + ansiReset
}

func (r *Renderer) printf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintf(r.out, format, args...)
}
