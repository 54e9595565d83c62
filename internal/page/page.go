package page

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"reservas-web/internal/domain/contact"
	"reservas-web/internal/domain/event"
	"reservas-web/internal/domain/reservation"
	"reservas-web/internal/domain/user"
	"reservas-web/internal/pkg/errs"
	"reservas-web/internal/usecase/commands"
	"reservas-web/internal/usecase/queries"
)

var ErrNoSuchOption = errs.New("no such event option")

// Page is one view of the reservation page. It owns a context scoped to the
// view: Close cancels whatever request is still in flight.
type Page struct {
	catalog      queries.CatalogQueries
	session      queries.SessionQueries
	reservations commands.ReservationCommands
	contact      commands.ContactCommands
	auth         commands.AuthCommands
	view         *Renderer
	logger       *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	options    []event.Option
	visibility user.Visibility
	form       reservation.Form
}

func New(
	parent context.Context,
	catalog queries.CatalogQueries,
	session queries.SessionQueries,
	reservations commands.ReservationCommands,
	contactCommands commands.ContactCommands,
	auth commands.AuthCommands,
	view *Renderer,
	logger *slog.Logger,
) *Page {
	ctx, cancel := context.WithCancel(parent)
	return &Page{
		catalog:      catalog,
		session:      session,
		reservations: reservations,
		contact:      contactCommands,
		auth:         auth,
		view:         view,
		logger:       logger,
		ctx:          ctx,
		cancel:       cancel,
		visibility:   user.VisibilityFor(nil),
	}
}

// Open runs the page load: session probe, then the event catalog.
func (p *Page) Open() {
	visibility := p.session.Check(p.ctx)
	options, err := p.catalog.LoadOptions(p.ctx)

	p.mu.Lock()
	p.visibility = visibility
	p.options = options
	p.mu.Unlock()

	p.view.Header(visibility)
	if err != nil && p.ctx.Err() == nil {
		p.view.Error(queries.MessageCatalogUnavailable)
	}
	p.view.Selector(options)
}

// Reload is what the browser does after logout: inputs are cleared and the
// page is loaded again.
func (p *Page) Reload() {
	p.mu.Lock()
	p.form.Reset()
	p.mu.Unlock()
	p.Open()
}

func (p *Page) Close() {
	p.cancel()
}

func (p *Page) Done() <-chan struct{} {
	return p.ctx.Done()
}

func (p *Page) Options() []event.Option {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]event.Option(nil), p.options...)
}

func (p *Page) Visibility() user.Visibility {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visibility
}

func (p *Page) Form() reservation.Form {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.form
}

// Fill replaces the name, email and seats inputs; the event selection is kept.
func (p *Page) Fill(name, email, seats string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form.Name = name
	p.form.Email = email
	p.form.Seats = seats
}

// Select picks the n-th selector option, counting from 1. Zero clears the
// selection.
func (p *Page) Select(n int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n == 0 {
		p.form.EventID = event.ID{}
		return nil
	}
	if n < 0 || n > len(p.options) {
		return errs.Wrap(ErrNoSuchOption, strconv.Itoa(n))
	}
	p.form.EventID = p.options[n-1].Value
	return nil
}

// Submit posts the current form and renders the outcome. A successful
// booking clears the form.
func (p *Page) Submit() (reservation.Result, error) {
	form := p.Form()

	result, err := p.reservations.Submit(p.ctx, form)
	if err != nil {
		if errs.Is(err, errs.ErrSubmissionInProgress) {
			p.view.Notice("La reserva anterior todavía se está enviando.")
		}
		return result, err
	}

	if result.ResetsForm() {
		p.mu.Lock()
		p.form.Reset()
		p.mu.Unlock()
	}
	p.view.Reservation(result)
	return result, nil
}

// SendContact posts the contact form. A complete form shows "Enviando..."
// while the request is out.
func (p *Page) SendContact(form contact.Form) (contact.Result, error) {
	if _, err := contact.NewMessage(form); err == nil {
		p.view.Notice("Enviando...")
	}
	result, err := p.contact.Send(p.ctx, form)
	if err != nil {
		if errs.Is(err, errs.ErrSubmissionInProgress) {
			p.view.Notice("El mensaje anterior todavía se está enviando.")
		}
		return result, err
	}
	p.view.Contact(result)
	return result, nil
}

// Login starts a session and reloads the page so the header reflects it.
func (p *Page) Login(email, password string) error {
	err := p.auth.Login(p.ctx, email, password)
	switch {
	case err == nil:
		p.Reload()
		return nil
	case errs.Is(err, commands.ErrInvalidCredentials):
		p.view.Error("Email o contraseña incorrectos.")
	case errs.Is(err, errs.ErrValidation):
		p.view.Error("Ingresa un email válido y tu contraseña.")
	case p.ctx.Err() == nil:
		p.view.Error("No se pudo iniciar sesión.")
	}
	return err
}

// Logout ends the session and reloads the page. Any answer from the backend
// triggers the reload; only a failed request leaves the page as is.
func (p *Page) Logout() error {
	if err := p.auth.Logout(p.ctx); err != nil && !errs.Is(err, errs.ErrRejected) {
		if p.ctx.Err() == nil {
			p.view.Error("No se pudo cerrar la sesión.")
		}
		return err
	}
	p.Reload()
	return nil
}
