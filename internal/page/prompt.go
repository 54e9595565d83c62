package page

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"reservas-web/internal/domain/contact"
	"reservas-web/internal/pkg/errs"
)

const promptAcknowledge = "Presiona Enter para continuar "

// Run opens the page and serves commands read line by line from in until
// "salir", end of input or Close.
func (p *Page) Run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	p.Open()

	for {
		if p.ctx.Err() != nil {
			return nil
		}
		p.view.Menu(p.Visibility())
		line, ok := p.ask(sc, "> ")
		if !ok {
			return sc.Err()
		}

		switch strings.ToLower(line) {
		case "":
		case "reservar", "r":
			if !p.promptReservation(sc) {
				return sc.Err()
			}
			result, err := p.Submit()
			if err != nil && !errs.Is(err, errs.ErrSubmissionInProgress) {
				p.logger.Debug("Reservation not submitted", "error", err)
			}
			if err == nil && result.Blocking() {
				if _, ok := p.ask(sc, promptAcknowledge); !ok {
					return sc.Err()
				}
			}
		case "contacto", "c":
			form, ok := p.promptContact(sc)
			if !ok {
				return sc.Err()
			}
			if _, err := p.SendContact(form); err != nil && !errs.Is(err, errs.ErrSubmissionInProgress) {
				p.logger.Debug("Contact message not sent", "error", err)
			}
		case "login":
			email, ok := p.ask(sc, "Email: ")
			if !ok {
				return sc.Err()
			}
			password, ok := p.ask(sc, "Contraseña: ")
			if !ok {
				return sc.Err()
			}
			_ = p.Login(email, password)
		case "logout":
			_ = p.Logout()
		case "recargar":
			p.Reload()
		case "salir", "q":
			return nil
		default:
			p.view.Notice("Comando desconocido: " + line)
		}
	}
}

// promptReservation fills the form. An empty answer keeps the current value.
func (p *Page) promptReservation(sc *bufio.Scanner) bool {
	form := p.Form()

	name, ok := p.askDefault(sc, "Nombre", form.Name)
	if !ok {
		return false
	}
	email, ok := p.askDefault(sc, "Email", form.Email)
	if !ok {
		return false
	}
	seats, ok := p.askDefault(sc, "Cupos", form.Seats)
	if !ok {
		return false
	}
	p.Fill(name, email, seats)

	p.view.Selector(p.Options())
	choice, ok := p.ask(sc, "Número de evento: ")
	if !ok {
		return false
	}
	if choice == "" {
		return true
	}
	n, err := strconv.Atoi(choice)
	if err == nil {
		err = p.Select(n)
	}
	if err != nil {
		p.view.Notice("Opción inválida: " + choice)
		_ = p.Select(0)
	}
	return true
}

func (p *Page) promptContact(sc *bufio.Scanner) (contact.Form, bool) {
	var form contact.Form
	fields := []struct {
		label string
		dst   *string
	}{
		{"Nombre: ", &form.Name},
		{"Email: ", &form.Email},
		{"Teléfono: ", &form.Phone},
		{"Asunto: ", &form.Subject},
		{"Mensaje: ", &form.Body},
	}
	for _, f := range fields {
		v, ok := p.ask(sc, f.label)
		if !ok {
			return contact.Form{}, false
		}
		*f.dst = v
	}
	return form, true
}

func (p *Page) ask(sc *bufio.Scanner, label string) (string, bool) {
	p.view.Prompt(label)
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}

func (p *Page) askDefault(sc *bufio.Scanner, label, current string) (string, bool) {
	if current != "" {
		label += " [" + current + "]"
	}
	v, ok := p.ask(sc, label+": ")
	if !ok {
		return "", false
	}
	if v == "" {
		return current, true
	}
	return v, true
}
