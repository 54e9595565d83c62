package memstore

import (
	"context"
	_ "embed"
	"os"
	"strconv"
	"strings"
	"time"

	"reservas-web/internal/domain/event"
	"reservas-web/internal/domain/user"
	"reservas-web/internal/infra"
	"reservas-web/internal/pkg/clock"
	"reservas-web/internal/pkg/errs"
	"reservas-web/internal/pkg/password"
	"reservas-web/internal/usecase/shared"

	"gopkg.in/yaml.v3"
)

//go:embed default_seed.yaml
var defaultSeed []byte

type Seed struct {
	Events []EventSeed `yaml:"events"`
	Users  []UserSeed  `yaml:"users"`
}

type EventSeed struct {
	ID       yaml.Node `yaml:"id"`
	Title    string `yaml:"titulo"`
	Date     string `yaml:"fecha"`
	InDays   *int   `yaml:"in_days"`
	Category string `yaml:"categoria"`
	Capacity int    `yaml:"cupos_totales"`
}

type UserSeed struct {
	Email       string `yaml:"email"`
	Password    string `yaml:"password"`
	Name        string `yaml:"nombre"`
	IsSuperuser bool   `yaml:"is_superuser"`
	Inactive    bool   `yaml:"inactive"`
}

func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, errs.Wrap(err, "parse seed")
	}
	return &seed, nil
}

// LoadSeed reads the seed file at path, or the bundled development data when
// path is empty.
func LoadSeed(path string) (*Seed, error) {
	if strings.TrimSpace(path) == "" {
		return ParseSeed(defaultSeed)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "read seed file")
	}
	return ParseSeed(data)
}

// Apply loads the seed into the store. Passwords are hashed with hasher
// before they are stored.
func (s *Seed) Apply(ctx context.Context, store *Store, clk clock.Clock, hasher password.Hasher) error {
	today := clock.Today(clk)

	for i, e := range s.Events {
		snapshot, err := e.toSnapshot(today)
		if err != nil {
			return infra.WrapStoreErr(store.logger, infra.KindInvalidSeed, "seed event "+itemLabel(i, e.ID.Value), err)
		}
		if err := store.AddEvent(ctx, snapshot); err != nil {
			return err
		}
	}

	for i, u := range s.Users {
		account, err := u.toAccount(clk.Now(), hasher)
		if err != nil {
			return infra.WrapStoreErr(store.logger, infra.KindInvalidSeed, "seed user "+itemLabel(i, u.Email), err)
		}
		if err := store.AddAccount(ctx, account); err != nil {
			return err
		}
	}

	store.logger.Info("Seed data loaded", "events", len(s.Events), "users", len(s.Users))
	return nil
}

func (e EventSeed) toSnapshot(today time.Time) (shared.EventSnapshot, error) {
	id, err := e.eventID()
	if err != nil {
		return shared.EventSnapshot{}, err
	}

	var date event.Date
	switch {
	case e.InDays != nil:
		date = event.DateOf(today.AddDate(0, 0, *e.InDays))
	default:
		date, err = event.ParseDate(e.Date)
		if err != nil {
			return shared.EventSnapshot{}, err
		}
	}

	if strings.TrimSpace(e.Title) == "" {
		return shared.EventSnapshot{}, event.ErrEmptyTitle
	}
	if e.Capacity < 0 {
		return shared.EventSnapshot{}, errs.New("cupos_totales must not be negative")
	}

	return shared.EventSnapshot{
		ID:       id,
		Title:    e.Title,
		Date:     date,
		Category: e.Category,
		Capacity: e.Capacity,
	}, nil
}

// eventID keeps the scalar's YAML type: unquoted numbers are served as JSON
// numbers, everything else as strings.
func (e EventSeed) eventID() (event.ID, error) {
	switch e.ID.ShortTag() {
	case "!!int", "!!float":
		return event.NewNumericID(e.ID.Value)
	default:
		return event.NewID(e.ID.Value)
	}
}

func (u UserSeed) toAccount(now time.Time, hasher password.Hasher) (*user.Account, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	if _, err := user.NewPassword(u.Password); err != nil {
		return nil, err
	}

	hash, err := hasher.Hash(u.Password)
	if err != nil {
		return nil, err
	}

	account := user.NewAccount(email, hash, u.Name, u.IsSuperuser, now)
	if u.Inactive {
		account.Deactivate()
	}
	return account, nil
}

func itemLabel(i int, key string) string {
	if key == "" {
		return "#" + strconv.Itoa(i)
	}
	return key
}
