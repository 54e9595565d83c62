package response

import (
	"reservas-web/internal/domain/event"
	"reservas-web/internal/pkg/errs"
	"reservas-web/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

type EventResponse struct {
	ID     event.ID `json:"id"`
	Titulo string   `json:"titulo"`
	Fecha  string   `json:"fecha"`
}

var eventCopyOption = withMapping(shared.EventSnapshot{}, EventResponse{}, map[string]string{
	"Title": "Titulo",
	"Date":  "Fecha",
})

func FromEventSnapshots(events []shared.EventSnapshot) ([]EventResponse, error) {
	res := make([]EventResponse, len(events))
	for i := range events {
		if err := copier.CopyWithOption(&res[i], &events[i], eventCopyOption); err != nil {
			return nil, errs.Wrap(err, "convert event")
		}
	}
	return res, nil
}
