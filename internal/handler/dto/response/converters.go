package response

import (
	"time"

	"reservas-web/internal/domain/event"
	"reservas-web/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// copyOption renders domain value types the way the site's API does.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: event.Date{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(event.Date).String(), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(time.Time).UTC().Format(time.RFC3339), nil
			},
		},
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: user.Email{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(user.Email).Value(), nil
			},
		},
	},
}

func withMapping(src, dst any, mapping map[string]string) copier.Option {
	opt := copyOption
	opt.FieldNameMapping = []copier.FieldNameMapping{
		{SrcType: src, DstType: dst, Mapping: mapping},
	}
	return opt
}
