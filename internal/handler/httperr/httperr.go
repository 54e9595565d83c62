package httperr

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Response is the error envelope the site's clients read: detail is either a
// message or a list of ValidationItem.
type Response struct {
	Status int `json:"-"`
	Detail any `json:"detail"`
}

type ValidationItem struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// ValidationDetail turns a binding error into validation items located in
// the given request part ("body", "query"). Field names come from the tag
// the request struct binds with.
func ValidationDetail(part string, err error) []ValidationItem {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		items := make([]ValidationItem, 0, len(verrs))
		for _, fe := range verrs {
			items = append(items, ValidationItem{
				Loc:  []string{part, fieldName(fe)},
				Msg:  message(fe),
				Type: fe.Tag(),
			})
		}
		return items
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []ValidationItem{{
			Loc:  []string{part, typeErr.Field},
			Msg:  "Input should be a valid " + typeErr.Type.String(),
			Type: "type_error",
		}}
	}

	return []ValidationItem{{
		Loc:  []string{part},
		Msg:  err.Error(),
		Type: "value_error",
	}}
}

func Item(part, field, msg string) ValidationItem {
	return ValidationItem{Loc: []string{part, field}, Msg: msg, Type: "value_error"}
}

var registerOnce sync.Once

// RegisterFieldNames makes validation errors report the json or form name
// of a field instead of its Go name.
func RegisterFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return f.Name
		})
	})
}

func fieldName(fe validator.FieldError) string {
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Field required"
	case "email":
		return "value is not a valid email address"
	case "gte", "min":
		return "Input should be greater than or equal to " + fe.Param()
	case "max", "lte":
		return "Input should be less than or equal to " + fe.Param()
	default:
		return "Invalid value"
	}
}
