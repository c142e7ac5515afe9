package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"team-member-service/internal/auth"
	"team-member-service/internal/service"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return auth.PasswordLengthOK(fl.Field().String())
	})
	return v
}

// decodeJSON читает тело запроса и валидирует его по тегам validate.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return service.ErrBadRequest("invalid JSON")
	}
	return validateRequest(dst)
}

func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return service.ErrBadRequest(fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
	}
	return service.ErrBadRequest("invalid request")
}

// pathID достаёт идентификатор из пути и проверяет его форму.
func pathID(r *http.Request, name string) (string, error) {
	id := chi.URLParam(r, name)
	if err := validate.Var(id, "required,max=128,printascii"); err != nil {
		return "", service.ErrBadRequest(name + " is invalid")
	}
	return id, nil
}
