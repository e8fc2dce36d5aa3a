package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	validator "github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrInvalidPayload indicates the request body could not be decoded or
// failed field validation.
var ErrInvalidPayload = errors.New("invalid payload")

// DecodeJSON decodes the request body into dst and runs struct
// validation against the `validate` tags.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrInvalidPayload
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode body: %w", ErrInvalidPayload)
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return fmt.Errorf("invalid fields %s: %w", strings.Join(fields, ", "), ErrInvalidPayload)
		}
		return fmt.Errorf("validate body: %w", ErrInvalidPayload)
	}
	return nil
}
