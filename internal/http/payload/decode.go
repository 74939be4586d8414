package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jellydator/validation"
)

// partialUpdate is implemented by payloads where every field is optional, so a
// missing body is read as an empty object.
type partialUpdate interface {
	partial()
}

// Decoder reads JSON request bodies into payload structs and validates them.
type Decoder struct{}

// DecodeJSONPayload decodes the body into object, rejecting unknown fields, and
// runs its Validate method when it has one.
func (d Decoder) DecodeJSONPayload(r *http.Request, object any) (err error) {
	decoder := json.NewDecoder(r.Body)
	defer func() {
		errClose := r.Body.Close()
		if err == nil && errClose != nil {
			err = fmt.Errorf("closing request body: %w", errClose)
		}
	}()

	decoder.DisallowUnknownFields()

	if err = decoder.Decode(object); err != nil {
		if _, ok := object.(partialUpdate); !ok || !errors.Is(err, io.EOF) {
			return fmt.Errorf("decoding json payload: %w", err)
		}
		err = nil
	}

	return validatePayload(object)
}

func validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
