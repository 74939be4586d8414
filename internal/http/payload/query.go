package payload

import (
	"fmt"
	"net/url"
	"strconv"
	"taskboard/internal/core"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

// PageRequest is the from/size pair accepted by listing endpoints.
type PageRequest struct {
	From int
	Size int
}

// ParsePageRequest reads from and size out of the query string. Omitted values
// fall back to from=0 and size=core.DefaultPageSize.
func ParsePageRequest(values url.Values) (PageRequest, error) {
	page := PageRequest{
		From: 0,
		Size: core.DefaultPageSize,
	}

	var err error
	if raw := values.Get("from"); raw != "" {
		if page.From, err = strconv.Atoi(raw); err != nil {
			return PageRequest{}, fmt.Errorf("from must be an integer: %w", err)
		}
	}
	if raw := values.Get("size"); raw != "" {
		if page.Size, err = strconv.Atoi(raw); err != nil {
			return PageRequest{}, fmt.Errorf("size must be an integer: %w", err)
		}
	}

	return page, nil
}

func (p PageRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.From, validation.Min(0)),
		// zero counts as blank, so Required rejects size=0
		validation.Field(&p.Size, validation.Required, validation.Min(1)),
	)
}

func (p PageRequest) ToPage() core.Page {
	return core.Page{
		Offset: p.From,
		Limit:  p.Size,
	}
}

// ValidateID checks that a path identifier is a well formed UUID.
func ValidateID(id string) error {
	return validation.Validate(id, validation.Required, is.UUID)
}
