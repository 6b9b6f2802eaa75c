package routematch

import (
	"fmt"
	"strings"
)

func validateURI(uri string) error {
	if !strings.HasPrefix(uri, "/") {
		return fmt.Errorf("%w: uri must begin with '/' in uri '%s'", ErrInvalidArgument, uri)
	}

	return nil
}
