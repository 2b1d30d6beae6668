// Package platform locates and parses declarative platform documents.
//
// Resolution of the document source is a one-shot, fail-fast lookup:
// an explicit override wins, then a default file beside the running
// executable, then the current working directory. The first readable
// candidate is used; there are no retries.
package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultFileName is the document looked up next to the executable and
// in the working directory when no override is given.
const DefaultFileName = "platform_config.json"

var (
	// ErrConfigNotFound means no readable document existed at any
	// resolution candidate.
	ErrConfigNotFound = errors.New("platform document not found")

	// ErrMalformedDocument means the document text is not valid JSON
	// or YAML.
	ErrMalformedDocument = errors.New("malformed platform document")
)

// ResolvePath returns the path of the platform document. When override
// is non-empty it is the only candidate considered.
func ResolvePath(override string) (string, error) {
	if override != "" {
		if !readable(override) {
			return "", fmt.Errorf("%w: %s", ErrConfigNotFound, override)
		}
		return override, nil
	}

	var candidates []string
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), DefaultFileName))
	}
	candidates = append(candidates, DefaultFileName)

	for _, c := range candidates {
		if readable(c) {
			log.Debug().Str("path", c).Msg("platform document resolved")
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(candidates, ", "))
}

func readable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
