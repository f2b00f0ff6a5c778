package derivation

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

const passwordSeparator = "///"

// ParsePath parses a sequence of "//hard" and "/soft" junctions.
// The empty path is valid and yields no junctions.
func ParsePath(path string) ([]Junction, error) {
	var junctions []Junction
	rest := path
	for rest != "" {
		if rest[0] != '/' {
			return nil, pathError(path, "junction must start with '/'")
		}
		rest = rest[1:]

		hard := false
		if strings.HasPrefix(rest, "/") {
			hard = true
			rest = rest[1:]
		}

		end := strings.IndexByte(rest, '/')
		if end < 0 {
			end = len(rest)
		}
		segment := rest[:end]
		if segment == "" {
			return nil, pathError(path, "empty junction")
		}

		if hard {
			junctions = append(junctions, HardJunction(segment))
		} else {
			junctions = append(junctions, SoftJunction(segment))
		}
		rest = rest[end:]
	}
	return junctions, nil
}

func pathError(path, reason string) error {
	logrus.WithFields(logrus.Fields{
		"function": "ParsePath",
		"reason":   reason,
		"length":   len(path),
	}).Debug("Rejected derivation path")
	return fmt.Errorf("%w: %s", ErrInvalidPath, reason)
}

// URI is a parsed secret URI of the form "phrase//hard/soft///password".
type URI struct {
	// Phrase is everything before the first '/', verbatim.
	Phrase string

	// Path holds the parsed junctions.
	Path []Junction

	// Password follows the "///" separator.
	Password string

	// HasPassword distinguishes an empty password from no password.
	HasPassword bool
}

// ParseURI splits a secret URI. The phrase itself is not validated.
func ParseURI(uri string) (*URI, error) {
	out := &URI{}

	body := uri
	if i := strings.Index(uri, passwordSeparator); i >= 0 {
		body = uri[:i]
		out.Password = uri[i+len(passwordSeparator):]
		out.HasPassword = true
	}

	pathStart := strings.IndexByte(body, '/')
	if pathStart < 0 {
		pathStart = len(body)
	}
	out.Phrase = body[:pathStart]

	junctions, err := ParsePath(body[pathStart:])
	if err != nil {
		return nil, err
	}
	out.Path = junctions
	return out, nil
}
