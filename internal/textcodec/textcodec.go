// Package textcodec turns raw file bytes into snapshot text under a
// configurable policy for invalid UTF-8.
package textcodec

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/vvka-141/codesnap/pkg/codesnap"
)

// Decode converts content to a string according to policy.
// Valid UTF-8 passes through unchanged under every policy, including a
// leading byte order mark.
func Decode(content []byte, policy codesnap.DecodePolicy) (string, error) {
	switch policy {
	case codesnap.DecodeIgnore, "":
		if utf8.Valid(content) {
			return string(content), nil
		}
		return strings.ToValidUTF8(string(content), ""), nil

	case codesnap.DecodeReplace:
		out, err := unicode.UTF8.NewDecoder().Bytes(content)
		if err != nil {
			return "", fmt.Errorf("decode utf-8: %w", err)
		}
		return string(out), nil

	case codesnap.DecodeStrict:
		out, n, err := transform.Bytes(encoding.UTF8Validator, content)
		if err != nil {
			return "", fmt.Errorf("invalid utf-8 at byte offset %d: %w", n, err)
		}
		return string(out), nil
	}

	return "", fmt.Errorf("%w: unknown decode policy %q", codesnap.ErrInvalidConfig, policy)
}
