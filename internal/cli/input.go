package cli

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetToken prompts on w and reads the bot token from the terminal without
// echo. Surrounding white space is trimmed.
func GetToken(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Enter bot token: "); err != nil {
		return "", err
	}
	b, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// queryPart returns the query string of s. A leading '?' is dropped and an
// absolute URL is reduced to its raw query; a bare query is returned as is,
// so values may carry unescaped '?' or '#'.
func queryPart(s string) string {
	if q, ok := strings.CutPrefix(s, "?"); ok {
		return q
	}
	if u, err := url.Parse(s); err == nil && u.Scheme != "" && u.Host != "" {
		return u.RawQuery
	}
	return s
}
