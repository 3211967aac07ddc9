package loginwidget

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/dmitrijs2005/loginwidget/internal/common"
)

// Names of the fields every payload must carry.
const (
	FieldID       = "id"
	FieldAuthDate = "auth_date"
	FieldHash     = "hash"
)

// Optional profile fields the widget usually sends.
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldUsername  = "username"
	FieldPhotoURL  = "photo_url"
)

// minFields is the number of mandatory fields.
const minFields = 3

// Fields is the set of name/value pairs returned by the widget. An empty value
// is treated the same as a value that was never sent.
type Fields map[string]string

// DataCheckString builds the message the widget signs: every field except
// hash, sorted by name byte-wise, non-empty values only, "name=value" lines
// separated by '\n' without a trailing newline.
func (f Fields) DataCheckString() string {
	keys := make([]string, 0, len(f))
	for k, v := range f {
		if k == FieldHash || v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.Grow(256)
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(f[k])
	}
	return sb.String()
}

// Clone returns a shallow copy of f.
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	c := make(Fields, len(f))
	for k, v := range f {
		c[k] = v
	}
	return c
}

// FieldsFromValues converts parsed query or form values into Fields.
// A name given more than once is rejected with common.ErrDuplicateField,
// since it is ambiguous which value the widget signed.
func FieldsFromValues(v url.Values) (Fields, error) {
	if v == nil {
		return nil, common.ErrNilFields
	}
	f := make(Fields, len(v))
	for k, vals := range v {
		switch len(vals) {
		case 0:
			f[k] = ""
		case 1:
			f[k] = vals[0]
		default:
			return nil, fmt.Errorf("%w: %q", common.ErrDuplicateField, k)
		}
	}
	return f, nil
}

// ParseQuery parses a raw query string such as
// "id=1&auth_date=1540852587&hash=..." into Fields. A leading '?' is ignored.
func ParseQuery(raw string) (Fields, error) {
	v, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return nil, fmt.Errorf("parse query: %w", err)
	}
	return FieldsFromValues(v)
}
