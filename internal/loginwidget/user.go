package loginwidget

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/loginwidget/internal/common"
)

// User is the profile carried by a widget payload. Decode it only after
// CheckAuthorization returned Valid.
type User struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Username  string    `json:"username,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	AuthDate  time.Time `json:"auth_date"`
}

// User decodes the standard profile fields. The id must be a base-10
// integer; auth_date follows the same rules as CheckAuthorization.
func (f Fields) User() (User, error) {
	id, err := strconv.ParseInt(f[FieldID], 10, 64)
	if err != nil {
		return User{}, fmt.Errorf("%w: %q", common.ErrInvalidUserID, f[FieldID])
	}

	ts, ok := parseAuthDate(f[FieldAuthDate])
	if !ok {
		return User{}, fmt.Errorf("invalid %s: %q", FieldAuthDate, f[FieldAuthDate])
	}

	return User{
		ID:        id,
		FirstName: f[FieldFirstName],
		LastName:  f[FieldLastName],
		Username:  f[FieldUsername],
		PhotoURL:  f[FieldPhotoURL],
		AuthDate:  time.Unix(ts, 0).UTC(),
	}, nil
}
