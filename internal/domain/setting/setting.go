// Package setting models the out-of-band configuration of the shop: admin
// address, notification toggles, branding and terms text. Values are stored
// as strings; parsing happens here, once, at the boundary.
package setting

import (
	"strconv"
	"time"
)

// Key identifies a single configuration value. The set is closed: callers
// work with these constants, never with raw strings.
type Key string

const (
	KeyAdminEmail         Key = "email_admin_address"
	KeyNotifyNewTicket    Key = "email_new_ticket"
	KeyNotifyStatusChange Key = "email_status_change"
	KeyNotifyOldTickets   Key = "email_admin_old_tickets"
	KeyOldTicketsDays     Key = "email_admin_old_tickets_days"
	KeyLogoURL            Key = "logo_url"
	KeyTermsText          Key = "terms_and_conditions"
)

// DefaultOldTicketsDays is used when the threshold setting is absent or not
// a number.
const DefaultOldTicketsDays = 7

var knownKeys = map[Key]bool{
	KeyAdminEmail:         true,
	KeyNotifyNewTicket:    true,
	KeyNotifyStatusChange: true,
	KeyNotifyOldTickets:   true,
	KeyOldTicketsDays:     true,
	KeyLogoURL:            true,
	KeyTermsText:          true,
}

func (k Key) String() string {
	return string(k)
}

func (k Key) IsValid() bool {
	return knownKeys[k]
}

// AllKeys returns every known setting key.
func AllKeys() []Key {
	return []Key{
		KeyAdminEmail,
		KeyNotifyNewTicket,
		KeyNotifyStatusChange,
		KeyNotifyOldTickets,
		KeyOldTicketsDays,
		KeyLogoURL,
		KeyTermsText,
	}
}

// Setting is a single key/value row.
type Setting struct {
	key       Key
	value     string
	updatedAt time.Time
}

func NewSetting(key Key, value string) (*Setting, error) {
	if !key.IsValid() {
		return nil, ErrInvalidSettingKey
	}
	return &Setting{
		key:       key,
		value:     value,
		updatedAt: time.Now(),
	}, nil
}

func ReconstructSetting(key Key, value string, updatedAt time.Time) *Setting {
	return &Setting{
		key:       key,
		value:     value,
		updatedAt: updatedAt,
	}
}

func (s *Setting) Key() Key             { return s.key }
func (s *Setting) Value() string        { return s.value }
func (s *Setting) UpdatedAt() time.Time { return s.updatedAt }

// BoolValue reports whether the stored value is the literal "true". Any
// other value, including absence, reads as false.
func (s *Setting) BoolValue() bool {
	return s != nil && s.value == "true"
}

// IntValue parses the value as an integer, falling back to def when the
// setting is absent or not numeric.
func (s *Setting) IntValue(def int) int {
	if s == nil || s.value == "" {
		return def
	}
	n, err := strconv.Atoi(s.value)
	if err != nil {
		return def
	}
	return n
}

// StringValue returns the raw value, empty when the setting is absent.
func (s *Setting) StringValue() string {
	if s == nil {
		return ""
	}
	return s.value
}
