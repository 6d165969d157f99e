package valid

import (
	"net/url"
	"reflect"
	"regexp"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)

	// E.164: leading +, up to 15 digits, no separators.
	phonePattern = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)
)

// Email reports whether s looks like a deliverable email address.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Phone reports whether s is an international E.164 phone number.
func Phone(s string) bool {
	return phonePattern.MatchString(s)
}

// URL reports whether s is an absolute URL with a host.
func URL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// IsZero reports whether v holds its type's zero value. nil pointers,
// empty strings, empty slices and maps, and numeric zero all count.
func IsZero(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		return rv.Len() == 0
	default:
		return rv.IsZero()
	}
}
