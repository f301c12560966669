// Package validate holds the request predicates shared by the handlers.
// Every Is* helper reports true when the value is NOT acceptable.
package validate

import (
	"errors"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

var (
	urlPattern   = regexp.MustCompile(`^(https://)([a-zA-Z0-9.-]+)(\.[a-zA-Z]{2,})(/.*)?$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]{0,63}@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// IsUndefined reports whether v carries no value at all.
func IsUndefined(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

func IsNotValidString(v any) bool {
	s, ok := deref(v).(string)
	return !ok || strings.TrimSpace(s) == ""
}

// IsNotValidInteger accepts any integer kind, or a float with no fraction,
// that is zero or greater.
func IsNotValidInteger(v any) bool {
	rv := reflect.ValueOf(deref(v))
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() < 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return false
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f < 0 || math.IsInf(f, 0) || f != math.Trunc(f)
	}
	return true
}

func IsNotValidURL(v any) bool {
	s, ok := deref(v).(string)
	return !ok || !urlPattern.MatchString(s)
}

func IsNotValidEmail(v any) bool {
	s, ok := deref(v).(string)
	return !ok || !emailPattern.MatchString(s)
}

// IsNotValidPassword requires a digit, a lower and an upper case letter,
// 8 to 16 characters long.
func IsNotValidPassword(v any) bool {
	s, ok := deref(v).(string)
	if !ok {
		return true
	}
	if n := len([]rune(s)); n < 8 || n > 16 {
		return true
	}
	var digit, lower, upper bool
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		}
	}
	return !(digit && lower && upper)
}

// IsNotValidID reports whether v is not a UUID string.
func IsNotValidID(v any) bool {
	if IsNotValidString(v) {
		return true
	}
	_, err := uuid.Parse(deref(v).(string))
	return err != nil
}

// Page is a resolved per/page pair. The zero value means "no pagination".
type Page struct {
	Limit  int
	Offset int
}

var ErrInvalidPagination = errors.New("per and page must be positive integers")

// ParsePagination turns the per/page query pair into a limit/offset.
// Both empty returns the zero Page; anything else must be two positive integers.
func ParsePagination(per, page string) (Page, error) {
	if per == "" && page == "" {
		return Page{}, nil
	}
	if IsNotValidString(per) || IsNotValidString(page) {
		return Page{}, ErrInvalidPagination
	}
	perNumber, err := strconv.Atoi(per)
	if err != nil || IsNotValidInteger(perNumber) || perNumber == 0 {
		return Page{}, ErrInvalidPagination
	}
	pageNumber, err := strconv.Atoi(page)
	if err != nil || IsNotValidInteger(pageNumber) || pageNumber == 0 {
		return Page{}, ErrInvalidPagination
	}
	return Page{Limit: perNumber, Offset: (pageNumber - 1) * perNumber}, nil
}

func deref(v any) any {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}
