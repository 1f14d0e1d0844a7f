// Package httpx normalizes loosely typed request fields shared by JSON bodies and HTML forms.
package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidID is returned when an id field is neither a positive integer nor empty.
var ErrInvalidID = errors.New("httpx: invalid id")

// ErrInvalidDate is returned for dates that are neither YYYY-MM-DD nor RFC 3339.
var ErrInvalidDate = errors.New("httpx: invalid date")

// IDList is an id field that clients send either as a single value or as a list.
// Set is false when the field was absent, null or an empty string; a present empty list sets it.
type IDList struct {
	IDs []int64
	Set bool
}

// UnmarshalJSON accepts null, a number, a numeric string or an array of those.
func (l *IDList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*l = IDList{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] != '[' {
		id, ok, err := decodeID(data)
		if err != nil || !ok {
			return err
		}
		*l = IDList{IDs: []int64{id}, Set: true}
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return ErrInvalidID
	}
	ids := make([]int64, 0, len(raw))
	for _, r := range raw {
		id, ok, err := decodeID(r)
		if err != nil {
			return err
		}
		if ok {
			ids = append(ids, id)
		}
	}
	*l = IDList{IDs: ids, Set: true}
	return nil
}

// FormIDList reads key (or key[]) from form values. Empty entries are ignored; the list is Set
// when at least one non-empty value was sent.
func FormIDList(form url.Values, key string) (IDList, error) {
	values := append(append([]string{}, form[key]...), form[key+"[]"]...)
	var out IDList
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		id, err := parseID(v)
		if err != nil {
			return IDList{}, err
		}
		out.IDs = append(out.IDs, id)
		out.Set = true
	}
	return out, nil
}

// OptionalID is a nullable id. The zero value means not provided.
type OptionalID struct {
	id  int64
	set bool
}

// NewOptionalID returns a set OptionalID.
func NewOptionalID(id int64) OptionalID { return OptionalID{id: id, set: true} }

// Ptr returns the id or nil when unset.
func (o OptionalID) Ptr() *int64 {
	if !o.set {
		return nil
	}
	id := o.id
	return &id
}

// Int64 returns the id, or 0 when unset.
func (o OptionalID) Int64() int64 { return o.id }

// UnmarshalJSON accepts null, "", a number or a numeric string.
func (o *OptionalID) UnmarshalJSON(data []byte) error {
	id, ok, err := decodeID(bytes.TrimSpace(data))
	if err != nil {
		return err
	}
	*o = OptionalID{id: id, set: ok}
	return nil
}

// UnmarshalParam lets gin's form binding fill the id from a form value.
func (o *OptionalID) UnmarshalParam(param string) error {
	param = strings.TrimSpace(param)
	if param == "" {
		*o = OptionalID{}
		return nil
	}
	id, err := parseID(param)
	if err != nil {
		return err
	}
	*o = OptionalID{id: id, set: true}
	return nil
}

func decodeID(data []byte) (int64, bool, error) {
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return 0, false, nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, false, ErrInvalidID
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, false, nil
		}
		id, err := parseID(s)
		return id, err == nil, err
	}
	id, err := parseID(string(data))
	return id, err == nil, err
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

const dateLayout = "2006-01-02"

// ParseDate reads a calendar date. An empty string yields nil. RFC 3339 timestamps are reduced to
// their date; the result is midnight UTC.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		ts, err2 := time.Parse(time.RFC3339, s)
		if err2 != nil {
			return nil, ErrInvalidDate
		}
		t = time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
	}
	return &t, nil
}

// PositiveInt parses a query value such as a page limit. Anything unparsable or negative is 0.
func PositiveInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
