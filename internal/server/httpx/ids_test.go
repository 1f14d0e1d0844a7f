package httpx

import (
	"encoding/json"
	"errors"
	"net/url"
	"reflect"
	"testing"
	"time"
)

func TestIDList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    IDList
		wantErr bool
	}{
		{"absent", `{}`, IDList{}, false},
		{"null", `{"ids":null}`, IDList{}, false},
		{"empty string", `{"ids":""}`, IDList{}, false},
		{"single number", `{"ids":4}`, IDList{IDs: []int64{4}, Set: true}, false},
		{"single string", `{"ids":"4"}`, IDList{IDs: []int64{4}, Set: true}, false},
		{"mixed list", `{"ids":[1,"2",null,""]}`, IDList{IDs: []int64{1, 2}, Set: true}, false},
		{"empty list", `{"ids":[]}`, IDList{IDs: []int64{}, Set: true}, false},
		{"negative", `{"ids":-1}`, IDList{}, true},
		{"word", `{"ids":["ana"]}`, IDList{}, true},
		{"object", `{"ids":{"a":1}}`, IDList{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				IDs IDList `json:"ids"`
			}
			err := json.Unmarshal([]byte(tt.body), &body)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s) succeeded, want error", tt.body)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.body, err)
			}
			if !reflect.DeepEqual(body.IDs, tt.want) {
				t.Errorf("IDs = %+v, want %+v", body.IDs, tt.want)
			}
		})
	}
}

func TestFormIDList(t *testing.T) {
	tests := []struct {
		name    string
		form    url.Values
		want    IDList
		wantErr bool
	}{
		{"absent", url.Values{}, IDList{}, false},
		{"blank", url.Values{"u": {""}}, IDList{}, false},
		{"single", url.Values{"u": {"3"}}, IDList{IDs: []int64{3}, Set: true}, false},
		{"repeated", url.Values{"u": {"3", "5"}}, IDList{IDs: []int64{3, 5}, Set: true}, false},
		{"bracket key", url.Values{"u[]": {"7", ""}}, IDList{IDs: []int64{7}, Set: true}, false},
		{"invalid", url.Values{"u": {"x"}}, IDList{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormIDList(tt.form, "u")
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormIDList error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FormIDList = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOptionalID(t *testing.T) {
	var body struct {
		A OptionalID `json:"a"`
		B OptionalID `json:"b"`
		C OptionalID `json:"c"`
		D OptionalID `json:"d"`
	}
	if err := json.Unmarshal([]byte(`{"a":9,"b":"12","c":"","d":null}`), &body); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if p := body.A.Ptr(); p == nil || *p != 9 {
		t.Errorf("A = %v, want 9", p)
	}
	if body.B.Int64() != 12 {
		t.Errorf("B = %d, want 12", body.B.Int64())
	}
	if body.C.Ptr() != nil || body.D.Ptr() != nil {
		t.Error("empty and null ids must be unset")
	}

	var o OptionalID
	if err := o.UnmarshalParam(" 5 "); err != nil || o.Int64() != 5 {
		t.Errorf("UnmarshalParam(5) = %d, %v", o.Int64(), err)
	}
	if err := o.UnmarshalParam(""); err != nil || o.Ptr() != nil {
		t.Errorf("UnmarshalParam(\"\") = %v, %v; want unset", o.Ptr(), err)
	}
	if err := o.UnmarshalParam("0"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("UnmarshalParam(0) err = %v, want ErrInvalidID", err)
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2024-03-09", "2024-03-09T18:30:00Z", " 2024-03-09 "} {
		got, err := ParseDate(in)
		if err != nil || got == nil || !got.Equal(want) {
			t.Errorf("ParseDate(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if got, err := ParseDate(""); got != nil || err != nil {
		t.Errorf("ParseDate(\"\") = %v, %v; want nil, nil", got, err)
	}
	if _, err := ParseDate("09/03/2024"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("ParseDate(09/03/2024) err = %v, want ErrInvalidDate", err)
	}
}

func TestPositiveInt(t *testing.T) {
	for in, want := range map[string]int{"": 0, "5": 5, "-2": 0, "abc": 0, " 10 ": 10} {
		if got := PositiveInt(in); got != want {
			t.Errorf("PositiveInt(%q) = %d, want %d", in, got, want)
		}
	}
}
