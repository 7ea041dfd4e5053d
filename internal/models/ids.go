// Package models defines data structures for the application.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// ExternalID is an identifier issued by Hattrick (player, league, country).
// The store and the clients carry it either as a string or as a number; it is
// always held as a canonical trimmed decimal string inside the application.
type ExternalID string

// String returns the canonical representation.
func (id ExternalID) String() string {
	return string(id)
}

// IsZero reports whether the id is empty.
func (id ExternalID) IsZero() bool {
	return id == ""
}

// UnmarshalBSONValue accepts string, int32, int64 and double values.
func (id *ExternalID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	v := bsoncore.Value{Type: t, Data: data}

	switch t {
	case bsontype.String:
		s, ok := v.StringValueOK()
		if !ok {
			return fmt.Errorf("decode external id: corrupt string")
		}
		*id = ExternalID(strings.TrimSpace(s))
	case bsontype.Int32:
		n, _ := v.Int32OK()
		*id = ExternalID(strconv.FormatInt(int64(n), 10))
	case bsontype.Int64:
		n, _ := v.Int64OK()
		*id = ExternalID(strconv.FormatInt(n, 10))
	case bsontype.Double:
		f, _ := v.DoubleOK()
		*id = ExternalID(formatFloat(f))
	case bsontype.Null, bsontype.Undefined:
		*id = ""
	default:
		return fmt.Errorf("decode external id: unsupported bson type %s", t)
	}
	return nil
}

// UnmarshalJSON accepts both JSON strings and numbers.
func (id *ExternalID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ExternalID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("external id must be a string or a number: %w", err)
	}
	*id = ExternalID(NormalizeID(n))
	return nil
}

// NormalizeID converts a loosely typed identifier into its canonical string.
// Unsupported values normalize to the empty string.
func NormalizeID(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case ExternalID:
		return strings.TrimSpace(string(val))
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return strconv.FormatInt(i, 10)
		}
		if f, err := val.Float64(); err == nil {
			return formatFloat(f)
		}
		return strings.TrimSpace(val.String())
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float32:
		return formatFloat(float64(val))
	case float64:
		return formatFloat(val)
	default:
		return ""
	}
}

func formatFloat(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// IDSet is an unordered set of identifiers.
type IDSet map[string]struct{}

// NewIDSet builds a set from the given ids, skipping empty values.
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id into the set. Empty ids are ignored.
func (s IDSet) Add(id string) {
	if id == "" {
		return
	}
	s[id] = struct{}{}
}

// Has reports whether id is in the set.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of ids.
func (s IDSet) Len() int {
	return len(s)
}

// Sorted returns the ids in ascending order.
func (s IDSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
