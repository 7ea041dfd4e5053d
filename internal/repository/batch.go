package repository

import (
	"strconv"

	"nt-data-lab/internal/models"
)

// Store limits.
const (
	// MaxInQueryValues caps the number of values sent in one $in filter.
	MaxInQueryValues = 30
	// MaxBatchWrites caps the number of operations in one bulk write.
	MaxBatchWrites = 500
)

// chunk splits values into consecutive groups of at most size elements.
func chunk[T any](values []T, size int) [][]T {
	if size <= 0 || len(values) == 0 {
		return nil
	}
	out := make([][]T, 0, (len(values)+size-1)/size)
	for start := 0; start < len(values); start += size {
		end := start + size
		if end > len(values) {
			end = len(values)
		}
		out = append(out, values[start:end])
	}
	return out
}

// leagueValues expands canonical league ids into every representation the
// store may hold: the string itself and, when numeric, the integer.
func leagueValues(ids []string) []interface{} {
	out := make([]interface{}, 0, len(ids)*2)
	seen := models.NewIDSet()
	for _, id := range ids {
		if id == "" || seen.Has(id) {
			continue
		}
		seen.Add(id)
		out = append(out, id)
		if n, err := strconv.ParseInt(id, 10, 64); err == nil {
			out = append(out, n)
		}
	}
	return out
}

func uniqueStrings(values []string) []string {
	return models.NewIDSet(values...).Sorted()
}
