package tracking

import "sort"

// Summary represents aggregated usage across all endpoints (value type).
// UsedEndpoints and UnusedEndpoints are derived from the same snapshot as
// Endpoints; TotalRequests is read independently by the store and may be
// slightly ahead of or behind the snapshot under concurrent writers.
type Summary struct {
	TotalEndpoints  int
	UsedEndpoints   int
	UnusedEndpoints int
	TotalRequests   int64
	Endpoints       []Record
}

// SortByHits orders records by hit count descending, ties broken by key
// ascending. Sorts in place and returns the slice for chaining.
// This is a PURE function over the slice contents.
func SortByHits(records []Record) []Record {
	sort.Slice(records, func(i, j int) bool {
		if records[i].HitCount != records[j].HitCount {
			return records[i].HitCount > records[j].HitCount
		}
		return records[i].Key < records[j].Key
	})
	return records
}

// SortByKey orders records by key ascending.
func SortByKey(records []Record) []Record {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Key < records[j].Key
	})
	return records
}

// Unused returns the subset of records that were never hit, ordered by key.
// This is a PURE function.
func Unused(records []Record) []Record {
	out := make([]Record, 0)
	for _, r := range records {
		if !r.Used() {
			out = append(out, r)
		}
	}
	return SortByKey(out)
}

// Summarize combines a snapshot of records and an independently read global
// request count into a summary. The returned Endpoints share the hit-count
// ordering of SortByHits.
// This is a PURE function.
func Summarize(records []Record, totalRequests int64) Summary {
	used := 0
	for _, r := range records {
		if r.Used() {
			used++
		}
	}

	return Summary{
		TotalEndpoints:  len(records),
		UsedEndpoints:   used,
		UnusedEndpoints: len(records) - used,
		TotalRequests:   totalRequests,
		Endpoints:       SortByHits(records),
	}
}
