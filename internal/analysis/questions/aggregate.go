package questions

import (
	"sort"
	"strconv"
	"strings"
)

// Number is the value type an aggregate reduces over
type Number interface {
	~int64 | ~float64
}

// Entry is one key of an aggregate with its reduced value
type Entry[V Number] struct {
	Key   string
	Value V
}

// aggregate maps keys to reduced values and remembers the order in which
// keys first appeared, so equal values rank in first-seen order
type aggregate[V Number] struct {
	index   map[string]int
	entries []Entry[V]
}

func newAggregate[V Number]() *aggregate[V] {
	return &aggregate[V]{index: make(map[string]int)}
}

func (a *aggregate[V]) slot(key string) *Entry[V] {
	i, ok := a.index[key]
	if !ok {
		i = len(a.entries)
		a.index[key] = i
		a.entries = append(a.entries, Entry[V]{Key: key})
	}
	return &a.entries[i]
}

// max keeps the larger of the stored value and v. A new key starts at
// zero, so a key seen only with negative values reduces to 0.
func (a *aggregate[V]) max(key string, v V) {
	e := a.slot(key)
	if v > e.Value {
		e.Value = v
	}
}

// add accumulates v into key
func (a *aggregate[V]) add(key string, v V) {
	e := a.slot(key)
	e.Value += v
}

func (a *aggregate[V]) size() int {
	return len(a.entries)
}

// values returns the reduced values in first-seen key order
func (a *aggregate[V]) values() []V {
	out := make([]V, len(a.entries))
	for i, e := range a.entries {
		out[i] = e.Value
	}
	return out
}

// ranked returns all entries by value descending; ties keep first-seen order
func (a *aggregate[V]) ranked() []Entry[V] {
	out := make([]Entry[V], len(a.entries))
	copy(out, a.entries)
	sortDescending(out)
	return out
}

func sortDescending[V Number](entries []Entry[V]) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
}

// top returns at most n leading entries
func top[V Number](entries []Entry[V], n int) []Entry[V] {
	if n < 0 {
		n = 0
	}
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}

// parseInt reads a whole number, ignoring surrounding whitespace
func parseInt(s string) (int64, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return v, err == nil
}

// parseFloat reads a decimal number, ignoring surrounding whitespace
func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v, err == nil
}
