// Package report provides lightweight text reporting: frequency counters,
// leveled plain-text reports and monospace tables.
package report

import "sort"

// Counter tallies string keys, remembering first-seen order so that equal
// counts report deterministically.
type Counter struct {
	counts map[string]int
	keys   []string
}

// KeyCount pairs a counted key with its tally.
type KeyCount struct {
	Key   string
	Count int
}

// CountGroup collects all keys sharing one tally.
type CountGroup struct {
	Count int
	Keys  []string
}

// NewCounter creates an empty counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Count adds one to the tally of key.
func (c *Counter) Count(key string) { c.CountN(key, 1) }

// CountN adds n to the tally of key.
func (c *Counter) CountN(key string, n int) {
	if _, seen := c.counts[key]; !seen {
		c.keys = append(c.keys, key)
	}
	c.counts[key] += n
}

// Get returns the tally of key, zero when never counted.
func (c *Counter) Get(key string) int { return c.counts[key] }

// Len returns the number of distinct keys.
func (c *Counter) Len() int { return len(c.keys) }

// Total returns the sum of all tallies.
func (c *Counter) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Keys returns the distinct keys in first-seen order.
func (c *Counter) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// sortedByCount returns all pairs ordered by descending count, ties broken
// by first-seen order.
func (c *Counter) sortedByCount() []KeyCount {
	pairs := make([]KeyCount, 0, len(c.keys))
	for _, k := range c.keys {
		pairs = append(pairs, KeyCount{Key: k, Count: c.counts[k]})
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Count > pairs[j].Count
	})
	return pairs
}

// MostCommon returns the n highest-tallied pairs, or all of them when n is
// not positive or exceeds the key count.
func (c *Counter) MostCommon(n int) []KeyCount {
	pairs := c.sortedByCount()
	if n > 0 && n < len(pairs) {
		pairs = pairs[:n]
	}
	return pairs
}

// ReportOrder returns all pairs with the priority keys first, in the given
// order, followed by the rest sorted by descending count. Priority keys that
// were never counted are skipped.
func (c *Counter) ReportOrder(priority []string) []KeyCount {
	placed := make(map[string]bool, len(priority))
	var pairs []KeyCount
	for _, k := range priority {
		if n, ok := c.counts[k]; ok && !placed[k] {
			pairs = append(pairs, KeyCount{Key: k, Count: n})
			placed[k] = true
		}
	}
	for _, kc := range c.sortedByCount() {
		if !placed[kc.Key] {
			pairs = append(pairs, kc)
		}
	}
	return pairs
}

// GroupByCount buckets keys by their tally, highest tally first. Keys within
// a bucket keep first-seen order.
func (c *Counter) GroupByCount() []CountGroup {
	byCount := make(map[int][]string)
	var counts []int
	for _, k := range c.keys {
		n := c.counts[k]
		if _, seen := byCount[n]; !seen {
			counts = append(counts, n)
		}
		byCount[n] = append(byCount[n], k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))
	groups := make([]CountGroup, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, CountGroup{Count: n, Keys: byCount[n]})
	}
	return groups
}

// Summarise writes "key: count" lines to the report in descending count
// order, at most limit lines when limit is positive.
func (c *Counter) Summarise(r *TextReport, limit int) {
	for _, kc := range c.MostCommon(limit) {
		r.Printf("%s: %d\n", kc.Key, kc.Count)
	}
}
