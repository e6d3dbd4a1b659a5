// Package phonematcher indexes a watchlist of phone numbers for caller-ID
// matching against large volumes of observed numbers.
//
// Watchlist numbers are keyed by their caller-ID min-match key (the last
// seven network digits, reversed). A bloom filter over the keys rejects
// most observed numbers without a map lookup; candidates sharing the key
// are confirmed with a full comparison, loose by default. Entries whose key
// holds the WILD character 'N' cannot be indexed and are compared one by one.
package phonematcher

import (
	"strings"
	"sync/atomic"

	"github.com/bits-and-blooms/bloom/v3"

	"github.com/endorses/telnum/internal/pkg/dialchar"
	"github.com/endorses/telnum/internal/pkg/numcompare"
	"github.com/endorses/telnum/internal/pkg/portion"
)

// DefaultBloomFPRate is the target false positive rate for the bloom filter.
const DefaultBloomFPRate = 0.001

// CompareFunc reports whether two numbers denote the same subscriber.
type CompareFunc func(a, b string) bool

// Matcher matches observed numbers against a watchlist.
//
// Reads are lock-free. UpdateNumbers builds a new state and swaps it in.
type Matcher struct {
	state   atomic.Pointer[matcherState]
	compare CompareFunc
}

type matcherState struct {
	bloom   *bloom.BloomFilter
	buckets map[string][]string // min-match key -> watchlist numbers
	wild    []string            // numbers with WILD inside their key
	size    int
}

// MatchResult describes a successful match.
type MatchResult struct {
	// Matched is the watchlist number that matched.
	Matched string
	// Observed is the network portion of the observed number.
	Observed string
	// Key is the min-match key of the observed number.
	Key string
}

// New returns an empty Matcher confirming with numcompare.CompareLoosely.
func New() *Matcher {
	return NewWithCompare(numcompare.CompareLoosely)
}

// NewWithCompare returns an empty Matcher confirming candidates with cmp.
func NewWithCompare(cmp CompareFunc) *Matcher {
	m := &Matcher{compare: cmp}
	m.state.Store(emptyState())
	return m
}

func emptyState() *matcherState {
	return &matcherState{
		bloom:   bloom.NewWithEstimates(1, DefaultBloomFPRate),
		buckets: make(map[string][]string),
	}
}

// UpdateNumbers replaces the watchlist. Numbers without a network portion
// are skipped and duplicates are kept once. Readers see either the old or
// the new watchlist, never a mix.
func (m *Matcher) UpdateNumbers(numbers []string) {
	if len(numbers) == 0 {
		m.state.Store(emptyState())
		return
	}

	buckets := make(map[string][]string, len(numbers))
	var wild []string
	seen := make(map[string]struct{}, len(numbers))
	size := 0

	for _, n := range numbers {
		np := portion.ExtractNetworkPortionAlt(ExtractUserPart(n))
		if np == "" {
			continue
		}
		if _, dup := seen[np]; dup {
			continue
		}
		seen[np] = struct{}{}

		size++
		key := Key(n)
		if strings.ContainsRune(key, dialchar.Wild) {
			wild = append(wild, n)
			continue
		}
		buckets[key] = append(buckets[key], n)
	}

	bf := bloom.NewWithEstimates(uint(max(len(buckets), 1)*10), DefaultBloomFPRate)
	for key := range buckets {
		bf.AddString(key)
	}

	m.state.Store(&matcherState{
		bloom:   bf,
		buckets: buckets,
		wild:    wild,
		size:    size,
	})
}

// Match returns the first watchlist number matching observed.
func (m *Matcher) Match(observed string) (matched string, ok bool) {
	res, ok := m.matchWithState(m.state.Load(), observed)
	return res.Matched, ok
}

// MatchWithDetails is like Match but also returns the observed network
// portion and the shared key.
func (m *Matcher) MatchWithDetails(observed string) (MatchResult, bool) {
	return m.matchWithState(m.state.Load(), observed)
}

// MatchBatch matches every observed number against the same watchlist.
func (m *Matcher) MatchBatch(observed []string) []bool {
	results := make([]bool, len(observed))
	state := m.state.Load()
	if state.size == 0 {
		return results
	}

	for i, obs := range observed {
		_, results[i] = m.matchWithState(state, obs)
	}
	return results
}

func (m *Matcher) matchWithState(state *matcherState, observed string) (MatchResult, bool) {
	if state.size == 0 {
		return MatchResult{}, false
	}

	user := ExtractUserPart(observed)
	key := Key(user)
	if key == "" {
		return MatchResult{}, false
	}

	var candidates []string
	if state.bloom.TestString(key) {
		candidates = state.buckets[key]
	}
	for _, list := range [][]string{candidates, state.wild} {
		for _, candidate := range list {
			if m.compare(ExtractUserPart(candidate), user) {
				return MatchResult{
					Matched:  candidate,
					Observed: portion.ExtractNetworkPortionAlt(user),
					Key:      key,
				}, true
			}
		}
	}
	return MatchResult{}, false
}

// Size returns the number of distinct watchlist numbers.
func (m *Matcher) Size() int {
	return m.state.Load().size
}

// Keys returns the number of distinct min-match keys.
func (m *Matcher) Keys() int {
	return len(m.state.Load().buckets)
}
