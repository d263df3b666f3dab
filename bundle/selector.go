package bundle

import "fmt"

// SelectNativeClause picks the clause that applies to the environment, or
// none. The clause list must already have the optional sentinel stripped;
// optional says whether one was present. Returns ok=false with a nil error
// when native code is optional and nothing matches, and
// ErrNoMatchingNativeClause when it is mandatory and nothing matches.
//
// Selection is pure: the same inputs always yield the same clause.
func SelectNativeClause(clauses []NativeClause, optional bool, env EnvironmentMatcher) (NativeClause, bool, error) {
	if len(clauses) == 0 {
		return NativeClause{}, false, nil
	}

	var matches []NativeClause
	for _, c := range clauses {
		if env.Match(c) {
			matches = append(matches, c)
		}
	}

	switch {
	case len(matches) == 0:
		if optional {
			return NativeClause{}, false, nil
		}
		return NativeClause{}, false, fmt.Errorf("%w: %d clause(s), none match the environment",
			ErrNoMatchingNativeClause, len(clauses))
	case len(matches) == 1:
		return matches[0], true, nil
	default:
		return matches[firstSortedClause(matches)], true, nil
	}
}

// firstSortedClause breaks a tie between multiple matching clauses and
// returns the index of the winner within matches. The narrowing order is
// part of the format's selection policy and must not be reordered:
//
//  1. Clauses declaring an osversion range, narrowed to those with a range
//     whose low bound sits at the maximum floor across all declared ranges.
//     A single survivor wins outright. No survivors resets the working set
//     to all matches.
//  2. Clauses declaring a language. No survivors falls back to index 0.
//  3. First survivor in manifest declaration order.
func firstSortedClause(matches []NativeClause) int {
	// Max floor across every declared osversion range, and the subset of
	// clauses declaring any range at all.
	var floor Version
	var withVersion []int
	for i, c := range matches {
		if c.OSVersions != nil {
			withVersion = append(withVersion, i)
		}
		for _, rs := range c.OSVersions {
			r, err := ParseVersionRange(rs)
			if err != nil {
				continue // validated at parse time; unreachable
			}
			if r.Low.Compare(floor) >= 0 {
				floor = r.Low
			}
		}
	}

	if len(withVersion) == 1 {
		return withVersion[0]
	}

	selection := withVersion
	if len(withVersion) > 1 {
		selection = atFloor(matches, withVersion, floor)
	}

	var working []int
	switch {
	case len(selection) == 0:
		// No clause survived the version narrowing (or none declared a
		// range): restart from the full match set.
		for i := range matches {
			working = append(working, i)
		}
	case len(selection) == 1:
		return selection[0]
	default:
		working = selection
	}

	var withLanguage []int
	for _, i := range working {
		if matches[i].Languages != nil {
			withLanguage = append(withLanguage, i)
		}
	}
	if len(withLanguage) == 0 {
		return 0
	}
	return withLanguage[0]
}

// atFloor narrows candidates to those declaring at least one osversion
// range whose low bound equals the floor.
func atFloor(matches []NativeClause, candidates []int, floor Version) []int {
	var kept []int
	for _, i := range candidates {
		for _, rs := range matches[i].OSVersions {
			r, err := ParseVersionRange(rs)
			if err != nil {
				continue
			}
			if r.Low.Compare(floor) >= 0 {
				kept = append(kept, i)
				break
			}
		}
	}
	return kept
}
