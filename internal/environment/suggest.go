package environment

import "sort"

const maxSuggestions = 3

// nearbyNames ranks pool by edit distance to name and returns the
// closest few. Candidates further than half the name's length (at
// least 2) are considered noise and dropped.
func nearbyNames(name string, pool []string) []string {
	limit := len(name) / 2
	if limit < 2 {
		limit = 2
	}
	type ranked struct {
		name string
		dist int
	}
	candidates := make([]ranked, 0, len(pool))
	for _, candidate := range pool {
		if candidate == name {
			continue
		}
		d := editDistance(name, candidate)
		if d <= limit {
			candidates = append(candidates, ranked{candidate, d})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].name < candidates[j].name
	})
	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.name
	}
	return out
}

// editDistance is the Levenshtein distance over runes, two-row DP.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
