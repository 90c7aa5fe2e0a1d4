package timeline

// TagResolver picks the single tag that represents an interval.
type TagResolver struct {
	high  []string
	low   []string
	isLow map[string]bool
}

// NewTagResolver creates a resolver from the high-priority and low-priority
// (filler) tag lists. Both lists are copied.
func NewTagResolver(high, low []string) *TagResolver {
	r := &TagResolver{
		high:  append([]string(nil), high...),
		low:   append([]string(nil), low...),
		isLow: make(map[string]bool, len(low)),
	}
	for _, t := range low {
		r.isLow[t] = true
	}
	return r
}

// Resolve returns the representative tag for a record's tags:
//
//  1. the first high-priority tag present, in high-list order
//  2. otherwise the first tag (input order) that is not low priority
//  3. otherwise the last low-priority tag (low-list order) present
//  4. DefaultTag when there are no tags
//
// Empty tag strings are ignored.
func (r *TagResolver) Resolve(tags []string) string {
	present := make(map[string]bool, len(tags))
	for _, t := range tags {
		if t != "" {
			present[t] = true
		}
	}
	if len(present) == 0 {
		return DefaultTag
	}

	for _, t := range r.high {
		if present[t] {
			return t
		}
	}

	for _, t := range tags {
		if t != "" && !r.isLow[t] {
			return t
		}
	}

	for i := len(r.low) - 1; i >= 0; i-- {
		if present[r.low[i]] {
			return r.low[i]
		}
	}

	// Unreachable: every present tag is low priority, so the reverse scan hits one.
	return DefaultTag
}
