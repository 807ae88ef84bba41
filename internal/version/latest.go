package version

// Tagged pairs a parsed version with the raw tag string it came from.
type Tagged[V any] struct {
	Version V
	Tag     string
}

// Latest selects the highest version among the raw tags that parse under
// the given scheme. Tags that fail to parse are skipped and never affect
// the result. The boolean reports whether any tag qualified, which is a
// distinct outcome from a zero version.
func Latest[V any](tags []string, parse func(string) (V, bool), compare func(V, V) int) (Tagged[V], bool) {
	var best Tagged[V]
	found := false

	for _, raw := range tags {
		v, ok := parse(raw)
		if !ok {
			continue
		}
		if !found || compare(v, best.Version) > 0 {
			best = Tagged[V]{Version: v, Tag: raw}
			found = true
		}
	}

	return best, found
}
