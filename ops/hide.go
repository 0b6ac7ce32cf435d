package ops

import "github.com/pflow-xyz/go-lts/lts"

// Hide returns a clone of g in which every edge whose bare label name
// is in actions is relabelled τ. Broadcast/listen prefixes are
// stripped before comparison, so hiding "a" hides both "a" and "!a"/
// "?a" edges.
func Hide(g *lts.LTS, actions map[string]bool) *lts.LTS {
	out := g.Clone()
	for _, e := range out.Edges {
		if e.Label.Kind != lts.Visible {
			continue
		}
		if actions[e.Label.Name] {
			e.Label = lts.TauLabel()
		}
	}
	return out
}
