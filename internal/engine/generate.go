package engine

import "math/rand"

// Generate draws a daily quest set from the catalog.
//
// One template is drawn from each category pool, then the set is topped up to
// QuestSetSize by drawing without replacement from everything not yet picked. Each pick is
// instantiated with a fresh id from newID. Empty pools and small catalogs
// yield a shorter set instead of an error.
func Generate(r *rand.Rand, c Catalog, newID func() string) []Quest {
	type slot struct {
		cat Category
		idx int
	}

	// Index set over the whole catalog.
	var all []slot
	for _, cat := range Categories {
		for i := range c.Pool(cat) {
			all = append(all, slot{cat: cat, idx: i})
		}
	}

	picked := make(map[slot]bool, QuestSetSize)
	var order []slot
	for _, cat := range Categories {
		n := len(c.Pool(cat))
		if n == 0 {
			continue
		}
		s := slot{cat: cat, idx: r.Intn(n)}
		picked[s] = true
		order = append(order, s)
	}

	rest := make([]slot, 0, len(all))
	for _, s := range all {
		if !picked[s] {
			rest = append(rest, s)
		}
	}
	extra := QuestSetSize - len(Categories)
	if extra > len(rest) {
		extra = len(rest)
	}
	// Partial Fisher-Yates: the first `extra` positions become the sample.
	for i := 0; i < extra; i++ {
		j := i + r.Intn(len(rest)-i)
		rest[i], rest[j] = rest[j], rest[i]
		order = append(order, rest[i])
	}

	out := make([]Quest, 0, len(order))
	for _, s := range order {
		t := c.Pool(s.cat)[s.idx]
		out = append(out, Quest{
			ID:          newID(),
			Title:       t.Title,
			Description: t.Description,
			Category:    s.cat,
			Difficulty:  t.Difficulty,
			Exp:         t.Exp,
			StatBonus:   t.StatBonus,
			Completed:   false,
		})
	}
	return out
}
