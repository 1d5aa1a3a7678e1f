package extract

import "sort"

// Hybrid runs every applicable strategy and merges their results per
// field by confidence: the most confident strategy fills a field first
// and the rest only fill what is still empty.
type Hybrid struct {
	children []Strategy
}

// NewHybrid creates a hybrid over the given strategies.
func NewHybrid(children ...Strategy) *Hybrid {
	return &Hybrid{children: children}
}

// Name identifies the strategy.
func (h *Hybrid) Name() string { return "hybrid" }

// CanHandle reports the best confidence among the children.
func (h *Hybrid) CanHandle(text string) int {
	best := 0
	for _, child := range h.children {
		if conf := child.CanHandle(text); conf > best {
			best = conf
		}
	}
	return best
}

// Extract runs each child that reports non-zero confidence, in
// descending confidence order, merging later results into the gaps the
// earlier ones left.
func (h *Hybrid) Extract(text string) *Fields {
	type scored struct {
		strategy Strategy
		conf     int
		order    int
	}

	var applicable []scored
	for i, child := range h.children {
		if conf := child.CanHandle(text); conf > 0 {
			applicable = append(applicable, scored{child, conf, i})
		}
	}
	sort.SliceStable(applicable, func(i, j int) bool {
		if applicable[i].conf != applicable[j].conf {
			return applicable[i].conf > applicable[j].conf
		}
		return applicable[i].order < applicable[j].order
	})

	fields := NewFields()
	for _, entry := range applicable {
		fields.Merge(entry.strategy.Extract(text))
	}
	return fields
}
