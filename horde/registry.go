package horde

import "math/rand/v2"

// Factory builds one entity of a variant from its spawn parameters.
type Factory func(s Spawn) Entity

// Registry maps variant kinds to their factories. Hosts can swap the factory of
// a built-in kind for one world without affecting others.
type Registry struct {
	factories map[Kind]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[Kind]Factory),
	}
}

// DefaultRegistry returns a registry with every built-in variant.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(KindWorm, func(s Spawn) Entity { return NewWorm(s) })
	r.Register(KindGhost, func(s Spawn) Entity { return NewGhost(s) })
	r.Register(KindSpider, func(s Spawn) Entity { return NewSpider(s) })
	r.Register(KindOrbiter, func(s Spawn) Entity { return NewOrbiter(s) })
	return r
}

// Register sets the factory for k, replacing any previous one.
func (r *Registry) Register(k Kind, f Factory) {
	r.factories[k] = f
}

// factory returns the factory for k, or nil if none is registered.
func (r *Registry) factory(k Kind) Factory {
	return r.factories[k]
}

// picker draws kinds from a weight table.
type picker struct {
	kinds   []Kind
	cumul   []float64
	total   float64
	uniform bool
}

func newPicker(weights []Weight) picker {
	p := picker{uniform: true}
	var first float64
	for _, w := range weights {
		if w.Weight <= 0 {
			continue
		}
		if first == 0 {
			first = w.Weight
		} else if w.Weight != first {
			p.uniform = false
		}
		p.total += w.Weight
		p.kinds = append(p.kinds, w.Kind)
		p.cumul = append(p.cumul, p.total)
	}
	return p
}

func (p picker) pick(rng *rand.Rand) Kind {
	if p.uniform {
		return p.kinds[rng.IntN(len(p.kinds))]
	}
	target := rng.Float64() * p.total
	for i, c := range p.cumul {
		if target < c {
			return p.kinds[i]
		}
	}
	return p.kinds[len(p.kinds)-1]
}
