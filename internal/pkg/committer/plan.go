package committer

import "cloud.google.com/go/spanner"

// Plan collects the mutations of one unit of work. Nothing is written until
// the plan is handed to an Adapter, which applies it as a single commit.
type Plan struct {
	mutations []*spanner.Mutation
}

func NewPlan() *Plan {
	return &Plan{
		mutations: make([]*spanner.Mutation, 0, 8),
	}
}

// Add appends m; nil mutations are ignored so repos can return nil for "nothing to do".
func (p *Plan) Add(m *spanner.Mutation) {
	if m == nil {
		return
	}
	p.mutations = append(p.mutations, m)
}

// AddAll appends every non-nil mutation in ms.
func (p *Plan) AddAll(ms ...*spanner.Mutation) {
	for _, m := range ms {
		p.Add(m)
	}
}

func (p *Plan) Len() int {
	return len(p.mutations)
}

func (p *Plan) IsEmpty() bool {
	return len(p.mutations) == 0
}

func (p *Plan) Mutations() []*spanner.Mutation {
	return p.mutations
}
