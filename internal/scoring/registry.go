package scoring

import (
	"strconv"
	"sync"
)

// Registry maps model names to model instances. It is seeded with the
// static catalog and grows monotonically as dynamic names are resolved;
// instances are immutable after construction and a given name always
// resolves to the same instance for the registry's lifetime.
//
// Safe for concurrent use: constructors are pure, so two goroutines racing
// on the first resolution of a name may both construct, but only the first
// insert wins and every caller observes that single instance. A failed
// construction is memoized the same way and never retried.
type Registry struct {
	mu     sync.RWMutex
	models map[string]Model
	failed map[string]bool
}

// NewRegistry creates a registry seeded with the static model catalog,
// including the default model under the empty name.
func NewRegistry() *Registry {
	r := &Registry{
		models: make(map[string]Model),
		failed: make(map[string]bool),
	}
	for name, model := range staticCatalog() {
		r.models[name] = model
	}
	return r
}

// Register adds a model to the static catalog. Meant to be called before
// the registry is used for scoring; an existing entry is replaced.
func (r *Registry) Register(name string, model Model) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models[name] = model
}

// Resolve returns the model for a name, constructing and memoizing
// parametrized models on first use. It returns nil for unknown names,
// malformed names and names whose construction failed before.
func (r *Registry) Resolve(name string) Model {
	return r.resolve(name, nil)
}

// resolve carries the set of names currently being constructed so that a
// negation chain referring back to itself terminates as unresolved.
func (r *Registry) resolve(name string, visiting map[string]bool) Model {
	r.mu.RLock()
	model, ok := r.models[name]
	failed := r.failed[name]
	r.mu.RUnlock()
	if ok {
		return model
	}
	if failed || visiting[name] {
		return nil
	}

	match := ParseName(name)
	if match.Kind == MatchNone {
		return nil
	}

	if visiting == nil {
		visiting = make(map[string]bool)
	}
	visiting[name] = true
	constructed := r.construct(match, visiting)
	delete(visiting, name)

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.models[name]; ok {
		return existing
	}
	if r.failed[name] {
		return nil
	}
	if constructed == nil {
		r.failed[name] = true
		return nil
	}
	r.models[name] = constructed
	return constructed
}

func (r *Registry) construct(match Match, visiting map[string]bool) Model {
	switch match.Kind {
	case MatchJobGroup:
		return NewJobGroupFilter(match.Args)
	case MatchDepartement:
		return NewDepartementFilter(match.Args)
	case MatchNegate:
		target := r.resolve(match.Arg, visiting)
		if target == nil {
			return nil
		}
		return &negateFilter{target: target}
	case MatchActiveExperiment:
		return &activeExperimentFilter{feature: match.Arg}
	case MatchConstant:
		value, err := strconv.ParseFloat(match.Arg, 64)
		if err != nil {
			return nil
		}
		return &constantModel{value: value}
	default:
		return nil
	}
}
