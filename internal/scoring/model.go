package scoring

// Model is a named, pure scoring function over a context.
type Model interface {
	Score(p *Context) Score
}

// ExtraDataComputer is implemented by models that can compute an additional
// presentation payload for their advice card. Callers discover the
// capability with a type assertion; the engine itself never depends on it.
type ExtraDataComputer interface {
	ComputeExtraData(p *Context) any
}

// ComputeExtraData returns the extra payload of a model when it supports
// one, or nil.
func ComputeExtraData(model Model, p *Context) any {
	if computer, ok := model.(ExtraDataComputer); ok {
		return computer.ComputeExtraData(p)
	}
	return nil
}
