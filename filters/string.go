package filters

// StringSet filters a text column.
type StringSet struct {
	Eq          *string  `schema:"eq" json:"eq,omitempty"`
	Ne          *string  `schema:"ne" json:"ne,omitempty"`
	Contains    *string  `schema:"contains" json:"contains,omitempty"`
	NotContains *string  `schema:"not_contains" json:"not_contains,omitempty"`
	IContains   *string  `schema:"i_contains" json:"i_contains,omitempty"`
	StartsWith  *string  `schema:"starts_with" json:"starts_with,omitempty"`
	EndsWith    *string  `schema:"ends_with" json:"ends_with,omitempty"`
	In          []string `schema:"in" json:"in,omitempty"`
}

func (s *StringSet) Terms() []Term {
	if s == nil {
		return nil
	}
	var terms []Term
	terms = appendOne(terms, OpEq, s.Eq)
	terms = appendOne(terms, OpNe, s.Ne)
	terms = appendOne(terms, OpContains, s.Contains)
	terms = appendOne(terms, OpNotContains, s.NotContains)
	terms = appendOne(terms, OpIContains, s.IContains)
	terms = appendOne(terms, OpStartsWith, s.StartsWith)
	terms = appendOne(terms, OpEndsWith, s.EndsWith)
	terms = appendIn(terms, s.In)
	return terms
}
