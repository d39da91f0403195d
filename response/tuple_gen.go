package response

// Tuples compose response Parts: applying TupleN{A, B, ...} applies each
// field's Part in declaration order, so later fields overwrite earlier
// ones for the same response slot (status, body, replaced header map)
// unless a field is wrapped in Extend, which merges instead. Generated
// for arities 2..13 to match the built-in ResponsePart tuple impls.

type Tuple2[A Part, B Part] struct {
	A A
	B B
}

// Apply implements Part.
func (t Tuple2[A, B]) Apply(r *Response) error {
	if err := t.A.Apply(r); err != nil {
		return err
	}
	if err := t.B.Apply(r); err != nil {
		return err
	}
	return nil
}

type Tuple3[A Part, B Part, C Part] struct {
	A A
	B B
	C C
}

// Apply implements Part.
func (t Tuple3[A, B, C]) Apply(r *Response) error {
	if err := t.A.Apply(r); err != nil {
		return err
	}
	if err := t.B.Apply(r); err != nil {
		return err
	}
	if err := t.C.Apply(r); err != nil {
		return err
	}
	return nil
}

type Tuple4[A Part, B Part, C Part, D Part] struct {
	A A
	B B
	C C
	D D
}

// Apply implements Part.
func (t Tuple4[A, B, C, D]) Apply(r *Response) error {
	if err := t.A.Apply(r); err != nil {
		return err
	}
	if err := t.B.Apply(r); err != nil {
		return err
	}
	if err := t.C.Apply(r); err != nil {
		return err
	}
	if err := t.D.Apply(r); err != nil {
		return err
	}
	return nil
}

type Tuple5[A Part, B Part, C Part, D Part, E Part] struct {
	A A
	B B
	C C
	D D
	E E
}

// Apply implements Part.
func (t Tuple5[A, B, C, D, E]) Apply(r *Response) error {
	if err := t.A.Apply(r); err != nil {
		return err
	}
	if err := t.B.Apply(r); err != nil {
		return err
	}
	if err := t.C.Apply(r); err != nil {
		return err
	}
	if err := t.D.Apply(r); err != nil {
		return err
	}
	if err := t.E.Apply(r); err != nil {
		return err
	}
	return nil
}

type Tuple6[A Part, B Part, C Part, D Part, E Part, F Part] struct {
	A A
	B B
	C C
	D D
	E E
	F F
}

// Apply implements Part.
func (t Tuple6[A, B, C, D, E, F]) Apply(r *Response) error {
	if err := t.A.Apply(r); err != nil {
		return err
	}
	if err := t.B.Apply(r); err != nil {
		return err
	}
	if err := t.C.Apply(r); err != nil {
		return err
	}
	if err := t.D.Apply(r); err != nil {
		return err
	}
	if err := t.E.Apply(r); err != nil {
		return err
	}
	if err := t.F.Apply(r); err != nil {
		return err
	}
	return nil
}

type Tuple7[A Part, B Part, C Part, D Part, E Part, F Part, G Part] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
}

// Apply implements Part.
func (t Tuple7[A, B, C, D, E, F, G]) Apply(r *Response) error {
	if err := t.A.Apply(r); err != nil {
		return err
	}
	if err := t.B.Apply(r); err != nil {
		return err
	}
	if err := t.C.Apply(r); err != nil {
		return err
	}
	if err := t.D.Apply(r); err != nil {
		return err
	}
	if err := t.E.Apply(r); err != nil {
		return err
	}
	if err := t.F.Apply(r); err != nil {
		return err
	}
	if err := t.G.Apply(r); err != nil {
		return err
	}
	return nil
}

type Tuple8[A Part, B Part, C Part, D Part, E Part, F Part, G Part, H Part] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
}

// Apply implements Part.
func (t Tuple8[A, B, C, D, E, F, G, H]) Apply(r *Response) error {
	if err := t.A.Apply(r); err != nil {
		return err
	}
	if err := t.B.Apply(r); err != nil {
		return err
	}
	if err := t.C.Apply(r); err != nil {
		return err
	}
	if err := t.D.Apply(r); err != nil {
		return err
	}
	if err := t.E.Apply(r); err != nil {
		return err
	}
	if err := t.F.Apply(r); err != nil {
		return err
	}
	if err := t.G.Apply(r); err != nil {
		return err
	}
	if err := t.H.Apply(r); err != nil {
		return err
	}
	return nil
}

type Tuple9[A Part, B Part, C Part, D Part, E Part, F Part, G Part, H Part, I Part] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
}

// Apply implements Part.
func (t Tuple9[A, B, C, D, E, F, G, H, I]) Apply(r *Response) error {
	if err := t.A.Apply(r); err != nil {
		return err
	}
	if err := t.B.Apply(r); err != nil {
		return err
	}
	if err := t.C.Apply(r); err != nil {
		return err
	}
	if err := t.D.Apply(r); err != nil {
		return err
	}
	if err := t.E.Apply(r); err != nil {
		return err
	}
	if err := t.F.Apply(r); err != nil {
		return err
	}
	if err := t.G.Apply(r); err != nil {
		return err
	}
	if err := t.H.Apply(r); err != nil {
		return err
	}
	if err := t.I.Apply(r); err != nil {
		return err
	}
	return nil
}

type Tuple10[A Part, B Part, C Part, D Part, E Part, F Part, G Part, H Part, I Part, J Part] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
	J J
}

// Apply implements Part.
func (t Tuple10[A, B, C, D, E, F, G, H, I, J]) Apply(r *Response) error {
	if err := t.A.Apply(r); err != nil {
		return err
	}
	if err := t.B.Apply(r); err != nil {
		return err
	}
	if err := t.C.Apply(r); err != nil {
		return err
	}
	if err := t.D.Apply(r); err != nil {
		return err
	}
	if err := t.E.Apply(r); err != nil {
		return err
	}
	if err := t.F.Apply(r); err != nil {
		return err
	}
	if err := t.G.Apply(r); err != nil {
		return err
	}
	if err := t.H.Apply(r); err != nil {
		return err
	}
	if err := t.I.Apply(r); err != nil {
		return err
	}
	if err := t.J.Apply(r); err != nil {
		return err
	}
	return nil
}

type Tuple11[A Part, B Part, C Part, D Part, E Part, F Part, G Part, H Part, I Part, J Part, K Part] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
	J J
	K K
}

// Apply implements Part.
func (t Tuple11[A, B, C, D, E, F, G, H, I, J, K]) Apply(r *Response) error {
	if err := t.A.Apply(r); err != nil {
		return err
	}
	if err := t.B.Apply(r); err != nil {
		return err
	}
	if err := t.C.Apply(r); err != nil {
		return err
	}
	if err := t.D.Apply(r); err != nil {
		return err
	}
	if err := t.E.Apply(r); err != nil {
		return err
	}
	if err := t.F.Apply(r); err != nil {
		return err
	}
	if err := t.G.Apply(r); err != nil {
		return err
	}
	if err := t.H.Apply(r); err != nil {
		return err
	}
	if err := t.I.Apply(r); err != nil {
		return err
	}
	if err := t.J.Apply(r); err != nil {
		return err
	}
	if err := t.K.Apply(r); err != nil {
		return err
	}
	return nil
}

type Tuple12[A Part, B Part, C Part, D Part, E Part, F Part, G Part, H Part, I Part, J Part, K Part, L Part] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
	J J
	K K
	L L
}

// Apply implements Part.
func (t Tuple12[A, B, C, D, E, F, G, H, I, J, K, L]) Apply(r *Response) error {
	if err := t.A.Apply(r); err != nil {
		return err
	}
	if err := t.B.Apply(r); err != nil {
		return err
	}
	if err := t.C.Apply(r); err != nil {
		return err
	}
	if err := t.D.Apply(r); err != nil {
		return err
	}
	if err := t.E.Apply(r); err != nil {
		return err
	}
	if err := t.F.Apply(r); err != nil {
		return err
	}
	if err := t.G.Apply(r); err != nil {
		return err
	}
	if err := t.H.Apply(r); err != nil {
		return err
	}
	if err := t.I.Apply(r); err != nil {
		return err
	}
	if err := t.J.Apply(r); err != nil {
		return err
	}
	if err := t.K.Apply(r); err != nil {
		return err
	}
	if err := t.L.Apply(r); err != nil {
		return err
	}
	return nil
}

type Tuple13[A Part, B Part, C Part, D Part, E Part, F Part, G Part, H Part, I Part, J Part, K Part, L Part, M Part] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
	J J
	K K
	L L
	M M
}

// Apply implements Part.
func (t Tuple13[A, B, C, D, E, F, G, H, I, J, K, L, M]) Apply(r *Response) error {
	if err := t.A.Apply(r); err != nil {
		return err
	}
	if err := t.B.Apply(r); err != nil {
		return err
	}
	if err := t.C.Apply(r); err != nil {
		return err
	}
	if err := t.D.Apply(r); err != nil {
		return err
	}
	if err := t.E.Apply(r); err != nil {
		return err
	}
	if err := t.F.Apply(r); err != nil {
		return err
	}
	if err := t.G.Apply(r); err != nil {
		return err
	}
	if err := t.H.Apply(r); err != nil {
		return err
	}
	if err := t.I.Apply(r); err != nil {
		return err
	}
	if err := t.J.Apply(r); err != nil {
		return err
	}
	if err := t.K.Apply(r); err != nil {
		return err
	}
	if err := t.L.Apply(r); err != nil {
		return err
	}
	if err := t.M.Apply(r); err != nil {
		return err
	}
	return nil
}

