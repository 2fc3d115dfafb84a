package lattice

// TwoElement is the lattice ⊥ ⊑ ⊤.
type TwoElement bool

const (
	TwoElementBot TwoElement = false
	TwoElementTop TwoElement = true
)

func (TwoElement) Bot() TwoElement {
	return TwoElementBot
}

func (TwoElement) Top() TwoElement {
	return TwoElementTop
}

func (b TwoElement) IsBot() bool {
	return !bool(b)
}

func (b TwoElement) AsBool() bool {
	return bool(b)
}

func (e1 TwoElement) Leq(e2 TwoElement) bool {
	return !bool(e1) || bool(e2)
}

func (e1 TwoElement) Join(e2 TwoElement) TwoElement {
	return e1 || e2
}

func (b TwoElement) String() string {
	if b {
		return colorize.Element("⊤")
	}
	return colorize.Element("⊥")
}

var _ Element[TwoElement] = TwoElementBot
