package devices

type Printer interface {
	PrintDocument()
}

type Scanner interface {
	ScanDocument()
}

type PrintOnly struct{}

func (PrintOnly) PrintDocument() {}

type Combo struct{}

func (Combo) PrintDocument() {}
func (Combo) ScanDocument()  {}

type Shredder struct{} // satisfies neither — should be pruned
