package catalog

// Fill colours for the built-in operators.
const (
	fillPauli    = "#e0245e"
	fillPhase    = "#3b82f6"
	fillHadamard = "#f4c542"
	fillControl  = "#10b981"
	fillMeasure  = "#6b7280"
	fillCustom   = "#8b5cf6"
)

// Built-in operator ids.
const (
	IDHadamard = "H"
	IDPauliX   = "X"
	IDPauliY   = "Y"
	IDPauliZ   = "Z"
	IDPhaseS   = "S"
	IDPhaseT   = "T"
	IDMeasure  = "M"
	IDCNOT     = "CNOT"
	IDSwap     = "SWAP"
	IDToffoli  = "CCX"
	IDBell     = "BELL"
	IDCustom   = "CG"
	IDGHZ      = "GHZ"
)

// DefaultDefs returns the built-in quantum gate definitions.
func DefaultDefs() []OperatorDef {
	return []OperatorDef{
		{ID: IDHadamard, Name: "Hadamard", Width: 1, Height: 1, Fill: fillHadamard},
		{ID: IDPauliX, Name: "Pauli-X", Width: 1, Height: 1, Fill: fillPauli},
		{ID: IDPauliY, Name: "Pauli-Y", Width: 1, Height: 1, Fill: fillPauli},
		{ID: IDPauliZ, Name: "Pauli-Z", Width: 1, Height: 1, Fill: fillPauli},
		{ID: IDPhaseS, Name: "Phase S", Width: 1, Height: 1, Fill: fillPhase},
		{ID: IDPhaseT, Name: "Phase T", Width: 1, Height: 1, Fill: fillPhase},
		{ID: IDMeasure, Name: "Measure", Width: 1, Height: 1, Fill: fillMeasure},
		{ID: IDCNOT, Name: "Controlled NOT", Symbol: "CX", Width: 1, Height: 2, Fill: fillControl},
		{ID: IDSwap, Name: "Swap", Symbol: "SW", Width: 1, Height: 2, Fill: fillControl},
		{ID: IDToffoli, Name: "Toffoli", Width: 1, Height: 3, Fill: fillControl},
		{
			ID: IDBell, Name: "Bell pair", Width: 1, Height: 2, Fill: fillCustom, Composite: true,
			Components: []Component{
				{OperatorID: IDHadamard, X: 0, Y: 0, W: 1, H: 1},
				{OperatorID: IDCNOT, X: 1, Y: 0, W: 1, H: 2},
			},
		},
		{
			ID: IDCustom, Name: "Custom gate", Width: 1, Height: 2, Fill: fillCustom, Composite: true,
			Components: []Component{
				{OperatorID: IDHadamard, X: 0, Y: 0, W: 1, H: 1},
				{OperatorID: IDCNOT, X: 1, Y: 0, W: 1, H: 2},
				{OperatorID: IDPauliZ, X: 2, Y: 1, W: 1, H: 1},
				{OperatorID: IDHadamard, X: 3, Y: 0, W: 1, H: 1},
			},
		},
		{
			ID: IDGHZ, Name: "GHZ state", Width: 1, Height: 3, Fill: fillCustom, Composite: true,
			Components: []Component{
				{OperatorID: IDHadamard, X: 0, Y: 0, W: 1, H: 1},
				{OperatorID: IDCNOT, X: 1, Y: 0, W: 1, H: 2},
				{OperatorID: IDCNOT, X: 2, Y: 1, W: 1, H: 2},
			},
		},
	}
}

// defaultCatalog is built once; the definitions are known to be valid.
var defaultCatalog = MustNew(DefaultDefs()...)

// Default returns the built-in catalog.
func Default() *Catalog { return defaultCatalog }
