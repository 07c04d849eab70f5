package enum

// ProduceType represents the fixed set of produce categories traded by the business
type ProduceType string

const (
	ProduceTypeBeans      ProduceType = "Beans"
	ProduceTypeGrainMaize ProduceType = "Grain Maize"
	ProduceTypeCowPeas    ProduceType = "Cow Peas"
	ProduceTypeGNuts      ProduceType = "G-nuts"
	ProduceTypeSoybeans   ProduceType = "Soybeans"
)

// ProduceTypes returns all known produce types
func ProduceTypes() []ProduceType {
	return []ProduceType{
		ProduceTypeBeans,
		ProduceTypeGrainMaize,
		ProduceTypeCowPeas,
		ProduceTypeGNuts,
		ProduceTypeSoybeans,
	}
}

// IsValid reports whether the type is a known produce category
func (t ProduceType) IsValid() bool {
	switch t {
	case ProduceTypeBeans, ProduceTypeGrainMaize, ProduceTypeCowPeas, ProduceTypeGNuts, ProduceTypeSoybeans:
		return true
	}
	return false
}

func (t ProduceType) String() string {
	return string(t)
}
