package tlgen

// Unit is one logical section of the output
type Unit int

const (
	UnitTypes Unit = iota + 1
	UnitEnums
	UnitFunctions
)

// Units lists every unit in output order
var Units = []Unit{UnitTypes, UnitEnums, UnitFunctions}

func (u Unit) String() string {
	switch u {
	case UnitTypes:
		return "types"
	case UnitEnums:
		return "enums"
	case UnitFunctions:
		return "functions"
	default:
		return "invalid"
	}
}

// Backend renders a built Generation in one target language
type Backend interface {
	// Language returns the target name, e.g. "go"
	Language() string
	// FileExtension returns the extension of generated files without the dot
	FileExtension() string
	// Naming returns the identifier rules of the language
	Naming() Naming
	// DeclareGroup issues the language-specific names of a union, such as
	// decoder functions or variant names. Called during Building only.
	DeclareGroup(g *Generation, group *VariantGroup) error
	// Render produces a complete source file holding units in order.
	// Split is set when each unit goes to its own file.
	Render(g *Generation, units []Unit, split bool) ([]byte, error)
}

// File is one generated output file
type File struct {
	Name    string
	Unit    Unit
	Content []byte
}
