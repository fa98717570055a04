package tidy

// Format is the resolved output file format.
type Format string

const (
	// FormatUnspecified inherits the format from the input or output
	// file extension
	FormatUnspecified Format = ""
	// FormatTXT is the plain text format with the .txt extension
	FormatTXT Format = "TXT"
	// FormatROBOT is the plain text format with the .robot extension
	FormatROBOT Format = "ROBOT"
)

// Mode selects which of the three mutually exclusive operations an
// invocation performs.
type Mode int

const (
	// ModeDefault reads one input and writes to one optional output
	// path or to a returned buffer
	ModeDefault Mode = iota
	// ModeInplace rewrites the given files, each replacing itself
	ModeInplace
	// ModeRecursive rewrites every data file under one directory
	ModeRecursive
)

func (m Mode) String() string {
	switch m {
	case ModeInplace:
		return "inplace"
	case ModeRecursive:
		return "recursive"
	default:
		return "default"
	}
}

// OptionSet is the immutable resolved configuration of one invocation.
// It is constructed by the ArgumentValidator exactly once; nothing
// downstream re-derives its values.
type OptionSet struct {
	// Format of the output files
	Format Format

	// PipeSeparated selects pipe cell separators for the plain text
	// output
	PipeSeparated bool

	// SpaceCount is the number of spaces between cells. Zero means
	// the writer default; a validated value is always >= 2.
	SpaceCount int

	// LineSeparator is the literal byte sequence ending output lines,
	// resolved from its symbolic name at validation time.
	LineSeparator string
}
