package engine

// Static candidate tables, one per command state. The tables mirror the
// tool's own CLI: global flags, subcommand names with their aliases, and
// the positional placeholder labels shown while an argument slot is open.

// Subcommands lists the tool's subcommand names, aliases included, in
// help order.
var Subcommands = []string{
	"scan",
	"read-uint8", "readb",
	"read-uint16", "readh",
	"read-uint32", "readw",
	"read-bytes", "reada",
	"read-bytes-multiple", "readm",
	"read-reg",
	"write-uint8", "writeb",
	"write-uint16", "writeh",
	"write-uint32", "writew",
	"write-bytes", "writea",
	"write-bytes-multiple", "writem",
	"write-reg",
	"list-models",
	"list-registers",
	"help",
}

// globalFlags are accepted before any subcommand.
var globalFlags = []string{
	"-h", "--help",
	"-V", "--version",
	"-f", "--force",
	"-d", "--debug",
	"-p", "--port",
	"-b", "--baudrate",
	"-r", "--retries",
	"-j", "--json",
	"-P", "--protocol",
}

// helpFlags are accepted by every subcommand.
var helpFlags = []string{"-h", "--help"}

// syncFlags select sync read/write on the commands that support it.
var syncFlags = []string{"-s", "--sync"}

// pathValueFlags are the flags whose value completes like a filesystem
// path (the port device foremost; the numeric ones inherit the behavior
// from the original contract).
var pathValueFlags = map[string]bool{
	"-p": true, "--port": true,
	"-b": true, "--baudrate": true,
	"-r": true, "--retries": true,
	"-P": true, "--protocol": true,
}

// optionTables maps each recognized state to its static candidates.
// Unrecognized compound states have no entry and resolve to nothing.
var optionTables = map[string][]string{
	StateRoot:               join(globalFlags, Subcommands),
	StateListModels:         helpFlags,
	StateListRegisters:      join(helpFlags, []string{"<MODEL>"}),
	StateScan:               join(helpFlags, []string{"<SCAN_START>", "<SCAN_END>"}),
	StateReadUint8:          join(helpFlags, []string{"<IDS>", "<ADDRESS>"}),
	StateReadUint16:         join(helpFlags, []string{"<IDS>", "<ADDRESS>"}),
	StateReadUint32:         join(helpFlags, []string{"<IDS>", "<ADDRESS>"}),
	StateReadBytes:          join(helpFlags, []string{"<IDS>", "<ADDRESS>", "<COUNT>"}),
	StateReadBytesMultiple:  join(helpFlags, []string{"<SPECS>..."}),
	StateReadReg:            join(helpFlags, []string{"<IDS>", "<REG>"}),
	StateWriteUint8:         join(helpFlags, syncFlags, []string{"<IDS>", "<ADDRESS>", "<VALUE>..."}),
	StateWriteUint16:        join(helpFlags, syncFlags, []string{"<IDS>", "<ADDRESS>", "<VALUE>..."}),
	StateWriteUint32:        join(helpFlags, syncFlags, []string{"<IDS>", "<ADDRESS>", "<VALUE>..."}),
	StateWriteBytes:         join(helpFlags, []string{"<IDS>", "<ADDRESS>", "<VALUES>..."}),
	StateWriteBytesMultiple: join(helpFlags, []string{"<SPECS>..."}),
	StateWriteReg:           join(helpFlags, []string{"<IDS>", "<REG>", "<VALUE>"}),
	StateHelp:               Subcommands,
}

// OptionTable returns the static candidates for a state, or nil when the
// state is not a recognized label.
func OptionTable(state string) []string {
	return optionTables[state]
}

func join(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
