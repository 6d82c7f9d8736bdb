package cli

import (
	"fmt"
	"io"
	"strings"
)

// Flags that take a value. The spelling is the one used on the command line.
var valueFlags = map[string]bool{
	"dataType":    true,
	"sortingType": true,
	"inputFile":   true,
	"outputFile":  true,
	"format":      true,
	"encoding":    true,
	"logLevel":    true,
}

var boolFlags = map[string]bool{
	"stats": true,
	"help":  true,
	"h":     true,
}

// Value flags that cannot be given without a value.
var requiredValue = map[string]string{
	"dataType":    "No data type defined!",
	"sortingType": "No sorting type defined!",
}

// splitFlag returns the name and the inline value of a "-name", "--name" or
// "-name=value" argument. name is empty when arg is not a flag.
func splitFlag(arg string) (name, value string, hasValue bool) {
	if !isFlag(arg) {
		return "", "", false
	}

	trimmed := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	name, value, hasValue = strings.Cut(trimmed, "=")
	return name, value, hasValue
}

func isFlag(arg string) bool {
	return len(arg) > 1 && arg[0] == '-' && arg != "--"
}

func warnSkipped(w io.Writer, arg string) {
	fmt.Fprintf(w, "\"%s\" is not a valid parameter. It will be skipped.\n", arg)
}

// normalizeArgs rewrites the single dash spelling accepted on the command
// line into the "--name=value" form understood by kong. Unknown flags and
// positional arguments are reported on warnings and dropped.
func normalizeArgs(args []string, warnings io.Writer) ([]string, error) {
	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := splitFlag(arg)

		switch {
		case boolFlags[name]:
			if name == "h" {
				name = "help"
			}
			if hasValue {
				out = append(out, "--"+name+"="+value)
			} else {
				out = append(out, "--"+name)
			}

		case valueFlags[name]:
			if !hasValue && i+1 < len(args) && !isFlag(args[i+1]) {
				i++
				value, hasValue = args[i], true
			}
			if !hasValue {
				if msg, ok := requiredValue[name]; ok {
					return nil, usageError(msg)
				}
				// optional value flags given without a value count as absent
				continue
			}
			out = append(out, "--"+name+"="+value)

		default:
			warnSkipped(warnings, arg)
		}
	}

	return out, nil
}
