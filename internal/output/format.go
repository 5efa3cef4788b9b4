// internal/output/format.go
package output

// Output format names accepted by --output.
const (
	FormatBED   = "bed"
	FormatGFF3  = "gff3"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Formats lists the accepted --output values in help order.
var Formats = []string{FormatBED, FormatGFF3, FormatJSON, FormatJSONL}

// KnownFormat reports whether name is a supported output format.
func KnownFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}
