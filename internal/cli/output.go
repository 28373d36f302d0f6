package cli

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
)

// sequenceString renders a movement sequence as "50 -> 43 -> 24".
func sequenceString(seq []int) string {
	parts := make([]string, len(seq))
	for i, track := range seq {
		parts[i] = strconv.Itoa(track)
	}
	return strings.Join(parts, " -> ")
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
