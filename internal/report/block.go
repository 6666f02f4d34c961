// Package report renders statistics as plain-text blocks and writes them to a sink.
package report

import (
	"strings"
)

const separatorWidth = 50

// Block is one report section: a header, a separator, then one line per ranked entry.
type Block struct {
	Header string
	Lines  []string
}

// Render returns the block exactly as it is written to the report file.
func (b Block) Render() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(b.Header)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", separatorWidth))
	sb.WriteString("\n")
	for _, line := range b.Lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
