package nanopipe

import (
	"path/filepath"
	"regexp"
	"strconv"
)

// Barcode identifies the sample a demultiplexed BAM belongs to.
type Barcode struct {
	Label string // token as it appears in the file name, e.g. "barcode01".
	Index int    // numeric part of the token.
}

var barcodeRegexp = regexp.MustCompile(`barcode(\d+)`)

// ParseBarcode extracts the barcode token from a file name. The
// demultiplexer prefixes its outputs with run and kit names, so the last
// match wins. It reports false for names without a token, such as the
// demultiplexer's unclassified output.
func ParseBarcode(name string) (Barcode, bool) {
	matches := barcodeRegexp.FindAllStringSubmatch(filepath.Base(name), -1)
	if len(matches) == 0 {
		return Barcode{}, false
	}
	m := matches[len(matches)-1]
	index, err := strconv.Atoi(m[1])
	if err != nil {
		return Barcode{}, false
	}
	return Barcode{Label: m[0], Index: index}, true
}
