package reader

import (
	"io"
	"io/ioutil"
	"os"
	"strings"
)

// Demo is run when no source is given.
const Demo = `
let x = 10;
let y = 20;
print x + y;
`

// Open returns the source at path. "-" reads standard input and an empty
// path yields the demo program.
func Open(path string) (io.ReadCloser, string, error) {
	switch path {
	case "":
		return ioutil.NopCloser(strings.NewReader(Demo)), "<demo>", nil
	case "-":
		return ioutil.NopCloser(os.Stdin), "<stdin>", nil
	}

	handle, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}

	return handle, path, nil
}

// Inline wraps source text given on the command line.
func Inline(src string) (io.ReadCloser, string) {
	return ioutil.NopCloser(strings.NewReader(src)), "<eval>"
}
