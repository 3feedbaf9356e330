package diagfmt

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"sgspell/internal/diag"
	"sgspell/internal/source"
)

// Msgpack writes the same document as JSON in MessagePack encoding, keyed by
// the json field names.
func Msgpack(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("json")
	enc.SetOmitEmpty(true)
	return enc.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}

// DecodeMsgpack reads a document written by Msgpack.
func DecodeMsgpack(r io.Reader) (DiagnosticsOutput, error) {
	var out DiagnosticsOutput
	dec := msgpack.NewDecoder(r)
	dec.SetCustomStructTag("json")
	err := dec.Decode(&out)
	return out, err
}
