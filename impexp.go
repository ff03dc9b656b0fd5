package nexo

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains functions to handle the import/export format.
// It should remain human readable, a single file, and easy to diff.

// Export writes every collection to 'w' as a single JSON document whose
// properties are the logical storage keys, in their fixed order. Absent
// collections are omitted. Import accepts the same shape, so dumps round
// trip.
func (a *App) Export(w io.Writer) error {
	var doc jsonObjectWriter
	for _, key := range StorageKeys() {
		raw, _, err := a.Store.Get(key)
		if err != nil {
			return err
		}
		doc.Optional(key, json.RawMessage(raw))
	}
	out, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not build export document: %w", err)
	}
	var indented json.RawMessage = out
	pretty, err := json.MarshalIndent(indented, "", "  ")
	if err != nil {
		return err
	}
	if _, err := w.Write(append(pretty, '\n')); err != nil {
		return fmt.Errorf("could not write export: %w", err)
	}
	a.log.Info("collections exported")
	return nil
}

// Import reads a dump from 'r' and loads the collections it holds into the
// store, overwriting whatever is there. The collections are located by a
// JSONPath query per storage key, so a dump wrapped inside an enclosing
// document (a backup tool envelope for instance) imports just the same.
// Keys missing from the dump leave the stored collection untouched.
func (a *App) Import(r io.Reader) error {
	var jobj any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&jobj); err != nil {
		return fmt.Errorf("could not parse import document: %w", err)
	}

	imported := 0
	for _, key := range StorageKeys() {
		jval, err := jsonpath.Get("$."+key, jobj)
		if err != nil {
			// Not at the top level; search the whole document.
			jval, err = jsonpath.Get("$.."+key, jobj)
			if err != nil {
				continue // key absent from this dump
			}
			// because jsonpath is never clear about whether it returns a list
			// of 1 answer, or a single answer: by this call I keep the first
			// one if any
			if jlist, ok := jval.([]any); ok {
				if len(jlist) == 0 {
					continue
				}
				jval = jlist[0]
			}
		}
		raw, err := json.Marshal(jval)
		if err != nil {
			return fmt.Errorf("could not re-encode collection %q: %w", key, err)
		}
		if err := a.Store.Set(key, raw); err != nil {
			return err
		}
		imported++
	}
	a.log.WithField("collections", imported).Info("import finished")
	return nil
}
