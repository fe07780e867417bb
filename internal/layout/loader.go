package layout

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/dshills/keybridge/internal/key"
)

// ErrInvalidTable indicates the layout document is not valid JSON or
// not an object.
var ErrInvalidTable = errors.New("invalid layout table")

// LoadFile loads a layout table from a JSON file.
//
// The document is an object keyed by W3C code name, each value holding
// the four produced strings and dead-key flags:
//
//	{
//	  "KeyA": {"value": "a", "withShift": "A"},
//	  "Backquote": {"value": "`", "withShift": "~", "valueIsDeadKey": true}
//	}
//
// Unrecognized code names are skipped with a diagnostic, not an error.
func LoadFile(path string, log logrus.FieldLogger) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout file: %w", err)
	}
	t, err := Parse(data, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse parses a layout table from JSON data. See LoadFile for the
// document shape.
func Parse(data []byte, log logrus.FieldLogger) (*Table, error) {
	if log == nil {
		log = discardLogger()
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidTable)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: top level must be an object", ErrInvalidTable)
	}

	entries := make(map[key.ScanCode]Mapping)
	doc.ForEach(func(name, v gjson.Result) bool {
		sc := key.ScanCodeFromName(name.String())
		if sc == key.ScanNone {
			log.WithField("code", name.String()).Debug("skipping unrecognized key position")
			return true
		}
		entries[sc] = Mapping{
			Value:                   v.Get("value").String(),
			WithShift:               v.Get("withShift").String(),
			WithAltGr:               v.Get("withAltGr").String(),
			WithShiftAltGr:          v.Get("withShiftAltGr").String(),
			ValueIsDeadKey:          v.Get("valueIsDeadKey").Bool(),
			WithShiftIsDeadKey:      v.Get("withShiftIsDeadKey").Bool(),
			WithAltGrIsDeadKey:      v.Get("withAltGrIsDeadKey").Bool(),
			WithShiftAltGrIsDeadKey: v.Get("withShiftAltGrIsDeadKey").Bool(),
		}
		return true
	})

	return NewTable(entries), nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
