package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nodegraph/pkstream/internal/config"
	"github.com/nodegraph/pkstream/pkstream"
)

// parseScalar builds a single scalar Value from a line of stdin input
// for "packctl pack". It is a diagnostic convenience, not a general
// value-tree parser: composite values (list/map/struct) are exercised
// through the library's tests and fixtures, not this CLI.
func parseScalar(raw string) (pkstream.Value, error) {
	text := strings.TrimSpace(raw)
	switch {
	case text == "null":
		return pkstream.Null(), nil
	case text == "true":
		return pkstream.Bool(true), nil
	case text == "false":
		return pkstream.Bool(false), nil
	}

	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return pkstream.IntFromInt64(i), nil
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return pkstream.Float(f), nil
	}
	return pkstream.String(text), nil
}

// render formats an unpacked value tree for display, resolving struct
// signature bytes to names when a config.SignatureNames is available.
func render(v pkstream.Value, names *config.SignatureNames) string {
	switch v.Kind() {
	case pkstream.KindUndefined:
		return "undefined"
	case pkstream.KindNull:
		return "null"
	case pkstream.KindBool:
		b, _ := v.AsBool()
		return strconv.FormatBool(b)
	case pkstream.KindFloat:
		f, _ := v.AsFloat()
		return strconv.FormatFloat(f, 'g', -1, 64)
	case pkstream.KindInt:
		i, _ := v.AsInt()
		return strconv.FormatInt(i.Int64(), 10)
	case pkstream.KindString:
		s, _ := v.AsString()
		return strconv.Quote(s)
	case pkstream.KindList:
		elems, _ := v.AsList()
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = render(e, names)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case pkstream.KindMap:
		entries, _ := v.AsMap()
		parts := make([]string, len(entries))
		for i, e := range entries {
			parts[i] = fmt.Sprintf("%s: %s", strconv.Quote(e.Key), render(e.Value, names))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case pkstream.KindStruct:
		s, _ := v.AsStruct()
		label := fmt.Sprintf("0x%02X", s.Signature)
		if name, ok := names.Name(s.Signature); ok {
			label = name
		}
		parts := make([]string, len(s.Fields))
		for i, f := range s.Fields {
			parts[i] = render(f, names)
		}
		return fmt.Sprintf("%s(%s)", label, strings.Join(parts, ", "))
	default:
		return fmt.Sprintf("<%s>", v.Kind())
	}
}
