// Package config loads diagnostic-only settings for the packctl CLI.
// It is never consulted by the codec's Packer or Unpacker; a
// structure decodes identically whether or not a name is known for
// its signature.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// SignatureNames maps structure signature bytes to human-readable
// names, for display purposes only.
type SignatureNames struct {
	names map[uint8]string
}

// signatureNamesFile is the on-disk shape of a signature-names
// config file: comment-tolerant JSON (JSONC) mapping a two-hex-digit
// or decimal signature string to a display name, e.g.
//
//	{
//	  // Nodes and relationships, per the Bolt structure signatures.
//	  "0x4E": "Node",
//	  "0x52": "Relationship",
//	}
type signatureNamesFile map[string]string

// Load reads a JSONC signature-names file from path.
func Load(path string) (*SignatureNames, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes a JSONC signature-names document.
func Parse(raw []byte) (*SignatureNames, error) {
	stripped := jsonc.ToJSON(raw)

	var file signatureNamesFile
	if err := json.Unmarshal(stripped, &file); err != nil {
		return nil, fmt.Errorf("config: parsing signature names: %w", err)
	}

	names := make(map[uint8]string, len(file))
	for key, name := range file {
		sig, err := parseSignatureKey(key)
		if err != nil {
			return nil, err
		}
		names[sig] = name
	}
	return &SignatureNames{names: names}, nil
}

func parseSignatureKey(key string) (uint8, error) {
	var sig uint
	if _, err := fmt.Sscanf(key, "0x%X", &sig); err != nil {
		if _, err := fmt.Sscanf(key, "%d", &sig); err != nil {
			return 0, fmt.Errorf("config: invalid signature key %q", key)
		}
	}
	if sig > 0xFF {
		return 0, fmt.Errorf("config: signature key %q out of range for a byte", key)
	}
	return uint8(sig), nil
}

// Name returns the display name registered for signature, if any.
func (n *SignatureNames) Name(signature uint8) (string, bool) {
	if n == nil {
		return "", false
	}
	name, ok := n.names[signature]
	return name, ok
}

// Empty returns a SignatureNames with no entries, used as the default
// when packctl is run without --names.
func Empty() *SignatureNames {
	return &SignatureNames{names: map[uint8]string{}}
}
