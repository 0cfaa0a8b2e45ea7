package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Keyer derives cache keys.
type Keyer interface {
	// DiagramKey returns the key of a rendered diagram.
	DiagramKey(modelHash string, opts DiagramKeyOpts) string
}

// DiagramKeyOpts holds the render options that change the cached output.
type DiagramKeyOpts struct {
	// Output is the output wrapper, "text" or "markdown".
	Output string `json:"output"`
	// Title is the markdown heading; ignored for text output.
	Title string `json:"title,omitempty"`
}

// RendererVersion is part of every diagram key. Bump it when the text
// encoding changes so stale entries are never served.
const RendererVersion = 1

// DefaultKeyer produces "diagram:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// DiagramKey returns the key of a rendered diagram.
func (DefaultKeyer) DiagramKey(modelHash string, opts DiagramKeyOpts) string {
	if opts.Output != "markdown" {
		opts.Title = ""
	}
	return hashKey("diagram", RendererVersion, modelHash, opts)
}

// Hash returns the hex SHA-256 of data, used as the model hash.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey returns "<prefix>:<sha256 of the JSON encoded parts>".
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}
