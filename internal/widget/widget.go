// Package widget holds the embeddable feedback widget served to customer sites.
package widget

import _ "embed"

//go:embed widget.js
var script []byte

// Script returns the widget source.
func Script() []byte {
	return script
}
