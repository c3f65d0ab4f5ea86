// Package svgdoc wraps an etree document with the Inkscape-aware helpers the
// sign filler needs: namespace resolution, label lookup, child-index paths
// that survive deep copies, and atomic serialization to disk.
package svgdoc
