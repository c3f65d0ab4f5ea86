// Package filler turns a sign template into one filled SVG document per sign.
//
// A template is parsed once and indexed by Inkscape label. Filling clones the
// template, replaces the text of every slot (svg:text elements labelled for
// the trail name or the sign identifier, each holding a single svg:tspan) and
// reveals the direction group whose label is the configured prefix followed by
// the sign's direction code by dropping its style attribute. A direction code
// without a matching group reveals nothing and is not an error.
package filler
