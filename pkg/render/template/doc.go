// Package template defines the text template contract used for advisory
// command lines and an adapter backed by pongo2 in the gotemplate
// subpackage.
package template
