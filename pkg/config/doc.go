// Package config loads generator settings: template labels, table column
// names, the known direction codes, output naming and the companion
// conversion command. Defaults are embedded; user files in JSON or YAML are
// overlaid on top of them.
package config
