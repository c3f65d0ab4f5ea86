// Package signs reads sign rows from a delimited table. Each Row keeps every
// column of its record keyed by header name; the three columns the generator
// needs are looked up through Columns and must be present.
package signs
