// Package rootfinder proposes candidate roots for the prefixes of a word.
//
// Finders are combined in a Chain. Each finder is registered with a Policy
// that decides whether later finders are consulted once it handled a prefix.
package rootfinder
