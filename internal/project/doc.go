// Package project resolves component identifiers to their declarations.
// Components can be declared explicitly in the changelog configuration or
// discovered from the surrounding Go workspace by scanning for go.mod files.
package project
