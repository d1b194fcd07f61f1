// Package ui provides semantic text formatting for terminal output.
//
// Formatters degrade gracefully when color is unavailable: NO_COLOR and
// dumb terminals get plain-text decorations (backticks, quotes, parens)
// instead of ANSI codes, so output stays readable in logs and pipes.
package ui
