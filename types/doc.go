// Package types provides time helpers shared by the board and the interchange
// codecs: lenient parsing of user supplied timestamps, conversion of
// "yyyy-MM-dd HH:mm:ss" style patterns to Go layouts, and calendar date
// formatting.
package types
