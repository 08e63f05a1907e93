// Package infer derives an edit operation from before/after text.
//
// Some hosts report text changes only as (old, new) string pairs with no
// range information. Infer reconstructs the single contiguous replacement
// between the two strings so the pair can be fed through the field's
// normal edit path. The reconstruction trims the longest common prefix
// and suffix via diffmatchpatch; whatever remains is the edit.
package infer
