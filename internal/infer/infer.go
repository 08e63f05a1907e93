package infer

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dshills/dialfield/internal/engine/buffer"
)

// Between returns the minimal single edit that transforms oldText into
// newText. Identical strings yield a no-op edit. Offsets are rune indices
// to match the buffer package.
func Between(oldText, newText string) buffer.Edit {
	if oldText == newText {
		return buffer.Edit{}
	}

	dmp := diffmatchpatch.New()
	oldRunes := []rune(oldText)
	newRunes := []rune(newText)

	prefix := dmp.DiffCommonPrefix(oldText, newText)
	suffix := dmp.DiffCommonSuffix(oldText, newText)

	// Prefix and suffix may overlap when the edit repeats surrounding
	// text (e.g. "55" -> "555"); cap the suffix so the spans stay
	// disjoint in both strings.
	if max := len(oldRunes) - prefix; suffix > max {
		suffix = max
	}
	if max := len(newRunes) - prefix; suffix > max {
		suffix = max
	}

	return buffer.Edit{
		Range:   buffer.Range{Start: prefix, End: len(oldRunes) - suffix},
		NewText: string(newRunes[prefix : len(newRunes)-suffix]),
	}
}
