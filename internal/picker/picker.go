package picker

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/manifoldco/promptui"

	"github.com/bwx-cli/bwx/internal/bw"
	kerrors "github.com/bwx-cli/bwx/internal/errors"
)

// FuzzyMatch reports whether input matches candidate as a case-insensitive
// subsequence. Spaces in the input are ignored, so "gh oct" matches
// "GitHub octocat". An empty input matches everything.
func FuzzyMatch(input, candidate string) bool {
	haystack := []rune(strings.ToLower(candidate))
	pos := 0

	for _, r := range strings.ToLower(input) {
		if unicode.IsSpace(r) {
			continue
		}
		found := false
		for pos < len(haystack) {
			if haystack[pos] == r {
				found = true
				pos++
				break
			}
			pos++
		}
		if !found {
			return false
		}
	}
	return true
}

// Resolve narrows a list of matched items down to exactly one:
//
//   - no items: ErrItemNotFound
//   - one item: that item
//   - several, one of which matches the query name exactly
//     (case-insensitive): that item
//   - several, interactive terminal: the fuzzy picker
//   - several, non-interactive: ErrAmbiguousItem listing the candidates
func Resolve(items []bw.Item, query string, interactive bool) (*bw.Item, error) {
	switch len(items) {
	case 0:
		return nil, fmt.Errorf("%w: %q", kerrors.ErrItemNotFound, query)
	case 1:
		return &items[0], nil
	}

	if exact := exactNameMatch(items, query); exact != nil {
		return exact, nil
	}

	if !interactive {
		return nil, fmt.Errorf("%w: %q matches %s", kerrors.ErrAmbiguousItem, query, candidateList(items))
	}

	return Pick(items)
}

// Pick runs the interactive fuzzy picker over the given items.
func Pick(items []bw.Item) (*bw.Item, error) {
	prompt := promptui.Select{
		Label:             "Select item",
		Items:             items,
		Size:              10,
		StartInSearchMode: true,
		Searcher: func(input string, index int) bool {
			return FuzzyMatch(input, items[index].SearchText())
		},
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . }}:",
			Active:   "▸ {{ .Name | cyan }} {{ .Username | faint }}",
			Inactive: "  {{ .Name }} {{ .Username | faint }}",
			Selected: "{{ .Name }}",
		},
	}

	index, _, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return nil, fmt.Errorf("selection cancelled")
		}
		return nil, fmt.Errorf("selection failed: %w", err)
	}

	return &items[index], nil
}

// exactNameMatch returns the single item whose name equals query
// case-insensitively, or nil if there is no unique exact match.
func exactNameMatch(items []bw.Item, query string) *bw.Item {
	var match *bw.Item
	for i := range items {
		if strings.EqualFold(items[i].Name, query) {
			if match != nil {
				return nil
			}
			match = &items[i]
		}
	}
	return match
}

func candidateList(items []bw.Item) string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		name := item.Name
		if username := item.Username(); username != "" {
			name += " (" + username + ")"
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}
