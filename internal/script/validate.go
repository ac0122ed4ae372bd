package script

import (
	"fmt"
	"strings"

	"github.com/venturecast/venturecast/internal/types"
)

// Validate checks a generated script against quality standards for
// spoken narration: long enough, mostly prose rather than lists, with
// paragraph and sentence structure. A nil result means the script is
// usable.
func Validate(script string, minWords int) error {
	if strings.TrimSpace(script) == "" {
		return types.ErrEmptyScript
	}

	words := len(strings.Fields(script))
	if words < minWords {
		return fmt.Errorf("script too short: %d words, minimum %d", words, minWords)
	}

	lines := strings.Split(script, "\n")
	bulletLines := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if hasBulletPrefix(trimmed) {
			bulletLines++
		}
	}
	if bulletLines*10 > len(lines)*3 { // more than 30% bullet lines
		return fmt.Errorf("script is list-like: %d of %d lines are bullets", bulletLines, len(lines))
	}

	paragraphs := 0
	for _, p := range strings.Split(script, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs++
		}
	}
	if paragraphs < 3 {
		return fmt.Errorf("insufficient paragraph structure: %d paragraphs", paragraphs)
	}

	// Narration should read as sentences, roughly one per 30 words.
	if strings.Count(script, ". ") < words/30 {
		return fmt.Errorf("insufficient sentence structure")
	}

	return nil
}

// hasBulletPrefix reports whether a line starts like a list item.
func hasBulletPrefix(line string) bool {
	for _, prefix := range []string{"-", "*", "•", "1.", "2.", "3."} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
