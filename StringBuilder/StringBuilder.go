/*
Package StringBuilder implements a mutable sequence of characters (runes) with positional insertion and deletion.

# Character sequences
Append and Insert take any value that can be read as a sequence of characters:
  - string, []rune, and []byte, decoded as UTF-8: every invalid byte becomes U+FFFD, so such a string doesn't
    come back unchanged from String;
  - *StringBuilder and StringBuilder, whose content is copied by value, so a builder may be inserted into itself;
  - fmt.Stringer;
  - anything else, rendered to its textual form with gods' utils.ToString. Note that a rune is an int32 and is
    rendered as a number there, use AppendRune to add a single character.

# Errors
Every failing call returns before touching the content.
*/
package StringBuilder

import (
	"fmt"
	"iter"
	"unicode/utf8"

	"github.com/emirpasic/gods/utils"
	Go_DS "github.com/g-m-twostay/go-ds"
)

// StringBuilder is a mutable sequence of characters. len(chars) is the character count, the spare capacity of
// chars is reused by later writes.
type StringBuilder struct {
	chars []rune
}

func New() *StringBuilder {
	return &StringBuilder{}
}

// From creates a StringBuilder holding the characters of s. Invalid UTF-8 bytes of s are replaced by U+FFFD, in
// which case String doesn't return s.
func From(s string) *StringBuilder {
	return &StringBuilder{chars: []rune(s)}
}

// charsOf returns the characters of seq. The result may alias the storage of a *StringBuilder argument.
func charsOf(seq any) []rune {
	switch v := seq.(type) {
	case string:
		return []rune(v)
	case []rune:
		return v
	case []byte:
		return []rune(string(v))
	case *StringBuilder:
		if v == nil {
			return nil
		}
		return v.chars
	case StringBuilder:
		return append([]rune(nil), v.chars...)
	case fmt.Stringer:
		return []rune(v.String())
	default:
		return []rune(utils.ToString(v))
	}
}

// Size is the character count.
func (u *StringBuilder) Size() int {
	return len(u.chars)
}

func (u *StringBuilder) Empty() bool {
	return len(u.chars) == 0
}

// Clear the content. The storage is kept for later writes.
// Time: O(1); Space: O(1)
func (u *StringBuilder) Clear() {
	u.chars = u.chars[:0]
}

// Grow makes room for n more characters without reallocating.
func (u *StringBuilder) Grow(n int) {
	if need := len(u.chars) + n; need > cap(u.chars) {
		nc := make([]rune, len(u.chars), max(need, cap(u.chars)*3/2))
		copy(nc, u.chars)
		u.chars = nc
	}
}

func (u *StringBuilder) validateIndex(index int) error {
	if index < 0 || index >= len(u.chars) {
		return &Go_DS.IndexOutOfBoundsError{Index: index, Bound: len(u.chars)}
	}
	return nil
}

// validateIndexEndIncluded also accepts len(u.chars), the position right after the last character.
func (u *StringBuilder) validateIndexEndIncluded(index int) error {
	if index < 0 || index > len(u.chars) {
		return &Go_DS.IndexOutOfBoundsError{Index: index, Bound: len(u.chars) + 1}
	}
	return nil
}

// CharAt index.
// Time: O(1); Space: O(1)
func (u *StringBuilder) CharAt(index int) (rune, error) {
	if err := u.validateIndex(index); err != nil {
		return 0, err
	}
	return u.chars[index], nil
}

// SetCharAt replaces the character at index with char. char must be a valid Unicode code point.
// Time: O(1); Space: O(1)
func (u *StringBuilder) SetCharAt(index int, char rune) error {
	if err := u.validateIndex(index); err != nil {
		return err
	}
	if !utf8.ValidRune(char) {
		return Go_DS.NewIllegalArgumentError("%U is not a valid character.", char)
	}
	u.chars[index] = char
	return nil
}

// DeleteCharAt removes the character at index.
// Time: O(N) worst case; Space: O(1)
func (u *StringBuilder) DeleteCharAt(index int) error {
	if err := u.validateIndex(index); err != nil {
		return err
	}
	return u.Delete(index, index+1)
}

// Delete the characters in [start, end). end is clamped to Size().
// Time: O(N) worst case; Space: O(1)
func (u *StringBuilder) Delete(start, end int) error {
	if err := u.validateIndex(start); err != nil {
		return err
	}
	clamped := min(end, len(u.chars))
	if start > clamped {
		return Go_DS.NewIllegalArgumentError("invalid range [%d, %d). Beginning index must not exceed ending index.", start, end)
	}
	n := copy(u.chars[start:], u.chars[clamped:])
	u.chars = u.chars[:start+n]
	return nil
}

// Append the characters of seq.
// Time: O(S) amortized; Space: O(S) amortized
func (u *StringBuilder) Append(seq any) {
	if src := charsOf(seq); len(src) > 0 {
		u.Grow(len(src))
		u.chars = append(u.chars, src...)
	}
}

// AppendRune appends the single character r.
// Time: O(1) amortized; Space: O(1) amortized
func (u *StringBuilder) AppendRune(r rune) {
	u.Grow(1)
	u.chars = append(u.chars, r)
}

// Insert the characters of seq so that the first of them ends up at index. index==Size() appends.
// Time: O(N+S); Space: O(S) amortized
func (u *StringBuilder) Insert(index int, seq any) error {
	if err := u.validateIndexEndIncluded(index); err != nil {
		return err
	}
	src := charsOf(seq)
	if len(src) == 0 {
		return nil
	}
	if v, ok := seq.(*StringBuilder); ok && v == u {
		src = append([]rune(nil), src...)
	}
	oldLen := len(u.chars)
	u.Grow(len(src))
	u.chars = u.chars[:oldLen+len(src)]
	copy(u.chars[index+len(src):], u.chars[index:oldLen])
	copy(u.chars[index:], src)
	return nil
}

// String materializes the content.
// Time: O(N); Space: O(N)
func (u *StringBuilder) String() string {
	return string(u.chars)
}

// All characters from the first to the last.
func (u *StringBuilder) All() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, c := range u.chars {
			if !yield(c) {
				return
			}
		}
	}
}

// ToArray returns a copy of the characters.
func (u *StringBuilder) ToArray() []rune {
	return Go_DS.ToArray[rune](u)
}
