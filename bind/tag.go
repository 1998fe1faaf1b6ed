package bind

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/AnickaBurova/regex-parsers/internal/similar"
	"github.com/AnickaBurova/regex-parsers/rgx"
)

const tagKey = "rgx"

var tagFlags = []string{"borrow", "char", "owned"}

type tag struct {
	group      rgx.Group
	positional bool
	borrow     bool
	char       bool
}

// parseTag reads the rgx tag of f. It reports false for fields that are not
// bound.
func parseTag(f reflect.StructField) (tag, bool, error) {
	raw, ok := f.Tag.Lookup(tagKey)
	if !ok || raw == "-" {
		return tag{}, false, nil
	}

	name, rest, _ := strings.Cut(raw, ",")
	if name == "" {
		name = lowerFirst(f.Name)
	}

	var t tag
	if n, err := strconv.Atoi(name); err == nil {
		if n < 0 {
			return tag{}, false, fmt.Errorf("%w: field %s: negative group %d", ErrTag, f.Name, n)
		}

		t.group = rgx.Pos(n)
		t.positional = true
	} else {
		t.group = rgx.Named(name)
	}

	if rest == "" {
		return t, true, nil
	}

	for flag := range strings.SplitSeq(rest, ",") {
		switch strings.TrimSpace(flag) {
		case "borrow":
			t.borrow = true
		case "owned":
			t.borrow = false
		case "char":
			t.char = true
		case "":
		default:
			return tag{}, false, fmt.Errorf("%w: field %s: unknown flag %q%s",
				ErrTag, f.Name, flag, similar.Hint(flag, tagFlags))
		}
	}

	return t, true, nil
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}
