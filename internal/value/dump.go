package value

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
)

// isCompound reports whether t's textual form recurses into children and
// is therefore subject to depth abbreviation.
func isCompound(t Tag) bool {
	switch t {
	case TagTuple, TagList, TagMap, TagErr, TagTagged:
		return true
	default:
		return false
	}
}

// Dump writes the canonical textual form of v to w at the given depth.
// depth == 0 abbreviates compound values as "(...)" / "{...}" / "[...]" /
// "error(...)" / "@name(...)"; otherwise children are printed recursively
// at depth-1. Panics if v is an iterator — dumping one is a programming
// error (§4.1), not a runtime error.
func Dump(w io.Writer, v Value, depth int) error {
	s, err := dumpString(v, depth)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)

	return err
}

// DumpString is Dump rendered to a string, the common case for error
// messages, REPL echoing, and tests.
func DumpString(v Value, depth int) string {
	s, err := dumpString(v, depth)
	if err != nil {
		// dumpString only errors on malformed input we construct
		// ourselves; treat as a programming error.
		panic(err)
	}

	return s
}

func dumpString(v Value, depth int) (string, error) {
	t := v.tag()
	if t == TagIterator {
		panic("value: dump of an iterator is a programming error")
	}

	if depth == 0 && isCompound(t) {
		switch t {
		case TagTuple:
			return "(...)", nil
		case TagList:
			return "[...]", nil
		case TagMap:
			return "{...}", nil
		case TagErr:
			return "error(...)", nil
		case TagTagged:
			tg := v.(*Tagged)

			return fmt.Sprintf("@%s(...)", tg.Name), nil
		}
	}

	switch x := v.(type) {
	case *noneValue:
		return "none", nil
	case *boolValue:
		return strconv.FormatBool(x.v), nil
	case *Int:
		return strconv.FormatInt(x.V, 10), nil
	case *Num:
		return strconv.FormatFloat(x.V, 'g', -1, 64), nil
	case *Str:
		return quoteStr(x.V), nil
	case *Range:
		return fmt.Sprintf("%d:%d:%d", x.Start, x.End, x.Step), nil
	case *Tuple:
		parts := make([]string, len(x.Elems))
		for i, e := range x.Elems {
			s, err := dumpString(e, depth-1)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}

		return "(" + strings.Join(parts, ", ") + ")", nil
	case *List:
		parts := make([]string, len(x.Elems))
		for i, e := range x.Elems {
			s, err := dumpString(e, depth-1)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}

		return "[" + strings.Join(parts, ", ") + "]", nil
	case *Map:
		entries := x.Entries()
		parts := make([]string, len(entries))
		for i, e := range entries {
			ks, err := dumpString(e.Key, depth-1)
			if err != nil {
				return "", err
			}
			vs, err := dumpString(e.Val, depth-1)
			if err != nil {
				return "", err
			}
			parts[i] = ks + ": " + vs
		}

		return "{" + strings.Join(parts, ", ") + "}", nil
	case *Err:
		s, err := dumpString(x.Payload, depth-1)
		if err != nil {
			return "", err
		}

		return "error(" + s + ")", nil
	case *Tagged:
		s, err := dumpString(x.Val, depth-1)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("@%s(%s)", x.Name, s), nil
	case *Func:
		return fmt.Sprintf("fn(%d)@0x%X[%d]", x.ArgCount, x.Offset, len(x.Captures)), nil
	case *Native:
		addr := reflect.ValueOf(x).Pointer()

		return fmt.Sprintf("native(%d)@0x%X", x.ArgCount, addr), nil
	default:
		return "", fmt.Errorf("value: dump of unknown value kind %T", v)
	}
}

// quoteStr renders s as an ember string literal: \n \t \r \' \" are used as
// named escapes; any other control byte is printed as \xHH (two lowercase
// hex digits).
func quoteStr(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\'':
			b.WriteString(`\'`)
		case '"':
			b.WriteString(`\"`)
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')

	return b.String()
}
