package csscolor

import (
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/phyten/contrastx/internal/csserr"
)

type token struct {
	typ  css.TokenType
	data string
}

func (t token) is(typ css.TokenType, data string) bool {
	return t.typ == typ && strings.EqualFold(t.data, data)
}

// tokenize lexes text and drops whitespace and comments, which never carry
// meaning inside a color value.
func tokenize(text string) ([]token, error) {
	l := css.NewLexer(parse.NewInputString(text))
	var out []token
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, csserr.NewInvalidSyntax(err.Error())
			}
			return out, nil
		case css.WhitespaceToken, css.CommentToken:
			continue
		case css.BadStringToken, css.BadURLToken:
			return nil, csserr.NewInvalidSyntax(fmt.Sprintf("malformed token %q", data))
		}
		out = append(out, token{typ: tt, data: string(data)})
	}
}

// functionArgs returns the tokens between the opening function token at
// toks[0] and its matching right parenthesis, plus whatever follows it.
func functionArgs(toks []token) (args, rest []token, err error) {
	depth := 1
	for i := 1; i < len(toks); i++ {
		switch toks[i].typ {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth == 0 {
				return toks[1:i], toks[i+1:], nil
			}
		}
	}
	return nil, nil, csserr.NewInvalidSyntax("unclosed function")
}

// splitArgs splits function arguments into channel values and an optional
// alpha. Comma separated input is the legacy syntax, space separated input
// with an optional "/ alpha" is the modern one.
func splitArgs(args []token) (values []token, alpha *token, legacy bool, err error) {
	for _, t := range args {
		if t.typ == css.CommaToken {
			legacy = true
			break
		}
	}
	if legacy {
		expectValue := true
		for _, t := range args {
			if expectValue {
				if t.typ == css.CommaToken {
					return nil, nil, true, csserr.NewInvalidSyntax("unexpected comma")
				}
				values = append(values, t)
			} else if t.typ != css.CommaToken {
				return nil, nil, true, csserr.NewInvalidSyntax(fmt.Sprintf("expected comma, got %q", t.data))
			}
			expectValue = !expectValue
		}
		if expectValue {
			return nil, nil, true, csserr.NewInvalidSyntax("trailing comma")
		}
	} else {
		slash := -1
		for i, t := range args {
			if t.is(css.DelimToken, "/") {
				slash = i
				break
			}
		}
		if slash < 0 {
			values = args
		} else {
			if len(args)-slash-1 != 1 {
				return nil, nil, false, csserr.NewInvalidSyntax("expected a single alpha value after '/'")
			}
			values = args[:slash]
			a := args[slash+1]
			alpha = &a
		}
	}

	switch {
	case len(values) == 4 && legacy:
		a := values[3]
		alpha = &a
		values = values[:3]
	case len(values) != 3:
		return nil, nil, legacy, csserr.NewInvalidSyntax(fmt.Sprintf("expected 3 color components, got %d", len(values)))
	}
	return values, alpha, legacy, nil
}
