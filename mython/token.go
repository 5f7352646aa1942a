package mython

import "fmt"

// Kind identifies the lexical category of a Token.
type Kind int

const (
	KindNumber Kind = iota
	KindID
	KindString
	KindChar

	KindClass
	KindReturn
	KindIf
	KindElse
	KindDef
	KindPrint
	KindAnd
	KindOr
	KindNot
	KindNone
	KindTrue
	KindFalse

	KindNewline
	KindIndent
	KindDedent
	KindEOF

	KindEq
	KindNotEq
	KindLessOrEq
	KindGreaterOrEq
)

var kindNames = map[Kind]string{
	KindNumber:      "Number",
	KindID:          "Id",
	KindString:      "String",
	KindChar:        "Char",
	KindClass:       "Class",
	KindReturn:      "Return",
	KindIf:          "If",
	KindElse:        "Else",
	KindDef:         "Def",
	KindPrint:       "Print",
	KindAnd:         "And",
	KindOr:          "Or",
	KindNot:         "Not",
	KindNone:        "None",
	KindTrue:        "True",
	KindFalse:       "False",
	KindNewline:     "Newline",
	KindIndent:      "Indent",
	KindDedent:      "Dedent",
	KindEOF:         "Eof",
	KindEq:          "Eq",
	KindNotEq:       "NotEq",
	KindLessOrEq:    "LessOrEq",
	KindGreaterOrEq: "GreaterOrEq",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords maps reserved words to their keyword token kind. Anything
// not in this table lexes as KindID.
var keywords = map[string]Kind{
	"class":  KindClass,
	"return": KindReturn,
	"if":     KindIf,
	"else":   KindElse,
	"def":    KindDef,
	"print":  KindPrint,
	"and":    KindAnd,
	"or":     KindOr,
	"not":    KindNot,
	"None":   KindNone,
	"True":   KindTrue,
	"False":  KindFalse,
}

// Token is a tagged value drawn from a closed set of kinds. Only the
// field relevant to Kind is populated: Num for KindNumber, Str for
// KindID/KindString, Ch for KindChar.
type Token struct {
	Kind Kind
	Num  int
	Str  string
	Ch   byte
	Line int
	Col  int
}

// Equal reports whether two tokens carry the same kind and, for
// valued kinds, the same payload. Payload is compared only for the
// four valued token types; otherwise kind alone decides.
func (t Token) Equal(other Token) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case KindNumber:
		return t.Num == other.Num
	case KindID, KindString:
		return t.Str == other.Str
	case KindChar:
		return t.Ch == other.Ch
	default:
		return true
	}
}

// String renders the token as Kind{payload} for valued tokens, bare
// Kind name otherwise.
func (t Token) String() string {
	switch t.Kind {
	case KindNumber:
		return fmt.Sprintf("Number{%d}", t.Num)
	case KindID:
		return fmt.Sprintf("Id{%s}", t.Str)
	case KindString:
		return fmt.Sprintf("String{%s}", t.Str)
	case KindChar:
		return fmt.Sprintf("Char{%c}", t.Ch)
	default:
		return t.Kind.String()
	}
}
