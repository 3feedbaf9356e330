package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Unknown marks text the lexer could not classify (stray characters,
	// unterminated strings, malformed numbers). Its text is still spell-checked.
	Unknown Kind = iota
	// EOF marks the end of the source input. It carries the file's trailing trivia.
	EOF
	// File is the pseudo kind of a syntax tree root; the lexer never produces it.
	File

	// Ident represents an identifier token.
	Ident
	// DollarIdent represents a `$name` macro/template variable.
	DollarIdent

	KwFn       // fn
	KwLet      // let
	KwConst    // const
	KwMut      // mut
	KwOwn      // own
	KwIf       // if
	KwElse     // else
	KwWhile    // while
	KwFor      // for
	KwIn       // in
	KwBreak    // break
	KwContinue // continue
	KwReturn   // return
	KwImport   // import
	KwAs       // as
	KwType     // type
	KwContract // contract
	KwTag      // tag
	KwExtern   // extern
	KwPub      // pub
	KwAsync    // async
	KwAwait    // await
	KwCompare  // compare
	KwFinally  // finally
	KwChannel  // channel
	KwSpawn    // spawn
	KwTrue     // true
	KwFalse    // false
	KwSignal   // signal
	KwParallel // parallel
	KwMap      // map
	KwReduce   // reduce
	KwWith     // with
	KwMacro    // macro
	KwPragma   // pragma
	KwTo       // to
	KwHeir     // heir
	KwIs       // is
	KwField    // field
	KwEnum     // enum

	// NothingLit represents the nothing literal token.
	NothingLit
	// IntLit represents the integer literal token.
	IntLit
	// FloatLit represents the float literal token.
	FloatLit
	// StringLit represents a plain "..." string literal, quotes included.
	StringLit
	// FStringStart opens an interpolated string: f"
	FStringStart
	// StringSegment is a literal text run inside an interpolated string.
	StringSegment
	// FStringEnd closes an interpolated string: "
	FStringEnd

	Plus             // +
	Minus            // -
	Star             // *
	Slash            // /
	Percent          // %
	Assign           // =
	PlusAssign       // +=
	MinusAssign      // -=
	StarAssign       // *=
	SlashAssign      // /=
	PercentAssign    // %=
	EqEq             // ==
	Bang             // !
	BangEq           // !=
	Lt               // <
	LtEq             // <=
	Gt               // >
	GtEq             // >=
	Shl              // <<
	Shr              // >>
	Amp              // &
	Pipe             // |
	Caret            // ^
	AndAnd           // &&
	OrOr             // ||
	Question         // ?
	QuestionQuestion // ??
	Colon            // :
	ColonColon       // ::
	ColonAssign      // :=
	Semicolon        // ;
	Comma            // ,
	Dot              // .
	DotDot           // ..
	DotDotEq         // ..=
	DotDotDot        // ...
	Arrow            // ->
	FatArrow         // =>
	LParen           // (
	RParen           // )
	LBrace           // {
	RBrace           // }
	LBracket         // [
	RBracket         // ]
	At               // @
	Underscore       // _

	kindCount
)

var kindNames = [...]string{
	Unknown: "Unknown", EOF: "EOF", File: "File",
	Ident: "Ident", DollarIdent: "DollarIdent",
	KwFn: "KwFn", KwLet: "KwLet", KwConst: "KwConst", KwMut: "KwMut", KwOwn: "KwOwn",
	KwIf: "KwIf", KwElse: "KwElse", KwWhile: "KwWhile", KwFor: "KwFor", KwIn: "KwIn",
	KwBreak: "KwBreak", KwContinue: "KwContinue", KwReturn: "KwReturn", KwImport: "KwImport",
	KwAs: "KwAs", KwType: "KwType", KwContract: "KwContract", KwTag: "KwTag", KwExtern: "KwExtern",
	KwPub: "KwPub", KwAsync: "KwAsync", KwAwait: "KwAwait", KwCompare: "KwCompare",
	KwFinally: "KwFinally", KwChannel: "KwChannel", KwSpawn: "KwSpawn", KwTrue: "KwTrue",
	KwFalse: "KwFalse", KwSignal: "KwSignal", KwParallel: "KwParallel", KwMap: "KwMap",
	KwReduce: "KwReduce", KwWith: "KwWith", KwMacro: "KwMacro", KwPragma: "KwPragma",
	KwTo: "KwTo", KwHeir: "KwHeir", KwIs: "KwIs", KwField: "KwField", KwEnum: "KwEnum",
	NothingLit: "NothingLit", IntLit: "IntLit", FloatLit: "FloatLit", StringLit: "StringLit",
	FStringStart: "FStringStart", StringSegment: "StringSegment", FStringEnd: "FStringEnd",
	Plus: "Plus", Minus: "Minus", Star: "Star", Slash: "Slash", Percent: "Percent",
	Assign: "Assign", PlusAssign: "PlusAssign", MinusAssign: "MinusAssign", StarAssign: "StarAssign",
	SlashAssign: "SlashAssign", PercentAssign: "PercentAssign", EqEq: "EqEq", Bang: "Bang",
	BangEq: "BangEq", Lt: "Lt", LtEq: "LtEq", Gt: "Gt", GtEq: "GtEq", Shl: "Shl", Shr: "Shr",
	Amp: "Amp", Pipe: "Pipe", Caret: "Caret", AndAnd: "AndAnd", OrOr: "OrOr",
	Question: "Question", QuestionQuestion: "QuestionQuestion", Colon: "Colon",
	ColonColon: "ColonColon", ColonAssign: "ColonAssign", Semicolon: "Semicolon", Comma: "Comma",
	Dot: "Dot", DotDot: "DotDot", DotDotEq: "DotDotEq", DotDotDot: "DotDotDot", Arrow: "Arrow",
	FatArrow: "FatArrow", LParen: "LParen", RParen: "RParen", LBrace: "LBrace", RBrace: "RBrace",
	LBracket: "LBracket", RBracket: "RBracket", At: "At", Underscore: "Underscore",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Closer returns the kind that closes a group opened by k.
func (k Kind) Closer() (Kind, bool) {
	switch k {
	case LParen:
		return RParen, true
	case LBrace:
		return RBrace, true
	case LBracket:
		return RBracket, true
	case FStringStart:
		return FStringEnd, true
	default:
		return Unknown, false
	}
}

// IsCloser reports whether k ends a group.
func (k Kind) IsCloser() bool {
	switch k {
	case RParen, RBrace, RBracket, FStringEnd:
		return true
	default:
		return false
	}
}
