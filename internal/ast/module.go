package ast

// Module is one parsed Reef source file.
type Module struct {
	Name     string
	Imports  []Import
	Decls    []Declaration
	Comments []Comment
}

// Import is `import Module` or `import Module as Alias`.
type Import struct {
	Module string
	Alias  string
	Loc    Range
}

// Declaration is a top-level binding: `name param1 param2 = body`.
type Declaration struct {
	Name    string
	NameLoc Range
	Params  []Pattern
	Body    Expr
	Loc     Range
}

// Comment is a line comment, text without the leading `--`.
type Comment struct {
	Text string
	Loc  Range
}
