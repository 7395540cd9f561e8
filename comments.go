package optdoc

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
)

// CommentMap is a CommentSource backed by a plain map: field comments are
// keyed "Owner.field", type comments "Owner".
type CommentMap map[string]string

func (m CommentMap) FieldComment(owner, field string) string {
	return m[owner+"."+field]
}

func (m CommentMap) TypeComment(owner string) string {
	return m[owner]
}

// ParseGoComments extracts struct type and field doc comments from a Go
// source file into a CommentMap. Field comments are keyed by the struct
// type name and the field identifier, so they line up with options whose
// declared field names match the Go fields.
func ParseGoComments(path string) (CommentMap, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	m := CommentMap{}
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				continue
			}
			name := typeSpec.Name.Name
			if doc := typeSpec.Doc; doc != nil {
				m[name] = strings.TrimSpace(doc.Text())
			} else if genDecl.Doc != nil {
				m[name] = strings.TrimSpace(genDecl.Doc.Text())
			}
			for _, field := range structType.Fields.List {
				if field.Doc == nil {
					continue
				}
				text := strings.TrimSpace(field.Doc.Text())
				for _, ident := range field.Names {
					m[name+"."+ident.Name] = text
				}
			}
		}
	}
	return m, nil
}
