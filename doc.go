// Package optdoc binds declared command-line options to configuration
// fields, parses argument vectors into them with type-aware coercion, and
// renders end-user documentation for the option set from the same
// declarations.
//
// For example:
//
//	var cfg struct {
//		Verbose  bool
//		MaxCount int
//		Tags     []string
//	}
//	r := optdoc.NewRegistry(optdoc.Program("lookup"))
//	r.Add("Lookup",
//		optdoc.Bool("verbose", &cfg.Verbose).Short('v').Help("enable verbose output"),
//		optdoc.Int("max_count", &cfg.MaxCount).Help("stop after this many matches"),
//		optdoc.Strings("tags", &cfg.Tags).Help("tags to search for"),
//	)
//	rest := optdoc.ParseOrExit(r, os.Args[1:])
//
// Option long names are derived from the declared field identifier with a
// configurable word-separator substitution, so max_count becomes
// --max-count. Booleans accept a bare --verbose form and --verbose=false.
// A literal -- ends option scanning; remaining tokens are returned
// verbatim.
//
// Render produces HTML documentation for the same registry, resolving each
// option's description from a CommentSource (falling back to the declared
// help text), and Splice replaces the sentinel-delimited region of an
// existing document with the rendered block. DocTool packages the two
// behind the -docfile/-outfile/-i/-format/-classdoc/-singledash command
// surface.
package optdoc
