package filter

import (
	"github.com/cdbtrace/invocation-filter/record"
)

// Rules is the raw configuration of a Filter: three ordered lists of
// regular-expression patterns.
type Rules struct {
	Compilers        []string
	SourceFiles      []string
	CancelParameters []string
}

// Filter decides whether an observed invocation is a compiler call and, if
// so, which of its arguments is the source file being compiled. A Filter is
// read-only after construction and safe for concurrent use.
type Filter struct {
	compilers        PatternSet
	sourceFiles      PatternSet
	cancelParameters PatternSet
}

// New compiles the rule patterns into a Filter. Any pattern that fails to
// compile aborts construction.
func New(rules Rules) (*Filter, error) {
	compilers, err := CompilePatterns(rules.Compilers)
	if err != nil {
		return nil, err
	}
	sourceFiles, err := CompilePatterns(rules.SourceFiles)
	if err != nil {
		return nil, err
	}
	cancelParameters, err := CompilePatterns(rules.CancelParameters)
	if err != nil {
		return nil, err
	}
	return &Filter{
		compilers:        compilers,
		sourceFiles:      sourceFiles,
		cancelParameters: cancelParameters,
	}, nil
}

// SourceFile classifies one invocation. It returns the absolute path of the
// source file being compiled, or ok=false if the invocation is not a
// compiler call, names no source file, or is voided by a cancel parameter.
// A negative verdict is a normal outcome, never an error.
//
// The scan visits every argument in order, starting from the program name:
//   - the first argument matching the source_files patterns becomes the
//     candidate, resolved against the invocation's working directory;
//     later source-file matches are ignored
//   - an argument matching the cancel_parameters patterns discards any
//     candidate and stops the scan
//
// The two checks are exclusive per argument: the argument claimed as the
// candidate is not also tested for cancellation.
func (f *Filter) SourceFile(inv record.Invocation) (string, bool) {
	if len(inv.Args) == 0 || !f.compilers.Match(inv.Args[0]) {
		return "", false
	}
	candidate := ""
	found := false
	for _, arg := range inv.Args {
		if !found && f.sourceFiles.Match(arg) {
			candidate = Resolve(arg, inv.Dir)
			found = true
		} else if f.cancelParameters.Match(arg) {
			return "", false
		}
	}
	return candidate, found
}

// Describe returns the compiled pattern counts, for the host's startup
// output.
func (f *Filter) Describe() (compilers, sourceFiles, cancelParameters int) {
	return f.compilers.Len(), f.sourceFiles.Len(), f.cancelParameters.Len()
}
