package loader

import (
	"fmt"
	"io"

	"github.com/woozymasta/simpak/internal/registry"
	"github.com/woozymasta/simpak/internal/xref"
)

// Report is the post-load summary shown to the user.
type Report struct {
	Doubled    []registry.Doubled `json:"doubled,omitempty"`
	Unresolved []xref.Key         `json:"unresolved,omitempty"`
	Severe     []string           `json:"severe,omitempty"`
	Visual     []string           `json:"visual,omitempty"`
}

// Report builds the summary of the session.
func (s *Session) Report() Report {
	return Report{
		Doubled:    s.env.Reg.Doubled(),
		Unresolved: s.unresolved,
		Severe:     s.missing.Severe(),
		Visual:     s.missing.Visual(),
	}
}

// Empty reports whether there is nothing to show.
func (r Report) Empty() bool {
	return len(r.Doubled) == 0 && len(r.Unresolved) == 0 && len(r.Severe) == 0 && len(r.Visual) == 0
}

// Write prints the report as plain text.
func (r Report) Write(w io.Writer) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	if len(r.Doubled) > 0 {
		printf("doubled objects: %d\n", len(r.Doubled))
		for _, d := range r.Doubled {
			printf("  %s %s\n", d.Type, d.Name)
		}
	}

	if len(r.Unresolved) > 0 {
		printf("unresolved references: %d\n", len(r.Unresolved))
		for _, k := range r.Unresolved {
			printf("  %s\n", k)
		}
	}

	if len(r.Severe) > 0 {
		printf("missing objects, may cause severe errors:\n")
		for _, name := range r.Severe {
			printf("  %s\n", name)
		}
	}

	if len(r.Visual) > 0 {
		printf("missing objects, may cause visual errors:\n")
		for _, name := range r.Visual {
			printf("  %s\n", name)
		}
	}

	return err
}
