package editcmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"bookshelf/src/internal/prompt"
	"bookshelf/src/internal/sanitize"
	"bookshelf/src/internal/schema"
	"bookshelf/src/internal/session"
)

// New returns the edit command that displays or updates a book by id.
//
//	shelf edit --id ID-1                      # show
//	shelf edit --id ID-1 --title "New" year=1970
func New(s *session.Session) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "edit --id <id> [field=value ...]",
		Short:              "Show or update a book by id (fields: title, author, isbn, year)",
		DisableFlagParsing: true, // allow --field=value and bare field=value
		RunE:               func(cmd *cobra.Command, args []string) error { return execute(cmd, s, args) },
	}
	return cmd
}

func execute(cmd *cobra.Command, s *session.Session, args []string) error {
	if wantsHelp(args) {
		return cmd.Help()
	}
	globals, args := splitGlobalFlags(args)
	if len(globals) > 0 {
		// Flag parsing is off for edit, so root flags given after it are
		// parsed here and the session is rebuilt from them.
		if err := cmd.Flags().Parse(globals); err != nil { return err }
		if pre := cmd.Root().PersistentPreRunE; pre != nil {
			if err := pre(cmd, args); err != nil { return err }
		}
	}
	id, assignments, err := parseEditArgs(args)
	if err != nil { return err }
	if err := requireID(id); err != nil { return err }
	if err := disallowIDEdits(assignments); err != nil { return err }
	edit, err := compileAssignments(assignments)
	if err != nil { return err }

	c := s.Open()
	b, ok := c.FindByID(id)
	if !ok { return fmt.Errorf("no book found for id %s", id) }
	if len(assignments) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), b.String())
		return err
	}
	edit(b)
	if err := s.Save(c); err != nil {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "warning: catalog was not saved")
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", b.String())
	return err
}

// splitGlobalFlags separates the root command's flags from edit's own args.
func splitGlobalFlags(args []string) (globals, rest []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "-v" || a == "--verbose":
			globals = append(globals, a)
		case a == "-f" || a == "--file" || a == "--config":
			if i+1 < len(args) {
				globals = append(globals, a, args[i+1])
				i++
			} else {
				rest = append(rest, a)
			}
		case strings.HasPrefix(a, "--file=") || strings.HasPrefix(a, "--config="):
			globals = append(globals, a)
		default:
			rest = append(rest, a)
		}
	}
	return globals, rest
}

func wantsHelp(args []string) bool {
	for _, a := range args {
		if a == "-h" || a == "--help" { return true }
	}
	return false
}

func requireID(id string) error { if strings.TrimSpace(id) == "" { return fmt.Errorf("--id <id> is required") }; return nil }

func disallowIDEdits(assignments map[string]string) error {
	for k := range assignments {
		if strings.EqualFold(k, "id") { return fmt.Errorf("editing 'id' is not supported") }
	}
	return nil
}

// compileAssignments validates every assignment up front so that an edit is
// applied either completely or not at all.
func compileAssignments(assignments map[string]string) (func(*schema.Book), error) {
	keys := make([]string, 0, len(assignments))
	for k := range assignments { keys = append(keys, k) }
	sort.Strings(keys)
	var steps []func(*schema.Book)
	for _, k := range keys {
		v := assignments[k]
		switch strings.ToLower(k) {
		case "title":
			steps = append(steps, func(b *schema.Book) { b.Title = v })
		case "author":
			steps = append(steps, func(b *schema.Book) { b.Author = v })
		case "isbn":
			steps = append(steps, func(b *schema.Book) { b.ISBN = v })
		case "year":
			y, err := prompt.Year(v)
			if err != nil { return nil, err }
			steps = append(steps, func(b *schema.Book) { b.Year = y })
		default:
			return nil, fmt.Errorf("unknown field %q (use title, author, isbn, year)", k)
		}
	}
	return func(b *schema.Book) {
		for _, step := range steps { step(b) }
		sanitize.CleanBook(b)
	}, nil
}

func parseEditArgs(args []string) (id string, assigns map[string]string, err error) {
	assigns = map[string]string{}
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--id" {
			if i+1 >= len(args) { return "", nil, fmt.Errorf("--id requires a value") }
			id = args[i+1]
			i++
			continue
		}
		if strings.HasPrefix(a, "--id=") { id = strings.TrimPrefix(a, "--id="); continue }
		if strings.HasPrefix(a, "--") {
			ni, ok := parseFlagAssignment(args, i, assigns)
			if !ok { return "", nil, fmt.Errorf("flag %s requires a value", a) }
			i = ni
			continue
		}
		if !parseBareAssignment(a, assigns) { return "", nil, fmt.Errorf("expected field=value, got %q", a) }
	}
	return id, assigns, nil
}

func parseFlagAssignment(args []string, i int, assigns map[string]string) (int, bool) {
	a := args[i]
	if eq := strings.IndexByte(a, '='); eq > 2 {
		key := strings.TrimSpace(a[2:eq])
		val := a[eq+1:]
		if key != "" { assigns[key] = val; return i, true }
		return i, false
	}
	key := strings.TrimPrefix(a, "--")
	if key != "" && i+1 < len(args) && !strings.HasPrefix(args[i+1], "--") { assigns[key] = args[i+1]; return i + 1, true }
	return i, false
}

func parseBareAssignment(a string, assigns map[string]string) bool {
	if eq := strings.IndexByte(a, '='); eq > 0 {
		key := strings.TrimSpace(a[:eq])
		val := a[eq+1:]
		if key != "" { assigns[key] = val; return true }
	}
	return false
}
