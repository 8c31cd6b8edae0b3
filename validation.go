// validation.go
package prefsxml

import "fmt"

// ParseGroups splits the flag arguments that follow the xml path into groups of three.
// Every group is checked before any is returned, so a caller applying the result never
// sees a partially valid list. The first invalid group, scanning left to right, is the
// one reported.
func ParseGroups(args []string) ([]Group, error) {
	groups := make([]Group, 0, len(args)/3)
	for i := 0; i < len(args); i += 3 {
		flag := args[i]
		if _, ok := flagKinds[flag]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFlag, flag)
		}
		if i+2 >= len(args) {
			return nil, fmt.Errorf("%s %w", flag, ErrArity)
		}
		g := Group{Flag: flag, Key: args[i+1], Value: args[i+2]}
		if err := validateEntry(g.Entry()); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func validateEntry(e Entry) error {
	switch e.Kind {
	case StringKind:
	case BoolKind:
		if !isBoolLiteral(e.Value) {
			return fmt.Errorf("%w for %s", ErrInvalidBoolean, e.Key)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidKind, e.Kind)
	}
	return nil
}

// isBoolLiteral accepts exactly the two spellings Android writes; "True" and "1" are rejected.
func isBoolLiteral(v string) bool {
	return v == "true" || v == "false"
}
