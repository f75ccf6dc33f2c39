package organizations

// CheckPlacement verifies that an organization of the given level may hang
// below parent. parent is nil for a root organization.
func CheckPlacement(level int, parent *Organization) error {
	switch level {
	case LevelDepartment:
		if parent != nil {
			return ErrDepartmentHasParent
		}
	case LevelHeadquarters:
		if parent == nil {
			return ErrMissingHeadquartersParent
		}
		if parent.Level != LevelDepartment {
			return ErrInvalidDepartmentSeq
		}
	case LevelTeam:
		if parent == nil {
			return ErrMissingTeamParent
		}
		if parent.Level != LevelHeadquarters {
			return ErrInvalidHeadquartersSeq
		}
	default:
		return ErrInvalidLevel
	}
	return nil
}

// BuildTree links the flat list into trees and returns the roots in input order.
// Nodes whose parent is not in the list are treated as roots.
func BuildTree(orgs []*Organization) []*Organization {
	bySeq := make(map[uint]*Organization, len(orgs))
	for _, o := range orgs {
		o.Children = nil
		bySeq[o.Seq] = o
	}

	roots := []*Organization{}
	for _, o := range orgs {
		if o.ParentSeq != nil {
			if parent, ok := bySeq[*o.ParentSeq]; ok && parent != o {
				parent.Children = append(parent.Children, o)
				continue
			}
		}
		roots = append(roots, o)
	}
	return roots
}
