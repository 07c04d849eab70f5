package enum

// Branch represents one of the two physical business locations
type Branch string

const (
	BranchMaganjo Branch = "Maganjo"
	BranchMatugga Branch = "Matugga"
)

// Branches returns all known branches
func Branches() []Branch {
	return []Branch{BranchMaganjo, BranchMatugga}
}

// IsValid reports whether the branch is a known location
func (b Branch) IsValid() bool {
	switch b {
	case BranchMaganjo, BranchMatugga:
		return true
	}
	return false
}

func (b Branch) String() string {
	return string(b)
}
