package app

import "strconv"

// Selection picks which discovered files to plot. Name wins over Index;
// with neither set every file is plotted.
type Selection struct {
	Index *int
	Name  *string
}

// All selects every discovered file.
func All() Selection { return Selection{} }

// ByIndex selects the file at zero-based position i of the sorted file set.
func ByIndex(i int) Selection { return Selection{Index: &i} }

// ByName selects name inside the data directory, whether or not its
// extension is recognised.
func ByName(name string) Selection { return Selection{Name: &name} }

func (s Selection) String() string {
	switch {
	case s.Name != nil:
		return "name=" + *s.Name
	case s.Index != nil:
		return "index=" + strconv.Itoa(*s.Index)
	default:
		return "all"
	}
}
