package ranking

// synonymGroups lists skills that count as matches for each other. Groups are
// bidirectional: any two members of the same group are equivalent.
var synonymGroups = [][]string{
	{"javascript", "js", "node.js", "nodejs"},
	{"typescript", "ts"},
	{"react", "react.js", "reactjs"},
	{"vue", "vue.js", "vuejs"},
	{"machine learning", "ml", "ai"},
	{"artificial intelligence", "ai", "ml"},
	{"kubernetes", "k8s"},
	{"postgresql", "postgres"},
	{"amazon web services", "aws"},
	{"google cloud platform", "gcp"},
	{"continuous integration", "ci", "ci/cd"},
	{"user experience", "ux", "ui/ux"},
	{"user interface", "ui", "ui/ux"},
}

// synonymIndex maps each skill to the set of skills it is synonymous with.
var synonymIndex = func() map[string]map[string]struct{} {
	index := make(map[string]map[string]struct{})
	for _, group := range synonymGroups {
		for _, a := range group {
			if index[a] == nil {
				index[a] = make(map[string]struct{})
			}
			for _, b := range group {
				if a != b {
					index[a][b] = struct{}{}
				}
			}
		}
	}
	return index
}()

// synonymMatch reports whether two normalized skills appear together in the
// synonym table.
func synonymMatch(a, b string) bool {
	peers, ok := synonymIndex[a]
	if !ok {
		return false
	}
	_, ok = peers[b]
	return ok
}
