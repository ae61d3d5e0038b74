package committypes

// CommitType is one entry of the conventional commit type list offered by the
// type selector.
type CommitType struct {
	Name  string `yaml:"name" validate:"required"`
	Desc  string `yaml:"desc,omitempty"`
	Emoji string `yaml:"emoji,omitempty"`
}

var defaultTypes = []CommitType{
	{Name: "feat", Emoji: "✨", Desc: "Introduces a new feature"},
	{Name: "fix", Emoji: "🚑", Desc: "Fixes a bug"},
	{Name: "chore", Emoji: "🧹", Desc: "Other changes that don't modify src or test files"},
	{Name: "docs", Emoji: "📝", Desc: "Documentation only changes"},
	{Name: "style", Emoji: "💄", Desc: "Code cosmetic changes (formatting, indentation, etc.)"},
	{Name: "refactor", Emoji: "🔨", Desc: "A change that refactors code without adding or removing features"},
	{Name: "perf", Emoji: "🐎", Desc: "A code change that improves performance"},
	{Name: "test", Emoji: "🧪", Desc: "A change that only adds or updates tests"},
	{Name: "ci", Emoji: "🔄", Desc: "Changes to our CI configuration files and scripts"},
	{Name: "revert", Emoji: "🔙", Desc: "Reverts a previous commit"},
	{Name: "release", Emoji: "🔖", Desc: "Releases a new version"},
	{Name: "wip", Emoji: "🚧", Desc: "Work in progress"},
	{Name: "i18n", Emoji: "🌐", Desc: "A change that updates or adds translations (internationalization)"},
}

// Default returns a fresh copy of the built-in commit types.
func Default() []CommitType {
	out := make([]CommitType, len(defaultTypes))
	copy(out, defaultTypes)
	return out
}

// Find returns the type called name.
func Find(types []CommitType, name string) (CommitType, bool) {
	for _, t := range types {
		if t.Name == name {
			return t, true
		}
	}
	return CommitType{}, false
}

// IsValidCommitType reports whether name is one of types.
func IsValidCommitType(types []CommitType, name string) bool {
	_, ok := Find(types, name)
	return ok
}

// Names lists the type names in configuration order.
func Names(types []CommitType) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, t.Name)
	}
	return out
}
