package config

import "github.com/knadh/koanf/v2"

// GetDefaults returns the default configuration values as koanf keys.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"scheme":          "semver",
		"tag_prefix":      "v",
		"include_hash":    true,
		"ignore_patterns": []string{},
		"strict":          false,
	}
}

func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// GetDefaultConfigTemplate returns a fully commented config template that
// helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# nextver configuration
# Priority: environment (NEXTVER_*) > .nextver.yml > ~/.config/nextver/config.yml

scheme: semver            # Versioning scheme: semver | calver
tag_prefix: v             # Prefix on release tags (e.g. v1.2.3)
include_hash: true        # Append short commit hashes to changelog entries
strict: false             # Fail on non-conventional commits
ignore_patterns: []       # Substrings; matching commits are skipped
#  - "[skip release]"
#  - "wip:"
`
}
