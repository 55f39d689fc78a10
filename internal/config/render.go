package config

import (
	"fmt"
	"strings"
)

// RenderDefaultTOML renders a TOML config with defaults from GetConfigOptions.
func RenderDefaultTOML() string {
	var b strings.Builder
	b.WriteString("# flipdeck configuration (TOML)\n\n")

	opts := GetConfigOptions()
	topLevel := make([]ConfigOption, 0, len(opts))
	sections := make(map[string][]ConfigOption)
	sectionOrder := make([]string, 0)

	for _, o := range opts {
		section, key, ok := strings.Cut(o.Key, ".")
		if !ok {
			topLevel = append(topLevel, o)
			continue
		}
		if _, seen := sections[section]; !seen {
			sectionOrder = append(sectionOrder, section)
		}
		sections[section] = append(sections[section], ConfigOption{Key: key, Default: o.Default, Comment: o.Comment})
	}

	for _, o := range topLevel {
		writeTOMLOption(&b, o.Key, o.Default, o.Comment)
	}
	for _, section := range sectionOrder {
		b.WriteString("[" + section + "]\n")
		for _, o := range sections[section] {
			writeTOMLOption(&b, o.Key, o.Default, o.Comment)
		}
	}
	return b.String()
}

func writeTOMLOption(b *strings.Builder, key string, value any, comment string) {
	if comment != "" {
		b.WriteString("# " + comment + "\n")
	}
	switch v := value.(type) {
	case string:
		b.WriteString(fmt.Sprintf("%s = %q\n\n", key, v))
	case bool, int, int64, float64:
		b.WriteString(fmt.Sprintf("%s = %v\n\n", key, v))
	case []string:
		quoted := make([]string, 0, len(v))
		for _, s := range v {
			quoted = append(quoted, fmt.Sprintf("%q", s))
		}
		b.WriteString(fmt.Sprintf("%s = [%s]\n\n", key, strings.Join(quoted, ", ")))
	}
}
