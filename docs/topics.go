// Package docs embeds the documentation shown by the topic command.
package docs

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.md
var content embed.FS

// GetTopic returns the raw markdown of a single topic.
func GetTopic(topic string) (string, error) {
	data, err := content.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(data), nil
}

// GetTopics concatenates the requested topics in the given order. A "*"
// entry stands for every topic except the readme.
func GetTopics(names ...string) (string, error) {
	var expanded []string
	for _, name := range names {
		if name != "*" {
			expanded = append(expanded, name)
			continue
		}
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		expanded = append(expanded, all...)
	}

	var b strings.Builder
	for _, name := range expanded {
		topic, err := GetTopic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(topic)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics lists every embedded topic in alphabetical order. The readme
// is the index, not a topic, so it is left out.
func GetAllTopics() ([]string, error) {
	entries, err := content.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name != "readme" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
