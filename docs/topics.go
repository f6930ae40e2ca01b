// Package docs holds the hv documentation topics, embedded in the binary.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var files embed.FS

// Readme is the index topic: it lists the other topics.
const Readme = "readme"

// All stands for every topic, in alphabetical order.
const All = "*"

// Topics returns the names of the topics, without the readme, sorted.
func Topics() []string {
	names, _ := fs.Glob(files, "*.md") // the pattern is valid
	var topics []string
	for _, name := range names {
		topic := strings.TrimSuffix(name, ".md")
		if topic != Readme {
			topics = append(topics, topic)
		}
	}
	slices.Sort(topics)
	return topics
}

// Names returns every name accepted by Get.
func Names() []string {
	return append([]string{Readme, All}, Topics()...)
}

// Get returns the content of the named topics, separated by an empty line.
// Without names, it returns the readme. All expands to every topic.
func Get(names ...string) (string, error) {
	if len(names) == 0 {
		names = []string{Readme}
	}
	var b strings.Builder
	for _, name := range names {
		topics := []string{name}
		if name == All {
			topics = Topics()
		}
		for _, topic := range topics {
			content, err := files.ReadFile(topic + ".md")
			if err != nil {
				return "", fmt.Errorf("topic %q not found, try one of %s", topic, strings.Join(Names(), ", "))
			}
			b.Write(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
