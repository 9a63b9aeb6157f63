package catalog

import (
	"fmt"
	"strings"
)

// FriendlyName turns a collection id into a title: "go-testing" becomes
// "Go Testing".
func FriendlyName(id string) string {
	words := strings.Split(id, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// Template returns the starter manifest written by new-collection.
func Template(id string) string {
	name := FriendlyName(id)
	tags := strings.Split(id, "-")
	if len(tags) > 3 {
		tags = tags[:3]
	}

	return fmt.Sprintf(`id: %s
name: %s
description: A collection of related prompts, instructions, and chat modes for %s.
tags: [%s] # Add relevant tags
items:
  # Add your collection items here
  # Example:
  # - path: prompts/example.prompt.md
  #   kind: prompt
  # - path: instructions/example.instructions.md
  #   kind: instruction
  # - path: chatmodes/example.chatmode.md
  #   kind: chat-mode
display:
  ordering: alpha # or "manual" to preserve the order above
  show_badge: false # set to true to show collection badge on items
`, id, name, strings.ToLower(name), strings.Join(tags, ", "))
}
