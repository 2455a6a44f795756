package prompter

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// PromptString prompts user for a string input
func PromptString(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// PromptPassword prompts user for a password (hidden input)
func PromptPassword(label string) (string, error) {
	fmt.Print(label)

	bytepw, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}

	fmt.Println()

	return string(bytepw), nil
}

// PromptConfirm prompts user for yes/no confirmation
func PromptConfirm(label string) (bool, error) {
	fmt.Print(label + " (y/n) ")
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}

	response := strings.TrimSpace(strings.ToLower(input))
	return response == "y" || response == "yes", nil
}

// PromptSelect prompts user to select from options
func PromptSelect(label string, options []string) (int, error) {
	fmt.Println(label)
	for i, opt := range options {
		fmt.Printf("%d) %s\n", i+1, opt)
	}

	fmt.Print("Select option: ")
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return -1, err
	}

	input = strings.TrimSpace(input)

	var selection int
	_, err = fmt.Sscanf(input, "%d", &selection)
	if err != nil {
		return -1, err
	}

	if selection < 1 || selection > len(options) {
		return -1, fmt.Errorf("invalid selection")
	}

	return selection - 1, nil
}

// PromptTagSet builds a tag set incrementally from a list of suggestions.
// Picking "Other" switches to free-text entry; "Done" finishes. Duplicate
// tags are ignored.
func PromptTagSet(label string, suggestions []string) ([]string, error) {
	options := make([]string, 0, len(suggestions)+2)
	options = append(options, suggestions...)
	options = append(options, "Other", "Done")

	var tags []string
	seen := make(map[string]bool)

	for {
		header := label
		if len(tags) > 0 {
			header = fmt.Sprintf("%s [%s]", label, strings.Join(tags, ", "))
		}

		choice, err := PromptSelect(header, options)
		if err != nil {
			return nil, err
		}

		var tag string
		switch options[choice] {
		case "Done":
			return tags, nil
		case "Other":
			tag, err = PromptString("Enter custom value: ")
			if err != nil {
				return nil, err
			}
		default:
			tag = options[choice]
		}

		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
}
