package ui

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

type Editor struct{}

func NewEditor() *Editor {
	return &Editor{}
}

// EditTitle lets the user adjust the pull request title. An empty answer is
// allowed: the hosting provider prefills the title on its side.
func (e *Editor) EditTitle(defaultTitle string) (string, error) {
	var title string
	prompt := &survey.Input{
		Message: "Pull request title:",
		Default: defaultTitle,
	}

	if err := survey.AskOne(prompt, &title); err != nil {
		return "", fmt.Errorf("failed to get title: %w", err)
	}

	return title, nil
}

func (e *Editor) EditDescription(defaultDescription string) (string, error) {
	var description string
	prompt := &survey.Multiline{
		Message: "Pull request description:",
		Default: defaultDescription,
	}

	if err := survey.AskOne(prompt, &description); err != nil {
		return "", fmt.Errorf("failed to get description: %w", err)
	}

	return description, nil
}
