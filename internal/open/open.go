package open

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Editor picks the configured editor, then $EDITOR, then less.
func Editor(configured string) string {
	if configured != "" {
		return configured
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "less"
}

// OpenAt opens filePath in editor positioned at lineNum.
func OpenAt(editor, filePath string, lineNum int) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file not found: %s", filePath)
	}
	if lineNum < 1 {
		lineNum = 1
	}

	cmd := Command(editor, filePath, lineNum)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func Command(editor, filePath string, lineNum int) *exec.Cmd {
	switch {
	case strings.Contains(editor, "vim") || strings.Contains(editor, "nvim"):
		return exec.Command(editor, fmt.Sprintf("+%d", lineNum), filePath)
	case strings.Contains(editor, "code"):
		return exec.Command(editor, "--goto", filePath+":"+strconv.Itoa(lineNum))
	case strings.Contains(editor, "less"):
		return exec.Command(editor, "+"+strconv.Itoa(lineNum), filePath)
	default:
		return exec.Command(editor, filePath)
	}
}
