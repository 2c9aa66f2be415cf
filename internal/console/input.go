package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// errEOF marks the end of input; callers turn it into a cancelled result.
var errEOF = errors.New("end of input")

// readLine reads one line of input without its line ending. A final line
// without a trailing newline is still returned.
func (r *Renderer) readLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", errEOF
			}
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// choose presents a numbered list and returns the chosen item. An empty
// answer keeps current and reports false. Out-of-range answers are asked again.
func (r *Renderer) choose(items []string, current string) (string, bool, error) {
	for i, item := range items {
		marker := " "
		if item == current {
			marker = r.styles.current.Render("*")
		}
		fmt.Fprintf(r.out, " %s %d) %s\n", marker, i+1, item)
	}
	for {
		fmt.Fprintf(r.out, "Enter number [1-%d]: ", len(items))
		line, err := r.readLine()
		if err != nil {
			return "", false, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return current, false, nil
		}
		num, err := strconv.Atoi(line)
		if err != nil || num < 1 || num > len(items) {
			fmt.Fprintln(r.out, r.styles.feedback.Render(fmt.Sprintf("Invalid selection %q: choose 1-%d", line, len(items))))
			continue
		}
		return items[num-1], true, nil
	}
}

// confirm asks a yes/no question. An empty answer accepts.
func (r *Renderer) confirm(question string) (bool, error) {
	for {
		fmt.Fprintf(r.out, "%s [Y/n]: ", question)
		line, err := r.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "", "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}
