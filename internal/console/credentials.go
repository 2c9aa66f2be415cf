package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bundlekit/bundlekit/internal/result"
)

// SelectCredentialSet implements credentials.Prompter. An empty answer or
// the end of input dismisses the menu. With no names there is nothing to
// pick and the prompt is dismissed immediately.
func (r *Renderer) SelectCredentialSet(ctx context.Context, prompt string, names []string) (result.Result[string], error) {
	if err := ctx.Err(); err != nil {
		return result.Cancelled[string](), err
	}
	fmt.Fprintln(r.out, r.styles.title.Render(prompt))
	if len(names) == 0 {
		fmt.Fprintln(r.out, r.styles.help.Render("No credential sets found."))
		return result.Cancelled[string](), nil
	}

	name, chosen, err := r.choose(names, "")
	if errors.Is(err, errEOF) {
		fmt.Fprintln(r.out)
		return result.Cancelled[string](), nil
	}
	if err != nil {
		return result.Cancelled[string](), err
	}
	if !chosen {
		return result.Cancelled[string](), nil
	}
	return result.Completed(name), nil
}

// EnterCredentialSet implements credentials.Prompter. The end of input
// dismisses the prompt; the typed text is returned trimmed.
func (r *Renderer) EnterCredentialSet(ctx context.Context, prompt string) (result.Result[string], error) {
	if err := ctx.Err(); err != nil {
		return result.Cancelled[string](), err
	}
	fmt.Fprintf(r.out, "%s: ", r.styles.title.Render(prompt))
	line, err := r.readLine()
	if errors.Is(err, errEOF) {
		fmt.Fprintln(r.out)
		return result.Cancelled[string](), nil
	}
	if err != nil {
		return result.Cancelled[string](), err
	}
	return result.Completed(strings.TrimSpace(line)), nil
}
