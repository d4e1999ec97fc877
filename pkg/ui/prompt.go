package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// WaitForEnter prints message to w and blocks until a line (or EOF) is read
// from r.
func WaitForEnter(r io.Reader, w io.Writer, message string) error {
	fmt.Fprint(w, message)
	_, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading acknowledgment: %w", err)
	}
	return nil
}
