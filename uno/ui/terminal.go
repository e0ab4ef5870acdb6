package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
)

// Terminal plays the human seat on a text console. Output is paced by delay
// so computer moves can be followed.
type Terminal struct {
	out   io.Writer
	lines chan string
	delay time.Duration
}

func NewTerminal(in io.Reader, out io.Writer, delay time.Duration) *Terminal {
	t := &Terminal{
		out:   out,
		lines: make(chan string),
		delay: delay,
	}
	go t.scan(in)
	return t
}

func (t *Terminal) scan(in io.Reader) {
	defer close(t.lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		t.lines <- scanner.Text()
	}
}

func (t *Terminal) Printfln(format string, args ...interface{}) error {
	return t.Println(fmt.Sprintf(format, args...))
}

func (t *Terminal) Println(args ...interface{}) error {
	_, err := fmt.Fprintln(t.out, args...)
	return err
}

func (t *Terminal) Write(text string) error {
	if _, err := fmt.Fprint(t.out, text); err != nil {
		return err
	}
	time.Sleep(t.delay)
	return nil
}

func (t *Terminal) Ask(ctx context.Context, prompt string, timeout time.Duration) (string, error) {
	if _, err := fmt.Fprint(t.out, prompt); err != nil {
		return "", err
	}
	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}
	select {
	case line, ok := <-t.lines:
		if !ok {
			return "", consts.ErrorsChanClosed
		}
		if strings.EqualFold(strings.TrimSpace(line), "exit") {
			return "", consts.ErrorsExist
		}
		return line, nil
	case <-expired:
		_ = t.Println()
		return "", consts.ErrorsTimeout
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (t *Terminal) ShowState(state game.State) error {
	return t.Printfln("%s", state)
}
