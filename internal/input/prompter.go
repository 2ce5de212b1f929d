// Package input reads validated field values from an operator.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultMaxNameLength matches the longest product name the legacy file format held.
const DefaultMaxNameLength = 49

// MaxQuantity is the largest stock count accepted for a product.
const MaxQuantity = 1_000_000_000

// Prompter asks for a value, re-asking until the answer is valid.
type Prompter struct {
	in            *bufio.Scanner
	out           io.Writer
	validate      *validator.Validate
	maxNameLength int
}

// NewPrompter creates a Prompter reading lines from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer, maxNameLength int) *Prompter {
	if maxNameLength <= 0 {
		maxNameLength = DefaultMaxNameLength
	}
	return &Prompter{
		in:            bufio.NewScanner(in),
		out:           out,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		maxNameLength: maxNameLength,
	}
}

// Text reads a non-empty name no longer than the configured maximum. Commas
// and line breaks are refused so the backing file stays in its plain form.
func (p *Prompter) Text(prompt string) (string, error) {
	tag := fmt.Sprintf("required,max=%d,excludesall=0x2C", p.maxNameLength)
	for {
		line, err := p.ask(prompt)
		if err != nil {
			return "", err
		}
		value := strings.TrimSpace(line)
		if err := p.validate.Var(value, tag); err != nil {
			p.fail(fmt.Sprintf("the name must be 1 to %d characters and contain no commas", p.maxNameLength))
			continue
		}
		return value, nil
	}
}

// NonNegativeInt reads a whole number between 0 and MaxQuantity.
func (p *Prompter) NonNegativeInt(prompt string) (int, error) {
	for {
		line, err := p.ask(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || p.validate.Var(v, fmt.Sprintf("gte=0,lte=%d", MaxQuantity)) != nil {
			p.fail(fmt.Sprintf("the value must be a whole number between 0 and %d", MaxQuantity))
			continue
		}
		return v, nil
	}
}

// NonNegativeFloat reads a finite number >= 0.
func (p *Prompter) NonNegativeFloat(prompt string) (float64, error) {
	for {
		line, err := p.ask(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil || p.validate.Var(v, "gte=0,lt=1e15") != nil {
			p.fail("the value must be a non-negative number")
			continue
		}
		return v, nil
	}
}

// IntInRange reads a whole number in [lo, hi].
func (p *Prompter) IntInRange(prompt string, lo, hi int) (int, error) {
	tag := fmt.Sprintf("gte=%d,lte=%d", lo, hi)
	for {
		line, err := p.ask(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || p.validate.Var(v, tag) != nil {
			p.fail(fmt.Sprintf("the value must be a whole number between %d and %d", lo, hi))
			continue
		}
		return v, nil
	}
}

// Line reads one raw line without validation.
func (p *Prompter) Line(prompt string) (string, error) {
	line, err := p.ask(prompt)
	return strings.TrimSpace(line), err
}

func (p *Prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}

func (p *Prompter) fail(msg string) {
	fmt.Fprintf(p.out, "Error: invalid input, %s. Try again.\n", msg)
}
