package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"rescue-animals/internal/domain/animals"
)

// Prompter lee respuestas línea a línea y vuelve a preguntar ante entradas inválidas.
// Cuando la entrada se termina devuelve io.EOF.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

func (p *Prompter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Prompter) readLine(msg string) (string, error) {
	p.printf("%s", msg)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Optional acepta respuesta vacía.
func (p *Prompter) Optional(msg string) (string, error) {
	return p.readLine(msg)
}

// Text exige una respuesta no vacía.
func (p *Prompter) Text(msg string) (string, error) {
	for {
		v, err := p.readLine(msg)
		if err != nil {
			return "", err
		}
		if v != "" {
			return v, nil
		}
		p.printf("Input cannot be empty. Try again.\n\n")
	}
}

func (p *Prompter) Gender(msg string) (string, error) {
	for {
		v, err := p.readLine(msg)
		if err != nil {
			return "", err
		}
		g := strings.ToLower(v)
		if g == string(animals.GenderMale) || g == string(animals.GenderFemale) {
			return g, nil
		}
		p.printf("Invalid gender. Enter 'male' or 'female'.\n\n")
	}
}

// Int exige un entero mayor que 0.
func (p *Prompter) Int(msg string) (int, error) {
	for {
		v, err := p.readLine(msg)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(v)
		if convErr != nil {
			p.printf("Invalid input. Please enter a whole number.\n\n")
			continue
		}
		if n <= 0 {
			p.printf("Value must be greater than zero.\n\n")
			continue
		}
		return n, nil
	}
}

// Float exige un número mayor que 0; acepta coma decimal.
func (p *Prompter) Float(msg string) (float64, error) {
	for {
		v, err := p.readLine(msg)
		if err != nil {
			return 0, err
		}
		f, convErr := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
		if convErr != nil {
			p.printf("Invalid input. Please enter a numeric value.\n\n")
			continue
		}
		if f <= 0 {
			p.printf("Value must be greater than zero.\n\n")
			continue
		}
		return f, nil
	}
}

func (p *Prompter) Date(msg string) (string, error) {
	for {
		v, err := p.readLine(msg)
		if err != nil {
			return "", err
		}
		if animals.ValidDate(v) {
			return v, nil
		}
		p.printf("Invalid date. Use a real MM-DD-YYYY date after 1970, like 02-03-2020.\n\n")
	}
}

func (p *Prompter) TrainingStatus(msg string) (string, error) {
	for {
		v, err := p.readLine(msg)
		if err != nil {
			return "", err
		}
		if st, parseErr := animals.ParseTrainingStatus(v); parseErr == nil {
			return string(st), nil
		}
		p.printf("Invalid training status. Use one of: %s.\n\n", joinStatuses())
	}
}

func (p *Prompter) YesNo(label string) (bool, error) {
	for {
		v, err := p.readLine(label + " (y/n): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(v) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		p.printf("Error: Please enter 'y' or 'n'.\n\n")
	}
}

func joinStatuses() string {
	sts := animals.TrainingStatuses()
	parts := make([]string, 0, len(sts))
	for _, s := range sts {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, "/")
}
