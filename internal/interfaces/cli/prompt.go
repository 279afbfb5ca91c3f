package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafe-inventario/internal/domain"
)

// Prompter lee la entrada del usuario línea a línea y la convierte a los
// tipos que piden los casos de uso. Los fallos de conversión se reportan
// como domain.ErrInvalidInput; el fin de la entrada como io.EOF.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter crea un prompter sobre el lector y escritor dados.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(r), out: w}
}

// Line muestra la etiqueta y devuelve la línea sin espacios extremos.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// Int pide un entero.
func (p *Prompter) Int(label string) (int, error) {
	s, err := p.Line(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: se esperaba un número entero", domain.ErrInvalidInput)
	}
	return n, nil
}

// IntDefault pide un entero; una línea en blanco devuelve def.
func (p *Prompter) IntDefault(label string, def int) (int, error) {
	s, err := p.Line(label)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: se esperaba un número entero", domain.ErrInvalidInput)
	}
	return n, nil
}

// OptionalInt pide un entero; una línea en blanco devuelve nil.
func (p *Prompter) OptionalInt(label string) (*int, error) {
	s, err := p.Line(label)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%w: se esperaba un número entero", domain.ErrInvalidInput)
	}
	return &n, nil
}

// Decimal pide un número decimal (precio).
func (p *Prompter) Decimal(label string) (decimal.Decimal, error) {
	s, err := p.Line(label)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: se esperaba un número decimal", domain.ErrInvalidInput)
	}
	return d, nil
}
