package cli_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafe-inventario/internal/domain"
	"github.com/jhoicas/cafe-inventario/internal/interfaces/cli"
)

func newPrompter(input string) (*cli.Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return cli.NewPrompter(strings.NewReader(input), &out), &out
}

// Line muestra la etiqueta y recorta espacios extremos de la entrada.
func TestPrompter_Line(t *testing.T) {
	p, out := newPrompter("  Leche (1L)  \n")

	s, err := p.Line("Nombre: ")
	require.NoError(t, err)
	assert.Equal(t, "Leche (1L)", s)
	assert.Equal(t, "Nombre: ", out.String())
}

// El fin de la entrada se reporta como io.EOF para salir limpiamente.
func TestPrompter_LineEOF(t *testing.T) {
	p, _ := newPrompter("")

	_, err := p.Line("Elija: ")
	assert.ErrorIs(t, err, io.EOF)
}

// Una entrada no numérica es un error de validación, no un pánico.
func TestPrompter_IntInvalido(t *testing.T) {
	p, _ := newPrompter("doce\n")

	_, err := p.Int("Cantidad: ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPrompter_IntDefault(t *testing.T) {
	p, _ := newPrompter("\n8\n")

	n, err := p.IntDefault("Umbral (por defecto 5): ", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, n, "línea en blanco usa el valor por defecto")

	n, err = p.IntDefault("Umbral (por defecto 5): ", 5)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
}

// En blanco devuelve nil; con valor, el puntero al entero.
func TestPrompter_OptionalInt(t *testing.T) {
	p, _ := newPrompter("\n7\n")

	qty, err := p.OptionalInt("Cantidad: ")
	require.NoError(t, err)
	assert.Nil(t, qty)

	qty, err = p.OptionalInt("Cantidad: ")
	require.NoError(t, err)
	require.NotNil(t, qty)
	assert.Equal(t, 7, *qty)
}

func TestPrompter_Decimal(t *testing.T) {
	p, _ := newPrompter("1.20\nbarato\n")

	d, err := p.Decimal("Precio: ")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(1.20).Equal(d))

	_, err = p.Decimal("Precio: ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
