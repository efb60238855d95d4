package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("all valid", func(t *testing.T) {
		code, out, _ := runCLI("cpf", "529.982.247-25", "33551670021")
		assert.Equal(t, exitOK, code)
		assert.Equal(t, "529.982.247-25: valid\n33551670021: valid\n", out)
	})

	t.Run("any invalid fails", func(t *testing.T) {
		code, out, _ := runCLI("cpf", "529.982.247-25", "111.111.111-11", "123")
		assert.Equal(t, exitInvalid, code)
		assert.Contains(t, out, "111.111.111-11: invalid (degenerate_sequence)")
		assert.Contains(t, out, "123: invalid (malformed_length)")
	})

	t.Run("format flag", func(t *testing.T) {
		code, out, _ := runCLI("-f", "cnpj", "62193755000107")
		assert.Equal(t, exitOK, code)
		assert.Equal(t, "62193755000107: valid 62.193.755/0001-07\n", out)
	})

	t.Run("taxid detects kind", func(t *testing.T) {
		code, out, _ := runCLI("-f", "taxid", "11222333000181", "52998224725")
		assert.Equal(t, exitOK, code)
		assert.Contains(t, out, "valid 11.222.333/0001-81")
		assert.Contains(t, out, "valid 529.982.247-25")
	})

	t.Run("quiet", func(t *testing.T) {
		code, out, _ := runCLI("-q", "cnpj", "11.222.333/0001-80")
		assert.Equal(t, exitInvalid, code)
		assert.Empty(t, out)
	})

	t.Run("field predicates", func(t *testing.T) {
		code, out, _ := runCLI("email", "teste@teste.com", "nope")
		assert.Equal(t, exitInvalid, code)
		assert.Contains(t, out, "teste@teste.com: valid")
		assert.Contains(t, out, "nope: invalid (invalid)")
	})

	t.Run("unknown kind", func(t *testing.T) {
		code, _, errOut := runCLI("ssn", "123")
		assert.Equal(t, exitUsage, code)
		assert.Contains(t, errOut, "Unknown kind")
	})

	t.Run("missing values", func(t *testing.T) {
		code, _, errOut := runCLI("cpf")
		assert.Equal(t, exitUsage, code)
		assert.Contains(t, errOut, "usage:")
	})

	t.Run("bad flag", func(t *testing.T) {
		code, _, _ := runCLI("-x", "cpf", "1")
		assert.Equal(t, exitUsage, code)
	})
}

func TestDemo(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI("demo")
	assert.Equal(t, exitOK, code)
	assert.Equal(t,
		"CEP: Válido, CNPJ: Válido, CPF: Válido, Data: Válida, E-mail: Válido, "+
			"Nome Completo: Válido, Senha: Válida, Telefone: Válido, RG: Válido\n",
		out)
}
