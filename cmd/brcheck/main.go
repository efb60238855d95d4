// Command brcheck validates Brazilian documents and form values from the
// command line.
//
//	brcheck cpf 529.982.247-25 111.111.111-11
//	brcheck -f cnpj 62193755000107
//	brcheck demo
//
// Each value is reported as valid or invalid with a reason code. The exit
// status is 1 when any value is invalid and 2 on usage errors.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/dmitrymomot/brkit/pkg/brdoc"
	"github.com/dmitrymomot/brkit/pkg/fieldcheck"
	"github.com/dmitrymomot/brkit/pkg/logger"
	"github.com/dmitrymomot/brkit/pkg/sanitizer"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

// checker returns "" for acceptable values and a reason code otherwise.
type checker func(value string) string

func documentChecker(kind brdoc.Kind) checker {
	return func(v string) string {
		return brdoc.Reason(brdoc.Check(kind, v))
	}
}

func predicate(ok func(string) bool) checker {
	return func(v string) string {
		if ok(v) {
			return ""
		}
		return "invalid"
	}
}

var checkers = map[string]checker{
	"cpf":  documentChecker(brdoc.KindCPF),
	"cnpj": documentChecker(brdoc.KindCNPJ),
	"taxid": func(v string) string {
		kind, ok := brdoc.Detect(v)
		if !ok {
			return brdoc.ReasonMalformedLength
		}
		return brdoc.Reason(brdoc.Check(kind, v))
	},
	"rg":       predicate(fieldcheck.RG),
	"phone":    predicate(fieldcheck.Phone),
	"password": predicate(fieldcheck.Password),
	"name":     predicate(fieldcheck.FullName),
	"date":     predicate(fieldcheck.Date),
	"email":    predicate(fieldcheck.Email),
	"cep":      predicate(fieldcheck.CEP),
}

func kinds() []string {
	out := make([]string, 0, len(checkers))
	for k := range checkers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	log := logger.New(logger.WithOutput(stderr), logger.WithFormat(logger.FormatText))

	fs := flag.NewFlagSet("brcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	quiet := fs.Bool("q", false, "print nothing, report through the exit status only")
	format := fs.Bool("f", false, "print valid CPF, CNPJ, CEP and phone values in canonical form")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: brcheck [-q] [-f] <kind> <value>...\n       brcheck demo\n\nkinds: %s\n\n", strings.Join(kinds(), ", "))
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	rest := fs.Args()
	if len(rest) == 1 && rest[0] == "demo" {
		fmt.Fprintln(stdout, demo())
		return exitOK
	}
	if len(rest) < 2 {
		fs.Usage()
		return exitUsage
	}

	name := strings.ToLower(rest[0])
	check, ok := checkers[name]
	if !ok {
		log.Error("Unknown kind", "kind", rest[0], "supported", kinds())
		return exitUsage
	}

	out := stdout
	if *quiet {
		out = io.Discard
	}

	code := exitOK
	for _, value := range rest[1:] {
		reason := check(value)
		if reason != "" {
			code = exitInvalid
			fmt.Fprintf(out, "%s: invalid (%s)\n", value, reason)
			continue
		}
		if *format {
			fmt.Fprintf(out, "%s: valid %s\n", value, canonical(name, value))
			continue
		}
		fmt.Fprintf(out, "%s: valid\n", value)
	}
	return code
}

func canonical(kind, value string) string {
	switch kind {
	case "cpf":
		return sanitizer.FormatCPF(value)
	case "cnpj":
		return sanitizer.FormatCNPJ(value)
	case "taxid":
		if k, _ := brdoc.Detect(value); k == brdoc.KindCNPJ {
			return sanitizer.FormatCNPJ(value)
		}
		return sanitizer.FormatCPF(value)
	case "cep":
		return sanitizer.FormatCEP(value)
	case "phone":
		return sanitizer.FormatPhoneBR(value)
	default:
		return value
	}
}

// demo checks one known-good sample of every field kind and renders the
// verdicts as a single Portuguese line.
func demo() string {
	samples := []struct {
		label    string
		feminine bool
		ok       bool
	}{
		{"CEP", false, fieldcheck.CEP("88108-167")},
		{"CNPJ", false, brdoc.ValidateCNPJ("62.193.755/0001-07")},
		{"CPF", false, brdoc.ValidateCPF("335.516.700-21")},
		{"Data", true, fieldcheck.Date("2002-10-03")},
		{"E-mail", false, fieldcheck.Email("teste@teste.com")},
		{"Nome Completo", false, fieldcheck.FullName("Nome de teste")},
		{"Senha", true, fieldcheck.Password("86A489m@")},
		{"Telefone", false, fieldcheck.Phone("(48) 2775-8157")},
		{"RG", false, fieldcheck.RG("136671949")},
	}

	parts := make([]string, 0, len(samples))
	for _, s := range samples {
		verdict := "Inválido"
		if s.ok {
			verdict = "Válido"
		}
		if s.feminine {
			verdict = strings.TrimSuffix(verdict, "o") + "a"
		}
		parts = append(parts, s.label+": "+verdict)
	}
	return strings.Join(parts, ", ")
}
