// SPDX-License-Identifier: MIT
// Package: geco/lpformat

package lpformat

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/geco/model"
)

var (
	// ErrSyntax indicates malformed LP text. Errors carry the line number.
	ErrSyntax = errors.New("lpformat: syntax error")

	// ErrUnencodable indicates a Model the format cannot represent
	// (unset sense, names with whitespace or ':' characters, empty names).
	ErrUnencodable = errors.New("lpformat: model cannot be encoded")
)

const (
	methodEncode = "Encode"
	methodDecode = "Decode"

	problemPrefix = `\ Problem name:`
	objectiveName = "obj"
)

// Codec implements model.Codec with the LP text format.
type Codec struct{}

var _ model.Codec = Codec{}

// Encode writes m as LP text.
func (Codec) Encode(m *model.Model) ([]byte, error) { return Encode(m) }

// Decode parses LP text into a new Model.
func (Codec) Decode(data []byte) (*model.Model, error) { return Decode(data) }

// Encode writes m as LP text.
func Encode(m *model.Model) ([]byte, error) {
	var header string
	switch m.Sense() {
	case model.Minimize:
		header = "Minimize"
	case model.Maximize:
		header = "Maximize"
	default:
		return nil, fmt.Errorf("%s(%s): objective sense unset: %w", methodEncode, m.Name(), ErrUnencodable)
	}
	if strings.ContainsAny(m.Name(), "\r\n") {
		return nil, fmt.Errorf("%s: problem name %q: %w", methodEncode, m.Name(), ErrUnencodable)
	}

	vars := m.Variables()
	for _, v := range vars {
		if err := checkName(v.Name); err != nil {
			return nil, fmt.Errorf("%s: variable %q: %w", methodEncode, v.Name, err)
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %s\n", problemPrefix, m.Name())
	buf.WriteString(header + "\n")
	buf.WriteString(" " + objectiveName + ":")
	for _, v := range vars {
		writeTerm(&buf, v.Obj, v.Name)
	}
	buf.WriteString("\nSubject To\n")

	for i := 0; i < m.NumConstraints(); i++ {
		c := m.Constraint(i)
		if err := checkName(c.Name); err != nil {
			return nil, fmt.Errorf("%s: constraint %d %q: %w", methodEncode, i, c.Name, err)
		}
		buf.WriteString(" " + c.Name + ":")
		for _, t := range c.Terms {
			writeTerm(&buf, t.Coef, vars[t.Var].Name)
		}
		fmt.Fprintf(&buf, " %s %s\n", c.Rel, formatFloat(c.RHS))
	}

	var bounds, generals, binaries []string
	for _, v := range vars {
		lo, hi := defaultBounds(v.Type)
		if v.Lower != lo || v.Upper != hi {
			bounds = append(bounds, fmt.Sprintf(" %s <= %s <= %s", formatFloat(v.Lower), v.Name, formatFloat(v.Upper)))
		}
		switch v.Type {
		case model.Integer:
			generals = append(generals, v.Name)
		case model.Binary:
			binaries = append(binaries, v.Name)
		}
	}
	if len(bounds) > 0 {
		buf.WriteString("Bounds\n")
		buf.WriteString(strings.Join(bounds, "\n") + "\n")
	}
	writeNameSection(&buf, "Generals", generals)
	writeNameSection(&buf, "Binaries", binaries)
	buf.WriteString("End\n")

	return buf.Bytes(), nil
}

func checkName(name string) error {
	if name == "" || strings.ContainsAny(name, " \t\r\n:") {
		return ErrUnencodable
	}
	return nil
}

func writeTerm(buf *bytes.Buffer, coef float64, name string) {
	if math.Signbit(coef) {
		fmt.Fprintf(buf, " - %s %s", formatFloat(-coef), name)
		return
	}
	fmt.Fprintf(buf, " + %s %s", formatFloat(coef), name)
}

// writeNameSection emits names wrapped at a fixed number per line.
func writeNameSection(buf *bytes.Buffer, title string, names []string) {
	const perLine = 8
	if len(names) == 0 {
		return
	}
	buf.WriteString(title + "\n")
	for i := 0; i < len(names); i += perLine {
		end := min(i+perLine, len(names))
		buf.WriteString(" " + strings.Join(names[i:end], " ") + "\n")
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "+inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func defaultBounds(t model.VarType) (float64, float64) {
	if t == model.Binary {
		return 0, 1
	}
	return 0, math.Inf(1)
}

type section int

const (
	secHeader section = iota
	secObjective
	secConstraints
	secBounds
	secGenerals
	secBinaries
	secEnd
)

type rawRow struct {
	name  string
	terms []model.Term
	rel   model.Relation
	rhs   float64
}

type parser struct {
	name    string
	sense   model.Sense
	vars    []model.Variable
	index   map[string]int
	bounded map[int]bool
	rows    []rawRow
	sec     section
	line    int
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%s: line %d: %s: %w", methodDecode, p.line, fmt.Sprintf(format, args...), ErrSyntax)
}

// Decode parses LP text produced by Encode.
func Decode(data []byte) (*model.Model, error) {
	p := &parser{index: make(map[string]int), bounded: make(map[int]bool)}
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	for sc.Scan() {
		p.line++
		if err := p.consume(sc.Text()); err != nil {
			return nil, err
		}
		if p.sec == secEnd {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", methodDecode, err, ErrSyntax)
	}
	if p.sec != secEnd {
		return nil, p.errorf("missing End")
	}

	return p.build()
}

func (p *parser) consume(raw string) error {
	line := strings.TrimSpace(raw)
	if strings.HasPrefix(line, `\`) {
		if strings.HasPrefix(line, problemPrefix) {
			p.name = strings.TrimSpace(strings.TrimPrefix(line, problemPrefix))
		}
		return nil
	}
	if line == "" {
		return nil
	}

	switch strings.ToLower(line) {
	case "minimize", "maximize":
		if p.sec != secHeader {
			return p.errorf("objective header out of place")
		}
		p.sense = model.Minimize
		if strings.EqualFold(line, "maximize") {
			p.sense = model.Maximize
		}
		p.sec = secObjective
		return nil
	case "subject to":
		return p.advance(secConstraints)
	case "bounds":
		return p.advance(secBounds)
	case "generals":
		return p.advance(secGenerals)
	case "binaries":
		return p.advance(secBinaries)
	case "end":
		return p.advance(secEnd)
	}

	switch p.sec {
	case secObjective:
		return p.objective(line)
	case secConstraints:
		return p.constraint(line)
	case secBounds:
		return p.bound(line)
	case secGenerals:
		return p.typed(line, model.Integer)
	case secBinaries:
		return p.typed(line, model.Binary)
	default:
		return p.errorf("unexpected %q", line)
	}
}

func (p *parser) advance(next section) error {
	if next <= p.sec || p.sec == secHeader {
		return p.errorf("section order")
	}
	p.sec = next
	return nil
}

func splitLabel(line string) (label, rest string, ok bool) {
	i := strings.IndexByte(line, ':')
	if i <= 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:i]), line[i+1:], true
}

func (p *parser) objective(line string) error {
	label, rest, ok := splitLabel(line)
	if !ok || label != objectiveName || len(p.vars) > 0 {
		return p.errorf("objective line %q", line)
	}
	toks := strings.Fields(rest)
	if len(toks)%3 != 0 {
		return p.errorf("objective terms")
	}
	for i := 0; i < len(toks); i += 3 {
		coef, err := p.coefficient(toks[i], toks[i+1])
		if err != nil {
			return err
		}
		name := toks[i+2]
		if _, dup := p.index[name]; dup {
			return p.errorf("variable %s listed twice", name)
		}
		p.index[name] = len(p.vars)
		p.vars = append(p.vars, model.Variable{Name: name, Type: model.Continuous, Upper: math.Inf(1), Obj: coef})
	}
	return nil
}

func (p *parser) coefficient(sign, num string) (float64, error) {
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, p.errorf("coefficient %q", num)
	}
	switch sign {
	case "+":
		return v, nil
	case "-":
		return -v, nil
	}
	return 0, p.errorf("sign %q", sign)
}

func (p *parser) constraint(line string) error {
	label, rest, ok := splitLabel(line)
	if !ok {
		return p.errorf("unnamed constraint")
	}
	toks := strings.Fields(rest)
	if len(toks) < 5 || (len(toks)-2)%3 != 0 {
		return p.errorf("constraint %s shape", label)
	}
	n := len(toks) - 2
	row := rawRow{name: label, terms: make([]model.Term, 0, n/3)}
	for i := 0; i < n; i += 3 {
		coef, err := p.coefficient(toks[i], toks[i+1])
		if err != nil {
			return err
		}
		col, known := p.index[toks[i+2]]
		if !known {
			return p.errorf("constraint %s: unknown variable %s", label, toks[i+2])
		}
		row.terms = append(row.terms, model.Term{Var: col, Coef: coef})
	}
	switch toks[n] {
	case "<=":
		row.rel = model.LE
	case ">=":
		row.rel = model.GE
	case "=":
		row.rel = model.EQ
	default:
		return p.errorf("constraint %s: relation %q", label, toks[n])
	}
	rhs, err := strconv.ParseFloat(toks[n+1], 64)
	if err != nil {
		return p.errorf("constraint %s: rhs %q", label, toks[n+1])
	}
	row.rhs = rhs
	p.rows = append(p.rows, row)
	return nil
}

func (p *parser) bound(line string) error {
	toks := strings.Fields(line)
	if len(toks) != 5 || toks[1] != "<=" || toks[3] != "<=" {
		return p.errorf("bound %q", line)
	}
	col, known := p.index[toks[2]]
	if !known {
		return p.errorf("bound on unknown variable %s", toks[2])
	}
	lo, err1 := strconv.ParseFloat(toks[0], 64)
	hi, err2 := strconv.ParseFloat(toks[4], 64)
	if err1 != nil || err2 != nil {
		return p.errorf("bound values %q", line)
	}
	p.vars[col].Lower, p.vars[col].Upper = lo, hi
	p.bounded[col] = true
	return nil
}

func (p *parser) typed(line string, t model.VarType) error {
	for _, name := range strings.Fields(line) {
		col, known := p.index[name]
		if !known {
			return p.errorf("unknown variable %s", name)
		}
		p.vars[col].Type = t
		if t == model.Binary && !p.bounded[col] {
			p.vars[col].Lower, p.vars[col].Upper = 0, 1
		}
	}
	return nil
}

func (p *parser) build() (*model.Model, error) {
	m := model.New(p.name)
	for _, v := range p.vars {
		if _, err := m.AddVariable(v); err != nil {
			return nil, fmt.Errorf("%s: %w", methodDecode, err)
		}
	}
	for _, r := range p.rows {
		if err := m.AddRow(r.name, r.terms, r.rel, r.rhs); err != nil {
			return nil, fmt.Errorf("%s: %w", methodDecode, err)
		}
	}
	if err := m.SetSense(p.sense); err != nil {
		return nil, fmt.Errorf("%s: %w", methodDecode, err)
	}
	return m, nil
}
