// Command dsdshow decomposes a small Boolean function and prints its
// disjoint-support decomposition graph. It exists purely as a manual
// inspection aid around the dsd and bdd packages; it is never imported by
// them and owns no persistent state.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/dsd-decomp/bdd"
	"github.com/katalvlaran/dsd-decomp/dsd"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var exprFlag string

	cmd := &cobra.Command{
		Use:   "dsdshow",
		Short: "Decompose a Boolean expression and print its decomposition graph",
		Long: `dsdshow builds a small Boolean function from a sum-of-products style
expression over variables named v0, v1, v2, ... and prints the disjoint-support
decomposition graph rooted at it.

Expression syntax: variables v0..vN, '&' for AND, '|' for OR, '^' for XOR,
'~' for NOT (prefix), and parentheses for grouping. Example:

  dsdshow --expr "(v0 & v1) | v2"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, exprFlag)
		},
	}

	cmd.Flags().StringVar(&exprFlag, "expr", "", "Boolean expression to decompose (required)")
	_ = cmd.MarkFlagRequired("expr")

	return cmd
}

func runShow(cmd *cobra.Command, expr string) error {
	mgr := dsd.NewManager()

	f, err := parseExpr(mgr.BDD(), expr)
	if err != nil {
		return fmt.Errorf("dsdshow: %w", err)
	}

	root := mgr.Decomp(f)
	dsd.Print(cmd.OutOrStdout(), root)

	return nil
}

// parseExpr is a minimal recursive-descent parser for the expression
// grammar documented on the root command, just enough to exercise the
// decomposition engine end to end from the command line.
func parseExpr(mgr *bdd.Manager, s string) (bdd.Function, error) {
	p := &exprParser{mgr: mgr, input: strings.TrimSpace(s)}
	f, err := p.parseOr()
	if err != nil {
		return bdd.Function{}, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return bdd.Function{}, fmt.Errorf("unexpected trailing input %q", p.input[p.pos:])
	}

	return f, nil
}

type exprParser struct {
	mgr   *bdd.Manager
	input string
	pos   int
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *exprParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0
	}

	return p.input[p.pos]
}

func (p *exprParser) parseOr() (bdd.Function, error) {
	left, err := p.parseXor()
	if err != nil {
		return bdd.Function{}, err
	}
	for p.peek() == '|' {
		p.pos++
		right, err := p.parseXor()
		if err != nil {
			return bdd.Function{}, err
		}
		left = left.Or(right)
	}

	return left, nil
}

func (p *exprParser) parseXor() (bdd.Function, error) {
	left, err := p.parseAnd()
	if err != nil {
		return bdd.Function{}, err
	}
	for p.peek() == '^' {
		p.pos++
		right, err := p.parseAnd()
		if err != nil {
			return bdd.Function{}, err
		}
		left = left.Xor(right)
	}

	return left, nil
}

func (p *exprParser) parseAnd() (bdd.Function, error) {
	left, err := p.parseUnary()
	if err != nil {
		return bdd.Function{}, err
	}
	for p.peek() == '&' {
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return bdd.Function{}, err
		}
		left = left.And(right)
	}

	return left, nil
}

func (p *exprParser) parseUnary() (bdd.Function, error) {
	if p.peek() == '~' {
		p.pos++
		f, err := p.parseUnary()
		if err != nil {
			return bdd.Function{}, err
		}

		return f.Not(), nil
	}

	return p.parsePrimary()
}

func (p *exprParser) parsePrimary() (bdd.Function, error) {
	if p.peek() == '(' {
		p.pos++
		f, err := p.parseOr()
		if err != nil {
			return bdd.Function{}, err
		}
		if p.peek() != ')' {
			return bdd.Function{}, fmt.Errorf("expected ')' at position %d", p.pos)
		}
		p.pos++

		return f, nil
	}

	p.skipSpace()
	start := p.pos
	if start >= len(p.input) || p.input[start] != 'v' {
		return bdd.Function{}, fmt.Errorf("expected a variable like v0 at position %d", start)
	}
	end := start + 1
	for end < len(p.input) && p.input[end] >= '0' && p.input[end] <= '9' {
		end++
	}
	if end == start+1 {
		return bdd.Function{}, fmt.Errorf("malformed variable name at position %d", start)
	}
	idx, err := strconv.ParseUint(p.input[start+1:end], 10, 32)
	if err != nil {
		return bdd.Function{}, fmt.Errorf("malformed variable index: %w", err)
	}
	p.pos = end

	return p.mgr.Var(uint32(idx)), nil
}
