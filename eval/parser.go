package eval

import "fmt"

type node interface {
	eval() (Value, error)
}

type nodeNumber struct {
	v Value
}

type nodeUnary struct {
	op byte
	x  node
}

type nodeBinary struct {
	op    tokenKind
	left  node
	right node
}

type parser struct {
	l   lexer
	cur token
}

func parse(s string) (node, error) {
	p := &parser{l: lexer{s: s}}
	p.next()
	if p.cur.kind == tokEOF {
		return nil, fmt.Errorf("%w: empty expression", ErrParse)
	}
	ex, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, p.unexpected()
	}
	return ex, nil
}

func (p *parser) next() { p.cur = p.l.next() }

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.kind
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokStar || p.cur.kind == tokSlash || p.cur.kind == tokFloorDiv {
		op := p.cur.kind
		p.next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = nodeBinary{op: op, left: left, right: right}
	}
	return left, nil
}

// parseFactor handles unary signs. They bind looser than **, so -2**2 is -4.
func (p *parser) parseFactor() (node, error) {
	if p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		p.next()
		x, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return nodeUnary{op: op, x: x}, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur.kind == tokPow {
		p.next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return nodeBinary{op: tokPow, left: left, right: right}, nil
	}
	return left, nil
}

func (p *parser) parsePrimary() (node, error) {
	switch p.cur.kind {
	case tokNumber:
		v := p.cur.num
		p.next()
		return nodeNumber{v: v}, nil
	case tokLParen:
		p.next()
		ex, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			return nil, fmt.Errorf("%w: expected ')'", ErrParse)
		}
		p.next()
		return ex, nil
	default:
		return nil, p.unexpected()
	}
}

func (p *parser) unexpected() error {
	switch {
	case p.cur.err != nil:
		return p.cur.err
	case p.cur.kind == tokEOF:
		return fmt.Errorf("%w: unexpected end of expression", ErrParse)
	default:
		return fmt.Errorf("%w: unexpected %q", ErrParse, p.cur.text)
	}
}

func (n nodeNumber) eval() (Value, error) { return n.v, nil }

func (n nodeUnary) eval() (Value, error) {
	x, err := n.x.eval()
	if err != nil {
		return Value{}, err
	}
	if n.op == '-' {
		return neg(x)
	}
	return x, nil
}

func (n nodeBinary) eval() (Value, error) {
	a, err := n.left.eval()
	if err != nil {
		return Value{}, err
	}
	b, err := n.right.eval()
	if err != nil {
		return Value{}, err
	}
	switch n.op {
	case tokPlus:
		return add(a, b)
	case tokMinus:
		return sub(a, b)
	case tokStar:
		return mul(a, b)
	case tokSlash:
		return div(a, b)
	case tokFloorDiv:
		return floorDiv(a, b)
	case tokPow:
		return pow(a, b)
	default:
		return Value{}, fmt.Errorf("%w: unknown operator %d", ErrParse, n.op)
	}
}
