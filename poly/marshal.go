package poly

import (
	"fmt"

	"github.com/renproject/surge"

	"github.com/Mishanya000/Linal-Lab/field"
)

// Polynomials support surge marshaling whenever their coefficient field
// implements the field.Codec interface. The wire format is the coefficient
// count as a uint32 followed by the encoded coefficients, constant term
// first.

// SizeHint implements the surge.SizeHinter interface.
func (p Poly[E]) SizeHint() int {
	c, ok := p.f.(field.Codec[E])
	if !ok {
		return surge.SizeHintU32
	}
	return surge.SizeHintU32 + c.ElemSize()*len(p.coeffs)
}

// Marshal implements the surge.Marshaler interface. It returns an error if
// the coefficient field has no binary encoding.
func (p Poly[E]) Marshal(buf []byte, rem int) ([]byte, int, error) {
	c, ok := p.f.(field.Codec[E])
	if !ok {
		return buf, rem, fmt.Errorf("field %s does not support binary marshaling", p.f.Name())
	}
	buf, rem, err := surge.MarshalLen(uint32(len(p.coeffs)), buf, rem)
	if err != nil {
		return buf, rem, err
	}
	for _, coeff := range p.coeffs {
		buf, rem, err = c.MarshalElem(coeff, buf, rem)
		if err != nil {
			return buf, rem, err
		}
	}
	return buf, rem, nil
}

// Unmarshal implements the surge.Unmarshaler interface. The receiver must
// already be a polynomial over the destination field, e.g. the result of
// Zero(f); the field itself is not part of the wire format.
func (p *Poly[E]) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	c, ok := p.f.(field.Codec[E])
	if !ok {
		return buf, rem, fmt.Errorf("field %s does not support binary marshaling", p.f.Name())
	}
	var l uint32
	buf, rem, err := surge.UnmarshalLen(&l, c.ElemSize(), buf, rem)
	if err != nil {
		return buf, rem, err
	}
	if l == 0 {
		p.coeffs = []E{p.f.Zero()}
		return buf, rem, nil
	}
	coeffs := make([]E, l)
	for i := range coeffs {
		buf, rem, err = c.UnmarshalElem(&coeffs[i], buf, rem)
		if err != nil {
			return buf, rem, err
		}
	}
	p.coeffs = coeffs
	*p = p.norm()
	return buf, rem, nil
}
