package ring

import (
	"github.com/renproject/surge"
)

// SizeHint implements the surge.SizeHinter interface.
func (n Int) SizeHint() int { return surge.SizeHintI64 }

// Marshal implements the surge.Marshaler interface.
func (n Int) Marshal(buf []byte, rem int) ([]byte, int, error) {
	return surge.MarshalI64(int64(n), buf, rem)
}

// Unmarshal implements the surge.Unmarshaler interface.
func (n *Int) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	var v int64
	buf, rem, err := surge.UnmarshalI64(&v, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	*n = Int(v)
	return buf, rem, nil
}

// SizeHint implements the surge.SizeHinter interface.
func (q Poly[E]) SizeHint() int { return q.p.SizeHint() }

// Marshal implements the surge.Marshaler interface. The coefficient field
// must implement the field.Codec interface.
func (q Poly[E]) Marshal(buf []byte, rem int) ([]byte, int, error) {
	return q.p.Marshal(buf, rem)
}

// Unmarshal implements the surge.Unmarshaler interface. The receiver must
// already wrap a polynomial over the destination field.
func (q *Poly[E]) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	return q.p.Unmarshal(buf, rem)
}
