package array

import (
	"math/big"

	"ff128/ferr"
	"ff128/field"
)

// Matrix is a row-major, contiguous rows x cols block of field elements.
type Matrix struct {
	f    *field.Field
	buf  []byte
	base int
	rows int
	cols int
}

// NewMatrix allocates a fresh, zero-filled rows x cols matrix over f.
func NewMatrix(f *field.Field, rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		ferr.Panic(ferr.ErrInvalidArgument, "NewMatrix: dimensions must be >= 0, got %dx%d", rows, cols)
	}
	return &Matrix{f: f, buf: make([]byte, rows*cols*f.ElementSize()), rows: rows, cols: cols}
}

// MatrixFromElements materializes a row-major rows x cols matrix.
func MatrixFromElements(f *field.Field, rows, cols int, elems []field.Element) *Matrix {
	if len(elems) != rows*cols {
		ferr.Panic(ferr.ErrDimensionMismatch, "MatrixFromElements: got %d elements, want %dx%d=%d", len(elems), rows, cols, rows*cols)
	}
	m := NewMatrix(f, rows, cols)
	for i, e := range elems {
		m.set(i/cols, i%cols, f.Reduce(e))
	}
	return m
}

// NewMatrixView constructs a Matrix aliasing an existing buffer at a given
// element offset, the off-host engine's counterpart to NewVectorView.
func NewMatrixView(f *field.Field, buf []byte, base, rows, cols int) *Matrix {
	return &Matrix{f: f, buf: buf, base: base, rows: rows, cols: cols}
}

// Field returns the matrix's owning field.
func (m *Matrix) Field() *field.Field { return m.f }

// Base returns the element offset into the backing buffer this matrix was
// constructed at — used by the off-host engine (package engine) to return
// the region to its allocator on Destroy.
func (m *Matrix) Base() int { return m.base }

// RowCount returns the number of rows.
func (m *Matrix) RowCount() int { return m.rows }

// ColCount returns the number of columns.
func (m *Matrix) ColCount() int { return m.cols }

// ElementCount returns rows*cols.
func (m *Matrix) ElementCount() int { return m.rows * m.cols }

// RowStrideBytes returns cols * element_size.
func (m *Matrix) RowStrideBytes() int { return m.cols * m.f.ElementSize() }

func (m *Matrix) slot(row, col int) []byte {
	sz := m.f.ElementSize()
	off := m.base + (row*m.cols+col)*sz
	return m.buf[off : off+sz]
}

func (m *Matrix) checkIndex(row, col int, op string) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		ferr.Panic(ferr.ErrOutOfRange, "%s: index (%d,%d) out of range for %dx%d", op, row, col, m.rows, m.cols)
	}
}

// Get returns element (row,col), fully reduced.
func (m *Matrix) Get(row, col int) field.Element {
	m.checkIndex(row, col, "Matrix.Get")
	return m.f.Reduce(decodeElement(m.slot(row, col)))
}

func (m *Matrix) set(row, col int, val field.Element) {
	encodeElement(m.slot(row, col), val)
}

// SetValue validates value < 2^128 and stores it without reducing mod p.
func (m *Matrix) SetValue(row, col int, value *big.Int) error {
	m.checkIndex(row, col, "Matrix.SetValue")
	if value.Sign() < 0 || value.BitLen() > 128 {
		return ferr.Wrap(ferr.ErrOutOfRange, "SetValue: value %s does not fit in 128 bits", value)
	}
	m.set(row, col, bigToElement(value))
	return nil
}

// Row returns row i as a freshly allocated Vector.
func (m *Matrix) Row(i int) *Vector {
	if i < 0 || i >= m.rows {
		ferr.Panic(ferr.ErrOutOfRange, "Matrix.Row: index %d out of range [0,%d)", i, m.rows)
	}
	v := NewVector(m.f, m.cols)
	for c := 0; c < m.cols; c++ {
		v.set(c, m.Get(i, c))
	}
	return v
}

// RowsToBuffers returns the raw byte encoding of each requested row index.
func (m *Matrix) RowsToBuffers(indexes []int) [][]byte {
	sz := m.f.ElementSize()
	out := make([][]byte, len(indexes))
	for k, idx := range indexes {
		if idx < 0 || idx >= m.rows {
			ferr.Panic(ferr.ErrOutOfRange, "Matrix.RowsToBuffers: index %d out of range [0,%d)", idx, m.rows)
		}
		row := make([]byte, m.cols*sz)
		for c := 0; c < m.cols; c++ {
			copy(row[c*sz:(c+1)*sz], m.slot(idx, c))
		}
		out[k] = row
	}
	return out
}

// ToValues decodes the matrix row-major into a fresh slice.
func (m *Matrix) ToValues() []field.Element {
	out := make([]field.Element, m.rows*m.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out[r*m.cols+c] = m.Get(r, c)
		}
	}
	return out
}
