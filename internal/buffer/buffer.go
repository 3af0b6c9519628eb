package buffer

// Buffer accumulates a single line, which may arrive split across multiple reads. It
// never grows beyond the maximal size: an append that would exceed it is rejected as a
// whole, so the caller is able to report the line as too long.
type Buffer struct {
	memory  []byte
	maxSize int
}

func New(initialSize, maxSize int) Buffer {
	return Buffer{
		memory:  make([]byte, 0, initialSize),
		maxSize: maxSize,
	}
}

// Append writes data, checking whether the new amount of elements (bytes) doesn't exceed the
// limit, otherwise discarding the data and returning false.
func (b *Buffer) Append(elements []byte) (ok bool) {
	if len(b.memory)+len(elements) > b.maxSize {
		return false
	}

	b.memory = append(b.memory, elements...)
	return true
}

// Len returns the number of accumulated bytes.
func (b *Buffer) Len() int {
	return len(b.memory)
}

// Bytes returns the accumulated data. It stays valid only until the next Clear.
func (b *Buffer) Bytes() []byte {
	return b.memory
}

// Clear just resets the pointers, so old values may be overridden by new ones.
func (b *Buffer) Clear() {
	b.memory = b.memory[:0]
}
