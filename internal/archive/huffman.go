package archive

import (
	"container/heap"
	"fmt"

	"github.com/ndewijer/numfmt/internal/apperrors"
)

// CodeTable maps each byte to its Huffman code, written as a string of '0' and '1'.
type CodeTable map[byte]string

type huffmanNode struct {
	symbol      byte
	leaf        bool
	freq        int
	order       int
	left, right *huffmanNode
}

// nodeQueue is a min-heap on frequency. Equal frequencies pop in creation order,
// which keeps the generated codes stable across runs.
type nodeQueue []*huffmanNode

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].freq != q[j].freq {
		return q[i].freq < q[j].freq
	}
	return q[i].order < q[j].order
}

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x any) { *q = append(*q, x.(*huffmanNode)) }

func (q *nodeQueue) Pop() any {
	old := *q
	n := old[len(old)-1]
	*q = old[:len(old)-1]
	return n
}

// buildTree returns the root of the Huffman tree for data. Leaves are created in
// order of first appearance.
func buildTree(data []byte) *huffmanNode {
	freq := make(map[byte]int)
	var seen []byte
	for _, b := range data {
		if freq[b] == 0 {
			seen = append(seen, b)
		}
		freq[b]++
	}

	order := 0
	q := make(nodeQueue, 0, len(seen))
	for _, b := range seen {
		q = append(q, &huffmanNode{symbol: b, leaf: true, freq: freq[b], order: order})
		order++
	}
	heap.Init(&q)

	for q.Len() > 1 {
		left := heap.Pop(&q).(*huffmanNode)
		right := heap.Pop(&q).(*huffmanNode)
		heap.Push(&q, &huffmanNode{
			freq:  left.freq + right.freq,
			order: order,
			left:  left,
			right: right,
		})
		order++
	}

	return q[0]
}

func collectCodes(n *huffmanNode, prefix string, codes CodeTable) {
	if n == nil {
		return
	}
	if n.leaf {
		if prefix == "" {
			prefix = "0"
		}
		codes[n.symbol] = prefix
		return
	}
	collectCodes(n.left, prefix+"0", codes)
	collectCodes(n.right, prefix+"1", codes)
}

// HuffmanEncode compresses data and returns the packed bitstream, the code table and
// the number of zero bits appended to fill the last byte.
func HuffmanEncode(data []byte) ([]byte, CodeTable, uint8) {
	if len(data) == 0 {
		return nil, CodeTable{}, 0
	}

	codes := make(CodeTable)
	collectCodes(buildTree(data), "", codes)

	var w bitWriter
	for _, b := range data {
		w.writeCode(codes[b])
	}
	encoded, padding := w.finish()
	return encoded, codes, padding
}

// HuffmanDecode reverses HuffmanEncode. The last padding bits of encoded are ignored.
func HuffmanDecode(encoded []byte, codes CodeTable, padding uint8) ([]byte, error) {
	if len(encoded) == 0 {
		return nil, nil
	}

	root, err := buildTrie(codes)
	if err != nil {
		return nil, err
	}

	totalBits := len(encoded)*8 - int(padding)
	if totalBits < 0 {
		return nil, fmt.Errorf("%w: padding %d exceeds %d bytes of data", apperrors.ErrInvalidArchive, padding, len(encoded))
	}

	var decoded []byte
	n := root
	for i := 0; i < totalBits; i++ {
		bit := encoded[i/8] >> (7 - uint(i%8)) & 1
		if bit == 0 {
			n = n.left
		} else {
			n = n.right
		}
		if n == nil {
			return nil, fmt.Errorf("%w at bit %d", apperrors.ErrUnknownCode, i)
		}
		if n.leaf {
			decoded = append(decoded, n.symbol)
			n = root
		}
	}

	if n != root {
		return nil, fmt.Errorf("%w: stream ends inside a code", apperrors.ErrUnknownCode)
	}
	return decoded, nil
}

func buildTrie(codes CodeTable) (*huffmanNode, error) {
	root := &huffmanNode{}
	for symbol, code := range codes {
		if code == "" {
			return nil, fmt.Errorf("%w: empty code for byte %d", apperrors.ErrUnknownCode, symbol)
		}
		n := root
		for _, c := range code {
			next := &n.left
			if c == '1' {
				next = &n.right
			}
			if *next == nil {
				*next = &huffmanNode{}
			}
			n = *next
		}
		n.leaf = true
		n.symbol = symbol
	}
	return root, nil
}

type bitWriter struct {
	buf   []byte
	cur   byte
	nbits uint8
}

func (w *bitWriter) writeCode(code string) {
	for _, c := range code {
		w.cur <<= 1
		if c == '1' {
			w.cur |= 1
		}
		w.nbits++
		if w.nbits == 8 {
			w.buf = append(w.buf, w.cur)
			w.cur, w.nbits = 0, 0
		}
	}
}

func (w *bitWriter) finish() ([]byte, uint8) {
	if w.nbits == 0 {
		return w.buf, 0
	}
	padding := 8 - w.nbits
	w.buf = append(w.buf, w.cur<<padding)
	return w.buf, padding
}
