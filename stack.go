package stencil

// blockStack mirrors the caller's container nesting for one pass.
type blockStack struct {
	items []*Block
}

func (s *blockStack) push(b *Block) {
	s.items = append(s.items, b)
}

func (s *blockStack) pop() *Block {
	n := len(s.items)
	if n == 0 {
		return nil
	}
	b := s.items[n-1]
	s.items[n-1] = nil
	s.items = s.items[:n-1]
	return b
}

func (s *blockStack) top() *Block {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s *blockStack) depth() int {
	return len(s.items)
}

func (s *blockStack) clear() {
	clear(s.items)
	s.items = s.items[:0]
}
