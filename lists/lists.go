package lists

// Node is a cell of a singly-linked integer list. A whole list is referred
// to by its head *Node; nil is the empty list.
type Node struct {
	// Val is the element stored in this cell.
	Val int

	// Next points at the following cell, nil at the tail.
	Next *Node
}

// FromSlice builds a list holding the values of s in order.
// FromSlice(nil) is the empty list.
func FromSlice(s []int) *Node {
	var head *Node
	tail := &head
	for _, v := range s {
		n := &Node{Val: v}
		*tail = n
		tail = &n.Next
	}

	return head
}

// ToSlice returns the list's values in order, nil for the empty list.
func (n *Node) ToSlice() []int {
	var out []int
	for cur := n; cur != nil; cur = cur.Next {
		out = append(out, cur.Val)
	}

	return out
}

// Merge splices two ascending lists into a single ascending list, reusing
// the input nodes. Stable: on equal values the node from a comes first.
// Either input may be nil. The inputs are consumed; only the returned head
// is a valid list afterwards.
func Merge(a, b *Node) *Node {
	var head *Node
	tail := &head
	for a != nil && b != nil {
		if a.Val <= b.Val {
			*tail = a
			tail = &a.Next
			a = a.Next
		} else {
			*tail = b
			tail = &b.Next
			b = b.Next
		}
	}
	// at most one list has nodes left
	if a != nil {
		*tail = a
	} else {
		*tail = b
	}

	return head
}
