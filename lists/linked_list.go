package lists

import (
	"fmt"
	"iter"
	"strings"
)

var ErrEmptyList = fmt.Errorf("list is empty")

type node[T any] struct {
	prev *node[T]
	next *node[T]
	val  T
}

// LinkedList is a doubly linked list bounded by two sentinel nodes, so
// insertion and removal at either end never special-case an empty list.
type LinkedList[T any] struct {
	headSentinel *node[T]
	tailSentinel *node[T]
	size         int
}

func NewLinkedList[T any]() *LinkedList[T] {
	ll := &LinkedList[T]{
		headSentinel: &node[T]{},
		tailSentinel: &node[T]{},
	}
	ll.headSentinel.next = ll.tailSentinel
	ll.tailSentinel.prev = ll.headSentinel
	return ll
}

// From builds a list holding values in order.
func From[T any](values ...T) *LinkedList[T] {
	ll := NewLinkedList[T]()
	ll.Add(values...)
	return ll
}

// linkAfter links newNode directly after at.
func (ll *LinkedList[T]) linkAfter(at, newNode *node[T]) {
	newNode.prev = at
	newNode.next = at.next
	at.next.prev = newNode
	at.next = newNode
	ll.size++
}

// unlink removes n from the list and returns its value.
// The node's pointers and value are cleared to help the GC.
func (ll *LinkedList[T]) unlink(n *node[T]) T {
	n.prev.next = n.next
	n.next.prev = n.prev
	val := n.val
	var zero T
	n.prev, n.next, n.val = nil, nil, zero
	ll.size--
	return val
}

// Add appends values to the end of the list.
func (ll *LinkedList[T]) Add(values ...T) {
	for _, v := range values {
		ll.linkAfter(ll.tailSentinel.prev, &node[T]{val: v})
	}
}

// AddFirst prepends a value to the list.
func (ll *LinkedList[T]) AddFirst(value T) {
	ll.linkAfter(ll.headSentinel, &node[T]{val: value})
}

// RemoveFirst removes and returns the first element.
func (ll *LinkedList[T]) RemoveFirst() (val T, err error) {
	if ll.size == 0 {
		return val, ErrEmptyList
	}
	return ll.unlink(ll.headSentinel.next), nil
}

// RemoveLast removes and returns the last element.
func (ll *LinkedList[T]) RemoveLast() (val T, err error) {
	if ll.size == 0 {
		return val, ErrEmptyList
	}
	return ll.unlink(ll.tailSentinel.prev), nil
}

func (ll *LinkedList[T]) Size() int {
	return ll.size
}

func (ll *LinkedList[T]) IsEmpty() bool {
	return ll.size == 0
}

func (ll *LinkedList[T]) Clear() {
	for ll.size > 0 {
		ll.unlink(ll.headSentinel.next)
	}
}

func (ll *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := ll.headSentinel.next; n != ll.tailSentinel; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := ll.tailSentinel.prev; n != ll.headSentinel; n = n.prev {
			if !yield(n.val) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for n := ll.headSentinel.next; n != ll.tailSentinel; n = n.next {
		if n != ll.headSentinel.next {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", n.val)
	}
	sb.WriteString("]")
	return sb.String()
}

// Clone returns a shallow copy of the list.
// Note: If T is a pointer or reference type, the referenced data is shared.
func (ll *LinkedList[T]) Clone() *LinkedList[T] {
	clone := NewLinkedList[T]()
	for v := range ll.Values() {
		clone.Add(v)
	}
	return clone
}
