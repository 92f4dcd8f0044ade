// File: doc.go
// Title: Package Documentation for listx
// Description: Package listx provides a generic singly linked list.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

// Package listx provides List[T], a generic singly linked list.
//
// The list keeps a head pointer that owns the chain, a tail pointer caching
// the last node and a cached length, so Add and Len run in constant time.
// Insert and Remove walk the chain.
//
// Element equality for Remove and Contains comes from the constructor: New
// uses == for comparable types, NewFunc takes an explicit function.
//
//	l := listx.New[int]()
//	l.Add(1)
//	l.Add(2)
//	l.Insert(0, 0)
//	fmt.Println(l) // 0 -> 1 -> 2 -> <end>
//
// Render and RenderWith write the same representation to an io.Writer and
// report write failures as errors with CodeIOError.
package listx
