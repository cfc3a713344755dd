package route

// Router is the navigation back stack. The bottom entry is the root screen
// and is never popped.
type Router struct {
	stack []*Destination
}

// NewRouter creates a router rooted at root.
func NewRouter(root *Destination) *Router {
	r := &Router{}
	r.Reset(root)
	return r
}

// Reset clears the stack down to a new root.
func (r *Router) Reset(root *Destination) {
	r.stack = []*Destination{root}
}

// Push navigates to d.
func (r *Router) Push(d *Destination) {
	r.stack = append(r.stack, d)
}

// Pop removes the top destination and returns the new current one.
// Returns nil if the stack has one or fewer entries (never pops the root).
func (r *Router) Pop() *Destination {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return r.Current()
}

// Current returns the current (top) destination, or nil if empty.
func (r *Router) Current() *Destination {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Root returns the bottom destination, or nil if empty.
func (r *Router) Root() *Destination {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[0]
}

// Depth returns the current stack depth.
func (r *Router) Depth() int {
	return len(r.stack)
}

// CanGoBack returns true if there is a previous destination to return to.
func (r *Router) CanGoBack() bool {
	return len(r.stack) > 1
}
