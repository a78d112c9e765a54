package horde

// Commands buffers structural changes requested by the host between updates, such
// as debug tools spawning or culling enemies. They are applied at the start of the
// next World.Update, after the sweep, so a deleted entity still disappears one
// update after it was marked.
type Commands struct {
	spawns  []Kind
	deletes []EntityID
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues a spawn of kind k.
func (c *Commands) Spawn(k Kind) {
	c.spawns = append(c.spawns, k)
}

// Delete queues marking the entity with the given id for deletion.
func (c *Commands) Delete(id EntityID) {
	c.deletes = append(c.deletes, id)
}

// Defer queues a function to run after the other commands.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len reports the number of queued commands.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.deletes) + len(c.defers)
}

// flush applies all queued commands to w and resets the buffer.
func (c *Commands) flush(w *World) {
	for _, id := range c.deletes {
		if e, ok := w.index.Get(id); ok {
			e.MarkForDeletion()
		}
	}

	for _, k := range c.spawns {
		if _, err := w.spawn(k); err != nil {
			w.logger.Warn("queued spawn failed", "kind", k, "err", err)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	c.defers = c.defers[:0]
}
